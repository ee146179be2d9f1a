// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

// Exit statuses of the launcher. Every failure class has its own status so a
// supervisor can tell them apart without parsing stderr. A successful run
// never exits: the process image is replaced by the target program.
const (
	ExitBadBuild      = 1 // the binary was linked without a valid policy
	ExitUnknownUser   = 2
	ExitUnknownGroup  = 3
	ExitTooManyArgs   = 4
	ExitSetgidFailed  = 5
	ExitSetuidFailed  = 6
	ExitUsage         = 125
	ExitExecFailed    = 126
	ExitNotOperator   = 249
	ExitCommandDenied = 250
	ExitUserDenied    = 251
	ExitGroupDenied   = 252
)

// CompPoison is the value link-time variables hold when the build did not set
// them.
const CompPoison = "INVALIDINVALIDINVALIDINVALIDINVALID"

// DefaultMaxArgs is the number of trailing arguments accepted when the build
// does not choose a bound: a vector of 16 slots holds the program path, 14
// arguments and the terminator.
const DefaultMaxArgs = 14

// maxArgsLimit caps the bound a build may choose.
const maxArgsLimit = 1024
