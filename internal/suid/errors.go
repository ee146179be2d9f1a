// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"v.io/v23/verror"
)

const pkgPath = "github.com/RIKEN-RCCS/lens3/internal/suid"

// None of these errors is ever retried: each one terminates the launcher.
var (
	errBadPolicy       = verror.NewIDAction(pkgPath+".errBadPolicy", verror.NoRetry)
	errUsage           = verror.NewIDAction(pkgPath+".errUsage", verror.NoRetry)
	errNotOperator     = verror.NewIDAction(pkgPath+".errNotOperator", verror.NoRetry)
	errCommandMismatch = verror.NewIDAction(pkgPath+".errCommandMismatch", verror.NoRetry)
	errUnknownUser     = verror.NewIDAction(pkgPath+".errUnknownUser", verror.NoRetry)
	errUnknownGroup    = verror.NewIDAction(pkgPath+".errUnknownGroup", verror.NoRetry)
	errUserDenied      = verror.NewIDAction(pkgPath+".errUserDenied", verror.NoRetry)
	errGroupNotAllowed = verror.NewIDAction(pkgPath+".errGroupNotAllowed", verror.NoRetry)
	errTooManyArgs     = verror.NewIDAction(pkgPath+".errTooManyArgs", verror.NoRetry)
	errSetgidFailed    = verror.NewIDAction(pkgPath+".errSetgidFailed", verror.NoRetry)
	errSetuidFailed    = verror.NewIDAction(pkgPath+".errSetuidFailed", verror.NoRetry)
	errExecFailed      = verror.NewIDAction(pkgPath+".errExecFailed", verror.NoRetry)
)

var exitStatus = map[verror.ID]int{
	errBadPolicy.ID:       ExitBadBuild,
	errUsage.ID:           ExitUsage,
	errNotOperator.ID:     ExitNotOperator,
	errCommandMismatch.ID: ExitCommandDenied,
	errUnknownUser.ID:     ExitUnknownUser,
	errUnknownGroup.ID:    ExitUnknownGroup,
	errUserDenied.ID:      ExitUserDenied,
	errGroupNotAllowed.ID: ExitGroupDenied,
	errTooManyArgs.ID:     ExitTooManyArgs,
	errSetgidFailed.ID:    ExitSetgidFailed,
	errSetuidFailed.ID:    ExitSetuidFailed,
	errExecFailed.ID:      ExitExecFailed,
}

// ExitCode returns the process exit status for an error returned by Run or
// NewPolicy. Errors that did not originate in this package map to
// ExitBadBuild.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if status, ok := exitStatus[verror.ErrorID(err)]; ok {
		return status
	}
	return ExitBadBuild
}

// IsUsageError reports whether err is a malformed invocation, in which case
// the caller should be shown the usage line.
func IsUsageError(err error) bool {
	return verror.ErrorID(err) == errUsage.ID
}
