// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// suminio deliberately attempts to be as simple as possible to simplify
// reviewing it for security concerns.

import (
	"fmt"
	"os"
	"runtime"

	"v.io/x/lib/vlog"

	"github.com/RIKEN-RCCS/lens3/internal/suid"
)

// The policy is set by the linker, for example
//
//	go build -ldflags "-X main.operatorUID=1000 -X main.targetPath=/usr/local/bin/minio \
//	    -X main.deniedUIDs=0,1,2 -X main.allowedGIDs=200,201" ./cmd/suminio
var (
	operatorUID = suid.CompPoison
	targetPath  = suid.CompPoison
	deniedUIDs  = suid.CompPoison
	allowedGIDs = suid.CompPoison
	maxArgs     = suid.CompPoison
	verbosity   = "0"
)

// progname is fixed so that callers cannot choose the syslog tag.
const progname = "suminio"

func main() {
	runtime.LockOSThread()

	policy, err := suid.NewPolicy(suid.PolicyStrings{
		OperatorUID: operatorUID,
		TargetPath:  targetPath,
		DeniedUIDs:  deniedUIDs,
		AllowedGIDs: allowedGIDs,
		MaxArgs:     maxArgs,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "this program is compiled incorrectly")
		os.Exit(suid.ExitCode(err))
	}

	level := suid.AuditDenials
	switch verbosity {
	case "1":
		level = suid.AuditDecisions
	case "2":
		level = suid.AuditTrace
	}
	logger := vlog.NewLogger(progname)
	// Never configured from flags: a caller must not choose where a
	// privileged process writes.
	if err := logger.Configure(vlog.LogToStderr(true), vlog.Level(level)); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	auditor := suid.NewAuditor(progname, logger, level)

	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}

	err = suid.Run(suid.Config{
		Policy:     policy,
		System:     suid.OS{},
		Identities: suid.SystemIdentities{},
		Auditor:    auditor,
		Progname:   progname,
		Args:       args,
		Env:        os.Environ(),
	})
	auditor.Close()
	logger.FlushLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if suid.IsUsageError(err) {
			fmt.Fprintln(os.Stderr, suid.Usage(progname, policy.TargetPath()))
		}
		os.Exit(suid.ExitCode(err))
	}

	panic("unreachable")
}
