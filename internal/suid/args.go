// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// InvocationRequest is the parsed command line of one invocation.
type InvocationRequest struct {
	TargetUser        string
	TargetGroup       string
	TargetProgramPath string
	TrailingArgs      []string
}

// Usage returns the one-line usage message for progname.
func Usage(progname, targetPath string) string {
	return fmt.Sprintf("usage: %s -u user [-g group] %s [args...]", progname, targetPath)
}

func setupFlags(fs *flag.FlagSet, req *InvocationRequest) {
	fs.StringVar(&req.TargetUser, "u", "", "The UNIX user name the target program runs as.")
	fs.StringVar(&req.TargetGroup, "g", "", "The UNIX group name the target program additionally runs as.")
}

// ParseArguments parses the command line that follows the program name.
// Option recognition stops at the first argument that is not an option, so
// options meant for the target program are never taken by the launcher.
func ParseArguments(progname string, args []string) (*InvocationRequest, error) {
	req := new(InvocationRequest)
	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupFlags(fs, req)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errUsage.Errorf(nil, "help requested")
		}
		return nil, errUsage.Errorf(nil, "%v", err)
	}
	if req.TargetUser == "" {
		return nil, errUsage.Errorf(nil, "-u user missing")
	}
	var emptyGroup bool
	fs.Visit(func(f *flag.Flag) {
		emptyGroup = emptyGroup || (f.Name == "g" && req.TargetGroup == "")
	})
	if emptyGroup {
		return nil, errUsage.Errorf(nil, "-g group is empty")
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, errUsage.Errorf(nil, "command missing")
	}
	req.TargetProgramPath = rest[0]
	req.TrailingArgs = append([]string(nil), rest[1:]...)
	return req, nil
}

// ExecutionPlan is everything the handoff needs once all checks passed.
type ExecutionPlan struct {
	Path     string
	Argv     []string
	Env      []string
	UID      int
	GID      int
	SetGroup bool
}

// BuildArgv returns the argument vector of the target program: its own path
// followed by the trailing arguments in order. Exceeding the bound of the
// policy is an error; the vector is never truncated.
func BuildArgv(p *Policy, req *InvocationRequest) ([]string, error) {
	if n := len(req.TrailingArgs); n > p.MaxArgs() {
		return nil, errTooManyArgs.Errorf(nil, "argument list too long: %d arguments, at most %d allowed", n, p.MaxArgs())
	}
	argv := make([]string, 0, 1+len(req.TrailingArgs))
	argv = append(argv, p.TargetPath())
	return append(argv, req.TrailingArgs...), nil
}
