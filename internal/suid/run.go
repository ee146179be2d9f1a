// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

// Config carries everything one invocation of the launcher depends on.
type Config struct {
	Policy     *Policy
	System     System
	Identities Identities
	Auditor    *Auditor
	Progname   string
	Args       []string // command line without the program name
	Env        []string
}

type runner struct {
	Config
}

func (r *runner) check(g Gate, err error, fields ...Field) error {
	if err != nil {
		r.Auditor.Deny(g, err, fields...)
		return err
	}
	r.Auditor.Pass(g, fields...)
	return nil
}

// Run authorizes the invocation, drops privileges and executes the target
// program. It only returns on failure, or when the System's Exec returns
// without error, which the real process never does.
func Run(c Config) error {
	r := &runner{c}
	p := c.Policy

	// authenticate before accepting user input
	uid := c.System.Getuid()
	if err := r.check(GateCaller, CheckCaller(p, uid), F("uid", uid)); err != nil {
		return err
	}
	r.Auditor.Trace(F("stage", "start"), F("creds", c.System.Credentials()))

	req, err := ParseArguments(c.Progname, c.Args)
	if err := r.check(GateUsage, err); err != nil {
		return err
	}

	if err := r.check(GateCommand, CheckCommand(p, req.TargetProgramPath), F("command", req.TargetProgramPath)); err != nil {
		return err
	}

	plan, err := r.plan(req)
	if err != nil {
		return err
	}
	return r.handoff(plan)
}

// plan resolves and authorizes the target identity and builds the argument
// vector. Nothing has changed in the process when it returns.
func (r *runner) plan(req *InvocationRequest) (*ExecutionPlan, error) {
	p := r.Policy

	usr, err := r.Identities.LookupUser(req.TargetUser)
	if err := r.check(GateResolve, err, F("user", req.TargetUser)); err != nil {
		return nil, err
	}
	var grp *GroupRecord
	if req.TargetGroup != "" {
		grp, err = r.Identities.LookupGroup(req.TargetGroup)
		if err := r.check(GateResolve, err, F("group", req.TargetGroup)); err != nil {
			return nil, err
		}
	}

	if err := r.check(GateUser, CheckUser(p, usr), F("user", usr.Name), F("uid", usr.UID)); err != nil {
		return nil, err
	}
	groupFields := []Field{F("user", usr.Name), F("gid", usr.GID)}
	if grp != nil {
		groupFields = append(groupFields, F("group", grp.Name), F("ggid", grp.GID))
	}
	if err := r.check(GateGroup, CheckGroups(p, usr, grp), groupFields...); err != nil {
		return nil, err
	}

	argv, err := BuildArgv(p, req)
	if err := r.check(GateArgv, err, F("nargs", len(req.TrailingArgs)), F("max", p.MaxArgs())); err != nil {
		return nil, err
	}
	r.Auditor.Trace(F("stage", "argv"), F("argv", argv))

	plan := &ExecutionPlan{
		Path: p.TargetPath(),
		Argv: argv,
		Env:  r.Env,
		UID:  int(usr.UID),
		GID:  int(usr.GID),
	}
	if grp != nil {
		plan.GID = int(grp.GID)
		plan.SetGroup = true
	}
	return plan, nil
}

// handoff changes the group, then the user, then replaces the process image.
// The group has to change first: it takes the privileges the user change
// gives up.
func (r *runner) handoff(plan *ExecutionPlan) error {
	sys := r.System

	if plan.SetGroup {
		err := sys.Setgid(plan.GID)
		if err != nil {
			err = errSetgidFailed.Errorf(nil, "setgid: %v", err)
		} else if c := sys.Credentials(); c.RGID != plan.GID || c.EGID != plan.GID || c.SGID != plan.GID {
			err = errSetgidFailed.Errorf(nil, "setgid: gid %d not in effect: %v", plan.GID, c)
		}
		if err := r.check(GateSetgid, err, F("gid", plan.GID)); err != nil {
			return err
		}
	}

	err := sys.Setuid(plan.UID)
	if err != nil {
		err = errSetuidFailed.Errorf(nil, "setuid: %v", err)
	} else if c := sys.Credentials(); c.RUID != plan.UID || c.EUID != plan.UID || c.SUID != plan.UID {
		err = errSetuidFailed.Errorf(nil, "setuid: uid %d not in effect: %v", plan.UID, c)
	}
	if err := r.check(GateSetuid, err, F("uid", plan.UID)); err != nil {
		return err
	}
	r.Auditor.Trace(F("stage", "dropped"), F("creds", sys.Credentials()))

	// Exec only returns on failure. Privileges are already gone, so there is
	// nothing to undo.
	r.Auditor.Pass(GateExec, F("path", plan.Path), F("argv", plan.Argv))
	if err := sys.Exec(plan.Path, plan.Argv, plan.Env); err != nil {
		err = errExecFailed.Errorf(nil, "execve: %s: %v", plan.Path, err)
		r.Auditor.Deny(GateExec, err, F("path", plan.Path))
		return err
	}
	return nil
}
