// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

// Gate names an authorization step in audit records.
type Gate string

const (
	GateCaller   Gate = "caller"
	GateUsage    Gate = "usage"
	GateCommand  Gate = "command"
	GateResolve  Gate = "resolve"
	GateUser     Gate = "user"
	GateGroup    Gate = "group"
	GateArgv     Gate = "argv"
	GateSetgid   Gate = "setgid"
	GateSetuid   Gate = "setuid"
	GateExec     Gate = "exec"
	GateTrace    Gate = "trace"
)

// CheckCaller fails unless uid is the operator of the policy. It must run
// before any user input is looked at.
func CheckCaller(p *Policy, uid int) error {
	if uid < 0 || uint64(uid) != uint64(p.Operator()) {
		return errNotOperator.Errorf(nil, "You have no rights to execute this command: %d", uid)
	}
	return nil
}

// CheckCommand fails unless cmd is byte for byte the target path of the
// policy. Paths are never cleaned or resolved.
func CheckCommand(p *Policy, cmd string) error {
	if cmd != p.TargetPath() {
		return errCommandMismatch.Errorf(nil, "command mismatch: should be %q", p.TargetPath())
	}
	return nil
}

// CheckUser fails if the target user may never be impersonated.
func CheckUser(p *Policy, u *UserRecord) error {
	if p.Denied(u.UID) {
		return errUserDenied.Errorf(nil, "%s: uid %d is not allowed as a target", u.Name, u.UID)
	}
	return nil
}

// CheckGroups fails unless the primary group of the target user, and the
// additional group if one was requested, are members of the allowed set.
func CheckGroups(p *Policy, u *UserRecord, g *GroupRecord) error {
	if !p.Allowed(u.GID) {
		return errGroupNotAllowed.Errorf(nil, "%s: primary gid %d is not allowed", u.Name, u.GID)
	}
	if g != nil && !p.Allowed(g.GID) {
		return errGroupNotAllowed.Errorf(nil, "%s: gid %d is not allowed", g.Name, g.GID)
	}
	return nil
}
