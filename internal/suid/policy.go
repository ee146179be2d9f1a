// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"path"
	"slices"

	"github.com/samber/lo"
)

// PolicyStrings holds the policy exactly as it was set by the linker.
// Unset fields are either empty or CompPoison.
type PolicyStrings struct {
	OperatorUID string
	TargetPath  string
	DeniedUIDs  string
	AllowedGIDs string
	MaxArgs     string
}

// Policy is the validated, immutable authorization policy compiled into the
// launcher. It is created once by NewPolicy and never changes afterwards.
type Policy struct {
	operator   uint32
	targetPath string
	denied     map[uint32]struct{}
	allowed    map[uint32]struct{}
	maxArgs    int
}

func isSet(s string) bool {
	return s != "" && s != CompPoison
}

// NewPolicy validates the link-time strings and returns the policy they
// describe. Root is always denied, whatever DeniedUIDs says.
func NewPolicy(ps PolicyStrings) (*Policy, error) {
	p := &Policy{maxArgs: DefaultMaxArgs}

	if !isSet(ps.OperatorUID) {
		return nil, errBadPolicy.Errorf(nil, "operator uid is not set")
	}
	operator, err := parseUint32Fast(ps.OperatorUID)
	if err != nil {
		return nil, errBadPolicy.Errorf(nil, "invalid operator uid %q: %v", ps.OperatorUID, err)
	}
	if operator == 0 {
		return nil, errBadPolicy.Errorf(nil, "operator uid must not be 0")
	}
	p.operator = operator

	if !isSet(ps.TargetPath) {
		return nil, errBadPolicy.Errorf(nil, "target path is not set")
	}
	if !path.IsAbs(ps.TargetPath) || path.Clean(ps.TargetPath) != ps.TargetPath {
		return nil, errBadPolicy.Errorf(nil, "target path %q is not a clean absolute path", ps.TargetPath)
	}
	p.targetPath = ps.TargetPath

	deniedList := []uint32{0}
	if isSet(ps.DeniedUIDs) {
		ids, err := parseIDList(ps.DeniedUIDs)
		if err != nil {
			return nil, errBadPolicy.Errorf(nil, "invalid denied uid list: %v", err)
		}
		deniedList = append(deniedList, ids...)
	}
	p.denied = toSet(deniedList)

	if !isSet(ps.AllowedGIDs) {
		return nil, errBadPolicy.Errorf(nil, "allowed gid list is not set")
	}
	allowedList, err := parseIDList(ps.AllowedGIDs)
	if err != nil {
		return nil, errBadPolicy.Errorf(nil, "invalid allowed gid list: %v", err)
	}
	if len(allowedList) == 0 {
		return nil, errBadPolicy.Errorf(nil, "allowed gid list is empty")
	}
	if slices.Contains(allowedList, 0) {
		return nil, errBadPolicy.Errorf(nil, "gid 0 must not be allowed")
	}
	p.allowed = toSet(allowedList)

	if isSet(ps.MaxArgs) {
		n, err := parseUint32Fast(ps.MaxArgs)
		if err != nil || n > maxArgsLimit {
			return nil, errBadPolicy.Errorf(nil, "invalid argument bound %q", ps.MaxArgs)
		}
		p.maxArgs = int(n)
	}
	return p, nil
}

func toSet(ids []uint32) map[uint32]struct{} {
	return lo.SliceToMap(ids, func(id uint32) (uint32, struct{}) {
		return id, struct{}{}
	})
}

// Operator returns the only uid allowed to invoke the launcher.
func (p *Policy) Operator() uint32 { return p.operator }

// TargetPath returns the absolute path of the only program the launcher runs.
func (p *Policy) TargetPath() string { return p.targetPath }

// MaxArgs returns the maximum number of arguments forwarded to the target.
func (p *Policy) MaxArgs() int { return p.maxArgs }

// Denied reports whether uid may never be impersonated.
func (p *Policy) Denied(uid uint32) bool {
	_, ok := p.denied[uid]
	return ok
}

// Allowed reports whether gid is one of the groups a target may run as.
func (p *Policy) Allowed(gid uint32) bool {
	_, ok := p.allowed[gid]
	return ok
}

// DeniedUIDs returns the denied uids in ascending order.
func (p *Policy) DeniedUIDs() []uint32 { return sortedKeys(p.denied) }

// AllowedGIDs returns the allowed gids in ascending order.
func (p *Policy) AllowedGIDs() []uint32 { return sortedKeys(p.allowed) }

func sortedKeys(set map[uint32]struct{}) []uint32 {
	keys := lo.Keys(set)
	slices.Sort(keys)
	return keys
}
