// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"errors"
	"os/user"
	"strconv"
)

// UserRecord is the part of a passwd entry the launcher needs.
type UserRecord struct {
	Name string
	UID  uint32
	GID  uint32 // primary group
}

// GroupRecord is the part of a group entry the launcher needs.
type GroupRecord struct {
	Name string
	GID  uint32
}

// Identities resolves user and group names. Implementations return
// errUnknownUser or errUnknownGroup when there is no such entry.
type Identities interface {
	LookupUser(name string) (*UserRecord, error)
	LookupGroup(name string) (*GroupRecord, error)
}

func unknownUser(name string, err error) error {
	if err != nil {
		return errUnknownUser.Errorf(nil, "%s: cannot look up user: %v", name, err)
	}
	return errUnknownUser.Errorf(nil, "%s: no such user", name)
}

func unknownGroup(name string, err error) error {
	if err != nil {
		return errUnknownGroup.Errorf(nil, "%s: cannot look up group: %v", name, err)
	}
	return errUnknownGroup.Errorf(nil, "%s: no such group", name)
}

// SystemIdentities resolves names with the system user and group databases.
type SystemIdentities struct{}

// LookupUser implements Identities.
func (SystemIdentities) LookupUser(name string) (*UserRecord, error) {
	usr, err := user.Lookup(name)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return nil, unknownUser(name, nil)
		}
		return nil, unknownUser(name, err)
	}
	uid, err := strconv.ParseUint(usr.Uid, 10, 32)
	if err != nil {
		return nil, unknownUser(name, errors.New("invalid uid "+strconv.Quote(usr.Uid)))
	}
	gid, err := strconv.ParseUint(usr.Gid, 10, 32)
	if err != nil {
		return nil, unknownUser(name, errors.New("invalid gid "+strconv.Quote(usr.Gid)))
	}
	return &UserRecord{Name: usr.Username, UID: uint32(uid), GID: uint32(gid)}, nil
}

// LookupGroup implements Identities.
func (SystemIdentities) LookupGroup(name string) (*GroupRecord, error) {
	grp, err := user.LookupGroup(name)
	if err != nil {
		var unknown user.UnknownGroupError
		if errors.As(err, &unknown) {
			return nil, unknownGroup(name, nil)
		}
		return nil, unknownGroup(name, err)
	}
	gid, err := strconv.ParseUint(grp.Gid, 10, 32)
	if err != nil {
		return nil, unknownGroup(name, errors.New("invalid gid "+strconv.Quote(grp.Gid)))
	}
	return &GroupRecord{Name: grp.Name, GID: uint32(gid)}, nil
}
