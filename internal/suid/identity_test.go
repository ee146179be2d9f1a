// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"testing"

	"v.io/v23/verror"
)

// Note: root is the only entry present on every system we test on.
const (
	testUserName  = "root"
	testGroupName = "root"
)

func TestSystemIdentities(t *testing.T) {
	var ids Identities = SystemIdentities{}

	u, err := ids.LookupUser(testUserName)
	if err != nil {
		t.Fatalf("LookupUser(%q): %v", testUserName, err)
	}
	if want := (UserRecord{Name: testUserName, UID: 0, GID: 0}); *u != want {
		t.Errorf("LookupUser(%q) = %+v, want %+v", testUserName, *u, want)
	}

	g, err := ids.LookupGroup(testGroupName)
	if err != nil {
		t.Fatalf("LookupGroup(%q): %v", testGroupName, err)
	}
	if want := (GroupRecord{Name: testGroupName, GID: 0}); *g != want {
		t.Errorf("LookupGroup(%q) = %+v, want %+v", testGroupName, *g, want)
	}
}

func TestSystemIdentitiesUnknown(t *testing.T) {
	const ghost = "lens3-ghost-user-that-does-not-exist"
	var ids Identities = SystemIdentities{}

	if u, err := ids.LookupUser(ghost); u != nil || verror.ErrorID(err) != errUnknownUser.ID {
		t.Errorf("LookupUser(%q) = %v, %v; want %s", ghost, u, err, errUnknownUser.ID)
	}
	if g, err := ids.LookupGroup(ghost); g != nil || verror.ErrorID(err) != errUnknownGroup.ID {
		t.Errorf("LookupGroup(%q) = %v, %v; want %s", ghost, g, err, errUnknownGroup.ID)
	}
	if got := ExitCode(unknownUser(ghost, nil)); got != ExitUnknownUser {
		t.Errorf("ExitCode = %d, want %d", got, ExitUnknownUser)
	}
	if got := ExitCode(unknownGroup(ghost, nil)); got != ExitUnknownGroup {
		t.Errorf("ExitCode = %d, want %d", got, ExitUnknownGroup)
	}
}
