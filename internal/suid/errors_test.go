// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"errors"
	"testing"

	"v.io/v23/verror"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		id     verror.IDAction
		status int
	}{
		{errBadPolicy, 1},
		{errUnknownUser, 2},
		{errUnknownGroup, 3},
		{errTooManyArgs, 4},
		{errSetgidFailed, 5},
		{errSetuidFailed, 6},
		{errUsage, 125},
		{errExecFailed, 126},
		{errNotOperator, 249},
		{errCommandMismatch, 250},
		{errUserDenied, 251},
		{errGroupNotAllowed, 252},
	}
	seen := map[int]verror.ID{}
	for _, c := range cases {
		err := c.id.Errorf(nil, "test")
		if got := ExitCode(err); got != c.status {
			t.Errorf("ExitCode(%s) = %d, want %d", c.id.ID, got, c.status)
		}
		if c.id.Action != verror.NoRetry {
			t.Errorf("%s is retryable", c.id.ID)
		}
		if other, ok := seen[c.status]; ok {
			t.Errorf("%s and %s share exit status %d", c.id.ID, other, c.status)
		}
		seen[c.status] = c.id.ID
	}
	if len(exitStatus) != len(cases) {
		t.Errorf("%d exit statuses are mapped, %d tested", len(exitStatus), len(cases))
	}

	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(errors.New("foreign")); got != ExitBadBuild {
		t.Errorf("ExitCode(foreign) = %d, want %d", got, ExitBadBuild)
	}
}
