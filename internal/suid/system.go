// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import "fmt"

// Credentials are the user and group ids of the process.
type Credentials struct {
	RUID, EUID, SUID int
	RGID, EGID, SGID int
}

func (c Credentials) String() string {
	return fmt.Sprintf("uid=%d euid=%d suid=%d gid=%d egid=%d sgid=%d",
		c.RUID, c.EUID, c.SUID, c.RGID, c.EGID, c.SGID)
}

// System is the process interface of the launcher. Setgid and Setuid change
// the real, effective and saved ids together; Exec does not return when it
// succeeds.
type System interface {
	Getuid() int
	Credentials() Credentials
	Setgid(gid int) error
	Setuid(uid int) error
	Exec(path string, argv, env []string) error
}
