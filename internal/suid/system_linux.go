// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// OS is the System of the running process.
type OS struct{}

// Getuid implements System.
func (OS) Getuid() int { return unix.Getuid() }

// Credentials implements System.
func (OS) Credentials() Credentials {
	var c Credentials
	c.RUID, c.EUID, c.SUID = unix.Getresuid()
	c.RGID, c.EGID, c.SGID = unix.Getresgid()
	return c
}

// Setgid implements System. The syscall package applies the change to every
// thread of the process.
func (OS) Setgid(gid int) error { return syscall.Setresgid(gid, gid, gid) }

// Setuid implements System.
func (OS) Setuid(uid int) error { return syscall.Setresuid(uid, uid, uid) }

// Exec implements System.
func (OS) Exec(path string, argv, env []string) error { return unix.Exec(path, argv, env) }
