// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Command suminio starts the object storage server of a lens3 pool as the pool
owner. Only the operator account may run it, and it only ever runs the one
program path compiled into it. It should be installed setuid root.

Usage:

	suminio -u <user> [-g <group>] <target-program-path> [args...]

The flags are:

	-u=
	   The UNIX user name the target program runs as. Required.
	-g=
	   The UNIX group name the target program additionally runs as.

Flags are only recognized before the target program path; everything after
it is passed to the target program unchanged, as is the environment.

The checks are made in this order, and the first failure ends the program:
the caller is the operator, the command line is well formed, the program path
is the compiled-in path, the user (and group) exist, the user is not denied,
the primary group of the user (and the requested group) are allowed, the
number of arguments is within bound. Then the group is changed if one was
requested, then the user, then the target program is executed.

Exit status:

	1    the binary was built without a valid policy
	2    target user not found
	3    target group not found
	4    too many trailing arguments
	5    changing the group failed
	6    changing the user failed
	125  usage error
	126  executing the target program failed
	249  the caller is not the operator
	250  the program path is not the compiled-in path
	251  the target user is denied
	252  a target group is not allowed

Every decision is recorded in syslog under facility LOCAL7 with tag suminio;
denials are also printed to stderr.
*/
package main
