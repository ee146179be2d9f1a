// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows && !plan9

package suid

import (
	"log/syslog"
)

// NewAuditor returns an Auditor for a new invocation which writes to the
// local syslog daemon under facility LOCAL7 and mirrors to log. When syslog
// is unreachable records only reach log.
func NewAuditor(tag string, log Logger, verbosity int) *Auditor {
	var sink Sink
	if w, err := syslog.New(syslog.LOG_LOCAL7|syslog.LOG_INFO, tag); err == nil {
		sink = w
	} else if log != nil {
		log.Errorf("syslog unavailable, audit records go to stderr only: %v", err)
	}
	return newAuditor(invocationID(), sink, log, verbosity)
}
