// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Logger is the subset of *vlog.Logger used to mirror audit records.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Sink receives formatted audit records. *syslog.Writer is a Sink.
type Sink interface {
	Info(m string) error
	Warning(m string) error
	Debug(m string) error
	Close() error
}

// Field is one key=value pair of an audit record.
type Field struct {
	Key   string
	Value interface{}
}

// F returns a Field.
func F(key string, value interface{}) Field { return Field{key, value} }

// Verbosity levels of an Auditor.
const (
	// AuditDenials sends denials to the logger; every decision still goes to
	// the sink.
	AuditDenials = 0
	// AuditDecisions also sends passed gates to the logger.
	AuditDecisions = 1
	// AuditTrace adds credential and argument vector traces.
	AuditTrace = 2
)

// Auditor records every gate decision of one invocation. Recording never
// fails: sink errors are dropped.
type Auditor struct {
	id        string
	sink      Sink
	log       Logger
	verbosity int
}

// newAuditor returns an Auditor writing to sink and log, either of which may
// be nil.
func newAuditor(id string, sink Sink, log Logger, verbosity int) *Auditor {
	return &Auditor{id: id, sink: sink, log: log, verbosity: verbosity}
}

func invocationID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return "-"
	}
	return id.String()
}

// ID returns the invocation id carried by every record.
func (a *Auditor) ID() string { return a.id }

func (a *Auditor) format(g Gate, decision string, fields []Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "invocation=%s gate=%s decision=%s", a.id, g, decision)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		switch v := f.Value.(type) {
		case string:
			// caller supplied strings must not be able to forge fields or lines
			b.WriteString(strconv.Quote(v))
		case []string:
			b.WriteString(strconv.Quote(strings.Join(v, " ")))
		case error:
			b.WriteString(strconv.Quote(v.Error()))
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}

// Pass records that gate g accepted the request.
func (a *Auditor) Pass(g Gate, fields ...Field) {
	m := a.format(g, "pass", fields)
	if a.sink != nil {
		_ = a.sink.Info(m)
	}
	if a.log != nil && a.verbosity >= AuditDecisions {
		a.log.Infof("%s", m)
	}
}

// Deny records that gate g rejected the request with err.
func (a *Auditor) Deny(g Gate, err error, fields ...Field) {
	m := a.format(g, "deny", append([]Field{F("error", err)}, fields...))
	if a.sink != nil {
		_ = a.sink.Warning(m)
	}
	if a.log != nil {
		a.log.Errorf("%s", m)
	}
}

// Trace records debugging state; it is dropped below AuditTrace.
func (a *Auditor) Trace(fields ...Field) {
	if a.verbosity < AuditTrace {
		return
	}
	m := a.format(GateTrace, "none", fields)
	if a.sink != nil {
		_ = a.sink.Debug(m)
	}
	if a.log != nil {
		a.log.Infof("%s", m)
	}
}

// Close releases the sink.
func (a *Auditor) Close() {
	if a.sink != nil {
		_ = a.sink.Close()
	}
}
