// Copyright (C) 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log is a context bound logger.
//
// The handler, severity filter, tag, trace stack and key-value pairs that
// shape a message all travel in the context.Context, so code only ever
// needs the context it was given to log:
//
//	ctx = log.Enter(ctx, "PruneDevice")
//	log.I(ctx, "Removed unused feature %v", f)
//
// A context without a handler discards everything.
package log

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Logger is a snapshot of the logging state of a context.
type Logger struct {
	handler Handler
	filter  Filter
	tag     string
	trace   []string
	values  *values
}

// From returns the Logger for ctx.
func From(ctx context.Context) *Logger {
	return &Logger{
		handler: GetHandler(ctx),
		filter:  GetFilter(ctx),
		tag:     GetTag(ctx),
		trace:   GetTrace(ctx),
		values:  getValues(ctx),
	}
}

// Bind returns the Logger for ctx with v bound.
func Bind(ctx context.Context, v V) *Logger { return From(v.Bind(ctx)) }

func D(ctx context.Context, format string, args ...interface{}) { From(ctx).D(format, args...) }
func I(ctx context.Context, format string, args ...interface{}) { From(ctx).I(format, args...) }
func W(ctx context.Context, format string, args ...interface{}) { From(ctx).W(format, args...) }
func E(ctx context.Context, format string, args ...interface{}) { From(ctx).E(format, args...) }

// F logs a fatal message. If stopProcess is true the handler should end the
// process once the message is written.
func F(ctx context.Context, stopProcess bool, format string, args ...interface{}) {
	From(ctx).F(format, stopProcess, args...)
}

func (l *Logger) D(format string, args ...interface{}) { l.Logf(Debug, false, format, args...) }
func (l *Logger) I(format string, args ...interface{}) { l.Logf(Info, false, format, args...) }
func (l *Logger) W(format string, args ...interface{}) { l.Logf(Warning, false, format, args...) }
func (l *Logger) E(format string, args ...interface{}) { l.Logf(Error, false, format, args...) }

// F logs a fatal message, see the package level F.
func (l *Logger) F(format string, stopProcess bool, args ...interface{}) {
	l.Logf(Fatal, stopProcess, format, args...)
}

// Logf formats and logs a message at severity s.
func (l *Logger) Logf(s Severity, stopProcess bool, format string, args ...interface{}) {
	if l.enabled(s) {
		l.handler.Handle(l.Messagef(s, stopProcess, format, args...))
	}
}

// Log logs text at severity s.
func (l *Logger) Log(s Severity, stopProcess bool, text string) {
	if l.enabled(s) {
		l.handler.Handle(l.Message(s, stopProcess, text))
	}
}

func (l *Logger) enabled(s Severity) bool {
	return l.handler != nil && (l.filter == nil || l.filter.ShowSeverity(s))
}

// Messagef is Message with formatted text.
func (l *Logger) Messagef(s Severity, stopProcess bool, format string, args ...interface{}) *Message {
	return l.Message(s, stopProcess, fmt.Sprintf(format, args...))
}

// Message builds the message the logger would log, without logging it.
// Values bound closer to the logging call hide outer ones of the same name.
func (l *Logger) Message(s Severity, stopProcess bool, text string) *Message {
	m := &Message{
		Text:        text,
		Time:        time.Now(),
		Severity:    s,
		StopProcess: stopProcess,
		Tag:         l.tag,
		Trace:       l.trace,
	}
	bound := map[string]interface{}{}
	for n := l.values; n != nil; n = n.parent {
		for k, v := range n.v {
			if _, hidden := bound[k]; !hidden {
				bound[k] = v
			}
		}
	}
	for k, v := range bound {
		m.Values = append(m.Values, &Value{Name: k, Value: v})
	}
	sort.Sort(m.Values)
	return m
}
