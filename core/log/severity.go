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

package log

import (
	"fmt"
	"strings"
)

// Severity defines the severity of a logging message.
type Severity int32

const (
	// Verbose indicates extremely verbose level messages.
	Verbose Severity = iota
	// Debug indicates debug-level messages.
	Debug
	// Info indicates minor informational messages that should generally be ignored.
	Info
	// Warning indicates issues that might affect performance or compatibility, but could be ignored.
	Warning
	// Error indicates non terminal failure conditions that may have an effect on results.
	Error
	// Fatal indicates a fatal error.
	Fatal
)

var severityNames = []string{"Verbose", "Debug", "Info", "Warning", "Error", "Fatal"}

// String returns the full name of the severity.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity<%d>", int32(s))
	}
	return severityNames[s]
}

// Short returns the severity string with a single character.
func (s Severity) Short() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "?"
	}
	return severityNames[s][:1]
}

// Set parses the severity from its name, so that a *Severity can be used as
// a command line flag value.
func (s *Severity) Set(name string) error {
	for i, n := range severityNames {
		if strings.EqualFold(n, name) || strings.EqualFold(n[:1], name) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("Unknown severity %q, valid options are: %s", name, strings.Join(severityNames, ", "))
}

// Type returns the flag type name.
func (*Severity) Type() string { return "severity" }

// SeverityFilter is a Filter showing messages of at least its severity.
type SeverityFilter Severity

func (f SeverityFilter) ShowSeverity(s Severity) bool { return s >= Severity(f) }
