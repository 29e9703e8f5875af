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
	"time"
)

// SeverityStyle selects how a Style prints severities.
type SeverityStyle int

const (
	NoSeverity    SeverityStyle = iota
	SeverityShort               // "W"
	SeverityLong                // "Warning"
)

// ValueStyle selects how a Style prints bound values.
type ValueStyle int

const (
	NoValues         ValueStyle = iota
	ValuesSingleLine            // "(a: 1, b: 2)" after the text
	ValuesMultiLine             // one indented line per value
)

// Style describes how messages are turned into text.
type Style struct {
	Name      string
	Timestamp bool
	Tag       bool
	Trace     bool
	Severity  SeverityStyle
	Values    ValueStyle
}

var (
	// Raw prints only the text.
	Raw = Style{Name: "raw"}
	// Brief prints the short severity and the text.
	Brief = Style{Name: "brief", Severity: SeverityShort}
	// Normal adds the time, tag, trace and values to Brief.
	Normal = Style{Name: "normal", Timestamp: true, Tag: true, Trace: true, Severity: SeverityShort, Values: ValuesSingleLine}
	// Detailed is Normal with long severities and one line per value.
	Detailed = Style{Name: "detailed", Timestamp: true, Tag: true, Trace: true, Severity: SeverityLong, Values: ValuesMultiLine}

	styles = []Style{Raw, Brief, Normal, Detailed}
)

func (s Style) String() string { return s.Name }

// Set selects the style named name, case insensitively. Together with
// String and Type it makes *Style a pflag.Value.
func (s *Style) Set(name string) error {
	names := []string{}
	for _, st := range styles {
		if strings.EqualFold(st.Name, name) {
			*s = st
			return nil
		}
		names = append(names, st.Name)
	}
	return fmt.Errorf("Unknown style %q, valid options are: %s", name, strings.Join(names, ", "))
}

func (*Style) Type() string { return "style" }

// Handler returns a Handler printing messages in style s to w.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(m *Message) { w(s.Print(m), m.Severity) }, nil)
}

// Print returns m as text in style s.
func (s Style) Print(m *Message) string {
	b := &strings.Builder{}
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	if s.Timestamp && !m.Time.IsZero() {
		b.WriteString(HHMMSSsss(m.Time))
	}
	switch s.Severity {
	case SeverityShort:
		sep()
		b.WriteString(m.Severity.Short() + ":")
	case SeverityLong:
		sep()
		b.WriteString(m.Severity.String() + ":")
	}
	if s.Trace && len(m.Trace) > 0 {
		sep()
		fmt.Fprintf(b, "[%s]", strings.Join(m.Trace, "->"))
	}
	if s.Tag && m.Tag != "" {
		sep()
		fmt.Fprintf(b, "[%s]", m.Tag)
	}
	sep()
	b.WriteString(m.Text)
	if len(m.Values) == 0 {
		return b.String()
	}
	switch s.Values {
	case ValuesSingleLine:
		parts := make([]string, len(m.Values))
		for i, v := range m.Values {
			parts[i] = v.String()
		}
		fmt.Fprintf(b, " (%s)", strings.Join(parts, ", "))
	case ValuesMultiLine:
		for _, v := range m.Values {
			b.WriteString("\n  " + v.String())
		}
	}
	return b.String()
}

// HHMMSSsss formats the time of day of t with millisecond precision.
func HHMMSSsss(t time.Time) string { return t.Format("15:04:05.000") }
