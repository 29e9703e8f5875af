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

package assert

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/kr/pretty"
)

// level selects the Output method a committed assertion reports with.
type level int

const (
	// Log reports without failing the test.
	Log level = iota
	// Error fails the test and lets it continue.
	Error
	// Fatal fails the test and stops it.
	Fatal
)

func (l level) String() string {
	switch l {
	case Log:
		return "Info"
	case Error:
		return "Error"
	case Fatal:
		return "Critical"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// maxDiff bounds the number of differences DeepEquals prints.
const maxDiff = 10

// report is the text of an assertion: a title followed by rows of tab
// separated cells.
type report struct {
	title string
	rows  [][]string
}

func (r *report) last() *[]string {
	if len(r.rows) == 0 {
		r.rows = append(r.rows, nil)
	}
	return &r.rows[len(r.rows)-1]
}

func (r *report) String() string {
	b := &bytes.Buffer{}
	w := tabwriter.NewWriter(b, 1, 4, 1, ' ', 0)
	fmt.Fprint(w, r.title)
	for _, row := range r.rows {
		fmt.Fprint(w, "\n    ", strings.Join(row, "\t"))
	}
	w.Flush()
	return strings.TrimRight(b.String(), " \n")
}

// Assertion collects the report of one check. It is returned by For and
// embedded in the typed On* values.
type Assertion struct {
	level level
	to    Output
	r     *report
}

// Critical makes a failure of the assertion stop the test.
func (a *Assertion) Critical() *Assertion {
	a.level = Fatal
	return a
}

// Log reports args at Log level.
func (a *Assertion) Log(args ...interface{}) { a.emit(Log, args) }

// Error reports args at Error level.
func (a *Assertion) Error(args ...interface{}) { a.emit(Error, args) }

// Fatal reports args at Fatal level.
func (a *Assertion) Fatal(args ...interface{}) { a.emit(Fatal, args) }

func (a *Assertion) emit(l level, args []interface{}) {
	a.r.rows = append(a.r.rows, []string{fmt.Sprint(args...)})
	a.level = l
	a.Commit()
}

// quote renders a value for a report cell. Strings and errors are wrapped
// in backticks so that blank values remain visible.
func quote(v interface{}) string {
	switch v := v.(type) {
	case string:
		return "`" + v + "`"
	case error:
		return "`" + v.Error() + "`"
	}
	return fmt.Sprint(v)
}

// PrintPretty adds value as a cell of the current row.
func (a Assertion) PrintPretty(value interface{}) {
	row := a.r.last()
	*row = append(*row, quote(value))
}

// Print adds each of args as a cell of the current row.
func (a *Assertion) Print(args ...interface{}) *Assertion {
	for _, v := range args {
		a.PrintPretty(v)
	}
	return a
}

// Println adds args to the current row and starts a new one.
func (a *Assertion) Println(args ...interface{}) *Assertion {
	a.Print(args...)
	a.r.rows = append(a.r.rows, nil)
	return a
}

// Printf adds a formatted, unquoted cell to the current row.
func (a *Assertion) Printf(format string, args ...interface{}) *Assertion {
	row := a.r.last()
	*row = append(*row, fmt.Sprintf(format, args...))
	return a
}

// Add appends a row labelled key holding values.
func (a *Assertion) Add(key string, values ...interface{}) *Assertion {
	row := []string{key, ""}
	for _, v := range values {
		row = append(row, quote(v))
	}
	a.r.rows = append(a.r.rows, row)
	return a
}

// Got appends the row of observed values.
func (a *Assertion) Got(values ...interface{}) *Assertion { return a.Add("Got", values...) }

// Expect appends the row of expected values, compared with op.
func (a *Assertion) Expect(op string, values ...interface{}) *Assertion {
	a.Add("Expect", values...)
	(*a.r.last())[1] = op
	return a
}

// Compare appends the Got and Expect rows of a comparison.
func (a *Assertion) Compare(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).Expect(op, expect...)
}

// Test commits the report if condition is false, and returns condition.
func (a *Assertion) Test(condition bool) bool {
	if condition {
		return true
	}
	if a.level < Error {
		a.level = Error
	}
	a.Commit()
	return false
}

// TestDeepEqual tests value and expect with reflect.DeepEqual.
func (a *Assertion) TestDeepEqual(value, expect interface{}) bool {
	return a.Compare(value, "deep ==", expect).Test(reflect.DeepEqual(value, expect))
}

// TestDeepNotEqual is the negation of TestDeepEqual.
func (a *Assertion) TestDeepNotEqual(value, expect interface{}) bool {
	return a.Compare(value, "deep !=", expect).Test(!reflect.DeepEqual(value, expect))
}

// TestDeepDiff is TestDeepEqual, but reports the differences between value
// and expect rather than both values.
func (a *Assertion) TestDeepDiff(value, expect interface{}) bool {
	if reflect.DeepEqual(value, expect) {
		return true
	}
	diff := pretty.Diff(value, expect)
	if len(diff) > maxDiff {
		diff = append(diff[:maxDiff], "...")
	}
	for _, d := range diff {
		a.r.rows = append(a.r.rows, []string{d})
	}
	return a.Test(false)
}

// Commit sends the report to the output at the assertion's level.
func (a Assertion) Commit() {
	msg := a.level.String() + ": " + a.r.String()
	switch a.level {
	case Fatal:
		a.to.Fatal(msg)
	case Error:
		a.to.Error(msg)
	default:
		a.to.Log(msg)
	}
}
