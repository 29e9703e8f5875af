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

package assert_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/tracetooltests/vkusage/core/assert"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) { fmt.Fprintln(&f.fatal, args...) }
func (f *fakeT) Error(args ...interface{}) { fmt.Fprintln(&f.error, args...) }
func (f *fakeT) Log(args ...interface{})   { fmt.Fprintln(&f.log, args...) }

func TestManager(t *testing.T) {
	const (
		expectLog   = "Info: manager test\n    log to info\n"
		expectError = "Error: manager test\n    log to error\n"
		expectFatal = "Critical: manager test\n    log to fatal\n"
	)
	fake := &fakeT{}
	assert.To(fake).For("manager test").Log("log to info")
	assert.To(fake).For("manager test").Error("log to error")
	assert.To(fake).For("manager test").Fatal("log to fatal")
	if fake.log.String() != expectLog {
		t.Errorf("For info got %q expected %q", fake.log.String(), expectLog)
	}
	if fake.error.String() != expectError {
		t.Errorf("For error got %q expected %q", fake.error.String(), expectError)
	}
	if fake.fatal.String() != expectFatal {
		t.Errorf("For fatal got %q expected %q", fake.fatal.String(), expectFatal)
	}
}

func TestPassingAssertionsAreSilent(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	cause := errors.New("cause")
	checks := []bool{
		a.For("value").That(3).Equals(3),
		a.For("nil").That((*int)(nil)).IsNil(),
		a.For("deep").That([]string{"a"}).DeepEquals([]string{"a"}),
		a.For("bool").ThatBoolean(true).IsTrue(),
		a.For("int").ThatInteger(4).IsAtLeast(2),
		a.For("string").ThatString("featureName").HasPrefix("feature"),
		a.For("slice").ThatSlice([]int{1, 2}).Equals([]int{1, 2}),
		a.For("contains").ThatSlice([]string{"x", "y"}).Contains("y"),
		a.For("error").ThatError(nil).Succeeded(),
		a.For("cause").ThatError(errors.Wrap(cause, "wrapped")).HasCause(cause),
	}
	for i, ok := range checks {
		if !ok {
			t.Errorf("check %d failed", i)
		}
	}
	if fake.error.Len() != 0 || fake.fatal.Len() != 0 {
		t.Errorf("unexpected output: %q %q", fake.error.String(), fake.fatal.String())
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	checks := []bool{
		a.For("value").That(3).Equals(4),
		a.For("deep").That([]string{"a"}).DeepEquals([]string{"b"}),
		a.For("slice").ThatSlice([]int{1}).Equals([]int{1, 2}),
		a.For("error").ThatError(errors.New("boom")).Succeeded(),
	}
	for i, ok := range checks {
		if ok {
			t.Errorf("check %d unexpectedly passed", i)
		}
	}
	if got := bytes.Count(fake.error.Bytes(), []byte("Error:")); got != len(checks) {
		t.Errorf("got %d error reports, expected %d", got, len(checks))
	}
}

func TestReportLayout(t *testing.T) {
	fake := &fakeT{}
	assert.To(fake).For("value %d", 1).That(3).Equals(4)
	const expect = "Error: value 1\n    Got       3\n    Expect == 4\n"
	if got := fake.error.String(); got != expect {
		t.Errorf("got %q expected %q", got, expect)
	}
}
