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
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// OnValue tests a value of any type.
type OnValue struct {
	Assertion
	value interface{}
}

// That starts a test of value.
func (a Assertion) That(value interface{}) OnValue { return OnValue{a, value} }

// isNil returns true for nil and for typed nils.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return r.IsNil()
	}
	return false
}

// IsNil tests that the value is nil or a typed nil.
func (o OnValue) IsNil() bool { return o.Compare(o.value, "==", "nil").Test(isNil(o.value)) }

// IsNotNil tests that the value is neither nil nor a typed nil.
func (o OnValue) IsNotNil() bool { return o.Compare(o.value, "!=", "nil").Test(!isNil(o.value)) }

// Equals tests that the value == expect.
func (o OnValue) Equals(expect interface{}) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// NotEquals tests that the value != test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.Compare(o.value, "!=", test).Test(o.value != test)
}

// DeepEquals tests the value against expect with reflect.DeepEqual,
// reporting the differences on failure.
func (o OnValue) DeepEquals(expect interface{}) bool { return o.TestDeepDiff(o.value, expect) }

// DeepNotEquals tests that the value is not deeply equal to test.
func (o OnValue) DeepNotEquals(test interface{}) bool { return o.TestDeepNotEqual(o.value, test) }

// OnBoolean tests a bool.
type OnBoolean struct {
	Assertion
	value bool
}

// ThatBoolean starts a test of a bool.
func (a Assertion) ThatBoolean(value bool) OnBoolean { return OnBoolean{a, value} }

// Equals tests that the bool is expect.
func (o OnBoolean) Equals(expect bool) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

func (o OnBoolean) IsTrue() bool  { return o.Equals(true) }
func (o OnBoolean) IsFalse() bool { return o.Equals(false) }

// OnInteger tests an int.
type OnInteger struct {
	Assertion
	value int
}

// ThatInteger starts a test of an int.
func (a Assertion) ThatInteger(value int) OnInteger { return OnInteger{a, value} }

func (o OnInteger) Equals(expect int) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

func (o OnInteger) IsAtLeast(min int) bool {
	return o.Compare(o.value, ">=", min).Test(o.value >= min)
}

func (o OnInteger) IsAtMost(max int) bool {
	return o.Compare(o.value, "<=", max).Test(o.value <= max)
}

// OnString tests a string.
type OnString struct {
	Assertion
	value string
}

// ThatString starts a test of the string form of value. Strings and byte
// slices are used as is, anything else is formatted with fmt.Sprint.
func (a Assertion) ThatString(value interface{}) OnString {
	switch v := value.(type) {
	case string:
		return OnString{a, v}
	case []byte:
		return OnString{a, string(v)}
	}
	return OnString{a, fmt.Sprint(value)}
}

func (o OnString) Equals(expect string) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

func (o OnString) Contains(substr string) bool {
	return o.Compare(o.value, "contains", substr).Test(strings.Contains(o.value, substr))
}

func (o OnString) DoesNotContain(substr string) bool {
	return o.Compare(o.value, "does not contain", substr).Test(!strings.Contains(o.value, substr))
}

func (o OnString) HasPrefix(prefix string) bool {
	return o.Compare(o.value, "starts with", prefix).Test(strings.HasPrefix(o.value, prefix))
}

// OnError tests an error.
type OnError struct {
	Assertion
	err error
}

// ThatError starts a test of err.
func (a Assertion) ThatError(err error) OnError { return OnError{a, err} }

// Succeeded tests that err is nil.
func (o OnError) Succeeded() bool { return o.Compare(o.err, "", "success").Test(o.err == nil) }

// Failed tests that err is not nil.
func (o OnError) Failed() bool { return o.Expect("", "failure").Test(o.err != nil) }

// Equals tests that err == expect.
func (o OnError) Equals(expect error) bool {
	return o.Compare(o.err, "==", expect).Test(o.err == expect)
}

// HasCause tests that the root cause of err, as found by errors.Cause, is
// expect.
func (o OnError) HasCause(expect error) bool {
	cause := errors.Cause(o.err)
	return o.Got(o.err).Add("Cause", cause).Expect("==", expect).Test(cause == expect)
}
