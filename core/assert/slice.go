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
)

// OnSlice tests a slice or array. Using it with any other kind of value
// panics.
type OnSlice struct {
	Assertion
	slice reflect.Value
}

// ThatSlice starts a test of a slice or array.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{a, reflect.ValueOf(slice)}
}

func (o OnSlice) length(op string, expect int, ok func(n int) bool) bool {
	n := o.slice.Len()
	return o.Compare(n, "length "+op, expect).Test(ok(n))
}

func (o OnSlice) IsEmpty() bool    { return o.length("==", 0, func(n int) bool { return n == 0 }) }
func (o OnSlice) IsNotEmpty() bool { return o.length(">", 0, func(n int) bool { return n > 0 }) }

func (o OnSlice) IsLength(length int) bool {
	return o.length("==", length, func(n int) bool { return n == length })
}

// Equals tests the elements pairwise with ==.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.match(reflect.ValueOf(expected), func(a, b interface{}) bool { return a == b })
}

// DeepEquals tests the elements pairwise with reflect.DeepEqual.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return o.match(reflect.ValueOf(expected), reflect.DeepEqual)
}

// Contains tests that some element == value.
func (o OnSlice) Contains(value interface{}) bool {
	for i := 0; i < o.slice.Len(); i++ {
		if o.slice.Index(i).Interface() == value {
			return true
		}
	}
	return o.Compare(o.slice.Interface(), "contains", value).Test(false)
}

// match reports every index on failure, marking missing elements with -,
// extra elements with + and mismatched ones with *.
func (o OnSlice) match(expected reflect.Value, same func(a, b interface{}) bool) bool {
	got, want := o.slice.Len(), expected.Len()
	ok := got == want
	for i := 0; i < got || i < want; i++ {
		idx := fmt.Sprint(i)
		switch {
		case i >= got:
			o.Add("-"+idx, expected.Index(i).Interface())
		case i >= want:
			o.Add("+"+idx, o.slice.Index(i).Interface())
		default:
			g, w := o.slice.Index(i).Interface(), expected.Index(i).Interface()
			if same(g, w) {
				o.Add(" "+idx, g)
			} else {
				o.r.rows = append(o.r.rows, []string{"*" + idx, "", quote(g), "==>", quote(w)})
				ok = false
			}
		}
	}
	return o.Test(ok)
}
