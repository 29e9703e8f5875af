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

import "context"

// T is the subset of testing.TB that test logging writes to.
type T interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// testStyle omits the timestamp and tag, which the test runner already
// provides.
var testStyle = Style{Name: "test", Trace: true, Severity: SeverityShort, Values: ValuesSingleLine}

// Testing returns a background context that logs to t. Error messages fail
// the test and fatal ones stop it.
func Testing(t T) context.Context { return SubTest(context.Background(), t) }

// SubTest returns ctx logging to t instead, for use in t.Run.
func SubTest(ctx context.Context, t T) context.Context {
	return PutHandler(ctx, TestHandler(t, testStyle))
}

// TestHandler returns a Handler printing messages to t with style s.
func TestHandler(t T, s Style) Handler {
	if t == nil {
		panic("log.TestHandler needs a T")
	}
	return NewHandler(func(m *Message) {
		text := s.Print(m)
		switch {
		case m.Severity >= Fatal:
			t.Fatal(text)
		case m.Severity >= Error:
			t.Error(text)
		default:
			t.Log(text)
		}
	}, nil)
}
