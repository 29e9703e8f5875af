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
	"bytes"
	"io"
	"os"
	"sync"
)

// Writer outputs one formatted message.
type Writer func(text string, s Severity)

// To returns a Writer printing each message on its own line of w. It is
// safe for concurrent use.
func To(w io.Writer) Writer {
	mu := &sync.Mutex{}
	return func(text string, _ Severity) {
		mu.Lock()
		io.WriteString(w, text+"\n")
		mu.Unlock()
	}
}

// Std returns a Writer printing errors and fatal messages to stderr, and
// everything else to stdout.
func Std() Writer {
	out, err := To(os.Stdout), To(os.Stderr)
	return func(text string, s Severity) {
		if s >= Error {
			err(text, s)
		} else {
			out(text, s)
		}
	}
}

// Buffer returns a Writer collecting messages into the returned buffer,
// separated by newlines.
func Buffer() (Writer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return func(text string, _ Severity) {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}, buf
}
