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

// loggedErr is an error carrying the log message describing it and the
// error that caused it.
type loggedErr struct {
	msg   *Message
	cause error
}

// Cause returns the wrapped error, as used by errors.Cause.
func (e *loggedErr) Cause() error { return e.cause }

// Unwrap returns the wrapped error, as used by errors.Is and errors.As.
func (e *loggedErr) Unwrap() error { return e.cause }

func (e *loggedErr) Error() string {
	if e.cause == nil {
		return e.msg.Text
	}
	return e.msg.Text + "\n   Cause: " + e.cause.Error()
}

// Err returns an error with the message msg, bound to the logger's state,
// that wraps cause.
func (l *Logger) Err(cause error, msg string) error {
	return &loggedErr{l.Message(Error, false, msg), cause}
}

// Errf is Err with a formatted message.
func (l *Logger) Errf(cause error, format string, args ...interface{}) error {
	return &loggedErr{l.Messagef(Error, false, format, args...), cause}
}

// Err is From(ctx).Err(cause, msg).
func Err(ctx context.Context, cause error, msg string) error { return From(ctx).Err(cause, msg) }

// Errf is From(ctx).Errf(cause, format, args...).
func Errf(ctx context.Context, cause error, format string, args ...interface{}) error {
	return From(ctx).Errf(cause, format, args...)
}
