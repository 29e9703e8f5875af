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

// key identifies the logging state stored in a context.
type key int

const (
	handlerKey key = iota
	filterKey
	tagKey
	traceKey
	valuesKey
)

// PutHandler returns ctx with messages logged through it sent to h.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler of ctx, or nil.
func GetHandler(ctx context.Context) Handler {
	h, _ := ctx.Value(handlerKey).(Handler)
	return h
}

// Filter decides which severities are logged.
type Filter interface {
	ShowSeverity(s Severity) bool
}

// PutFilter returns ctx with messages logged through it filtered by f.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

// GetFilter returns the Filter of ctx, or nil.
func GetFilter(ctx context.Context) Filter {
	f, _ := ctx.Value(filterKey).(Filter)
	return f
}

// PutTag returns ctx with messages logged through it tagged with tag,
// usually the name of the process.
func PutTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, tagKey, tag)
}

// GetTag returns the tag of ctx.
func GetTag(ctx context.Context) string {
	t, _ := ctx.Value(tagKey).(string)
	return t
}

// frame is one Enter on the trace stack.
type frame struct {
	name   string
	parent *frame
}

// Enter returns ctx with name pushed on its trace stack.
func Enter(ctx context.Context, name string) context.Context {
	top, _ := ctx.Value(traceKey).(*frame)
	return context.WithValue(ctx, traceKey, &frame{name, top})
}

// GetTrace returns the names passed to Enter for ctx, outermost first.
func GetTrace(ctx context.Context) []string {
	n := 0
	top, _ := ctx.Value(traceKey).(*frame)
	for f := top; f != nil; f = f.parent {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for f := top; f != nil; f = f.parent {
		n--
		out[n] = f.name
	}
	return out
}
