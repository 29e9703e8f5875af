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
	"context"
	"fmt"
)

// V is a map of key-value pairs that can be bound to a context so that every
// message logged with the context carries them.
type V map[string]interface{}

type values struct {
	v      V
	parent *values
}

// Bind returns a new context with V attached.
func (v V) Bind(ctx context.Context) context.Context {
	return context.WithValue(ctx, valuesKey, &values{v, getValues(ctx)})
}

func getValues(ctx context.Context) *values {
	out, _ := ctx.Value(valuesKey).(*values)
	return out
}

// Value is a name-value pair carried by a Message.
type Value struct {
	Name  string
	Value interface{}
}

func (v *Value) String() string { return fmt.Sprintf("%v: %v", v.Name, v.Value) }

// Values is a sortable list of Value pointers.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
