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

// Package assert is a small fluent assertion library for tests.
//
// An assertion starts with For, which names what is being checked, followed
// by a That function selecting the kind of value and a test:
//
//	assert.For(ctx, "observed").ThatSlice(got).Equals(want)
//
// Passing tests print nothing. A failing test reports the name, what it got
// and what it expected to the output the assertion was made for.
package assert

import (
	"context"
	"fmt"
	"os"

	"github.com/tracetooltests/vkusage/core/log"
)

// Output is the subset of testing.TB that assertions report to.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Manager builds assertions that report to one Output.
type Manager struct {
	out Output
}

// To returns a Manager reporting to t, which may be an Output, a
// context.Context carrying a log handler, or nil for stdout.
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		return Manager{stdout{}}
	case context.Context:
		return Manager{logger{t}}
	case Output:
		return Manager{t}
	}
	panic(fmt.Errorf("Cannot assert to %T", t))
}

// For is To(t).For(name, args...).
func For(t interface{}, name string, args ...interface{}) *Assertion {
	return To(t).For(name, args...)
}

// For starts an assertion named by the formatted name.
func (m Manager) For(name string, args ...interface{}) *Assertion {
	return &Assertion{
		level: Error,
		to:    m.out,
		r:     &report{title: fmt.Sprintf(name, args...)},
	}
}

// logger reports through the log handler of a context, as built by
// log.Testing.
type logger struct{ ctx context.Context }

func (o logger) Fatal(args ...interface{}) { log.F(o.ctx, true, "%v", fmt.Sprint(args...)) }
func (o logger) Error(args ...interface{}) { log.E(o.ctx, "%v", fmt.Sprint(args...)) }
func (o logger) Log(args ...interface{})   { log.I(o.ctx, "%v", fmt.Sprint(args...)) }

type stdout struct{}

func (stdout) Error(args ...interface{}) { fmt.Fprintln(os.Stdout, args...) }
func (stdout) Log(args ...interface{})   { fmt.Fprintln(os.Stdout, args...) }

func (stdout) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("fatal assertion outside of a test")
}
