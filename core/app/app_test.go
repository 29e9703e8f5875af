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

package app

import (
	"context"
	"testing"

	"github.com/tracetooltests/vkusage/core/assert"
	"github.com/tracetooltests/vkusage/core/log"
)

func TestVersionFormat(t *testing.T) {
	assert.For(t, "full").ThatString(VersionSpec{Major: 1, Minor: 2, Point: 3, Build: "abc"}).Equals("1.2.3:abc")
	assert.For(t, "major").ThatString(VersionSpec{Major: 1, Minor: -1, Point: -1}).Equals("1")
}

func TestCleanupChain(t *testing.T) {
	order := []int{}
	var c Cleanup
	c = c.Then(func(context.Context) { order = append(order, 1) })
	c = c.Then(nil)
	c = c.Then(func(context.Context) { order = append(order, 2) })
	assert.For(t, "returned").ThatBoolean(c.Invoke(context.Background()) == nil).IsTrue()
	assert.For(t, "order").ThatSlice(order).Equals([]int{1, 2})
}

func TestRunExitCodes(t *testing.T) {
	var got []int
	ExitFuncForTesting = func(code int) { got = append(got, code) }
	defer func() { LogHandler.SetTarget(nil) }()
	quiet := log.Raw.Handler(func(string, log.Severity) {})

	Run(func(ctx context.Context) error { return nil })
	Run(func(ctx context.Context) error { return UsageError{"missing shader"} })
	Run(func(ctx context.Context) error {
		LogHandler.SetTarget(wrapHandler(quiet))
		log.F(ctx, true, "stop")
		return nil
	})
	assert.For(t, "codes").ThatSlice(got).Equals([]int{int(UsageExit), int(FatalExit)})
}

func TestLevelFilter(t *testing.T) {
	f := &levelFilter{}
	f.set(log.Warning)
	assert.For(t, "info").ThatBoolean(f.ShowSeverity(log.Info)).IsFalse()
	assert.For(t, "error").ThatBoolean(f.ShowSeverity(log.Error)).IsTrue()
}
