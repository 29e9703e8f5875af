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

package log_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/tracetooltests/vkusage/core/assert"
	"github.com/tracetooltests/vkusage/core/log"
)

func TestBriefStyle(t *testing.T) {
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Brief.Handler(w))
	log.I(ctx, "device %d", 1)
	log.W(ctx, "pruned")
	assert.For(t, "output").ThatString(buf.String()).Equals("I: device 1\nW: pruned")
}

func TestSeverityFilter(t *testing.T) {
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Raw.Handler(w))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "debug")
	log.I(ctx, "info")
	log.E(ctx, "error")
	assert.For(t, "output").ThatString(buf.String()).Equals("error")
}

func TestNoHandlerIsSilent(t *testing.T) {
	log.I(context.Background(), "dropped")
}

func TestValuesShadowing(t *testing.T) {
	ctx := log.V{"device": 1, "queue": 0}.Bind(context.Background())
	ctx = log.V{"device": 2}.Bind(ctx)
	m := log.From(ctx).Message(log.Info, false, "msg")
	assert.For(t, "values").That(len(m.Values)).Equals(2)
	assert.For(t, "device").That(m.Values[0].Value).Equals(2)
	assert.For(t, "queue").ThatString(m.Values[1].Name).Equals("queue")
}

func TestTraceAndTag(t *testing.T) {
	ctx := log.Enter(log.Enter(context.Background(), "outer"), "inner")
	ctx = log.PutTag(ctx, "tracker")
	m := log.From(ctx).Message(log.Info, false, "msg")
	assert.For(t, "trace").ThatSlice(m.Trace).Equals([]string{"outer", "inner"})
	s := log.Style{Name: "t", Tag: true, Trace: true, Severity: log.SeverityLong}
	assert.For(t, "print").ThatString(s.Print(m)).Equals("Info: [outer->inner] [tracker] msg")
}

func TestErrWrapsCause(t *testing.T) {
	cause := errors.New("truncated")
	err := log.Errf(context.Background(), cause, "scan shader %d", 3)
	assert.For(t, "cause").ThatError(err).HasCause(cause)
	assert.For(t, "message").ThatString(err.Error()).HasPrefix("scan shader 3")
}

func TestSeverityFlag(t *testing.T) {
	var s log.Severity
	assert.For(t, "set").ThatError(s.Set("warning")).Succeeded()
	assert.For(t, "value").That(s).Equals(log.Warning)
	assert.For(t, "bad").ThatError(s.Set("loud")).Failed()

	var st log.Style
	assert.For(t, "style").ThatError(st.Set("Detailed")).Succeeded()
	assert.For(t, "name").ThatString(st.Name).Equals("detailed")
}
