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

// Package tracker owns the per-device capture sessions that feed observed
// Vulkan calls into a features.Ledger.
package tracker

import (
	"context"
	"sort"
	"sync"

	"github.com/tracetooltests/vkusage/core/fault"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

const (
	// ErrAlreadyTracked is returned by Begin for a device with a live session.
	ErrAlreadyTracked = fault.Const("Device is already tracked")
	// ErrNotTracked is returned by End for a device without a live session.
	ErrNotTracked = fault.Const("Device is not tracked")
)

// Tracker maps traced devices to their capture sessions.
type Tracker struct {
	mu       sync.Mutex
	sessions map[vk.Device]*Session
	// retired holds the observations of ended sessions.
	retired *features.Ledger
	metrics *Metrics
}

// New returns a tracker with no sessions.
func New() *Tracker {
	return &Tracker{
		sessions: map[vk.Device]*Session{},
		retired:  features.New(),
		metrics:  NewMetrics(),
	}
}

// Metrics returns the collectors updated by the tracker's sessions.
func (t *Tracker) Metrics() *Metrics { return t.metrics }

// Begin starts a session for device, which must not already have one.
func (t *Tracker) Begin(ctx context.Context, device vk.Device) (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.sessions[device]; ok {
		return nil, log.Errf(ctx, ErrAlreadyTracked, "Device %#x", uint64(device))
	}
	s := newSession(device, t.metrics)
	t.sessions[device] = s
	t.metrics.sessionStarted()
	log.I(log.V{"session": s.ID}.Bind(ctx), "Tracking device %#x", uint64(device))
	return s, nil
}

// Session returns the live session of device.
func (t *Tracker) Session(device vk.Device) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[device]
	return s, ok
}

// Sessions returns the live sessions ordered by device.
func (t *Tracker) Sessions() []*Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Session, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Device < out[j].Device })
	return out
}

// End ends the session of device and returns its frozen ledger.
// The session stays registered until its ledger is merged into the retired
// observations, so InstanceExtensionsObserved always sees it in one place.
func (t *Tracker) End(ctx context.Context, device vk.Device) (*features.Ledger, error) {
	s, ok := t.Session(device)
	if !ok {
		return nil, log.Errf(ctx, ErrNotTracked, "Device %#x", uint64(device))
	}
	l := s.End()
	t.mu.Lock()
	if t.sessions[device] != s {
		t.mu.Unlock()
		return nil, log.Errf(ctx, ErrNotTracked, "Device %#x", uint64(device))
	}
	t.retired.Merge(l)
	delete(t.sessions, device)
	t.mu.Unlock()
	log.I(log.V{"session": s.ID}.Bind(ctx), "Device %#x used %d features", uint64(device), len(l.Observed()))
	return l, nil
}

// InstanceExtensionsObserved returns a ledger holding the extension uses of
// every device the tracker has seen, live or ended. Instance extensions are
// observed through device level calls, so the instance adjustment needs
// their union.
func (t *Tracker) InstanceExtensionsObserved() *features.Ledger {
	out := features.New()
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.retired.ObservedExtensions() {
		out.MarkExtension(e)
	}
	for _, s := range t.sessions {
		for _, e := range s.ledger.ObservedExtensions() {
			out.MarkExtension(e)
		}
	}
	return out
}
