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

package tracker

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

// Session collects the observations of one traced device.
//
// Observations run concurrently under a shared gate. End takes the gate
// exclusively, so once it returns no observation is in flight and every
// later one is rejected. Only then may the ledger be used to adjust a
// request.
type Session struct {
	ID     uuid.UUID
	Device vk.Device

	gate    sync.RWMutex
	ended   bool
	ledger  *features.Ledger
	metrics *Metrics
}

func newSession(device vk.Device, m *Metrics) *Session {
	return &Session{
		ID:      uuid.New(),
		Device:  device,
		ledger:  features.New(),
		metrics: m,
	}
}

// Observe runs fn with the session's ledger. It returns false without
// calling fn if the session has ended.
func (s *Session) Observe(fn func(*features.Ledger)) bool {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.ended {
		s.metrics.Rejected.Inc()
		return false
	}
	fn(s.ledger)
	s.metrics.Observations.Inc()
	return true
}

// End waits for in-flight observations, rejects all later ones and returns
// the ledger. Calling End again returns the same ledger.
func (s *Session) End() *features.Ledger {
	s.gate.Lock()
	defer s.gate.Unlock()
	if !s.ended {
		s.ended = true
		s.metrics.sessionEnded()
	}
	return s.ledger
}

// Ended returns true once End has been called.
func (s *Session) Ended() bool {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.ended
}
