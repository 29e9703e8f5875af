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

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the collectors of a Tracker.
type Metrics struct {
	Active       prometheus.Gauge
	Sessions     prometheus.Counter
	Observations prometheus.Counter
	Rejected     prometheus.Counter
}

// NewMetrics returns unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vkusage",
			Subsystem: "tracker",
			Name:      "active_sessions",
			Help:      "Number of devices currently being tracked",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vkusage",
			Subsystem: "tracker",
			Name:      "sessions_total",
			Help:      "Total number of tracking sessions started",
		}),
		Observations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vkusage",
			Subsystem: "tracker",
			Name:      "observations_total",
			Help:      "Total number of classified calls",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vkusage",
			Subsystem: "tracker",
			Name:      "rejected_observations_total",
			Help:      "Total number of calls observed after their session ended",
		}),
	}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Active, m.Sessions, m.Observations, m.Rejected} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) sessionStarted() {
	m.Active.Inc()
	m.Sessions.Inc()
}

func (m *Metrics) sessionEnded() { m.Active.Dec() }
