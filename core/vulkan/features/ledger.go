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

package features

import "sync/atomic"

// Ledger holds the features and extensions observed on one traced device.
//
// Every flag is an independent atomic so concurrent capture threads never
// contend on unrelated observations. Flags only ever go from false to true.
type Ledger struct {
	features   [featureCount]atomic.Bool
	extensions [extensionCount]atomic.Bool
}

// New returns an empty ledger.
func New() *Ledger { return &Ledger{} }

// Mark records that f was used.
func (l *Ledger) Mark(f Feature) {
	if !l.features[f].Load() {
		l.features[f].Store(true)
	}
}

// Has returns true if f has been marked.
func (l *Ledger) Has(f Feature) bool { return l.features[f].Load() }

// MarkExtension records that e was used.
func (l *Ledger) MarkExtension(e Extension) {
	if !l.extensions[e].Load() {
		l.extensions[e].Store(true)
	}
}

// HasExtension returns true if e has been marked.
func (l *Ledger) HasExtension(e Extension) bool { return l.extensions[e].Load() }

// Observed returns the marked features in declaration order.
func (l *Ledger) Observed() []Feature {
	var out []Feature
	for f := Feature(0); f < featureCount; f++ {
		if l.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// ObservedExtensions returns the marked extensions.
func (l *Ledger) ObservedExtensions() []Extension {
	var out []Extension
	for _, e := range Extensions {
		if l.HasExtension(e) {
			out = append(out, e)
		}
	}
	return out
}

// Merge marks everything that o has marked.
func (l *Ledger) Merge(o *Ledger) {
	for f := Feature(0); f < featureCount; f++ {
		if o.Has(f) {
			l.Mark(f)
		}
	}
	for _, e := range Extensions {
		if o.HasExtension(e) {
			l.MarkExtension(e)
		}
	}
}
