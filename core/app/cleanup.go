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

import "context"

// Cleanup releases something acquired during start up. A nil Cleanup does
// nothing.
type Cleanup func(ctx context.Context)

// Then returns a Cleanup running c and then each of next.
func (c Cleanup) Then(next ...Cleanup) Cleanup {
	all := append([]Cleanup{c}, next...)
	return func(ctx context.Context) {
		for _, f := range all {
			f.Invoke(ctx)
		}
	}
}

// Invoke runs c if it is not nil. It always returns nil, so that
// c = c.Invoke(ctx) both runs and clears a Cleanup.
func (c Cleanup) Invoke(ctx context.Context) Cleanup {
	if c != nil {
		c(ctx)
	}
	return nil
}
