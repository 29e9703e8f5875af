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

// Package fault defines the sentinel error type of the vkusage packages.
//
// Sentinels are declared as constants, and callers add context by wrapping
// them with github.com/pkg/errors. errors.Cause, or errors.Is, recovers the
// sentinel:
//
//	const ErrNotTracked = fault.Const("Device is not tracked")
//	...
//	return errors.Wrapf(ErrNotTracked, "Device %#x", device)
package fault

// Const is an error that is a compile time constant.
type Const string

func (e Const) Error() string { return string(e) }
