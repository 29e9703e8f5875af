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

import (
	"fmt"
	"sort"
)

// Extension is a Vulkan extension whose use is detected, as opposed to
// merely being enabled.
type Extension uint8

const (
	ExtSwapchainColorspace Extension = iota
	ExtShaderAtomicInt64
	ExtSharedPresentableImage
	ExtShaderImageAtomicInt64

	extensionCount
)

var extensionNames = [extensionCount]string{
	ExtSwapchainColorspace:    "VK_EXT_swapchain_colorspace",
	ExtShaderAtomicInt64:      "VK_KHR_shader_atomic_int64",
	ExtSharedPresentableImage: "VK_KHR_shared_presentable_image",
	ExtShaderImageAtomicInt64: "VK_EXT_shader_image_atomic_int64",
}

// Extensions lists every tracked extension.
var Extensions = []Extension{
	ExtSwapchainColorspace,
	ExtShaderAtomicInt64,
	ExtSharedPresentableImage,
	ExtShaderImageAtomicInt64,
}

// Name returns the Vulkan extension name.
func (e Extension) Name() string {
	if e >= extensionCount {
		return fmt.Sprintf("Extension(%d)", uint8(e))
	}
	return extensionNames[e]
}

func (e Extension) String() string { return e.Name() }

// Instance returns true for instance extensions.
func (e Extension) Instance() bool { return e == ExtSwapchainColorspace }

// LookupExtension returns the tracked extension with the Vulkan name name.
func LookupExtension(name string) (Extension, bool) {
	for _, e := range Extensions {
		if e.Name() == name {
			return e, true
		}
	}
	return 0, false
}

// ExtensionSet is a set of extension names, as enabled on an instance or
// device.
type ExtensionSet map[string]struct{}

// NewExtensionSet returns a set holding names.
func NewExtensionSet(names ...string) ExtensionSet {
	s := make(ExtensionSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has returns true if name is in the set.
func (s ExtensionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the names in the set, sorted.
func (s ExtensionSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
