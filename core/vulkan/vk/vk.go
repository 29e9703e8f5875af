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

// Package vk holds the subset of the Vulkan data model that the usage
// tracker observes and the replay path rewrites.
//
// Structures mirror their Vulkan counterparts with the Vk prefix dropped.
// Extensible structures embed Header, whose PNext field replaces the raw
// pNext pointer with a typed Struct link.
package vk

// Bool32 is the Vulkan VkBool32 type.
type Bool32 uint32

const (
	False = Bool32(0)
	True  = Bool32(1)
)

// Bool converts b to a Bool32.
func Bool(b bool) Bool32 {
	if b {
		return True
	}
	return False
}

// Bool returns true if b is not False.
func (b Bool32) Bool() bool { return b != False }

// Handles.
type (
	Instance       uint64
	PhysicalDevice uint64
	Device         uint64
	Buffer         uint64
	Image          uint64
	ShaderModule   uint64
	PipelineLayout uint64
	RenderPass     uint64
	Framebuffer    uint64
	SurfaceKHR     uint64
	QueryPool      uint64
	CommandBuffer  uint64
	DeviceSize     uint64
)
