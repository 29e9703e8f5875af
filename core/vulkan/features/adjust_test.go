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

package features_test

import (
	"testing"

	"github.com/tracetooltests/vkusage/core/assert"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

func TestAdjustClearsUnobserved(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.Mark(features.GeometryShader)
	req := &vk.PhysicalDeviceFeatures{
		GeometryShader:     vk.True,
		TessellationShader: vk.True,
		WideLines:          vk.True,
		RobustBufferAccess: vk.True,
	}
	removed := l.AdjustCore10(req)
	assert.For(ctx, "removed").ThatSlice(removed).Equals([]string{"tessellationShader", "wideLines"})
	assert.For(ctx, "geometryShader").That(req.GeometryShader).Equals(vk.True)
	assert.For(ctx, "tessellationShader").That(req.TessellationShader).Equals(vk.False)
	assert.For(ctx, "wideLines").That(req.WideLines).Equals(vk.False)
	// robustBufferAccess has no classifier and must survive.
	assert.For(ctx, "robustBufferAccess").That(req.RobustBufferAccess).Equals(vk.True)
}

func TestAdjustLeavesUnhandledFeatures(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	for _, gen := range features.Generations {
		for _, f := range features.All(gen) {
			if f.Handled() {
				continue
			}
			var removed []string
			switch gen {
			case features.Core10:
				req := &vk.PhysicalDeviceFeatures{}
				features.SetRequested(req, f, true)
				removed = l.AdjustCore10(req)
				assert.For(ctx, "%v kept", f).ThatBoolean(features.Requested(req, f)).IsTrue()
			case features.Core11:
				req := &vk.PhysicalDeviceVulkan11Features{}
				features.SetRequested(req, f, true)
				removed = l.AdjustCore11(req)
				assert.For(ctx, "%v kept", f).ThatBoolean(features.Requested(req, f)).IsTrue()
			case features.Core12:
				req := &vk.PhysicalDeviceVulkan12Features{}
				features.SetRequested(req, f, true)
				removed = l.AdjustCore12(req)
				assert.For(ctx, "%v kept", f).ThatBoolean(features.Requested(req, f)).IsTrue()
			case features.Core13:
				req := &vk.PhysicalDeviceVulkan13Features{}
				features.SetRequested(req, f, true)
				removed = l.AdjustCore13(req)
				assert.For(ctx, "%v kept", f).ThatBoolean(features.Requested(req, f)).IsTrue()
			case features.Core14:
				req := &vk.PhysicalDeviceVulkan14Features{}
				features.SetRequested(req, f, true)
				removed = l.AdjustCore14(req)
				assert.For(ctx, "%v kept", f).ThatBoolean(features.Requested(req, f)).IsTrue()
			}
			assert.For(ctx, "%v removed", f).ThatSlice(removed).IsEmpty()
		}
	}
}

func TestAdjustNeverSetsFeatures(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	for _, gen := range features.Generations {
		for _, f := range features.All(gen) {
			l.Mark(f)
		}
	}
	req := &vk.PhysicalDeviceVulkan12Features{}
	assert.For(ctx, "removed").ThatSlice(l.AdjustCore12(req)).IsEmpty()
	assert.For(ctx, "request").That(*req).DeepEquals(vk.PhysicalDeviceVulkan12Features{})
}

func TestAdjustNilRequests(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	assert.For(ctx, "core10").ThatSlice(l.AdjustCore10(nil)).IsEmpty()
	assert.For(ctx, "core11").ThatSlice(l.AdjustCore11(nil)).IsEmpty()
	assert.For(ctx, "core12").ThatSlice(l.AdjustCore12(nil)).IsEmpty()
	assert.For(ctx, "core13").ThatSlice(l.AdjustCore13(nil)).IsEmpty()
	assert.For(ctx, "core14").ThatSlice(l.AdjustCore14(nil)).IsEmpty()
}

func TestAdjustIsIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.Mark(features.ShaderFloat16)
	req := &vk.PhysicalDeviceVulkan12Features{
		ShaderFloat16:     vk.True,
		ShaderInt8:        vk.True,
		TimelineSemaphore: vk.True,
	}
	first := l.AdjustCore12(req)
	after := *req
	assert.For(ctx, "first").ThatSlice(first).Equals([]string{"timelineSemaphore", "shaderInt8"})
	assert.For(ctx, "second").ThatSlice(l.AdjustCore12(req)).IsEmpty()
	assert.For(ctx, "request").That(*req).DeepEquals(after)
}

func TestBufferDeviceAddressMultiDevice(t *testing.T) {
	ctx := log.Testing(t)
	request := func() *vk.PhysicalDeviceVulkan12Features {
		return &vk.PhysicalDeviceVulkan12Features{
			BufferDeviceAddress:            vk.True,
			BufferDeviceAddressMultiDevice: vk.True,
		}
	}

	l := features.New()
	req := request()
	l.AdjustCore12(req)
	assert.For(ctx, "unused address").That(req.BufferDeviceAddress).Equals(vk.False)
	assert.For(ctx, "unused multi").That(req.BufferDeviceAddressMultiDevice).Equals(vk.False)

	l.GetBufferDeviceAddress(&vk.BufferDeviceAddressInfo{})
	req = request()
	removed := l.AdjustCore12(req)
	assert.For(ctx, "removed").ThatSlice(removed).IsEmpty()
	assert.For(ctx, "used address").That(req.BufferDeviceAddress).Equals(vk.True)
	assert.For(ctx, "used multi").That(req.BufferDeviceAddressMultiDevice).Equals(vk.True)
}

func TestAdjustExtensions(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.MarkExtension(features.ExtShaderAtomicInt64)

	device := features.NewExtensionSet(
		"VK_KHR_swapchain",
		"VK_KHR_shader_atomic_int64",
		"VK_EXT_shader_image_atomic_int64",
	)
	removed := l.AdjustDeviceExtensions(device)
	assert.For(ctx, "device removed").ThatSlice(removed).Equals([]string{"VK_EXT_shader_image_atomic_int64"})
	assert.For(ctx, "device kept").ThatSlice(device.Names()).Equals([]string{"VK_KHR_shader_atomic_int64", "VK_KHR_swapchain"})

	instance := features.NewExtensionSet("VK_KHR_surface", "VK_EXT_swapchain_colorspace")
	removed = l.AdjustInstanceExtensions(instance)
	assert.For(ctx, "instance removed").ThatSlice(removed).Equals([]string{"VK_EXT_swapchain_colorspace"})
	assert.For(ctx, "instance kept").ThatSlice(instance.Names()).Equals([]string{"VK_KHR_surface"})
}

func TestSwapchainColorspaceKept(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateSwapchain(&vk.SwapchainCreateInfoKHR{ImageColorSpace: vk.ColorSpaceExtendedSrgbNonlinearEXT})
	instance := features.NewExtensionSet("VK_EXT_swapchain_colorspace")
	assert.For(ctx, "removed").ThatSlice(l.AdjustInstanceExtensions(instance)).IsEmpty()
	assert.For(ctx, "kept").ThatBoolean(instance.Has("VK_EXT_swapchain_colorspace")).IsTrue()
}

func TestAdjustDeviceCreateInfo(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	info := &vk.DeviceCreateInfo{}
	vk.Append(info,
		&vk.PhysicalDeviceVulkan11Features{},
		&vk.PhysicalDeviceShaderAtomicInt64Features{ShaderBufferInt64Atomics: vk.True},
		&vk.PhysicalDeviceShaderImageAtomicInt64FeaturesEXT{ShaderImageInt64Atomics: vk.True},
	)
	removed := l.AdjustDeviceCreateInfo(info, features.NewExtensionSet("VK_KHR_shader_atomic_int64"))
	assert.For(ctx, "removed").ThatSlice(removed).Equals([]string{"VK_EXT_shader_image_atomic_int64"})
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(3)
	_, ok := vk.Get[*vk.PhysicalDeviceShaderAtomicInt64Features](info)
	assert.For(ctx, "int64 kept").ThatBoolean(ok).IsTrue()

	removed = l.AdjustDeviceCreateInfo(info, features.NewExtensionSet())
	assert.For(ctx, "removed").ThatSlice(removed).Equals([]string{"VK_KHR_shader_atomic_int64"})
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(2)
	assert.For(ctx, "instance").ThatSlice(l.AdjustInstanceCreateInfo(&vk.InstanceCreateInfo{}, nil)).IsEmpty()
}

func TestFieldNames(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "dualSrcBlend").ThatString(features.FieldName(features.DualSrcBlend)).Equals("DualSrcBlend")
	assert.For(ctx, "etc2").ThatString(features.FieldName(features.TextureCompressionETC2)).Equals("TextureCompressionETC2")
}
