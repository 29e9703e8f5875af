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

package vk_test

import (
	"testing"

	"github.com/tracetooltests/vkusage/core/assert"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

func deviceChain() (*vk.DeviceCreateInfo, *vk.PhysicalDeviceVulkan12Features, *vk.PhysicalDeviceShaderAtomicInt64Features, *vk.PhysicalDeviceVulkan13Features) {
	info := &vk.DeviceCreateInfo{}
	f12 := &vk.PhysicalDeviceVulkan12Features{BufferDeviceAddress: vk.True}
	atomics := &vk.PhysicalDeviceShaderAtomicInt64Features{ShaderBufferInt64Atomics: vk.True}
	f13 := &vk.PhysicalDeviceVulkan13Features{}
	vk.Append(info, f12, atomics, f13)
	return info, f12, atomics, f13
}

func TestFind(t *testing.T) {
	ctx := log.Testing(t)
	info, f12, _, f13 := deviceChain()

	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(4)
	assert.For(ctx, "head").That(vk.Find(info, vk.StructureTypeDeviceCreateInfo)).Equals(vk.Struct(info))
	assert.For(ctx, "middle").That(vk.Find(info, vk.StructureTypePhysicalDeviceVulkan12Features)).Equals(vk.Struct(f12))
	assert.For(ctx, "tail").That(vk.Find(info, vk.StructureTypePhysicalDeviceVulkan13Features)).Equals(vk.Struct(f13))
	assert.For(ctx, "absent").That(vk.Find(info, vk.StructureTypePhysicalDeviceVulkan14Features)).IsNil()
	assert.For(ctx, "nil head").That(vk.Find(nil, vk.StructureTypeDeviceCreateInfo)).IsNil()
}

func TestGet(t *testing.T) {
	ctx := log.Testing(t)
	info, f12, _, _ := deviceChain()

	got, ok := vk.Get[*vk.PhysicalDeviceVulkan12Features](info)
	assert.For(ctx, "found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "node").That(got).Equals(f12)
	assert.For(ctx, "field").That(got.BufferDeviceAddress).Equals(vk.True)

	_, ok = vk.Get[*vk.PhysicalDeviceShaderImageAtomicInt64FeaturesEXT](info)
	assert.For(ctx, "absent").ThatBoolean(ok).IsFalse()
}

func TestPruneRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	info, f12, atomics, f13 := deviceChain()

	removed := vk.Prune(info, vk.StructureTypePhysicalDeviceShaderAtomicInt64Features)
	assert.For(ctx, "removed").ThatBoolean(removed).IsTrue()
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(3)
	assert.For(ctx, "gone").That(vk.Find(info, vk.StructureTypePhysicalDeviceShaderAtomicInt64Features)).IsNil()
	assert.For(ctx, "relinked").That(f12.PNext).Equals(vk.Struct(f13))
	assert.For(ctx, "node untouched").That(atomics.PNext).Equals(vk.Struct(f13))

	again := vk.Prune(info, vk.StructureTypePhysicalDeviceShaderAtomicInt64Features)
	assert.For(ctx, "second prune").ThatBoolean(again).IsFalse()
	assert.For(ctx, "len after second").ThatInteger(vk.ChainLen(info)).Equals(3)
}

func TestPruneTail(t *testing.T) {
	ctx := log.Testing(t)
	info, _, atomics, _ := deviceChain()

	assert.For(ctx, "removed").ThatBoolean(vk.Prune(info, vk.StructureTypePhysicalDeviceVulkan13Features)).IsTrue()
	assert.For(ctx, "tail").That(atomics.PNext).IsNil()
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(3)
}

func TestPruneHeadIsKept(t *testing.T) {
	ctx := log.Testing(t)
	info, _, _, _ := deviceChain()

	assert.For(ctx, "head").ThatBoolean(vk.Prune(info, vk.StructureTypeDeviceCreateInfo)).IsFalse()
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(4)
	assert.For(ctx, "nil").ThatBoolean(vk.Prune(nil, vk.StructureTypeDeviceCreateInfo)).IsFalse()
}

func TestPruneAbsent(t *testing.T) {
	ctx := log.Testing(t)
	info, _, _, _ := deviceChain()

	assert.For(ctx, "absent").ThatBoolean(vk.Prune(info, vk.StructureTypeSemaphoreTypeCreateInfo)).IsFalse()
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(4)
}

func TestAppendSplicesChains(t *testing.T) {
	ctx := log.Testing(t)
	info := &vk.SemaphoreCreateInfo{}
	first := &vk.SemaphoreTypeCreateInfo{SemaphoreType: vk.SemaphoreTypeTimeline}
	first.PNext = &vk.DependencyInfo{}
	vk.Append(info, first, nil, &vk.SubmitInfo2{})
	assert.For(ctx, "len").ThatInteger(vk.ChainLen(info)).Equals(4)
	_, ok := vk.Get[*vk.SubmitInfo2](info)
	assert.For(ctx, "tail").ThatBoolean(ok).IsTrue()
}

func TestStructureTypeString(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "known").ThatString(vk.StructureTypeSemaphoreTypeCreateInfo).Equals("SemaphoreTypeCreateInfo")
	assert.For(ctx, "unknown").ThatString(vk.StructureType(7)).Equals("StructureType(7)")
}

func TestBool32(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "true").That(vk.Bool(true)).Equals(vk.True)
	assert.For(ctx, "false").ThatBoolean(vk.False.Bool()).IsFalse()
	assert.For(ctx, "non-zero").ThatBoolean(vk.Bool32(2).Bool()).IsTrue()
}
