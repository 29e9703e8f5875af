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
	"context"

	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/spirv"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

// capabilityFeatures maps SPIR-V capabilities to the features that a module
// declaring them depends on. Capabilities not listed are ignored.
var capabilityFeatures = map[spirv.Capability][]Feature{
	spirv.Geometry:                                  {GeometryShader},
	spirv.Tessellation:                              {TessellationShader},
	spirv.SampleRateShading:                         {SampleRateShading},
	spirv.StorageImageMultisample:                   {ShaderStorageImageMultisample},
	spirv.MultiViewport:                             {MultiViewport},
	spirv.ImageGatherExtended:                       {ShaderImageGatherExtended},
	spirv.UniformBufferArrayDynamicIndexing:         {ShaderUniformBufferArrayDynamicIndexing},
	spirv.SampledImageArrayDynamicIndexing:          {ShaderSampledImageArrayDynamicIndexing},
	spirv.StorageBufferArrayDynamicIndexing:         {ShaderStorageBufferArrayDynamicIndexing},
	spirv.StorageImageArrayDynamicIndexing:          {ShaderStorageImageArrayDynamicIndexing},
	spirv.ClipDistance:                              {ShaderClipDistance},
	spirv.CullDistance:                              {ShaderCullDistance},
	spirv.Float64:                                   {ShaderFloat64},
	spirv.Int64:                                     {ShaderInt64},
	spirv.Int16:                                     {ShaderInt16},
	spirv.MinLod:                                    {ShaderResourceMinLod},
	spirv.SampledCubeArray:                          {ImageCubeArray},
	spirv.ImageCubeArray:                            {ImageCubeArray},
	spirv.SparseResidency:                           {ShaderResourceResidency},
	spirv.StorageBuffer16BitAccess:                  {StorageBuffer16BitAccess},
	spirv.UniformAndStorageBuffer16BitAccess:        {UniformAndStorageBuffer16BitAccess},
	spirv.StoragePushConstant16:                     {StoragePushConstant16},
	spirv.StorageInputOutput16:                      {StorageInputOutput16},
	spirv.VariablePointersStorageBuffer:             {VariablePointersStorageBuffer},
	spirv.VariablePointers:                          {VariablePointers},
	spirv.DrawParameters:                            {ShaderDrawParameters},
	spirv.StorageBuffer8BitAccess:                   {StorageBuffer8BitAccess},
	spirv.UniformAndStorageBuffer8BitAccess:         {UniformAndStorageBuffer8BitAccess},
	spirv.StoragePushConstant8:                      {StoragePushConstant8},
	spirv.Float16:                                   {ShaderFloat16},
	spirv.Int8:                                      {ShaderInt8},
	spirv.InputAttachmentArrayDynamicIndexing:       {ShaderInputAttachmentArrayDynamicIndexing},
	spirv.UniformTexelBufferArrayDynamicIndexing:    {ShaderUniformTexelBufferArrayDynamicIndexing},
	spirv.StorageTexelBufferArrayDynamicIndexing:    {ShaderStorageTexelBufferArrayDynamicIndexing},
	spirv.UniformBufferArrayNonUniformIndexing:      {ShaderUniformBufferArrayNonUniformIndexing},
	spirv.SampledImageArrayNonUniformIndexing:       {ShaderSampledImageArrayNonUniformIndexing},
	spirv.StorageBufferArrayNonUniformIndexing:      {ShaderStorageBufferArrayNonUniformIndexing},
	spirv.StorageImageArrayNonUniformIndexing:       {ShaderStorageImageArrayNonUniformIndexing},
	spirv.InputAttachmentArrayNonUniformIndexing:    {ShaderInputAttachmentArrayNonUniformIndexing},
	spirv.UniformTexelBufferArrayNonUniformIndexing: {ShaderUniformTexelBufferArrayNonUniformIndexing},
	spirv.StorageTexelBufferArrayNonUniformIndexing: {ShaderStorageTexelBufferArrayNonUniformIndexing},
	spirv.RuntimeDescriptorArray:                    {RuntimeDescriptorArray},
	spirv.VulkanMemoryModel:                         {VulkanMemoryModel},
	spirv.VulkanMemoryModelDeviceScope:              {VulkanMemoryModelDeviceScope},
	spirv.ShaderViewportIndex:                       {ShaderOutputViewportIndex},
	spirv.ShaderLayer:                               {ShaderOutputLayer},
	spirv.ShaderViewportIndexLayerEXT:               {ShaderOutputViewportIndex, ShaderOutputLayer, MultiViewport},
	spirv.DemoteToHelperInvocation:                  {ShaderDemoteToHelperInvocation},
	spirv.DotProductInputAll:                        {ShaderIntegerDotProduct},
	spirv.DotProductInput4x8Bit:                     {ShaderIntegerDotProduct},
	spirv.DotProductInput4x8BitPacked:               {ShaderIntegerDotProduct},
	spirv.DotProduct:                                {ShaderIntegerDotProduct},
	spirv.GroupNonUniformRotateKHR:                  {ShaderSubgroupRotate},
	spirv.ExpectAssumeKHR:                           {ShaderExpectAssume},
	spirv.FloatControls2:                            {ShaderFloatControls2},
}

// CapabilityFeatures returns the features implied by the SPIR-V capability c.
func CapabilityFeatures(c spirv.Capability) []Feature {
	return append([]Feature(nil), capabilityFeatures[c]...)
}

// MarkCapabilities marks the features implied by each of caps.
func (l *Ledger) MarkCapabilities(caps []spirv.Capability) {
	for _, c := range caps {
		for _, f := range capabilityFeatures[c] {
			l.Mark(f)
		}
	}
}

// CreateShaderModule classifies vkCreateShaderModule by scanning the module's
// capability declarations. A malformed module is logged and the capabilities
// declared before the fault are still recorded.
func (l *Ledger) CreateShaderModule(ctx context.Context, info *vk.ShaderModuleCreateInfo) {
	m, err := spirv.Scan(info.Code, info.CodeSize)
	l.MarkCapabilities(m.Capabilities)
	if err != nil {
		log.W(ctx, "Shader module scan stopped early after %d capabilities: %v", len(m.Capabilities), err)
	}
}
