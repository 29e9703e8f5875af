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

package spirv

import "fmt"

// Capability is a SPIR-V capability operand of OpCapability.
type Capability uint32

// The capabilities with a meaning for device feature tracking.
const (
	Matrix                                    = Capability(0)
	Shader                                    = Capability(1)
	Geometry                                  = Capability(2)
	Tessellation                              = Capability(3)
	Float16                                   = Capability(9)
	Float64                                   = Capability(10)
	Int64                                     = Capability(11)
	Int16                                     = Capability(22)
	ImageGatherExtended                       = Capability(25)
	StorageImageMultisample                   = Capability(27)
	UniformBufferArrayDynamicIndexing         = Capability(28)
	SampledImageArrayDynamicIndexing          = Capability(29)
	StorageBufferArrayDynamicIndexing         = Capability(30)
	StorageImageArrayDynamicIndexing          = Capability(31)
	ClipDistance                              = Capability(32)
	CullDistance                              = Capability(33)
	ImageCubeArray                            = Capability(34)
	SampleRateShading                         = Capability(35)
	Int8                                      = Capability(39)
	SparseResidency                           = Capability(41)
	MinLod                                    = Capability(42)
	SampledCubeArray                          = Capability(45)
	MultiViewport                             = Capability(57)
	ShaderLayer                               = Capability(69)
	ShaderViewportIndex                       = Capability(70)
	DrawParameters                            = Capability(4427)
	StorageBuffer16BitAccess                  = Capability(4433)
	UniformAndStorageBuffer16BitAccess        = Capability(4434)
	StoragePushConstant16                     = Capability(4435)
	StorageInputOutput16                      = Capability(4436)
	VariablePointersStorageBuffer             = Capability(4441)
	VariablePointers                          = Capability(4442)
	StorageBuffer8BitAccess                   = Capability(4448)
	UniformAndStorageBuffer8BitAccess         = Capability(4449)
	StoragePushConstant8                      = Capability(4450)
	ShaderViewportIndexLayerEXT               = Capability(5254)
	RuntimeDescriptorArray                    = Capability(5302)
	InputAttachmentArrayDynamicIndexing       = Capability(5303)
	UniformTexelBufferArrayDynamicIndexing    = Capability(5304)
	StorageTexelBufferArrayDynamicIndexing    = Capability(5305)
	UniformBufferArrayNonUniformIndexing      = Capability(5306)
	SampledImageArrayNonUniformIndexing       = Capability(5307)
	StorageBufferArrayNonUniformIndexing      = Capability(5308)
	StorageImageArrayNonUniformIndexing       = Capability(5309)
	InputAttachmentArrayNonUniformIndexing    = Capability(5310)
	UniformTexelBufferArrayNonUniformIndexing = Capability(5311)
	StorageTexelBufferArrayNonUniformIndexing = Capability(5312)
	VulkanMemoryModel                         = Capability(5345)
	VulkanMemoryModelDeviceScope              = Capability(5346)
	DemoteToHelperInvocation                  = Capability(5379)
	ExpectAssumeKHR                           = Capability(5629)
	DotProductInputAll                        = Capability(6016)
	DotProductInput4x8Bit                     = Capability(6017)
	DotProductInput4x8BitPacked               = Capability(6018)
	DotProduct                                = Capability(6019)
	GroupNonUniformRotateKHR                  = Capability(6026)
	FloatControls2                            = Capability(6029)
)

var capabilityNames = map[Capability]string{
	Matrix:                                    "Matrix",
	Shader:                                    "Shader",
	Geometry:                                  "Geometry",
	Tessellation:                              "Tessellation",
	Float16:                                   "Float16",
	Float64:                                   "Float64",
	Int64:                                     "Int64",
	Int16:                                     "Int16",
	ImageGatherExtended:                       "ImageGatherExtended",
	StorageImageMultisample:                   "StorageImageMultisample",
	UniformBufferArrayDynamicIndexing:         "UniformBufferArrayDynamicIndexing",
	SampledImageArrayDynamicIndexing:          "SampledImageArrayDynamicIndexing",
	StorageBufferArrayDynamicIndexing:         "StorageBufferArrayDynamicIndexing",
	StorageImageArrayDynamicIndexing:          "StorageImageArrayDynamicIndexing",
	ClipDistance:                              "ClipDistance",
	CullDistance:                              "CullDistance",
	ImageCubeArray:                            "ImageCubeArray",
	SampleRateShading:                         "SampleRateShading",
	Int8:                                      "Int8",
	SparseResidency:                           "SparseResidency",
	MinLod:                                    "MinLod",
	SampledCubeArray:                          "SampledCubeArray",
	MultiViewport:                             "MultiViewport",
	ShaderLayer:                               "ShaderLayer",
	ShaderViewportIndex:                       "ShaderViewportIndex",
	DrawParameters:                            "DrawParameters",
	StorageBuffer16BitAccess:                  "StorageBuffer16BitAccess",
	UniformAndStorageBuffer16BitAccess:        "UniformAndStorageBuffer16BitAccess",
	StoragePushConstant16:                     "StoragePushConstant16",
	StorageInputOutput16:                      "StorageInputOutput16",
	VariablePointersStorageBuffer:             "VariablePointersStorageBuffer",
	VariablePointers:                          "VariablePointers",
	StorageBuffer8BitAccess:                   "StorageBuffer8BitAccess",
	UniformAndStorageBuffer8BitAccess:         "UniformAndStorageBuffer8BitAccess",
	StoragePushConstant8:                      "StoragePushConstant8",
	ShaderViewportIndexLayerEXT:               "ShaderViewportIndexLayerEXT",
	RuntimeDescriptorArray:                    "RuntimeDescriptorArray",
	InputAttachmentArrayDynamicIndexing:       "InputAttachmentArrayDynamicIndexing",
	UniformTexelBufferArrayDynamicIndexing:    "UniformTexelBufferArrayDynamicIndexing",
	StorageTexelBufferArrayDynamicIndexing:    "StorageTexelBufferArrayDynamicIndexing",
	UniformBufferArrayNonUniformIndexing:      "UniformBufferArrayNonUniformIndexing",
	SampledImageArrayNonUniformIndexing:       "SampledImageArrayNonUniformIndexing",
	StorageBufferArrayNonUniformIndexing:      "StorageBufferArrayNonUniformIndexing",
	StorageImageArrayNonUniformIndexing:       "StorageImageArrayNonUniformIndexing",
	InputAttachmentArrayNonUniformIndexing:    "InputAttachmentArrayNonUniformIndexing",
	UniformTexelBufferArrayNonUniformIndexing: "UniformTexelBufferArrayNonUniformIndexing",
	StorageTexelBufferArrayNonUniformIndexing: "StorageTexelBufferArrayNonUniformIndexing",
	VulkanMemoryModel:                         "VulkanMemoryModel",
	VulkanMemoryModelDeviceScope:              "VulkanMemoryModelDeviceScope",
	DemoteToHelperInvocation:                  "DemoteToHelperInvocation",
	ExpectAssumeKHR:                           "ExpectAssumeKHR",
	DotProductInputAll:                        "DotProductInputAll",
	DotProductInput4x8Bit:                     "DotProductInput4x8Bit",
	DotProductInput4x8BitPacked:               "DotProductInput4x8BitPacked",
	DotProduct:                                "DotProduct",
	GroupNonUniformRotateKHR:                  "GroupNonUniformRotateKHR",
	FloatControls2:                            "FloatControls2",
}

func (c Capability) String() string {
	if n, ok := capabilityNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Capability(%d)", uint32(c))
}
