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

package vk


// PhysicalDeviceFeatures is the Vulkan 1.0 feature set, requested through
// DeviceCreateInfo.EnabledFeatures or PhysicalDeviceFeatures2.
type PhysicalDeviceFeatures struct {
	RobustBufferAccess                      Bool32
	FullDrawIndexUint32                     Bool32
	ImageCubeArray                          Bool32
	IndependentBlend                        Bool32
	GeometryShader                          Bool32
	TessellationShader                      Bool32
	SampleRateShading                       Bool32
	DualSrcBlend                            Bool32
	LogicOp                                 Bool32
	MultiDrawIndirect                       Bool32
	DrawIndirectFirstInstance               Bool32
	DepthClamp                              Bool32
	DepthBiasClamp                          Bool32
	FillModeNonSolid                        Bool32
	DepthBounds                             Bool32
	WideLines                               Bool32
	LargePoints                             Bool32
	AlphaToOne                              Bool32
	MultiViewport                           Bool32
	SamplerAnisotropy                       Bool32
	TextureCompressionETC2                  Bool32
	TextureCompressionASTC_LDR              Bool32
	TextureCompressionBC                    Bool32
	OcclusionQueryPrecise                   Bool32
	PipelineStatisticsQuery                 Bool32
	VertexPipelineStoresAndAtomics          Bool32
	FragmentStoresAndAtomics                Bool32
	ShaderTessellationAndGeometryPointSize  Bool32
	ShaderImageGatherExtended               Bool32
	ShaderStorageImageExtendedFormats       Bool32
	ShaderStorageImageMultisample           Bool32
	ShaderStorageImageReadWithoutFormat     Bool32
	ShaderStorageImageWriteWithoutFormat    Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing  Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing  Bool32
	ShaderClipDistance                      Bool32
	ShaderCullDistance                      Bool32
	ShaderFloat64                           Bool32
	ShaderInt64                             Bool32
	ShaderInt16                             Bool32
	ShaderResourceResidency                 Bool32
	ShaderResourceMinLod                    Bool32
	SparseBinding                           Bool32
	SparseResidencyBuffer                   Bool32
	SparseResidencyImage2D                  Bool32
	SparseResidencyImage3D                  Bool32
	SparseResidency2Samples                 Bool32
	SparseResidency4Samples                 Bool32
	SparseResidency8Samples                 Bool32
	SparseResidency16Samples                Bool32
	SparseResidencyAliased                  Bool32
	VariableMultisampleRate                 Bool32
	InheritedQueries                        Bool32
}

// PhysicalDeviceFeatures2 wraps PhysicalDeviceFeatures so it can be chained
// from DeviceCreateInfo.
type PhysicalDeviceFeatures2 struct {
	Header
	Features PhysicalDeviceFeatures
}

// PhysicalDeviceVulkan11Features holds the Vulkan 1.1 features.
type PhysicalDeviceVulkan11Features struct {
	Header
	StorageBuffer16BitAccess           Bool32
	UniformAndStorageBuffer16BitAccess Bool32
	StoragePushConstant16              Bool32
	StorageInputOutput16               Bool32
	Multiview                          Bool32
	MultiviewGeometryShader            Bool32
	MultiviewTessellationShader        Bool32
	VariablePointersStorageBuffer      Bool32
	VariablePointers                   Bool32
	ProtectedMemory                    Bool32
	SamplerYcbcrConversion             Bool32
	ShaderDrawParameters               Bool32
}

// PhysicalDeviceVulkan12Features holds the Vulkan 1.2 features.
type PhysicalDeviceVulkan12Features struct {
	Header
	SamplerMirrorClampToEdge                           Bool32
	DrawIndirectCount                                  Bool32
	StorageBuffer8BitAccess                            Bool32
	UniformAndStorageBuffer8BitAccess                  Bool32
	StoragePushConstant8                               Bool32
	ShaderBufferInt64Atomics                           Bool32
	ShaderSharedInt64Atomics                           Bool32
	ShaderFloat16                                      Bool32
	ShaderInt8                                         Bool32
	DescriptorIndexing                                 Bool32
	ShaderInputAttachmentArrayDynamicIndexing          Bool32
	ShaderUniformTexelBufferArrayDynamicIndexing       Bool32
	ShaderStorageTexelBufferArrayDynamicIndexing       Bool32
	ShaderUniformBufferArrayNonUniformIndexing         Bool32
	ShaderSampledImageArrayNonUniformIndexing          Bool32
	ShaderStorageBufferArrayNonUniformIndexing         Bool32
	ShaderStorageImageArrayNonUniformIndexing          Bool32
	ShaderInputAttachmentArrayNonUniformIndexing       Bool32
	ShaderUniformTexelBufferArrayNonUniformIndexing    Bool32
	ShaderStorageTexelBufferArrayNonUniformIndexing    Bool32
	DescriptorBindingUniformBufferUpdateAfterBind      Bool32
	DescriptorBindingSampledImageUpdateAfterBind       Bool32
	DescriptorBindingStorageImageUpdateAfterBind       Bool32
	DescriptorBindingStorageBufferUpdateAfterBind      Bool32
	DescriptorBindingUniformTexelBufferUpdateAfterBind Bool32
	DescriptorBindingStorageTexelBufferUpdateAfterBind Bool32
	DescriptorBindingUpdateUnusedWhilePending          Bool32
	DescriptorBindingPartiallyBound                    Bool32
	DescriptorBindingVariableDescriptorCount           Bool32
	RuntimeDescriptorArray                             Bool32
	SamplerFilterMinmax                                Bool32
	ScalarBlockLayout                                  Bool32
	ImagelessFramebuffer                               Bool32
	UniformBufferStandardLayout                        Bool32
	ShaderSubgroupExtendedTypes                        Bool32
	SeparateDepthStencilLayouts                        Bool32
	HostQueryReset                                     Bool32
	TimelineSemaphore                                  Bool32
	BufferDeviceAddress                                Bool32
	BufferDeviceAddressCaptureReplay                   Bool32
	BufferDeviceAddressMultiDevice                     Bool32
	VulkanMemoryModel                                  Bool32
	VulkanMemoryModelDeviceScope                       Bool32
	VulkanMemoryModelAvailabilityVisibilityChains      Bool32
	ShaderOutputViewportIndex                          Bool32
	ShaderOutputLayer                                  Bool32
	SubgroupBroadcastDynamicId                         Bool32
}

// PhysicalDeviceVulkan13Features holds the Vulkan 1.3 features.
type PhysicalDeviceVulkan13Features struct {
	Header
	RobustImageAccess                                  Bool32
	InlineUniformBlock                                 Bool32
	DescriptorBindingInlineUniformBlockUpdateAfterBind Bool32
	PipelineCreationCacheControl                       Bool32
	PrivateData                                        Bool32
	ShaderDemoteToHelperInvocation                     Bool32
	ShaderTerminateInvocation                          Bool32
	SubgroupSizeControl                                Bool32
	ComputeFullSubgroups                               Bool32
	Synchronization2                                   Bool32
	TextureCompressionASTC_HDR                         Bool32
	ShaderZeroInitializeWorkgroupMemory                Bool32
	DynamicRendering                                   Bool32
	ShaderIntegerDotProduct                            Bool32
	Maintenance4                                       Bool32
}

// PhysicalDeviceVulkan14Features holds the Vulkan 1.4 features.
type PhysicalDeviceVulkan14Features struct {
	Header
	GlobalPriorityQuery                    Bool32
	ShaderSubgroupRotate                   Bool32
	ShaderSubgroupRotateClustered          Bool32
	ShaderFloatControls2                   Bool32
	ShaderExpectAssume                     Bool32
	RectangularLines                       Bool32
	BresenhamLines                         Bool32
	SmoothLines                            Bool32
	StippledRectangularLines               Bool32
	StippledBresenhamLines                 Bool32
	StippledSmoothLines                    Bool32
	VertexAttributeInstanceRateDivisor     Bool32
	VertexAttributeInstanceRateZeroDivisor Bool32
	IndexTypeUint8                         Bool32
	DynamicRenderingLocalRead              Bool32
	Maintenance5                           Bool32
	Maintenance6                           Bool32
	PipelineProtectedAccess                Bool32
	PipelineRobustness                     Bool32
	HostImageCopy                          Bool32
	PushDescriptor                         Bool32
}

// PhysicalDeviceShaderAtomicInt64Features is the VK_KHR_shader_atomic_int64
// feature struct.
type PhysicalDeviceShaderAtomicInt64Features struct {
	Header
	ShaderBufferInt64Atomics Bool32
	ShaderSharedInt64Atomics Bool32
}

// PhysicalDeviceShaderImageAtomicInt64FeaturesEXT is the
// VK_EXT_shader_image_atomic_int64 feature struct.
type PhysicalDeviceShaderImageAtomicInt64FeaturesEXT struct {
	Header
	ShaderImageInt64Atomics Bool32
	SparseImageInt64Atomics Bool32
}

func (*PhysicalDeviceFeatures2) SType() StructureType {
	return StructureTypePhysicalDeviceFeatures2
}

func (*PhysicalDeviceVulkan11Features) SType() StructureType {
	return StructureTypePhysicalDeviceVulkan11Features
}

func (*PhysicalDeviceVulkan12Features) SType() StructureType {
	return StructureTypePhysicalDeviceVulkan12Features
}

func (*PhysicalDeviceVulkan13Features) SType() StructureType {
	return StructureTypePhysicalDeviceVulkan13Features
}

func (*PhysicalDeviceVulkan14Features) SType() StructureType {
	return StructureTypePhysicalDeviceVulkan14Features
}

func (*PhysicalDeviceShaderAtomicInt64Features) SType() StructureType {
	return StructureTypePhysicalDeviceShaderAtomicInt64Features
}

func (*PhysicalDeviceShaderImageAtomicInt64FeaturesEXT) SType() StructureType {
	return StructureTypePhysicalDeviceShaderImageAtomicInt64FeaturesEXT
}
