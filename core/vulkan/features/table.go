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

// Feature identifies one optional device feature of a Vulkan core version.
type Feature uint16

// The features, in the declaration order of their Vulkan structures.
const (
	// PhysicalDeviceFeatures
	RobustBufferAccess Feature = iota
	FullDrawIndexUint32
	ImageCubeArray
	IndependentBlend
	GeometryShader
	TessellationShader
	SampleRateShading
	DualSrcBlend
	LogicOp
	MultiDrawIndirect
	DrawIndirectFirstInstance
	DepthClamp
	DepthBiasClamp
	FillModeNonSolid
	DepthBounds
	WideLines
	LargePoints
	AlphaToOne
	MultiViewport
	SamplerAnisotropy
	TextureCompressionETC2
	TextureCompressionASTC_LDR
	TextureCompressionBC
	OcclusionQueryPrecise
	PipelineStatisticsQuery
	VertexPipelineStoresAndAtomics
	FragmentStoresAndAtomics
	ShaderTessellationAndGeometryPointSize
	ShaderImageGatherExtended
	ShaderStorageImageExtendedFormats
	ShaderStorageImageMultisample
	ShaderStorageImageReadWithoutFormat
	ShaderStorageImageWriteWithoutFormat
	ShaderUniformBufferArrayDynamicIndexing
	ShaderSampledImageArrayDynamicIndexing
	ShaderStorageBufferArrayDynamicIndexing
	ShaderStorageImageArrayDynamicIndexing
	ShaderClipDistance
	ShaderCullDistance
	ShaderFloat64
	ShaderInt64
	ShaderInt16
	ShaderResourceResidency
	ShaderResourceMinLod
	SparseBinding
	SparseResidencyBuffer
	SparseResidencyImage2D
	SparseResidencyImage3D
	SparseResidency2Samples
	SparseResidency4Samples
	SparseResidency8Samples
	SparseResidency16Samples
	SparseResidencyAliased
	VariableMultisampleRate
	InheritedQueries

	// PhysicalDeviceVulkan11Features
	StorageBuffer16BitAccess
	UniformAndStorageBuffer16BitAccess
	StoragePushConstant16
	StorageInputOutput16
	Multiview
	MultiviewGeometryShader
	MultiviewTessellationShader
	VariablePointersStorageBuffer
	VariablePointers
	ProtectedMemory
	SamplerYcbcrConversion
	ShaderDrawParameters

	// PhysicalDeviceVulkan12Features
	SamplerMirrorClampToEdge
	DrawIndirectCount
	StorageBuffer8BitAccess
	UniformAndStorageBuffer8BitAccess
	StoragePushConstant8
	ShaderBufferInt64Atomics
	ShaderSharedInt64Atomics
	ShaderFloat16
	ShaderInt8
	DescriptorIndexing
	ShaderInputAttachmentArrayDynamicIndexing
	ShaderUniformTexelBufferArrayDynamicIndexing
	ShaderStorageTexelBufferArrayDynamicIndexing
	ShaderUniformBufferArrayNonUniformIndexing
	ShaderSampledImageArrayNonUniformIndexing
	ShaderStorageBufferArrayNonUniformIndexing
	ShaderStorageImageArrayNonUniformIndexing
	ShaderInputAttachmentArrayNonUniformIndexing
	ShaderUniformTexelBufferArrayNonUniformIndexing
	ShaderStorageTexelBufferArrayNonUniformIndexing
	DescriptorBindingUniformBufferUpdateAfterBind
	DescriptorBindingSampledImageUpdateAfterBind
	DescriptorBindingStorageImageUpdateAfterBind
	DescriptorBindingStorageBufferUpdateAfterBind
	DescriptorBindingUniformTexelBufferUpdateAfterBind
	DescriptorBindingStorageTexelBufferUpdateAfterBind
	DescriptorBindingUpdateUnusedWhilePending
	DescriptorBindingPartiallyBound
	DescriptorBindingVariableDescriptorCount
	RuntimeDescriptorArray
	SamplerFilterMinmax
	ScalarBlockLayout
	ImagelessFramebuffer
	UniformBufferStandardLayout
	ShaderSubgroupExtendedTypes
	SeparateDepthStencilLayouts
	HostQueryReset
	TimelineSemaphore
	BufferDeviceAddress
	BufferDeviceAddressCaptureReplay
	BufferDeviceAddressMultiDevice
	VulkanMemoryModel
	VulkanMemoryModelDeviceScope
	VulkanMemoryModelAvailabilityVisibilityChains
	ShaderOutputViewportIndex
	ShaderOutputLayer
	SubgroupBroadcastDynamicId

	// PhysicalDeviceVulkan13Features
	RobustImageAccess
	InlineUniformBlock
	DescriptorBindingInlineUniformBlockUpdateAfterBind
	PipelineCreationCacheControl
	PrivateData
	ShaderDemoteToHelperInvocation
	ShaderTerminateInvocation
	SubgroupSizeControl
	ComputeFullSubgroups
	Synchronization2
	TextureCompressionASTC_HDR
	ShaderZeroInitializeWorkgroupMemory
	DynamicRendering
	ShaderIntegerDotProduct
	Maintenance4

	// PhysicalDeviceVulkan14Features
	GlobalPriorityQuery
	ShaderSubgroupRotate
	ShaderSubgroupRotateClustered
	ShaderFloatControls2
	ShaderExpectAssume
	RectangularLines
	BresenhamLines
	SmoothLines
	StippledRectangularLines
	StippledBresenhamLines
	StippledSmoothLines
	VertexAttributeInstanceRateDivisor
	VertexAttributeInstanceRateZeroDivisor
	IndexTypeUint8
	DynamicRenderingLocalRead
	Maintenance5
	Maintenance6
	PipelineProtectedAccess
	PipelineRobustness
	HostImageCopy
	PushDescriptor

	featureCount
)

var descriptors = [featureCount]descriptor{
	RobustBufferAccess:                              {"robustBufferAccess", Core10},
	FullDrawIndexUint32:                             {"fullDrawIndexUint32", Core10},
	ImageCubeArray:                                  {"imageCubeArray", Core10},
	IndependentBlend:                                {"independentBlend", Core10},
	GeometryShader:                                  {"geometryShader", Core10},
	TessellationShader:                              {"tessellationShader", Core10},
	SampleRateShading:                               {"sampleRateShading", Core10},
	DualSrcBlend:                                    {"dualSrcBlend", Core10},
	LogicOp:                                         {"logicOp", Core10},
	MultiDrawIndirect:                               {"multiDrawIndirect", Core10},
	DrawIndirectFirstInstance:                       {"drawIndirectFirstInstance", Core10},
	DepthClamp:                                      {"depthClamp", Core10},
	DepthBiasClamp:                                  {"depthBiasClamp", Core10},
	FillModeNonSolid:                                {"fillModeNonSolid", Core10},
	DepthBounds:                                     {"depthBounds", Core10},
	WideLines:                                       {"wideLines", Core10},
	LargePoints:                                     {"largePoints", Core10},
	AlphaToOne:                                      {"alphaToOne", Core10},
	MultiViewport:                                   {"multiViewport", Core10},
	SamplerAnisotropy:                               {"samplerAnisotropy", Core10},
	TextureCompressionETC2:                          {"textureCompressionETC2", Core10},
	TextureCompressionASTC_LDR:                      {"textureCompressionASTC_LDR", Core10},
	TextureCompressionBC:                            {"textureCompressionBC", Core10},
	OcclusionQueryPrecise:                           {"occlusionQueryPrecise", Core10},
	PipelineStatisticsQuery:                         {"pipelineStatisticsQuery", Core10},
	VertexPipelineStoresAndAtomics:                  {"vertexPipelineStoresAndAtomics", Core10},
	FragmentStoresAndAtomics:                        {"fragmentStoresAndAtomics", Core10},
	ShaderTessellationAndGeometryPointSize:          {"shaderTessellationAndGeometryPointSize", Core10},
	ShaderImageGatherExtended:                       {"shaderImageGatherExtended", Core10},
	ShaderStorageImageExtendedFormats:               {"shaderStorageImageExtendedFormats", Core10},
	ShaderStorageImageMultisample:                   {"shaderStorageImageMultisample", Core10},
	ShaderStorageImageReadWithoutFormat:             {"shaderStorageImageReadWithoutFormat", Core10},
	ShaderStorageImageWriteWithoutFormat:            {"shaderStorageImageWriteWithoutFormat", Core10},
	ShaderUniformBufferArrayDynamicIndexing:         {"shaderUniformBufferArrayDynamicIndexing", Core10},
	ShaderSampledImageArrayDynamicIndexing:          {"shaderSampledImageArrayDynamicIndexing", Core10},
	ShaderStorageBufferArrayDynamicIndexing:         {"shaderStorageBufferArrayDynamicIndexing", Core10},
	ShaderStorageImageArrayDynamicIndexing:          {"shaderStorageImageArrayDynamicIndexing", Core10},
	ShaderClipDistance:                              {"shaderClipDistance", Core10},
	ShaderCullDistance:                              {"shaderCullDistance", Core10},
	ShaderFloat64:                                   {"shaderFloat64", Core10},
	ShaderInt64:                                     {"shaderInt64", Core10},
	ShaderInt16:                                     {"shaderInt16", Core10},
	ShaderResourceResidency:                         {"shaderResourceResidency", Core10},
	ShaderResourceMinLod:                            {"shaderResourceMinLod", Core10},
	SparseBinding:                                   {"sparseBinding", Core10},
	SparseResidencyBuffer:                           {"sparseResidencyBuffer", Core10},
	SparseResidencyImage2D:                          {"sparseResidencyImage2D", Core10},
	SparseResidencyImage3D:                          {"sparseResidencyImage3D", Core10},
	SparseResidency2Samples:                         {"sparseResidency2Samples", Core10},
	SparseResidency4Samples:                         {"sparseResidency4Samples", Core10},
	SparseResidency8Samples:                         {"sparseResidency8Samples", Core10},
	SparseResidency16Samples:                        {"sparseResidency16Samples", Core10},
	SparseResidencyAliased:                          {"sparseResidencyAliased", Core10},
	VariableMultisampleRate:                         {"variableMultisampleRate", Core10},
	InheritedQueries:                                {"inheritedQueries", Core10},
	StorageBuffer16BitAccess:                        {"storageBuffer16BitAccess", Core11},
	UniformAndStorageBuffer16BitAccess:              {"uniformAndStorageBuffer16BitAccess", Core11},
	StoragePushConstant16:                           {"storagePushConstant16", Core11},
	StorageInputOutput16:                            {"storageInputOutput16", Core11},
	Multiview:                                       {"multiview", Core11},
	MultiviewGeometryShader:                         {"multiviewGeometryShader", Core11},
	MultiviewTessellationShader:                     {"multiviewTessellationShader", Core11},
	VariablePointersStorageBuffer:                   {"variablePointersStorageBuffer", Core11},
	VariablePointers:                                {"variablePointers", Core11},
	ProtectedMemory:                                 {"protectedMemory", Core11},
	SamplerYcbcrConversion:                          {"samplerYcbcrConversion", Core11},
	ShaderDrawParameters:                            {"shaderDrawParameters", Core11},
	SamplerMirrorClampToEdge:                        {"samplerMirrorClampToEdge", Core12},
	DrawIndirectCount:                               {"drawIndirectCount", Core12},
	StorageBuffer8BitAccess:                         {"storageBuffer8BitAccess", Core12},
	UniformAndStorageBuffer8BitAccess:               {"uniformAndStorageBuffer8BitAccess", Core12},
	StoragePushConstant8:                            {"storagePushConstant8", Core12},
	ShaderBufferInt64Atomics:                        {"shaderBufferInt64Atomics", Core12},
	ShaderSharedInt64Atomics:                        {"shaderSharedInt64Atomics", Core12},
	ShaderFloat16:                                   {"shaderFloat16", Core12},
	ShaderInt8:                                      {"shaderInt8", Core12},
	DescriptorIndexing:                              {"descriptorIndexing", Core12},
	ShaderInputAttachmentArrayDynamicIndexing:       {"shaderInputAttachmentArrayDynamicIndexing", Core12},
	ShaderUniformTexelBufferArrayDynamicIndexing:    {"shaderUniformTexelBufferArrayDynamicIndexing", Core12},
	ShaderStorageTexelBufferArrayDynamicIndexing:    {"shaderStorageTexelBufferArrayDynamicIndexing", Core12},
	ShaderUniformBufferArrayNonUniformIndexing:      {"shaderUniformBufferArrayNonUniformIndexing", Core12},
	ShaderSampledImageArrayNonUniformIndexing:       {"shaderSampledImageArrayNonUniformIndexing", Core12},
	ShaderStorageBufferArrayNonUniformIndexing:      {"shaderStorageBufferArrayNonUniformIndexing", Core12},
	ShaderStorageImageArrayNonUniformIndexing:       {"shaderStorageImageArrayNonUniformIndexing", Core12},
	ShaderInputAttachmentArrayNonUniformIndexing:    {"shaderInputAttachmentArrayNonUniformIndexing", Core12},
	ShaderUniformTexelBufferArrayNonUniformIndexing: {"shaderUniformTexelBufferArrayNonUniformIndexing", Core12},
	ShaderStorageTexelBufferArrayNonUniformIndexing: {"shaderStorageTexelBufferArrayNonUniformIndexing", Core12},
	DescriptorBindingUniformBufferUpdateAfterBind:   {"descriptorBindingUniformBufferUpdateAfterBind", Core12},
	DescriptorBindingSampledImageUpdateAfterBind:    {"descriptorBindingSampledImageUpdateAfterBind", Core12},
	DescriptorBindingStorageImageUpdateAfterBind:    {"descriptorBindingStorageImageUpdateAfterBind", Core12},
	DescriptorBindingStorageBufferUpdateAfterBind:   {"descriptorBindingStorageBufferUpdateAfterBind", Core12},
	DescriptorBindingUniformTexelBufferUpdateAfterBind: {"descriptorBindingUniformTexelBufferUpdateAfterBind", Core12},
	DescriptorBindingStorageTexelBufferUpdateAfterBind: {"descriptorBindingStorageTexelBufferUpdateAfterBind", Core12},
	DescriptorBindingUpdateUnusedWhilePending:       {"descriptorBindingUpdateUnusedWhilePending", Core12},
	DescriptorBindingPartiallyBound:                 {"descriptorBindingPartiallyBound", Core12},
	DescriptorBindingVariableDescriptorCount:        {"descriptorBindingVariableDescriptorCount", Core12},
	RuntimeDescriptorArray:                          {"runtimeDescriptorArray", Core12},
	SamplerFilterMinmax:                             {"samplerFilterMinmax", Core12},
	ScalarBlockLayout:                               {"scalarBlockLayout", Core12},
	ImagelessFramebuffer:                            {"imagelessFramebuffer", Core12},
	UniformBufferStandardLayout:                     {"uniformBufferStandardLayout", Core12},
	ShaderSubgroupExtendedTypes:                     {"shaderSubgroupExtendedTypes", Core12},
	SeparateDepthStencilLayouts:                     {"separateDepthStencilLayouts", Core12},
	HostQueryReset:                                  {"hostQueryReset", Core12},
	TimelineSemaphore:                               {"timelineSemaphore", Core12},
	BufferDeviceAddress:                             {"bufferDeviceAddress", Core12},
	BufferDeviceAddressCaptureReplay:                {"bufferDeviceAddressCaptureReplay", Core12},
	BufferDeviceAddressMultiDevice:                  {"bufferDeviceAddressMultiDevice", Core12},
	VulkanMemoryModel:                               {"vulkanMemoryModel", Core12},
	VulkanMemoryModelDeviceScope:                    {"vulkanMemoryModelDeviceScope", Core12},
	VulkanMemoryModelAvailabilityVisibilityChains:   {"vulkanMemoryModelAvailabilityVisibilityChains", Core12},
	ShaderOutputViewportIndex:                       {"shaderOutputViewportIndex", Core12},
	ShaderOutputLayer:                               {"shaderOutputLayer", Core12},
	SubgroupBroadcastDynamicId:                      {"subgroupBroadcastDynamicId", Core12},
	RobustImageAccess:                               {"robustImageAccess", Core13},
	InlineUniformBlock:                              {"inlineUniformBlock", Core13},
	DescriptorBindingInlineUniformBlockUpdateAfterBind: {"descriptorBindingInlineUniformBlockUpdateAfterBind", Core13},
	PipelineCreationCacheControl:                    {"pipelineCreationCacheControl", Core13},
	PrivateData:                                     {"privateData", Core13},
	ShaderDemoteToHelperInvocation:                  {"shaderDemoteToHelperInvocation", Core13},
	ShaderTerminateInvocation:                       {"shaderTerminateInvocation", Core13},
	SubgroupSizeControl:                             {"subgroupSizeControl", Core13},
	ComputeFullSubgroups:                            {"computeFullSubgroups", Core13},
	Synchronization2:                                {"synchronization2", Core13},
	TextureCompressionASTC_HDR:                      {"textureCompressionASTC_HDR", Core13},
	ShaderZeroInitializeWorkgroupMemory:             {"shaderZeroInitializeWorkgroupMemory", Core13},
	DynamicRendering:                                {"dynamicRendering", Core13},
	ShaderIntegerDotProduct:                         {"shaderIntegerDotProduct", Core13},
	Maintenance4:                                    {"maintenance4", Core13},
	GlobalPriorityQuery:                             {"globalPriorityQuery", Core14},
	ShaderSubgroupRotate:                            {"shaderSubgroupRotate", Core14},
	ShaderSubgroupRotateClustered:                   {"shaderSubgroupRotateClustered", Core14},
	ShaderFloatControls2:                            {"shaderFloatControls2", Core14},
	ShaderExpectAssume:                              {"shaderExpectAssume", Core14},
	RectangularLines:                                {"rectangularLines", Core14},
	BresenhamLines:                                  {"bresenhamLines", Core14},
	SmoothLines:                                     {"smoothLines", Core14},
	StippledRectangularLines:                        {"stippledRectangularLines", Core14},
	StippledBresenhamLines:                          {"stippledBresenhamLines", Core14},
	StippledSmoothLines:                             {"stippledSmoothLines", Core14},
	VertexAttributeInstanceRateDivisor:              {"vertexAttributeInstanceRateDivisor", Core14},
	VertexAttributeInstanceRateZeroDivisor:          {"vertexAttributeInstanceRateZeroDivisor", Core14},
	IndexTypeUint8:                                  {"indexTypeUint8", Core14},
	DynamicRenderingLocalRead:                       {"dynamicRenderingLocalRead", Core14},
	Maintenance5:                                    {"maintenance5", Core14},
	Maintenance6:                                    {"maintenance6", Core14},
	PipelineProtectedAccess:                         {"pipelineProtectedAccess", Core14},
	PipelineRobustness:                              {"pipelineRobustness", Core14},
	HostImageCopy:                                   {"hostImageCopy", Core14},
	PushDescriptor:                                  {"pushDescriptor", Core14},
}

// adjustable lists, per generation, the features the adjuster may clear.
// A feature is handled exactly when it appears here.
var adjustable = [generationCount][]Feature{
	Core10: {
		FullDrawIndexUint32,
		DualSrcBlend,
		GeometryShader,
		TessellationShader,
		SampleRateShading,
		DepthClamp,
		DepthBiasClamp,
		WideLines,
		SamplerAnisotropy,
		FillModeNonSolid,
		DepthBounds,
		PipelineStatisticsQuery,
		ShaderStorageImageMultisample,
		LogicOp,
		AlphaToOne,
		SparseBinding,
		SparseResidencyBuffer,
		SparseResidencyImage2D,
		SparseResidencyImage3D,
		SparseResidency2Samples,
		SparseResidency4Samples,
		SparseResidency8Samples,
		SparseResidency16Samples,
		SparseResidencyAliased,
		IndependentBlend,
		InheritedQueries,
		MultiViewport,
		ImageCubeArray,
		ShaderImageGatherExtended,
		ShaderUniformBufferArrayDynamicIndexing,
		ShaderSampledImageArrayDynamicIndexing,
		ShaderStorageBufferArrayDynamicIndexing,
		ShaderStorageImageArrayDynamicIndexing,
		ShaderClipDistance,
		ShaderCullDistance,
		ShaderFloat64,
		ShaderInt64,
		ShaderInt16,
		ShaderResourceMinLod,
		ShaderResourceResidency,
		MultiDrawIndirect,
		OcclusionQueryPrecise,
	},
	Core11: {
		StorageBuffer16BitAccess,
		UniformAndStorageBuffer16BitAccess,
		StoragePushConstant16,
		StorageInputOutput16,
		VariablePointersStorageBuffer,
		VariablePointers,
		ShaderDrawParameters,
	},
	Core12: {
		DrawIndirectCount,
		HostQueryReset,
		SamplerMirrorClampToEdge,
		BufferDeviceAddress,
		BufferDeviceAddressCaptureReplay,
		BufferDeviceAddressMultiDevice,
		TimelineSemaphore,
		StorageBuffer8BitAccess,
		UniformAndStorageBuffer8BitAccess,
		StoragePushConstant8,
		ShaderFloat16,
		ShaderInt8,
		ShaderInputAttachmentArrayDynamicIndexing,
		ShaderUniformTexelBufferArrayDynamicIndexing,
		ShaderStorageTexelBufferArrayDynamicIndexing,
		ShaderUniformBufferArrayNonUniformIndexing,
		ShaderSampledImageArrayNonUniformIndexing,
		ShaderStorageBufferArrayNonUniformIndexing,
		ShaderStorageImageArrayNonUniformIndexing,
		ShaderInputAttachmentArrayNonUniformIndexing,
		ShaderUniformTexelBufferArrayNonUniformIndexing,
		ShaderStorageTexelBufferArrayNonUniformIndexing,
		RuntimeDescriptorArray,
		VulkanMemoryModel,
		VulkanMemoryModelDeviceScope,
		ShaderOutputViewportIndex,
		ShaderOutputLayer,
	},
	Core13: {
		DynamicRendering,
		ShaderDemoteToHelperInvocation,
		ShaderIntegerDotProduct,
		SubgroupSizeControl,
		ComputeFullSubgroups,
		Synchronization2,
	},
	Core14: {
		ShaderSubgroupRotate,
		ShaderExpectAssume,
		ShaderFloatControls2,
		IndexTypeUint8,
	},
}
