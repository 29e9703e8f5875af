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

type ShaderStageFlagBits uint32

const (
	ShaderStageVertexBit                 = ShaderStageFlagBits(0x00000001)
	ShaderStageTessellationControlBit    = ShaderStageFlagBits(0x00000002)
	ShaderStageTessellationEvaluationBit = ShaderStageFlagBits(0x00000004)
	ShaderStageGeometryBit               = ShaderStageFlagBits(0x00000008)
	ShaderStageFragmentBit               = ShaderStageFlagBits(0x00000010)
	ShaderStageComputeBit                = ShaderStageFlagBits(0x00000020)
	ShaderStageRaygenBitKHR              = ShaderStageFlagBits(0x00000100)
	ShaderStageAnyHitBitKHR              = ShaderStageFlagBits(0x00000200)
	ShaderStageClosestHitBitKHR          = ShaderStageFlagBits(0x00000400)
	ShaderStageMissBitKHR                = ShaderStageFlagBits(0x00000800)
)

type PipelineShaderStageCreateFlags uint32

const (
	PipelineShaderStageCreateAllowVaryingSubgroupSizeBit = PipelineShaderStageCreateFlags(0x00000001)
	PipelineShaderStageCreateRequireFullSubgroupsBit     = PipelineShaderStageCreateFlags(0x00000002)
)

type BlendFactor uint32

const (
	BlendFactorZero                  = BlendFactor(0)
	BlendFactorOne                   = BlendFactor(1)
	BlendFactorSrcColor              = BlendFactor(2)
	BlendFactorOneMinusSrcColor      = BlendFactor(3)
	BlendFactorDstColor              = BlendFactor(4)
	BlendFactorOneMinusDstColor      = BlendFactor(5)
	BlendFactorSrcAlpha              = BlendFactor(6)
	BlendFactorOneMinusSrcAlpha      = BlendFactor(7)
	BlendFactorDstAlpha              = BlendFactor(8)
	BlendFactorOneMinusDstAlpha      = BlendFactor(9)
	BlendFactorConstantColor         = BlendFactor(10)
	BlendFactorOneMinusConstantColor = BlendFactor(11)
	BlendFactorConstantAlpha         = BlendFactor(12)
	BlendFactorOneMinusConstantAlpha = BlendFactor(13)
	BlendFactorSrcAlphaSaturate      = BlendFactor(14)
	BlendFactorSrc1Color             = BlendFactor(15)
	BlendFactorOneMinusSrc1Color     = BlendFactor(16)
	BlendFactorSrc1Alpha             = BlendFactor(17)
	BlendFactorOneMinusSrc1Alpha     = BlendFactor(18)
)

type BlendOp uint32

const (
	BlendOpAdd             = BlendOp(0)
	BlendOpSubtract        = BlendOp(1)
	BlendOpReverseSubtract = BlendOp(2)
	BlendOpMin             = BlendOp(3)
	BlendOpMax             = BlendOp(4)
)

type ColorComponentFlags uint32

const (
	ColorComponentRBit = ColorComponentFlags(0x1)
	ColorComponentGBit = ColorComponentFlags(0x2)
	ColorComponentBBit = ColorComponentFlags(0x4)
	ColorComponentABit = ColorComponentFlags(0x8)
)

type LogicOp uint32

const (
	LogicOpClear = LogicOp(0)
	LogicOpAnd   = LogicOp(1)
	LogicOpCopy  = LogicOp(3)
	LogicOpXor   = LogicOp(6)
)

type PolygonMode uint32

const (
	PolygonModeFill  = PolygonMode(0)
	PolygonModeLine  = PolygonMode(1)
	PolygonModePoint = PolygonMode(2)
)

type CullModeFlags uint32

const (
	CullModeNone     = CullModeFlags(0)
	CullModeFrontBit = CullModeFlags(1)
	CullModeBackBit  = CullModeFlags(2)
)

type CompareOp uint32

const (
	CompareOpNever  = CompareOp(0)
	CompareOpLess   = CompareOp(1)
	CompareOpEqual  = CompareOp(2)
	CompareOpAlways = CompareOp(7)
)

type SampleCountFlagBits uint32

const (
	SampleCount1Bit  = SampleCountFlagBits(0x01)
	SampleCount2Bit  = SampleCountFlagBits(0x02)
	SampleCount4Bit  = SampleCountFlagBits(0x04)
	SampleCount8Bit  = SampleCountFlagBits(0x08)
	SampleCount16Bit = SampleCountFlagBits(0x10)
	SampleCount32Bit = SampleCountFlagBits(0x20)
	SampleCount64Bit = SampleCountFlagBits(0x40)
)

type ImageType uint32

const (
	ImageType1d = ImageType(0)
	ImageType2d = ImageType(1)
	ImageType3d = ImageType(2)
)

type ImageCreateFlags uint32

const (
	ImageCreateSparseBindingBit   = ImageCreateFlags(0x1)
	ImageCreateSparseResidencyBit = ImageCreateFlags(0x2)
	ImageCreateSparseAliasedBit   = ImageCreateFlags(0x4)
	ImageCreateCubeCompatibleBit  = ImageCreateFlags(0x10)
)

type BufferCreateFlags uint32

const (
	BufferCreateSparseBindingBit   = BufferCreateFlags(0x1)
	BufferCreateSparseResidencyBit = BufferCreateFlags(0x2)
	BufferCreateSparseAliasedBit   = BufferCreateFlags(0x4)
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit     = ImageUsageFlags(0x01)
	ImageUsageTransferDstBit     = ImageUsageFlags(0x02)
	ImageUsageSampledBit         = ImageUsageFlags(0x04)
	ImageUsageStorageBit         = ImageUsageFlags(0x08)
	ImageUsageColorAttachmentBit = ImageUsageFlags(0x10)
)

type BufferUsageFlags uint32

const (
	BufferUsageStorageBufferBit       = BufferUsageFlags(0x00020)
	BufferUsageIndexBufferBit         = BufferUsageFlags(0x00040)
	BufferUsageIndirectBufferBit      = BufferUsageFlags(0x00100)
	BufferUsageShaderDeviceAddressBit = BufferUsageFlags(0x20000)
)

type ImageViewType uint32

const (
	ImageViewType1d        = ImageViewType(0)
	ImageViewType2d        = ImageViewType(1)
	ImageViewType3d        = ImageViewType(2)
	ImageViewTypeCube      = ImageViewType(3)
	ImageViewType1dArray   = ImageViewType(4)
	ImageViewType2dArray   = ImageViewType(5)
	ImageViewTypeCubeArray = ImageViewType(6)
)

type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   = CommandBufferLevel(0)
	CommandBufferLevelSecondary = CommandBufferLevel(1)
)

type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      = CommandBufferUsageFlags(0x1)
	CommandBufferUsageRenderPassContinueBit = CommandBufferUsageFlags(0x2)
	CommandBufferUsageSimultaneousUseBit    = CommandBufferUsageFlags(0x4)
)

type QueryControlFlags uint32

const QueryControlPreciseBit = QueryControlFlags(0x1)

type QueryType uint32

const (
	QueryTypeOcclusion          = QueryType(0)
	QueryTypePipelineStatistics = QueryType(1)
	QueryTypeTimestamp          = QueryType(2)
)

type QueryPipelineStatisticFlags uint32

const (
	QueryPipelineStatisticInputAssemblyVerticesBit   = QueryPipelineStatisticFlags(0x001)
	QueryPipelineStatisticInputAssemblyPrimitivesBit = QueryPipelineStatisticFlags(0x002)
	QueryPipelineStatisticVertexShaderInvocationsBit = QueryPipelineStatisticFlags(0x004)
)

type IndexType uint32

const (
	IndexTypeUint16 = IndexType(0)
	IndexTypeUint32 = IndexType(1)
	IndexTypeUint8  = IndexType(1000265000)
)

type SemaphoreType uint32

const (
	SemaphoreTypeBinary   = SemaphoreType(0)
	SemaphoreTypeTimeline = SemaphoreType(1)
)

type Filter uint32

const (
	FilterNearest = Filter(0)
	FilterLinear  = Filter(1)
)

type SamplerAddressMode uint32

const (
	SamplerAddressModeRepeat            = SamplerAddressMode(0)
	SamplerAddressModeMirroredRepeat    = SamplerAddressMode(1)
	SamplerAddressModeClampToEdge       = SamplerAddressMode(2)
	SamplerAddressModeClampToBorder     = SamplerAddressMode(3)
	SamplerAddressModeMirrorClampToEdge = SamplerAddressMode(4)
)

type Format uint32

const (
	FormatUndefined     = Format(0)
	FormatR8g8b8a8Unorm = Format(37)
	FormatB8g8r8a8Unorm = Format(44)
	FormatB8g8r8a8Srgb  = Format(50)
)

type ColorSpaceKHR uint32

const (
	ColorSpaceSrgbNonlinearKHR         = ColorSpaceKHR(0)
	ColorSpaceDisplayP3NonlinearEXT    = ColorSpaceKHR(1000104001)
	ColorSpaceExtendedSrgbLinearEXT    = ColorSpaceKHR(1000104002)
	ColorSpaceDisplayP3LinearEXT       = ColorSpaceKHR(1000104003)
	ColorSpaceDciP3LinearEXT           = ColorSpaceDisplayP3LinearEXT
	ColorSpaceDciP3NonlinearEXT        = ColorSpaceKHR(1000104004)
	ColorSpaceBt709LinearEXT           = ColorSpaceKHR(1000104005)
	ColorSpaceBt709NonlinearEXT        = ColorSpaceKHR(1000104006)
	ColorSpaceBt2020LinearEXT          = ColorSpaceKHR(1000104007)
	ColorSpaceHdr10St2084EXT           = ColorSpaceKHR(1000104008)
	ColorSpaceDolbyvisionEXT           = ColorSpaceKHR(1000104009)
	ColorSpaceHdr10HlgEXT              = ColorSpaceKHR(1000104010)
	ColorSpaceAdobergbLinearEXT        = ColorSpaceKHR(1000104011)
	ColorSpaceAdobergbNonlinearEXT     = ColorSpaceKHR(1000104012)
	ColorSpacePassThroughEXT           = ColorSpaceKHR(1000104013)
	ColorSpaceExtendedSrgbNonlinearEXT = ColorSpaceKHR(1000104014)
)

type PresentModeKHR uint32

const (
	PresentModeImmediateKHR               = PresentModeKHR(0)
	PresentModeFifoKHR                    = PresentModeKHR(2)
	PresentModeSharedDemandRefreshKHR     = PresentModeKHR(1000111000)
	PresentModeSharedContinuousRefreshKHR = PresentModeKHR(1000111001)
)
