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

type (
	Offset2D struct{ X, Y int32 }
	Extent2D struct{ Width, Height uint32 }
	Extent3D struct{ Width, Height, Depth uint32 }
	Rect2D   struct {
		Offset Offset2D
		Extent Extent2D
	}
	Viewport struct {
		X, Y, Width, Height, MinDepth, MaxDepth float32
	}
)

// InstanceCreateInfo is VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	Header
	Flags                 uint32
	ApplicationName       string
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

// DeviceQueueCreateInfo is VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	Header
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo is VkDeviceCreateInfo. Features may be requested either
// through EnabledFeatures or through a chained PhysicalDeviceFeatures2, the
// Vulkan 1.1+ feature structures are always chained.
type DeviceCreateInfo struct {
	Header
	Flags                 uint32
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	EnabledFeatures       *PhysicalDeviceFeatures
}

// ShaderModuleCreateInfo is VkShaderModuleCreateInfo. CodeSize is in bytes.
type ShaderModuleCreateInfo struct {
	Header
	Flags    uint32
	CodeSize int
	Code     []uint32
}

type PipelineShaderStageCreateInfo struct {
	Header
	Flags  PipelineShaderStageCreateFlags
	Stage  ShaderStageFlagBits
	Module ShaderModule
	Name   string
}

type PipelineShaderStageRequiredSubgroupSizeCreateInfo struct {
	Header
	RequiredSubgroupSize uint32
}

// PipelineColorBlendAttachmentState is not extensible and has no Header.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	Header
	Flags          uint32
	LogicOpEnable  Bool32
	LogicOp        LogicOp
	Attachments    []PipelineColorBlendAttachmentState
	BlendConstants [4]float32
}

type PipelineMultisampleStateCreateInfo struct {
	Header
	Flags                 uint32
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

type PipelineRasterizationStateCreateInfo struct {
	Header
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineDepthStencilStateCreateInfo struct {
	Header
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineViewportStateCreateInfo is VkPipelineViewportStateCreateInfo. The
// counts are kept separately from the slices as the slices may be empty when
// viewports and scissors are dynamic.
type PipelineViewportStateCreateInfo struct {
	Header
	Flags         uint32
	ViewportCount uint32
	Viewports     []Viewport
	ScissorCount  uint32
	Scissors      []Rect2D
}

// GraphicsPipelineCreateInfo is VkGraphicsPipelineCreateInfo. Absent state
// structures are nil.
type GraphicsPipelineCreateInfo struct {
	Header
	Flags              uint32
	Stages             []PipelineShaderStageCreateInfo
	ViewportState      *PipelineViewportStateCreateInfo
	RasterizationState *PipelineRasterizationStateCreateInfo
	MultisampleState   *PipelineMultisampleStateCreateInfo
	DepthStencilState  *PipelineDepthStencilStateCreateInfo
	ColorBlendState    *PipelineColorBlendStateCreateInfo
	Layout             PipelineLayout
	RenderPass         RenderPass
	Subpass            uint32
}

type ComputePipelineCreateInfo struct {
	Header
	Flags  uint32
	Stage  PipelineShaderStageCreateInfo
	Layout PipelineLayout
}

type RayTracingPipelineCreateInfoKHR struct {
	Header
	Flags                        uint32
	Stages                       []PipelineShaderStageCreateInfo
	MaxPipelineRayRecursionDepth uint32
	Layout                       PipelineLayout
}

type ImageCreateInfo struct {
	Header
	Flags       ImageCreateFlags
	ImageType   ImageType
	Format      Format
	Extent      Extent3D
	MipLevels   uint32
	ArrayLayers uint32
	Samples     SampleCountFlagBits
	Usage       ImageUsageFlags
}

type BufferCreateInfo struct {
	Header
	Flags BufferCreateFlags
	Size  DeviceSize
	Usage BufferUsageFlags
}

type ImageViewCreateInfo struct {
	Header
	Flags    uint32
	Image    Image
	ViewType ImageViewType
	Format   Format
}

type CommandBufferInheritanceInfo struct {
	Header
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           QueryControlFlags
	PipelineStatistics   QueryPipelineStatisticFlags
}

// CommandBufferBeginInfo is VkCommandBufferBeginInfo. InheritanceInfo is only
// meaningful for secondary command buffers.
type CommandBufferBeginInfo struct {
	Header
	Flags           CommandBufferUsageFlags
	InheritanceInfo *CommandBufferInheritanceInfo
}

type SemaphoreCreateInfo struct {
	Header
	Flags uint32
}

type SemaphoreTypeCreateInfo struct {
	Header
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

type SwapchainCreateInfoKHR struct {
	Header
	Flags           uint32
	Surface         SurfaceKHR
	MinImageCount   uint32
	ImageFormat     Format
	ImageColorSpace ColorSpaceKHR
	ImageExtent     Extent2D
	ImageUsage      ImageUsageFlags
	PresentMode     PresentModeKHR
}

type PhysicalDeviceSurfaceInfo2KHR struct {
	Header
	Surface SurfaceKHR
}

type SurfaceCapabilitiesKHR struct {
	MinImageCount       uint32
	MaxImageCount       uint32
	CurrentExtent       Extent2D
	SupportedUsageFlags ImageUsageFlags
}

type SurfaceCapabilities2KHR struct {
	Header
	SurfaceCapabilities SurfaceCapabilitiesKHR
}

type SharedPresentSurfaceCapabilitiesKHR struct {
	Header
	SharedPresentSupportedUsageFlags ImageUsageFlags
}

type SamplerCreateInfo struct {
	Header
	Flags            uint32
	MagFilter        Filter
	MinFilter        Filter
	AddressModeU     SamplerAddressMode
	AddressModeV     SamplerAddressMode
	AddressModeW     SamplerAddressMode
	MipLodBias       float32
	AnisotropyEnable Bool32
	MaxAnisotropy    float32
}

type QueryPoolCreateInfo struct {
	Header
	Flags              uint32
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics QueryPipelineStatisticFlags
}

type RenderingInfo struct {
	Header
	Flags      uint32
	RenderArea Rect2D
	LayerCount uint32
	ViewMask   uint32
}

type BufferDeviceAddressInfo struct {
	Header
	Buffer Buffer
}

type DependencyInfo struct {
	Header
	DependencyFlags uint32
}

type SubmitInfo2 struct {
	Header
	Flags uint32
}
