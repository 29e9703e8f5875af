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

import "github.com/tracetooltests/vkusage/core/vulkan/vk"

// rule marks feature when its predicate holds for a call argument.
type rule[T any] struct {
	feature Feature
	when    func(*T) bool
}

// extRule marks ext when its predicate holds for a call argument.
type extRule[T any] struct {
	ext  Extension
	when func(*T) bool
}

func apply[T any](l *Ledger, rules []rule[T], v *T) {
	for _, r := range rules {
		if r.when(v) {
			l.Mark(r.feature)
		}
	}
}

func applyExt[T any](l *Ledger, rules []extRule[T], v *T) {
	for _, r := range rules {
		if r.when(v) {
			l.MarkExtension(r.ext)
		}
	}
}

func isSrc1Factor(f vk.BlendFactor) bool {
	switch f {
	case vk.BlendFactorSrc1Color, vk.BlendFactorOneMinusSrc1Color,
		vk.BlendFactorSrc1Alpha, vk.BlendFactorOneMinusSrc1Alpha:
		return true
	}
	return false
}

func isExtendedColorSpace(c vk.ColorSpaceKHR) bool {
	return c >= vk.ColorSpaceDisplayP3NonlinearEXT && c <= vk.ColorSpaceExtendedSrgbNonlinearEXT
}

// sparseImage2D returns a rule for a sparse resident 2D image with samples.
func sparseImage2D(f Feature, samples vk.SampleCountFlagBits) rule[vk.ImageCreateInfo] {
	return rule[vk.ImageCreateInfo]{f, func(i *vk.ImageCreateInfo) bool {
		return i.ImageType == vk.ImageType2d && i.Flags&vk.ImageCreateSparseResidencyBit != 0 && i.Samples == samples
	}}
}

var stageRules = []rule[vk.PipelineShaderStageCreateInfo]{
	{GeometryShader, func(s *vk.PipelineShaderStageCreateInfo) bool {
		return s.Stage == vk.ShaderStageGeometryBit
	}},
	{TessellationShader, func(s *vk.PipelineShaderStageCreateInfo) bool {
		return s.Stage == vk.ShaderStageTessellationControlBit || s.Stage == vk.ShaderStageTessellationEvaluationBit
	}},
	{SubgroupSizeControl, func(s *vk.PipelineShaderStageCreateInfo) bool {
		return s.Flags&vk.PipelineShaderStageCreateAllowVaryingSubgroupSizeBit != 0 ||
			vk.Find(s, vk.StructureTypePipelineShaderStageRequiredSubgroupSizeCreateInfo) != nil
	}},
	{ComputeFullSubgroups, func(s *vk.PipelineShaderStageCreateInfo) bool {
		return s.Flags&vk.PipelineShaderStageCreateRequireFullSubgroupsBit != 0
	}},
}

var blendAttachmentRules = []rule[vk.PipelineColorBlendAttachmentState]{
	{DualSrcBlend, func(a *vk.PipelineColorBlendAttachmentState) bool {
		return isSrc1Factor(a.SrcColorBlendFactor) || isSrc1Factor(a.DstColorBlendFactor) ||
			isSrc1Factor(a.SrcAlphaBlendFactor) || isSrc1Factor(a.DstAlphaBlendFactor)
	}},
}

var blendStateRules = []rule[vk.PipelineColorBlendStateCreateInfo]{
	{LogicOp, func(s *vk.PipelineColorBlendStateCreateInfo) bool { return s.LogicOpEnable.Bool() }},
	{IndependentBlend, func(s *vk.PipelineColorBlendStateCreateInfo) bool {
		// PipelineColorBlendAttachmentState holds exactly the compared fields.
		for i := 1; i < len(s.Attachments); i++ {
			if s.Attachments[i] != s.Attachments[i-1] {
				return true
			}
		}
		return false
	}},
}

var multisampleRules = []rule[vk.PipelineMultisampleStateCreateInfo]{
	{AlphaToOne, func(s *vk.PipelineMultisampleStateCreateInfo) bool { return s.AlphaToOneEnable.Bool() }},
	{SampleRateShading, func(s *vk.PipelineMultisampleStateCreateInfo) bool { return s.SampleShadingEnable.Bool() }},
}

var rasterizationRules = []rule[vk.PipelineRasterizationStateCreateInfo]{
	{DepthClamp, func(s *vk.PipelineRasterizationStateCreateInfo) bool { return s.DepthClampEnable.Bool() }},
	{FillModeNonSolid, func(s *vk.PipelineRasterizationStateCreateInfo) bool {
		return s.PolygonMode == vk.PolygonModeLine || s.PolygonMode == vk.PolygonModePoint
	}},
}

var depthStencilRules = []rule[vk.PipelineDepthStencilStateCreateInfo]{
	{DepthBounds, func(s *vk.PipelineDepthStencilStateCreateInfo) bool { return s.DepthBoundsTestEnable.Bool() }},
}

var viewportRules = []rule[vk.PipelineViewportStateCreateInfo]{
	{MultiViewport, func(s *vk.PipelineViewportStateCreateInfo) bool {
		return s.ViewportCount > 1 || s.ScissorCount > 1
	}},
}

var graphicsPipelineRules = []rule[vk.GraphicsPipelineCreateInfo]{
	{DepthBiasClamp, func(p *vk.GraphicsPipelineCreateInfo) bool {
		return p.RasterizationState != nil && p.RasterizationState.DepthBiasClamp != 0
	}},
	{WideLines, func(p *vk.GraphicsPipelineCreateInfo) bool {
		return p.RasterizationState != nil && p.RasterizationState.LineWidth != 1
	}},
}

var imageRules = []rule[vk.ImageCreateInfo]{
	sparseImage2D(SparseResidencyImage2D, vk.SampleCount1Bit),
	sparseImage2D(SparseResidency2Samples, vk.SampleCount2Bit),
	sparseImage2D(SparseResidency4Samples, vk.SampleCount4Bit),
	sparseImage2D(SparseResidency8Samples, vk.SampleCount8Bit),
	sparseImage2D(SparseResidency16Samples, vk.SampleCount16Bit),
	{SparseResidencyImage3D, func(i *vk.ImageCreateInfo) bool {
		return i.ImageType == vk.ImageType3d && i.Flags&vk.ImageCreateSparseResidencyBit != 0
	}},
	{SparseBinding, func(i *vk.ImageCreateInfo) bool { return i.Flags&vk.ImageCreateSparseBindingBit != 0 }},
	{SparseResidencyAliased, func(i *vk.ImageCreateInfo) bool { return i.Flags&vk.ImageCreateSparseAliasedBit != 0 }},
	{ShaderStorageImageMultisample, func(i *vk.ImageCreateInfo) bool {
		return i.Usage&vk.ImageUsageStorageBit != 0 && i.Samples != vk.SampleCount1Bit
	}},
}

var bufferRules = []rule[vk.BufferCreateInfo]{
	{SparseBinding, func(b *vk.BufferCreateInfo) bool { return b.Flags&vk.BufferCreateSparseBindingBit != 0 }},
	{SparseResidencyBuffer, func(b *vk.BufferCreateInfo) bool { return b.Flags&vk.BufferCreateSparseResidencyBit != 0 }},
	{SparseResidencyAliased, func(b *vk.BufferCreateInfo) bool { return b.Flags&vk.BufferCreateSparseAliasedBit != 0 }},
}

var imageViewRules = []rule[vk.ImageViewCreateInfo]{
	{ImageCubeArray, func(v *vk.ImageViewCreateInfo) bool { return v.ViewType == vk.ImageViewTypeCubeArray }},
}

var inheritanceRules = []rule[vk.CommandBufferInheritanceInfo]{
	{InheritedQueries, func(i *vk.CommandBufferInheritanceInfo) bool {
		return i.OcclusionQueryEnable.Bool() || i.QueryFlags&^vk.QueryControlPreciseBit == 0
	}},
}

var semaphoreRules = []rule[vk.SemaphoreCreateInfo]{
	{TimelineSemaphore, func(s *vk.SemaphoreCreateInfo) bool {
		t, ok := vk.Get[*vk.SemaphoreTypeCreateInfo](s)
		return ok && t.SemaphoreType == vk.SemaphoreTypeTimeline
	}},
}

var samplerRules = []rule[vk.SamplerCreateInfo]{
	{SamplerAnisotropy, func(s *vk.SamplerCreateInfo) bool { return s.AnisotropyEnable.Bool() }},
	{SamplerMirrorClampToEdge, func(s *vk.SamplerCreateInfo) bool {
		m := vk.SamplerAddressModeMirrorClampToEdge
		return s.AddressModeU == m || s.AddressModeV == m || s.AddressModeW == m
	}},
}

var queryPoolRules = []rule[vk.QueryPoolCreateInfo]{
	{PipelineStatisticsQuery, func(q *vk.QueryPoolCreateInfo) bool {
		return q.QueryType == vk.QueryTypePipelineStatistics && q.PipelineStatistics != 0
	}},
}

var deviceRules = []extRule[vk.DeviceCreateInfo]{
	{ExtShaderAtomicInt64, func(d *vk.DeviceCreateInfo) bool {
		f, ok := vk.Get[*vk.PhysicalDeviceShaderAtomicInt64Features](d)
		return ok && (f.ShaderBufferInt64Atomics.Bool() || f.ShaderSharedInt64Atomics.Bool())
	}},
	{ExtShaderImageAtomicInt64, func(d *vk.DeviceCreateInfo) bool {
		f, ok := vk.Get[*vk.PhysicalDeviceShaderImageAtomicInt64FeaturesEXT](d)
		return ok && (f.ShaderImageInt64Atomics.Bool() || f.SparseImageInt64Atomics.Bool())
	}},
}

var swapchainRules = []extRule[vk.SwapchainCreateInfoKHR]{
	{ExtSwapchainColorspace, func(s *vk.SwapchainCreateInfoKHR) bool { return isExtendedColorSpace(s.ImageColorSpace) }},
}

var surfaceCapabilitiesRules = []extRule[vk.SurfaceCapabilities2KHR]{
	{ExtSharedPresentableImage, func(c *vk.SurfaceCapabilities2KHR) bool {
		s, ok := vk.Get[*vk.SharedPresentSurfaceCapabilitiesKHR](c)
		return ok && s.SharedPresentSupportedUsageFlags != 0
	}},
}
