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
	"github.com/tracetooltests/vkusage/core/vulkan/spirv"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

func observed(l *features.Ledger) []string {
	var out []string
	for _, f := range l.Observed() {
		out = append(out, f.Name())
	}
	return out
}

func TestTessellationControlStage(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateGraphicsPipelines([]vk.GraphicsPipelineCreateInfo{{
		Stages: []vk.PipelineShaderStageCreateInfo{
			{Stage: vk.ShaderStageTessellationControlBit, Name: "main"},
		},
	}})
	assert.For(ctx, "observed").ThatSlice(observed(l)).Equals([]string{"tessellationShader"})
}

func TestColorBlendAttachments(t *testing.T) {
	ctx := log.Testing(t)
	same := vk.PipelineColorBlendAttachmentState{ColorWriteMask: 0xf}
	for _, test := range []struct {
		name        string
		attachments []vk.PipelineColorBlendAttachmentState
		independent bool
		dualSource  bool
	}{
		{"empty", nil, false, false},
		{"single", []vk.PipelineColorBlendAttachmentState{same}, false, false},
		{"identical", []vk.PipelineColorBlendAttachmentState{same, same, same}, false, false},
		{"write mask", []vk.PipelineColorBlendAttachmentState{same, same, {ColorWriteMask: 0x7}}, true, false},
		{"src1", []vk.PipelineColorBlendAttachmentState{{
			BlendEnable:         vk.True,
			SrcColorBlendFactor: vk.BlendFactorSrc1Color,
			ColorWriteMask:      0xf,
		}}, false, true},
		{"src1 on last", []vk.PipelineColorBlendAttachmentState{same, {
			DstAlphaBlendFactor: vk.BlendFactorOneMinusSrc1Alpha,
			ColorWriteMask:      0xf,
		}}, true, true},
	} {
		l := features.New()
		l.ColorBlendState(&vk.PipelineColorBlendStateCreateInfo{Attachments: test.attachments})
		assert.For(ctx, "%v independentBlend", test.name).ThatBoolean(l.Has(features.IndependentBlend)).Equals(test.independent)
		assert.For(ctx, "%v dualSrcBlend", test.name).ThatBoolean(l.Has(features.DualSrcBlend)).Equals(test.dualSource)
	}
}

func TestGraphicsPipelineStates(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateGraphicsPipelines([]vk.GraphicsPipelineCreateInfo{{
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{
			DepthClampEnable: vk.True,
			PolygonMode:      vk.PolygonModeLine,
			DepthBiasClamp:   0.5,
			LineWidth:        2,
		},
		MultisampleState:  &vk.PipelineMultisampleStateCreateInfo{SampleShadingEnable: vk.True},
		DepthStencilState: &vk.PipelineDepthStencilStateCreateInfo{DepthBoundsTestEnable: vk.True},
		ViewportState:     &vk.PipelineViewportStateCreateInfo{ViewportCount: 2, ScissorCount: 2},
		ColorBlendState:   &vk.PipelineColorBlendStateCreateInfo{LogicOpEnable: vk.True},
	}})
	for _, f := range []features.Feature{
		features.DepthClamp,
		features.FillModeNonSolid,
		features.DepthBiasClamp,
		features.WideLines,
		features.SampleRateShading,
		features.DepthBounds,
		features.MultiViewport,
		features.LogicOp,
	} {
		assert.For(ctx, "%v", f).ThatBoolean(l.Has(f)).IsTrue()
	}
	assert.For(ctx, "alphaToOne").ThatBoolean(l.Has(features.AlphaToOne)).IsFalse()
}

func TestDefaultPipelineMarksNothing(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateGraphicsPipelines([]vk.GraphicsPipelineCreateInfo{{
		Stages: []vk.PipelineShaderStageCreateInfo{
			{Stage: vk.ShaderStageVertexBit},
			{Stage: vk.ShaderStageFragmentBit},
		},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{LineWidth: 1},
		MultisampleState:   &vk.PipelineMultisampleStateCreateInfo{RasterizationSamples: vk.SampleCount1Bit},
		ViewportState:      &vk.PipelineViewportStateCreateInfo{ViewportCount: 1, ScissorCount: 1},
	}})
	l.CreateComputePipelines([]vk.ComputePipelineCreateInfo{{
		Stage: vk.PipelineShaderStageCreateInfo{Stage: vk.ShaderStageComputeBit},
	}})
	assert.For(ctx, "observed").ThatSlice(observed(l)).IsEmpty()
}

func TestSubgroupSizeControl(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	stage := vk.PipelineShaderStageCreateInfo{Stage: vk.ShaderStageComputeBit}
	vk.Append(&stage, &vk.PipelineShaderStageRequiredSubgroupSizeCreateInfo{RequiredSubgroupSize: 32})
	l.CreateComputePipelines([]vk.ComputePipelineCreateInfo{{Stage: stage}})
	assert.For(ctx, "chained").ThatBoolean(l.Has(features.SubgroupSizeControl)).IsTrue()
	assert.For(ctx, "full").ThatBoolean(l.Has(features.ComputeFullSubgroups)).IsFalse()

	l = features.New()
	l.CreateRayTracingPipelines([]vk.RayTracingPipelineCreateInfoKHR{{
		Stages: []vk.PipelineShaderStageCreateInfo{{
			Stage: vk.ShaderStageComputeBit,
			Flags: vk.PipelineShaderStageCreateAllowVaryingSubgroupSizeBit | vk.PipelineShaderStageCreateRequireFullSubgroupsBit,
		}},
	}})
	assert.For(ctx, "flagged").ThatBoolean(l.Has(features.SubgroupSizeControl)).IsTrue()
	assert.For(ctx, "full").ThatBoolean(l.Has(features.ComputeFullSubgroups)).IsTrue()
}

func TestResources(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateImage(&vk.ImageCreateInfo{
		ImageType: vk.ImageType2d,
		Flags:     vk.ImageCreateSparseBindingBit | vk.ImageCreateSparseResidencyBit,
		Samples:   vk.SampleCount4Bit,
		Usage:     vk.ImageUsageStorageBit,
	})
	l.CreateBuffer(&vk.BufferCreateInfo{Flags: vk.BufferCreateSparseAliasedBit})
	l.CreateImageView(&vk.ImageViewCreateInfo{ViewType: vk.ImageViewTypeCubeArray})
	l.CreateSampler(&vk.SamplerCreateInfo{AddressModeV: vk.SamplerAddressModeMirrorClampToEdge})
	l.CreateQueryPool(&vk.QueryPoolCreateInfo{QueryType: vk.QueryTypePipelineStatistics, PipelineStatistics: 1})
	assert.For(ctx, "observed").ThatSlice(observed(l)).Equals([]string{
		"imageCubeArray",
		"pipelineStatisticsQuery",
		"shaderStorageImageMultisample",
		"sparseBinding",
		"sparseResidency4Samples",
		"sparseResidencyAliased",
		"samplerMirrorClampToEdge",
	})
}

func TestTimelineSemaphore(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateSemaphore(&vk.SemaphoreCreateInfo{})
	assert.For(ctx, "binary").ThatBoolean(l.Has(features.TimelineSemaphore)).IsFalse()
	info := &vk.SemaphoreCreateInfo{}
	vk.Append(info, &vk.SemaphoreTypeCreateInfo{SemaphoreType: vk.SemaphoreTypeTimeline})
	l.CreateSemaphore(info)
	assert.For(ctx, "timeline").ThatBoolean(l.Has(features.TimelineSemaphore)).IsTrue()
}

func TestBeginCommandBuffer(t *testing.T) {
	ctx := log.Testing(t)
	info := &vk.CommandBufferBeginInfo{InheritanceInfo: &vk.CommandBufferInheritanceInfo{OcclusionQueryEnable: vk.True}}
	l := features.New()
	l.BeginCommandBuffer(info, vk.CommandBufferLevelPrimary)
	assert.For(ctx, "primary").ThatBoolean(l.Has(features.InheritedQueries)).IsFalse()
	l.BeginCommandBuffer(info, vk.CommandBufferLevelSecondary)
	assert.For(ctx, "secondary").ThatBoolean(l.Has(features.InheritedQueries)).IsTrue()
}

func TestCommands(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CmdDrawIndirect(1)
	l.CmdSetViewport(0, 1)
	l.CmdSetLineWidth(1)
	l.CmdSetDepthBias(1, 0, 1)
	l.CmdBindIndexBuffer(vk.IndexTypeUint16)
	l.CmdBeginQuery(0)
	assert.For(ctx, "benign").ThatSlice(observed(l)).IsEmpty()

	l.CmdDrawIndexedIndirect(4)
	l.CmdSetScissor(1, 1)
	l.CmdSetLineWidth(3)
	l.CmdSetDepthBias(0, 0.25, 0)
	l.CmdBindIndexBuffer2(vk.IndexTypeUint32)
	l.CmdBeginQuery(vk.QueryControlPreciseBit)
	l.CmdDrawIndirectCount()
	l.ResetQueryPool(0)
	l.CmdBeginRendering(&vk.RenderingInfo{})
	l.QueueSubmit2(nil)
	l.GetBufferDeviceAddress(&vk.BufferDeviceAddressInfo{})
	for _, f := range []features.Feature{
		features.MultiDrawIndirect,
		features.MultiViewport,
		features.WideLines,
		features.DepthBiasClamp,
		features.FullDrawIndexUint32,
		features.OcclusionQueryPrecise,
		features.DrawIndirectCount,
		features.HostQueryReset,
		features.DynamicRendering,
		features.Synchronization2,
		features.BufferDeviceAddress,
	} {
		assert.For(ctx, "%v", f).ThatBoolean(l.Has(f)).IsTrue()
	}
	assert.For(ctx, "uint8").ThatBoolean(l.Has(features.IndexTypeUint8)).IsFalse()
}

func TestShaderModule(t *testing.T) {
	ctx := log.Testing(t)
	code := []uint32{
		spirv.Magic, 0x00010000, 0, 8, 0,
		2<<16 | spirv.OpCapability, uint32(spirv.Shader),
		2<<16 | spirv.OpCapability, uint32(spirv.Int64),
		3<<16 | spirv.OpMemoryModel, 0, 1,
	}
	l := features.New()
	l.CreateShaderModule(ctx, &vk.ShaderModuleCreateInfo{CodeSize: len(code) * 4, Code: code})
	assert.For(ctx, "observed").ThatSlice(observed(l)).Equals([]string{"shaderInt64"})
}

func TestTruncatedShaderModuleKeepsCapabilities(t *testing.T) {
	ctx := log.Testing(t)
	code := []uint32{
		spirv.Magic, 0x00010000, 0, 8, 0,
		2<<16 | spirv.OpCapability, uint32(spirv.Geometry),
		0,
	}
	l := features.New()
	l.CreateShaderModule(ctx, &vk.ShaderModuleCreateInfo{CodeSize: len(code) * 4, Code: code})
	assert.For(ctx, "observed").ThatSlice(observed(l)).Equals([]string{"geometryShader"})
}

func TestViewportLayerCapability(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.MarkCapabilities([]spirv.Capability{spirv.ShaderViewportIndexLayerEXT, spirv.DemoteToHelperInvocation})
	for _, f := range []features.Feature{
		features.MultiViewport,
		features.ShaderOutputViewportIndex,
		features.ShaderOutputLayer,
		features.ShaderDemoteToHelperInvocation,
	} {
		assert.For(ctx, "%v", f).ThatBoolean(l.Has(f)).IsTrue()
	}
	assert.For(ctx, "matrix").ThatSlice(features.CapabilityFeatures(spirv.Matrix)).IsEmpty()
}

func TestExtensionUse(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateSwapchain(&vk.SwapchainCreateInfoKHR{ImageColorSpace: vk.ColorSpaceSrgbNonlinearKHR})
	assert.For(ctx, "srgb").ThatBoolean(l.HasExtension(features.ExtSwapchainColorspace)).IsFalse()
	l.CreateSharedSwapchains([]vk.SwapchainCreateInfoKHR{{ImageColorSpace: vk.ColorSpaceDisplayP3NonlinearEXT}})
	assert.For(ctx, "p3").ThatBoolean(l.HasExtension(features.ExtSwapchainColorspace)).IsTrue()

	caps := &vk.SurfaceCapabilities2KHR{}
	vk.Append(caps, &vk.SharedPresentSurfaceCapabilitiesKHR{SharedPresentSupportedUsageFlags: vk.ImageUsageStorageBit})
	l.GetPhysicalDeviceSurfaceCapabilities2(&vk.PhysicalDeviceSurfaceInfo2KHR{}, caps)
	assert.For(ctx, "shared").ThatBoolean(l.HasExtension(features.ExtSharedPresentableImage)).IsTrue()

	info := &vk.DeviceCreateInfo{}
	vk.Append(info, &vk.PhysicalDeviceShaderAtomicInt64Features{ShaderBufferInt64Atomics: vk.True})
	l.CreateDevice(info)
	assert.For(ctx, "int64").ThatBoolean(l.HasExtension(features.ExtShaderAtomicInt64)).IsTrue()
	assert.For(ctx, "image int64").ThatBoolean(l.HasExtension(features.ExtShaderImageAtomicInt64)).IsFalse()
}

func TestSparseResidencyImages(t *testing.T) {
	ctx := log.Testing(t)
	l := features.New()
	l.CreateImage(&vk.ImageCreateInfo{
		ImageType: vk.ImageType2d,
		Flags:     vk.ImageCreateSparseBindingBit,
		Samples:   vk.SampleCount4Bit,
	})
	assert.For(ctx, "binding only").ThatSlice(observed(l)).Equals([]string{"sparseBinding"})

	l = features.New()
	l.CreateImage(&vk.ImageCreateInfo{
		ImageType: vk.ImageType3d,
		Flags:     vk.ImageCreateSparseResidencyBit,
		Samples:   vk.SampleCount1Bit,
	})
	assert.For(ctx, "3d").ThatSlice(observed(l)).Equals([]string{"sparseResidencyImage3D"})

	l = features.New()
	l.CreateBuffer(&vk.BufferCreateInfo{Flags: vk.BufferCreateSparseResidencyBit})
	assert.For(ctx, "buffer").ThatSlice(observed(l)).Equals([]string{"sparseResidencyBuffer"})
}

// classifierCalls invokes one classifier each with arguments that mark the
// listed features.
var classifierCalls = []struct {
	name  string
	call  func(*features.Ledger)
	marks []features.Feature
}{
	{"PipelineShaderStage", func(l *features.Ledger) {
		l.PipelineShaderStage(&vk.PipelineShaderStageCreateInfo{Stage: vk.ShaderStageGeometryBit})
	}, []features.Feature{features.GeometryShader}},
	{"ColorBlendAttachment", func(l *features.Ledger) {
		l.ColorBlendAttachment(&vk.PipelineColorBlendAttachmentState{SrcAlphaBlendFactor: vk.BlendFactorSrc1Alpha})
	}, []features.Feature{features.DualSrcBlend}},
	{"MultisampleState", func(l *features.Ledger) {
		l.MultisampleState(&vk.PipelineMultisampleStateCreateInfo{AlphaToOneEnable: vk.True})
	}, []features.Feature{features.AlphaToOne}},
	{"RasterizationState", func(l *features.Ledger) {
		l.RasterizationState(&vk.PipelineRasterizationStateCreateInfo{PolygonMode: vk.PolygonModeLine, LineWidth: 1})
	}, []features.Feature{features.FillModeNonSolid}},
	{"CreateImage", func(l *features.Ledger) {
		l.CreateImage(&vk.ImageCreateInfo{
			ImageType: vk.ImageType2d,
			Flags:     vk.ImageCreateSparseResidencyBit,
			Samples:   vk.SampleCount2Bit,
		})
	}, []features.Feature{features.SparseResidency2Samples}},
	{"CreateSampler", func(l *features.Ledger) {
		l.CreateSampler(&vk.SamplerCreateInfo{AnisotropyEnable: vk.True})
	}, []features.Feature{features.SamplerAnisotropy}},
	{"BeginCommandBuffer", func(l *features.Ledger) {
		l.BeginCommandBuffer(&vk.CommandBufferBeginInfo{
			InheritanceInfo: &vk.CommandBufferInheritanceInfo{OcclusionQueryEnable: vk.True},
		}, vk.CommandBufferLevelSecondary)
	}, []features.Feature{features.InheritedQueries}},
	{"CmdDrawIndexedIndirectCount", func(l *features.Ledger) {
		l.CmdDrawIndexedIndirectCount()
	}, []features.Feature{features.DrawIndirectCount}},
	{"CmdBindIndexBuffer uint8", func(l *features.Ledger) {
		l.CmdBindIndexBuffer(vk.IndexTypeUint8)
	}, []features.Feature{features.IndexTypeUint8}},
	{"CmdBindIndexBuffer2 uint8", func(l *features.Ledger) {
		l.CmdBindIndexBuffer2(vk.IndexTypeUint8)
	}, []features.Feature{features.IndexTypeUint8}},
	{"CmdSetExclusiveScissorNV", func(l *features.Ledger) {
		l.CmdSetExclusiveScissorNV(0, 2)
	}, []features.Feature{features.MultiViewport}},
	{"CmdPipelineBarrier2", func(l *features.Ledger) {
		l.CmdPipelineBarrier2(&vk.DependencyInfo{})
	}, []features.Feature{features.Synchronization2}},
	{"GetBufferOpaqueCaptureAddress", func(l *features.Ledger) {
		l.GetBufferOpaqueCaptureAddress(&vk.BufferDeviceAddressInfo{})
	}, []features.Feature{features.BufferDeviceAddressCaptureReplay}},
	{"CreateQueryPool", func(l *features.Ledger) {
		l.CreateQueryPool(&vk.QueryPoolCreateInfo{QueryType: vk.QueryTypePipelineStatistics, PipelineStatistics: 1})
	}, []features.Feature{features.PipelineStatisticsQuery}},
	{"CmdSetDepthBias", func(l *features.Ledger) {
		l.CmdSetDepthBias(0, 1, 0)
	}, []features.Feature{features.DepthBiasClamp}},
}

func TestClassifiers(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range classifierCalls {
		l := features.New()
		test.call(l)
		assert.For(ctx, test.name).ThatSlice(l.Observed()).Equals(test.marks)
	}
}

func TestClassifiersAreIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range classifierCalls {
		once, twice := features.New(), features.New()
		test.call(once)
		test.call(twice)
		test.call(twice)
		assert.For(ctx, test.name).ThatSlice(observed(twice)).Equals(observed(once))
	}
}
