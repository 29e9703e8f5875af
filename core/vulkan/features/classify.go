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

// The classifiers below must only be called once the corresponding Vulkan
// call has returned success. They read their arguments and mark the ledger,
// and never modify the arguments.

// PipelineShaderStage classifies one shader stage of a pipeline.
func (l *Ledger) PipelineShaderStage(s *vk.PipelineShaderStageCreateInfo) {
	apply(l, stageRules, s)
}

// ColorBlendAttachment classifies one color blend attachment.
func (l *Ledger) ColorBlendAttachment(a *vk.PipelineColorBlendAttachmentState) {
	apply(l, blendAttachmentRules, a)
}

// ColorBlendState classifies a color blend state and each of its attachments.
func (l *Ledger) ColorBlendState(s *vk.PipelineColorBlendStateCreateInfo) {
	apply(l, blendStateRules, s)
	for i := range s.Attachments {
		l.ColorBlendAttachment(&s.Attachments[i])
	}
}

func (l *Ledger) MultisampleState(s *vk.PipelineMultisampleStateCreateInfo) {
	apply(l, multisampleRules, s)
}

func (l *Ledger) RasterizationState(s *vk.PipelineRasterizationStateCreateInfo) {
	apply(l, rasterizationRules, s)
}

func (l *Ledger) DepthStencilState(s *vk.PipelineDepthStencilStateCreateInfo) {
	apply(l, depthStencilRules, s)
}

func (l *Ledger) ViewportState(s *vk.PipelineViewportStateCreateInfo) {
	apply(l, viewportRules, s)
}

// CreateGraphicsPipelines classifies vkCreateGraphicsPipelines.
func (l *Ledger) CreateGraphicsPipelines(infos []vk.GraphicsPipelineCreateInfo) {
	for i := range infos {
		p := &infos[i]
		apply(l, graphicsPipelineRules, p)
		for j := range p.Stages {
			l.PipelineShaderStage(&p.Stages[j])
		}
		if p.ColorBlendState != nil {
			l.ColorBlendState(p.ColorBlendState)
		}
		if p.MultisampleState != nil {
			l.MultisampleState(p.MultisampleState)
		}
		if p.RasterizationState != nil {
			l.RasterizationState(p.RasterizationState)
		}
		if p.DepthStencilState != nil {
			l.DepthStencilState(p.DepthStencilState)
		}
		if p.ViewportState != nil {
			l.ViewportState(p.ViewportState)
		}
	}
}

// CreateComputePipelines classifies vkCreateComputePipelines.
func (l *Ledger) CreateComputePipelines(infos []vk.ComputePipelineCreateInfo) {
	for i := range infos {
		l.PipelineShaderStage(&infos[i].Stage)
	}
}

// CreateRayTracingPipelines classifies vkCreateRayTracingPipelinesKHR.
func (l *Ledger) CreateRayTracingPipelines(infos []vk.RayTracingPipelineCreateInfoKHR) {
	for i := range infos {
		for j := range infos[i].Stages {
			l.PipelineShaderStage(&infos[i].Stages[j])
		}
	}
}

func (l *Ledger) CreateImage(info *vk.ImageCreateInfo)         { apply(l, imageRules, info) }
func (l *Ledger) CreateBuffer(info *vk.BufferCreateInfo)       { apply(l, bufferRules, info) }
func (l *Ledger) CreateImageView(info *vk.ImageViewCreateInfo) { apply(l, imageViewRules, info) }
func (l *Ledger) CreateSampler(info *vk.SamplerCreateInfo)     { apply(l, samplerRules, info) }
func (l *Ledger) CreateQueryPool(info *vk.QueryPoolCreateInfo) { apply(l, queryPoolRules, info) }
func (l *Ledger) CreateSemaphore(info *vk.SemaphoreCreateInfo) { apply(l, semaphoreRules, info) }

// BeginCommandBuffer classifies vkBeginCommandBuffer. The inheritance info
// of a primary command buffer may be garbage, so it is only read when level
// is secondary.
func (l *Ledger) BeginCommandBuffer(info *vk.CommandBufferBeginInfo, level vk.CommandBufferLevel) {
	if level != vk.CommandBufferLevelSecondary || info.InheritanceInfo == nil {
		return
	}
	apply(l, inheritanceRules, info.InheritanceInfo)
}

// CreateDevice records the extension feature structures chained from a
// device creation.
func (l *Ledger) CreateDevice(info *vk.DeviceCreateInfo) { applyExt(l, deviceRules, info) }

func (l *Ledger) CreateSwapchain(info *vk.SwapchainCreateInfoKHR) {
	applyExt(l, swapchainRules, info)
}

func (l *Ledger) CreateSharedSwapchains(infos []vk.SwapchainCreateInfoKHR) {
	for i := range infos {
		l.CreateSwapchain(&infos[i])
	}
}

// GetPhysicalDeviceSurfaceCapabilities2 classifies the output of
// vkGetPhysicalDeviceSurfaceCapabilities2KHR.
func (l *Ledger) GetPhysicalDeviceSurfaceCapabilities2(info *vk.PhysicalDeviceSurfaceInfo2KHR, caps *vk.SurfaceCapabilities2KHR) {
	applyExt(l, surfaceCapabilitiesRules, caps)
}

func (l *Ledger) CmdDrawIndirect(drawCount uint32) {
	if drawCount > 1 {
		l.Mark(MultiDrawIndirect)
	}
}

func (l *Ledger) CmdDrawIndexedIndirect(drawCount uint32) { l.CmdDrawIndirect(drawCount) }

func (l *Ledger) CmdDrawIndirectCount()        { l.Mark(DrawIndirectCount) }
func (l *Ledger) CmdDrawIndexedIndirectCount() { l.Mark(DrawIndirectCount) }

func (l *Ledger) CmdBindIndexBuffer(indexType vk.IndexType) {
	switch indexType {
	case vk.IndexTypeUint32:
		l.Mark(FullDrawIndexUint32)
	case vk.IndexTypeUint8:
		l.Mark(IndexTypeUint8)
	}
}

func (l *Ledger) CmdBindIndexBuffer2(indexType vk.IndexType) { l.CmdBindIndexBuffer(indexType) }

func (l *Ledger) CmdSetViewport(first, count uint32) {
	if first != 0 || count != 1 {
		l.Mark(MultiViewport)
	}
}

func (l *Ledger) CmdSetScissor(first, count uint32)            { l.CmdSetViewport(first, count) }
func (l *Ledger) CmdSetExclusiveScissorNV(first, count uint32) { l.CmdSetViewport(first, count) }

func (l *Ledger) CmdSetLineWidth(width float32) {
	if width != 1 {
		l.Mark(WideLines)
	}
}

func (l *Ledger) CmdSetDepthBias(constantFactor, clamp, slopeFactor float32) {
	if clamp != 0 {
		l.Mark(DepthBiasClamp)
	}
}

func (l *Ledger) CmdBeginQuery(flags vk.QueryControlFlags) {
	if flags&vk.QueryControlPreciseBit != 0 {
		l.Mark(OcclusionQueryPrecise)
	}
}

func (l *Ledger) CmdBeginRendering(info *vk.RenderingInfo)    { l.Mark(DynamicRendering) }
func (l *Ledger) CmdPipelineBarrier2(info *vk.DependencyInfo) { l.Mark(Synchronization2) }
func (l *Ledger) QueueSubmit2(submits []vk.SubmitInfo2)       { l.Mark(Synchronization2) }
func (l *Ledger) ResetQueryPool(pool vk.QueryPool)            { l.Mark(HostQueryReset) }

func (l *Ledger) GetBufferDeviceAddress(info *vk.BufferDeviceAddressInfo) {
	l.Mark(BufferDeviceAddress)
}

func (l *Ledger) GetBufferOpaqueCaptureAddress(info *vk.BufferDeviceAddressInfo) {
	l.Mark(BufferDeviceAddressCaptureReplay)
}
