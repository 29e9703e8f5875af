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

func (*InstanceCreateInfo) SType() StructureType { return StructureTypeInstanceCreateInfo }
func (*DeviceQueueCreateInfo) SType() StructureType { return StructureTypeDeviceQueueCreateInfo }
func (*DeviceCreateInfo) SType() StructureType { return StructureTypeDeviceCreateInfo }
func (*ShaderModuleCreateInfo) SType() StructureType { return StructureTypeShaderModuleCreateInfo }
func (*PipelineShaderStageCreateInfo) SType() StructureType { return StructureTypePipelineShaderStageCreateInfo }
func (*PipelineShaderStageRequiredSubgroupSizeCreateInfo) SType() StructureType { return StructureTypePipelineShaderStageRequiredSubgroupSizeCreateInfo }
func (*PipelineColorBlendStateCreateInfo) SType() StructureType { return StructureTypePipelineColorBlendStateCreateInfo }
func (*PipelineMultisampleStateCreateInfo) SType() StructureType { return StructureTypePipelineMultisampleStateCreateInfo }
func (*PipelineRasterizationStateCreateInfo) SType() StructureType { return StructureTypePipelineRasterizationStateCreateInfo }
func (*PipelineDepthStencilStateCreateInfo) SType() StructureType { return StructureTypePipelineDepthStencilStateCreateInfo }
func (*PipelineViewportStateCreateInfo) SType() StructureType { return StructureTypePipelineViewportStateCreateInfo }
func (*GraphicsPipelineCreateInfo) SType() StructureType { return StructureTypeGraphicsPipelineCreateInfo }
func (*ComputePipelineCreateInfo) SType() StructureType { return StructureTypeComputePipelineCreateInfo }
func (*RayTracingPipelineCreateInfoKHR) SType() StructureType { return StructureTypeRayTracingPipelineCreateInfoKHR }
func (*ImageCreateInfo) SType() StructureType { return StructureTypeImageCreateInfo }
func (*BufferCreateInfo) SType() StructureType { return StructureTypeBufferCreateInfo }
func (*ImageViewCreateInfo) SType() StructureType { return StructureTypeImageViewCreateInfo }
func (*CommandBufferInheritanceInfo) SType() StructureType { return StructureTypeCommandBufferInheritanceInfo }
func (*CommandBufferBeginInfo) SType() StructureType { return StructureTypeCommandBufferBeginInfo }
func (*SemaphoreCreateInfo) SType() StructureType { return StructureTypeSemaphoreCreateInfo }
func (*SemaphoreTypeCreateInfo) SType() StructureType { return StructureTypeSemaphoreTypeCreateInfo }
func (*SwapchainCreateInfoKHR) SType() StructureType { return StructureTypeSwapchainCreateInfoKHR }
func (*PhysicalDeviceSurfaceInfo2KHR) SType() StructureType { return StructureTypePhysicalDeviceSurfaceInfo2KHR }
func (*SurfaceCapabilities2KHR) SType() StructureType { return StructureTypeSurfaceCapabilities2KHR }
func (*SharedPresentSurfaceCapabilitiesKHR) SType() StructureType { return StructureTypeSharedPresentSurfaceCapabilitiesKHR }
func (*SamplerCreateInfo) SType() StructureType { return StructureTypeSamplerCreateInfo }
func (*QueryPoolCreateInfo) SType() StructureType { return StructureTypeQueryPoolCreateInfo }
func (*RenderingInfo) SType() StructureType { return StructureTypeRenderingInfo }
func (*BufferDeviceAddressInfo) SType() StructureType { return StructureTypeBufferDeviceAddressInfo }
func (*DependencyInfo) SType() StructureType { return StructureTypeDependencyInfo }
func (*SubmitInfo2) SType() StructureType { return StructureTypeSubmitInfo2 }
