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

import "fmt"

// StructureType is the VkStructureType tag that identifies a chained structure.
type StructureType uint32

const (
	StructureTypeApplicationInfo                                   = StructureType(0)
	StructureTypeInstanceCreateInfo                                = StructureType(1)
	StructureTypeDeviceQueueCreateInfo                             = StructureType(2)
	StructureTypeDeviceCreateInfo                                  = StructureType(3)
	StructureTypeSemaphoreCreateInfo                               = StructureType(9)
	StructureTypeQueryPoolCreateInfo                               = StructureType(11)
	StructureTypeBufferCreateInfo                                  = StructureType(12)
	StructureTypeImageCreateInfo                                   = StructureType(14)
	StructureTypeImageViewCreateInfo                               = StructureType(15)
	StructureTypeShaderModuleCreateInfo                            = StructureType(16)
	StructureTypePipelineShaderStageCreateInfo                     = StructureType(18)
	StructureTypePipelineViewportStateCreateInfo                   = StructureType(22)
	StructureTypePipelineRasterizationStateCreateInfo              = StructureType(23)
	StructureTypePipelineMultisampleStateCreateInfo                = StructureType(24)
	StructureTypePipelineDepthStencilStateCreateInfo               = StructureType(25)
	StructureTypePipelineColorBlendStateCreateInfo                 = StructureType(26)
	StructureTypeGraphicsPipelineCreateInfo                        = StructureType(28)
	StructureTypeComputePipelineCreateInfo                         = StructureType(29)
	StructureTypeSamplerCreateInfo                                 = StructureType(31)
	StructureTypeCommandBufferInheritanceInfo                      = StructureType(41)
	StructureTypeCommandBufferBeginInfo                            = StructureType(42)
	StructureTypePhysicalDeviceVulkan11Features                    = StructureType(49)
	StructureTypePhysicalDeviceVulkan12Features                    = StructureType(51)
	StructureTypePhysicalDeviceVulkan13Features                    = StructureType(53)
	StructureTypePhysicalDeviceVulkan14Features                    = StructureType(55)
	StructureTypeSwapchainCreateInfoKHR                            = StructureType(1000001000)
	StructureTypeRenderingInfo                                     = StructureType(1000044000)
	StructureTypePhysicalDeviceFeatures2                           = StructureType(1000059000)
	StructureTypeSharedPresentSurfaceCapabilitiesKHR               = StructureType(1000111000)
	StructureTypePhysicalDeviceSurfaceInfo2KHR                     = StructureType(1000119000)
	StructureTypeSurfaceCapabilities2KHR                           = StructureType(1000119001)
	StructureTypeRayTracingPipelineCreateInfoKHR                   = StructureType(1000150015)
	StructureTypePhysicalDeviceShaderAtomicInt64Features           = StructureType(1000180000)
	StructureTypeSemaphoreTypeCreateInfo                           = StructureType(1000207002)
	StructureTypePipelineShaderStageRequiredSubgroupSizeCreateInfo = StructureType(1000225001)
	StructureTypePhysicalDeviceShaderImageAtomicInt64FeaturesEXT   = StructureType(1000234000)
	StructureTypeBufferDeviceAddressInfo                           = StructureType(1000244001)
	StructureTypeDependencyInfo                                    = StructureType(1000314003)
	StructureTypeSubmitInfo2                                       = StructureType(1000314004)
)

var structureTypeNames = map[StructureType]string{
	StructureTypeApplicationInfo:                                   "ApplicationInfo",
	StructureTypeInstanceCreateInfo:                                "InstanceCreateInfo",
	StructureTypeDeviceQueueCreateInfo:                             "DeviceQueueCreateInfo",
	StructureTypeDeviceCreateInfo:                                  "DeviceCreateInfo",
	StructureTypeSemaphoreCreateInfo:                               "SemaphoreCreateInfo",
	StructureTypeQueryPoolCreateInfo:                               "QueryPoolCreateInfo",
	StructureTypeBufferCreateInfo:                                  "BufferCreateInfo",
	StructureTypeImageCreateInfo:                                   "ImageCreateInfo",
	StructureTypeImageViewCreateInfo:                               "ImageViewCreateInfo",
	StructureTypeShaderModuleCreateInfo:                            "ShaderModuleCreateInfo",
	StructureTypePipelineShaderStageCreateInfo:                     "PipelineShaderStageCreateInfo",
	StructureTypePipelineViewportStateCreateInfo:                   "PipelineViewportStateCreateInfo",
	StructureTypePipelineRasterizationStateCreateInfo:              "PipelineRasterizationStateCreateInfo",
	StructureTypePipelineMultisampleStateCreateInfo:                "PipelineMultisampleStateCreateInfo",
	StructureTypePipelineDepthStencilStateCreateInfo:               "PipelineDepthStencilStateCreateInfo",
	StructureTypePipelineColorBlendStateCreateInfo:                 "PipelineColorBlendStateCreateInfo",
	StructureTypeGraphicsPipelineCreateInfo:                        "GraphicsPipelineCreateInfo",
	StructureTypeComputePipelineCreateInfo:                         "ComputePipelineCreateInfo",
	StructureTypeSamplerCreateInfo:                                 "SamplerCreateInfo",
	StructureTypeCommandBufferInheritanceInfo:                      "CommandBufferInheritanceInfo",
	StructureTypeCommandBufferBeginInfo:                            "CommandBufferBeginInfo",
	StructureTypePhysicalDeviceVulkan11Features:                    "PhysicalDeviceVulkan11Features",
	StructureTypePhysicalDeviceVulkan12Features:                    "PhysicalDeviceVulkan12Features",
	StructureTypePhysicalDeviceVulkan13Features:                    "PhysicalDeviceVulkan13Features",
	StructureTypePhysicalDeviceVulkan14Features:                    "PhysicalDeviceVulkan14Features",
	StructureTypeSwapchainCreateInfoKHR:                            "SwapchainCreateInfoKHR",
	StructureTypeRenderingInfo:                                     "RenderingInfo",
	StructureTypePhysicalDeviceFeatures2:                           "PhysicalDeviceFeatures2",
	StructureTypeSharedPresentSurfaceCapabilitiesKHR:               "SharedPresentSurfaceCapabilitiesKHR",
	StructureTypePhysicalDeviceSurfaceInfo2KHR:                     "PhysicalDeviceSurfaceInfo2KHR",
	StructureTypeSurfaceCapabilities2KHR:                           "SurfaceCapabilities2KHR",
	StructureTypeRayTracingPipelineCreateInfoKHR:                   "RayTracingPipelineCreateInfoKHR",
	StructureTypePhysicalDeviceShaderAtomicInt64Features:           "PhysicalDeviceShaderAtomicInt64Features",
	StructureTypeSemaphoreTypeCreateInfo:                           "SemaphoreTypeCreateInfo",
	StructureTypePipelineShaderStageRequiredSubgroupSizeCreateInfo: "PipelineShaderStageRequiredSubgroupSizeCreateInfo",
	StructureTypePhysicalDeviceShaderImageAtomicInt64FeaturesEXT:   "PhysicalDeviceShaderImageAtomicInt64FeaturesEXT",
	StructureTypeBufferDeviceAddressInfo:                           "BufferDeviceAddressInfo",
	StructureTypeDependencyInfo:                                    "DependencyInfo",
	StructureTypeSubmitInfo2:                                       "SubmitInfo2",
}

func (t StructureType) String() string {
	if n, ok := structureTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("StructureType(%d)", uint32(t))
}
