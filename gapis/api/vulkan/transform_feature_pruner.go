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

package vulkan

import (
	"context"

	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

// FeaturePruner rewrites the creation requests of a replayed trace so that
// they only ask for the features and extensions the captured application
// was observed to use.
//
// Ledger must come from ended tracking sessions. For instances it should
// be the union of every device's observations.
type FeaturePruner struct {
	Ledger *features.Ledger
}

// PruneDevice adjusts info in place and reports what was removed.
func (p FeaturePruner) PruneDevice(ctx context.Context, info *vk.DeviceCreateInfo) *Report {
	ctx = log.Enter(ctx, "PruneDevice")
	r := &Report{Target: DeviceTarget}

	enabled := features.NewExtensionSet(info.EnabledExtensionNames...)
	r.Extensions = p.Ledger.AdjustDeviceExtensions(enabled)
	info.EnabledExtensionNames = keep(info.EnabledExtensionNames, enabled)
	r.Structures = p.Ledger.AdjustDeviceCreateInfo(info, enabled)

	switch {
	case info.EnabledFeatures != nil:
		r.addFeatures(features.Core10, p.Ledger.AdjustCore10(info.EnabledFeatures))
	default:
		if f2, ok := vk.Get[*vk.PhysicalDeviceFeatures2](info); ok {
			r.addFeatures(features.Core10, p.Ledger.AdjustCore10(&f2.Features))
		}
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan11Features](info); ok {
		r.addFeatures(features.Core11, p.Ledger.AdjustCore11(f))
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan12Features](info); ok {
		r.addFeatures(features.Core12, p.Ledger.AdjustCore12(f))
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan13Features](info); ok {
		r.addFeatures(features.Core13, p.Ledger.AdjustCore13(f))
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan14Features](info); ok {
		r.addFeatures(features.Core14, p.Ledger.AdjustCore14(f))
	}

	r.log(ctx)
	return r
}

// PruneInstance adjusts info in place and reports what was removed.
func (p FeaturePruner) PruneInstance(ctx context.Context, info *vk.InstanceCreateInfo) *Report {
	ctx = log.Enter(ctx, "PruneInstance")
	r := &Report{Target: InstanceTarget}

	enabled := features.NewExtensionSet(info.EnabledExtensionNames...)
	r.Extensions = p.Ledger.AdjustInstanceExtensions(enabled)
	info.EnabledExtensionNames = keep(info.EnabledExtensionNames, enabled)
	r.Structures = p.Ledger.AdjustInstanceCreateInfo(info, enabled)

	r.log(ctx)
	return r
}

// keep returns the names that are still in set, in their original order.
func keep(names []string, set features.ExtensionSet) []string {
	out := names[:0]
	for _, n := range names {
		if set.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
