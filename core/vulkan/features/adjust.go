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

import (
	"fmt"
	"reflect"

	"github.com/tracetooltests/vkusage/core/vulkan/vk"
)

// witnesses holds the features whose removal is decided by another feature
// having been observed. bufferDeviceAddressMultiDevice cannot be requested
// without bufferDeviceAddress.
var witnesses = map[Feature]Feature{
	BufferDeviceAddressMultiDevice: BufferDeviceAddress,
}

var requestTypes = [generationCount]reflect.Type{
	Core10: reflect.TypeOf(vk.PhysicalDeviceFeatures{}),
	Core11: reflect.TypeOf(vk.PhysicalDeviceVulkan11Features{}),
	Core12: reflect.TypeOf(vk.PhysicalDeviceVulkan12Features{}),
	Core13: reflect.TypeOf(vk.PhysicalDeviceVulkan13Features{}),
	Core14: reflect.TypeOf(vk.PhysicalDeviceVulkan14Features{}),
}

// fieldIndex is the index of each feature's field in its request structure.
var fieldIndex [featureCount]int

func init() {
	for f := Feature(0); f < featureCount; f++ {
		name := FieldName(f)
		sf, ok := requestTypes[f.Generation()].FieldByName(name)
		if !ok || len(sf.Index) != 1 {
			panic(fmt.Errorf("%v has no field %v", requestTypes[f.Generation()], name))
		}
		fieldIndex[f] = sf.Index[0]
	}
}

// FieldName returns the Go field name of f in its vk request structure.
func FieldName(f Feature) string {
	n := f.Name()
	return string(n[0]-'a'+'A') + n[1:]
}

// Requested returns true if f is set in req, which must be a pointer to the
// vk feature structure of f's generation.
func Requested(req interface{}, f Feature) bool {
	v := reflect.ValueOf(req).Elem()
	return v.Field(fieldIndex[f]).Uint() != 0
}

// SetRequested sets or clears f in req, which must be a pointer to the vk
// feature structure of f's generation.
func SetRequested(req interface{}, f Feature, on bool) {
	v := reflect.ValueOf(req).Elem()
	v.Field(fieldIndex[f]).SetUint(uint64(vk.Bool(on)))
}

func (l *Ledger) adjust(gen Generation, req interface{}) []string {
	v := reflect.ValueOf(req).Elem()
	var removed []string
	for _, f := range adjustable[gen] {
		field := v.Field(fieldIndex[f])
		if field.Uint() == 0 {
			continue
		}
		witness, ok := witnesses[f]
		if !ok {
			witness = f
		}
		if l.Has(witness) {
			continue
		}
		field.SetUint(uint64(vk.False))
		removed = append(removed, f.Name())
	}
	return removed
}

// AdjustCore10 clears the requested Vulkan 1.0 features that have a
// classifier but were never observed, and returns their names.
func (l *Ledger) AdjustCore10(req *vk.PhysicalDeviceFeatures) []string {
	if req == nil {
		return nil
	}
	return l.adjust(Core10, req)
}

// AdjustCore11 is AdjustCore10 for the Vulkan 1.1 features.
func (l *Ledger) AdjustCore11(req *vk.PhysicalDeviceVulkan11Features) []string {
	if req == nil {
		return nil
	}
	return l.adjust(Core11, req)
}

// AdjustCore12 is AdjustCore10 for the Vulkan 1.2 features.
// bufferDeviceAddressMultiDevice is only cleared along with
// bufferDeviceAddress.
func (l *Ledger) AdjustCore12(req *vk.PhysicalDeviceVulkan12Features) []string {
	if req == nil {
		return nil
	}
	return l.adjust(Core12, req)
}

// AdjustCore13 is AdjustCore10 for the Vulkan 1.3 features.
func (l *Ledger) AdjustCore13(req *vk.PhysicalDeviceVulkan13Features) []string {
	if req == nil {
		return nil
	}
	return l.adjust(Core13, req)
}

// AdjustCore14 is AdjustCore10 for the Vulkan 1.4 features.
func (l *Ledger) AdjustCore14(req *vk.PhysicalDeviceVulkan14Features) []string {
	if req == nil {
		return nil
	}
	return l.adjust(Core14, req)
}

var (
	deviceExtensionGuards   = []Extension{ExtShaderAtomicInt64, ExtShaderImageAtomicInt64, ExtSharedPresentableImage}
	instanceExtensionGuards = []Extension{ExtSwapchainColorspace}
)

func (l *Ledger) adjustExtensions(set ExtensionSet, guards []Extension) []string {
	var removed []string
	for _, e := range guards {
		if l.HasExtension(e) || !set.Has(e.Name()) {
			continue
		}
		delete(set, e.Name())
		removed = append(removed, e.Name())
	}
	return removed
}

// AdjustDeviceExtensions removes the tracked device extensions that were
// never observed from set, and returns their names.
func (l *Ledger) AdjustDeviceExtensions(set ExtensionSet) []string {
	return l.adjustExtensions(set, deviceExtensionGuards)
}

// AdjustInstanceExtensions removes the tracked instance extensions that
// were never observed from set, and returns their names.
func (l *Ledger) AdjustInstanceExtensions(set ExtensionSet) []string {
	return l.adjustExtensions(set, instanceExtensionGuards)
}

// chainGuard ties an extension to the feature structure it defines.
type chainGuard struct {
	ext   Extension
	stype vk.StructureType
}

var deviceChainGuards = []chainGuard{
	{ExtShaderAtomicInt64, vk.StructureTypePhysicalDeviceShaderAtomicInt64Features},
	{ExtShaderImageAtomicInt64, vk.StructureTypePhysicalDeviceShaderImageAtomicInt64FeaturesEXT},
}

// AdjustDeviceCreateInfo unlinks the extension feature structures chained
// from info whose extension is not in enabled. It returns the names of the
// extensions whose structures were removed.
func (l *Ledger) AdjustDeviceCreateInfo(info *vk.DeviceCreateInfo, enabled ExtensionSet) []string {
	var removed []string
	for _, g := range deviceChainGuards {
		if enabled.Has(g.ext.Name()) {
			continue
		}
		if vk.Prune(info, g.stype) {
			removed = append(removed, g.ext.Name())
		}
	}
	return removed
}

// AdjustInstanceCreateInfo is AdjustDeviceCreateInfo for instances. No
// instance level structures are tracked, so it never removes anything.
func (l *Ledger) AdjustInstanceCreateInfo(info *vk.InstanceCreateInfo, enabled ExtensionSet) []string {
	return nil
}
