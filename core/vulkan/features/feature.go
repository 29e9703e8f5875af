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

// Package features records which optional Vulkan device features and
// extensions a traced application actually exercised, and strips the unused
// ones from capability requests before replay.
//
// A Ledger is filled by the classifier methods, one per intercepted Vulkan
// call, which must only be called after the driver call succeeded. The
// Adjust methods then clear requested features that have a classifier but
// were never observed.
package features

import "fmt"

// Generation is a Vulkan core version's feature structure.
type Generation uint8

const (
	Core10 Generation = iota // VkPhysicalDeviceFeatures
	Core11                   // VkPhysicalDeviceVulkan11Features
	Core12                   // VkPhysicalDeviceVulkan12Features
	Core13                   // VkPhysicalDeviceVulkan13Features
	Core14                   // VkPhysicalDeviceVulkan14Features

	generationCount
)

// Generations lists every generation, oldest first.
var Generations = []Generation{Core10, Core11, Core12, Core13, Core14}

func (g Generation) String() string {
	if g >= generationCount {
		return fmt.Sprintf("Generation(%d)", uint8(g))
	}
	return fmt.Sprintf("core1%d", uint8(g))
}

// Version returns the Vulkan API version of the generation, such as "1.2".
func (g Generation) Version() string { return fmt.Sprintf("1.%d", uint8(g)) }

// ParseGeneration returns the generation named by s, either as "core12" or
// as the version "1.2".
func ParseGeneration(s string) (Generation, error) {
	for _, g := range Generations {
		if s == g.String() || s == g.Version() {
			return g, nil
		}
	}
	return 0, fmt.Errorf("Unknown feature generation %q", s)
}

type descriptor struct {
	name string
	gen  Generation
}

var (
	byName  = map[string]Feature{}
	byGen   [generationCount][]Feature
	handled [featureCount]bool
)

func init() {
	for f := Feature(0); f < featureCount; f++ {
		d := descriptors[f]
		byName[d.name] = f
		byGen[d.gen] = append(byGen[d.gen], f)
	}
	for _, list := range adjustable {
		for _, f := range list {
			handled[f] = true
		}
	}
}

// Name returns the Vulkan field name of the feature, such as "dualSrcBlend".
func (f Feature) Name() string {
	if f >= featureCount {
		return fmt.Sprintf("Feature(%d)", uint16(f))
	}
	return descriptors[f].name
}

func (f Feature) String() string { return f.Name() }

// Generation returns the feature structure that declares f.
func (f Feature) Generation() Generation { return descriptors[f].gen }

// Handled returns true if a classifier detects uses of f. Features that are
// not handled are never marked and never cleared by the adjuster.
func (f Feature) Handled() bool { return handled[f] }

// Lookup returns the feature with the Vulkan field name name.
func Lookup(name string) (Feature, bool) {
	f, ok := byName[name]
	return f, ok
}

// All returns the features of gen in declaration order.
func All(gen Generation) []Feature {
	if gen >= generationCount {
		return nil
	}
	return append([]Feature(nil), byGen[gen]...)
}
