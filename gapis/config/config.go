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

// Package config reads and writes request files: the instance and device
// creation requests of a captured application, in YAML, optionally together
// with the feature uses observed while tracing it.
package config

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/tracetooltests/vkusage/core/fault"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
	"gopkg.in/yaml.v3"
)

const (
	ErrUnknownFeature      = fault.Const("Unknown feature")
	ErrWrongGeneration     = fault.Const("Feature belongs to another generation")
	ErrUnknownExtension    = fault.Const("Unknown tracked extension")
	ErrDuplicateGeneration = fault.Const("Feature generation is listed twice")
)

// Request is the content of a request file.
type Request struct {
	Instance Instance  `yaml:"instance"`
	Device   Device    `yaml:"device"`
	Observed *Observed `yaml:"observed,omitempty"`
}

// Instance is an instance creation request.
type Instance struct {
	Extensions []string `yaml:"extensions,omitempty"`
}

// Device is a device creation request. Features maps a generation name,
// such as "core12", to the requested state of its features by name.
type Device struct {
	Extensions []string                   `yaml:"extensions,omitempty"`
	Features   map[string]map[string]bool `yaml:"features,omitempty"`
}

// Observed lists the feature and tracked extension uses recorded for the
// application.
type Observed struct {
	Features   []string `yaml:"features,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// Load reads and validates the request file at path.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Reading request file")
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Loading %v", path)
	}
	return r, nil
}

// Parse decodes and validates a request from YAML.
func Parse(data []byte) (*Request, error) {
	r := &Request{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "Parsing request")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that every feature and extension name is known. Feature
// generations given in version form, such as "1.2", are renamed to "core12".
func (r *Request) Validate() error {
	keys := make([]string, 0, len(r.Device.Features))
	for key := range r.Device.Features {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	named := make(map[string]map[string]bool, len(keys))
	for _, key := range keys {
		gen, err := features.ParseGeneration(key)
		if err != nil {
			return err
		}
		if _, dup := named[gen.String()]; dup {
			return errors.Wrapf(ErrDuplicateGeneration, "%q and %q", gen.String(), gen.Version())
		}
		feats := r.Device.Features[key]
		for name := range feats {
			if err := checkFeature(name, &gen); err != nil {
				return err
			}
		}
		named[gen.String()] = feats
	}
	if r.Device.Features != nil {
		r.Device.Features = named
	}
	if r.Observed == nil {
		return nil
	}
	for _, name := range r.Observed.Features {
		if err := checkFeature(name, nil); err != nil {
			return err
		}
	}
	for _, name := range r.Observed.Extensions {
		if _, ok := features.LookupExtension(name); !ok {
			return errors.Wrapf(ErrUnknownExtension, "%q", name)
		}
	}
	return nil
}

func checkFeature(name string, gen *features.Generation) error {
	f, ok := features.Lookup(name)
	switch {
	case !ok:
		return errors.Wrapf(ErrUnknownFeature, "%q", name)
	case gen != nil && f.Generation() != *gen:
		return errors.Wrapf(ErrWrongGeneration, "%q is in %v, not %v", name, f.Generation(), *gen)
	}
	return nil
}

// Save writes the request as YAML to w.
func (r *Request) Save(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r); err != nil {
		return errors.Wrap(err, "Writing request")
	}
	return e.Close()
}

// requested returns the features of gen named in the request, and whether
// the request names the generation at all.
func (r *Request) requested(gen features.Generation) (map[string]bool, bool) {
	m, ok := r.Device.Features[gen.String()]
	return m, ok
}

// fill sets the features of gen in req from the request.
func (r *Request) fill(gen features.Generation, req interface{}) {
	m, _ := r.requested(gen)
	for name, on := range m {
		f, _ := features.Lookup(name)
		features.SetRequested(req, f, on)
	}
}

// DeviceCreateInfo builds the device creation request. The 1.0 features are
// passed through EnabledFeatures, later generations are chained in order.
func (r *Request) DeviceCreateInfo() *vk.DeviceCreateInfo {
	info := &vk.DeviceCreateInfo{
		EnabledExtensionNames: append([]string(nil), r.Device.Extensions...),
	}
	if _, ok := r.requested(features.Core10); ok {
		info.EnabledFeatures = &vk.PhysicalDeviceFeatures{}
		r.fill(features.Core10, info.EnabledFeatures)
	}
	chain := []struct {
		gen features.Generation
		s   vk.Struct
	}{
		{features.Core11, &vk.PhysicalDeviceVulkan11Features{}},
		{features.Core12, &vk.PhysicalDeviceVulkan12Features{}},
		{features.Core13, &vk.PhysicalDeviceVulkan13Features{}},
		{features.Core14, &vk.PhysicalDeviceVulkan14Features{}},
	}
	for _, c := range chain {
		if _, ok := r.requested(c.gen); ok {
			r.fill(c.gen, c.s)
			vk.Append(info, c.s)
		}
	}
	return info
}

// InstanceCreateInfo builds the instance creation request.
func (r *Request) InstanceCreateInfo() *vk.InstanceCreateInfo {
	return &vk.InstanceCreateInfo{
		EnabledExtensionNames: append([]string(nil), r.Instance.Extensions...),
	}
}

// Update copies the extension lists and the features named in the request
// back from the creation requests. Either may be nil.
func (r *Request) Update(device *vk.DeviceCreateInfo, instance *vk.InstanceCreateInfo) {
	if instance != nil {
		r.Instance.Extensions = append([]string(nil), instance.EnabledExtensionNames...)
	}
	if device == nil {
		return
	}
	r.Device.Extensions = append([]string(nil), device.EnabledExtensionNames...)
	core10 := device.EnabledFeatures
	if core10 == nil {
		if f2, ok := vk.Get[*vk.PhysicalDeviceFeatures2](device); ok {
			core10 = &f2.Features
		}
	}
	if core10 != nil {
		r.read(features.Core10, core10)
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan11Features](device); ok {
		r.read(features.Core11, f)
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan12Features](device); ok {
		r.read(features.Core12, f)
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan13Features](device); ok {
		r.read(features.Core13, f)
	}
	if f, ok := vk.Get[*vk.PhysicalDeviceVulkan14Features](device); ok {
		r.read(features.Core14, f)
	}
}

func (r *Request) read(gen features.Generation, req interface{}) {
	m, _ := r.requested(gen)
	for name := range m {
		f, _ := features.Lookup(name)
		m[name] = features.Requested(req, f)
	}
}

// Seed marks the request's observed uses in l.
func (r *Request) Seed(l *features.Ledger) {
	if r.Observed == nil {
		return
	}
	for _, name := range r.Observed.Features {
		if f, ok := features.Lookup(name); ok {
			l.Mark(f)
		}
	}
	for _, name := range r.Observed.Extensions {
		if e, ok := features.LookupExtension(name); ok {
			l.MarkExtension(e)
		}
	}
}

// Record replaces the request's observed uses with those of l.
func (r *Request) Record(l *features.Ledger) {
	o := &Observed{}
	for _, f := range l.Observed() {
		o.Features = append(o.Features, f.Name())
	}
	for _, e := range l.ObservedExtensions() {
		o.Extensions = append(o.Extensions, e.Name())
	}
	sort.Strings(o.Extensions)
	r.Observed = o
}
