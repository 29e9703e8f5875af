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
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"google.golang.org/protobuf/types/known/structpb"
)

// Target is the kind of object a Report was produced for.
type Target string

const (
	DeviceTarget   Target = "device"
	InstanceTarget Target = "instance"
)

// RemovedFeature is a device feature cleared from a request.
type RemovedFeature struct {
	Generation features.Generation
	Name       string
}

func (f RemovedFeature) String() string { return fmt.Sprintf("%v.%v", f.Generation, f.Name) }

// Report lists what a FeaturePruner removed from one creation request.
type Report struct {
	Target     Target
	Features   []RemovedFeature
	Extensions []string
	// Structures names the extensions whose feature structures were
	// unlinked from the request's chain.
	Structures []string
}

func (r *Report) addFeatures(gen features.Generation, names []string) {
	for _, n := range names {
		r.Features = append(r.Features, RemovedFeature{gen, n})
	}
}

// Empty returns true if nothing was removed.
func (r *Report) Empty() bool {
	return len(r.Features) == 0 && len(r.Extensions) == 0 && len(r.Structures) == 0
}

func (r *Report) log(ctx context.Context) {
	ctx = log.V{"target": r.Target}.Bind(ctx)
	for _, f := range r.Features {
		log.I(ctx, "Removed unused feature %v", f)
	}
	for _, e := range r.Extensions {
		log.I(ctx, "Removed unused extension %v", e)
	}
	for _, s := range r.Structures {
		log.I(ctx, "Unlinked feature structure of disabled extension %v", s)
	}
}

func (r *Report) String() string {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "%v:", r.Target)
	if r.Empty() {
		b.WriteString(" nothing removed")
		return b.String()
	}
	for _, f := range r.Features {
		fmt.Fprintf(b, "\n  feature    %v", f)
	}
	for _, e := range r.Extensions {
		fmt.Fprintf(b, "\n  extension  %v", e)
	}
	for _, s := range r.Structures {
		fmt.Fprintf(b, "\n  structure  %v", s)
	}
	return b.String()
}

// ToProto returns the report as a protobuf Struct.
func (r *Report) ToProto() (*structpb.Struct, error) {
	feats := make([]interface{}, len(r.Features))
	for i, f := range r.Features {
		feats[i] = map[string]interface{}{
			"generation": f.Generation.String(),
			"name":       f.Name,
		}
	}
	return structpb.NewStruct(map[string]interface{}{
		"target":     string(r.Target),
		"features":   feats,
		"extensions": stringList(r.Extensions),
		"structures": stringList(r.Structures),
	})
}

// Marshal returns the binary protobuf encoding of ToProto.
func (r *Report) Marshal() ([]byte, error) {
	pb, err := r.ToProto()
	if err != nil {
		return nil, err
	}
	data, err := proto.Marshal(pb)
	if err != nil {
		return nil, errors.Wrap(err, "Marshalling report")
	}
	return data, nil
}

// WriteJSON writes the JSON encoding of ToProto to w.
func (r *Report) WriteJSON(w io.Writer) error {
	pb, err := r.ToProto()
	if err != nil {
		return err
	}
	m := jsonpb.Marshaler{Indent: "  "}
	return errors.Wrap(m.Marshal(w, pb), "Writing report")
}

// UnmarshalReport decodes a report produced by Marshal.
func UnmarshalReport(data []byte) (*Report, error) {
	pb := &structpb.Struct{}
	if err := proto.Unmarshal(data, pb); err != nil {
		return nil, errors.Wrap(err, "Unmarshalling report")
	}
	m := pb.AsMap()
	r := &Report{Target: Target(fmt.Sprint(m["target"]))}
	if list, ok := m["features"].([]interface{}); ok {
		for _, v := range list {
			f, _ := v.(map[string]interface{})
			gen, err := features.ParseGeneration(fmt.Sprint(f["generation"]))
			if err != nil {
				return nil, err
			}
			r.Features = append(r.Features, RemovedFeature{gen, fmt.Sprint(f["name"])})
		}
	}
	r.Extensions = fromList(m["extensions"])
	r.Structures = fromList(m["structures"])
	return r, nil
}

func stringList(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func fromList(v interface{}) []string {
	list, _ := v.([]interface{})
	var out []string
	for _, s := range list {
		out = append(out, fmt.Sprint(s))
	}
	return out
}
