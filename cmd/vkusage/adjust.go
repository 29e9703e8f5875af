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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tracetooltests/vkusage/core/app"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/gapis/api/vulkan"
	"github.com/tracetooltests/vkusage/gapis/config"
	"google.golang.org/protobuf/encoding/protodelim"
)

type adjustFlags struct {
	Request string
	Shaders []string
	Out     string
	Format  string
	Record  bool
}

func adjustCmd() *cobra.Command {
	flags := adjustFlags{Format: "text"}
	c := &cobra.Command{
		Use:   "adjust",
		Short: "Remove unused features and extensions from a request file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(c *cobra.Command, args []string) error {
			return adjust(c, flags)
		},
	}
	c.Flags().StringVar(&flags.Request, "request", "", "the request file to adjust")
	c.Flags().StringArrayVar(&flags.Shaders, "shader", nil, "a SPIR-V module used by the application (repeatable)")
	c.Flags().StringVar(&flags.Out, "out", "", "write the adjusted request to this file, - for stdout")
	c.Flags().StringVar(&flags.Format, "format", flags.Format, "the report format (text, json, proto)")
	c.Flags().BoolVar(&flags.Record, "record", false, "store the observed uses in the adjusted request")
	return c
}

func adjust(c *cobra.Command, flags adjustFlags) error {
	ctx := log.Enter(c.Context(), "adjust")
	switch {
	case flags.Request == "":
		return app.UsageError{Reason: "--request is required"}
	case flags.Format != "text" && flags.Format != "json" && flags.Format != "proto":
		return app.UsageError{Reason: fmt.Sprintf("unknown report format %q", flags.Format)}
	}
	req, err := config.Load(flags.Request)
	if err != nil {
		return err
	}
	seed := features.New()
	req.Seed(seed)
	l := seed
	if len(flags.Shaders) > 0 {
		if l, _, err = scanShaders(ctx, seed, flags.Shaders); err != nil {
			return err
		}
	}

	device, instance := req.DeviceCreateInfo(), req.InstanceCreateInfo()
	p := vulkan.FeaturePruner{Ledger: l}
	reports := []*vulkan.Report{
		p.PruneInstance(ctx, instance),
		p.PruneDevice(ctx, device),
	}
	req.Update(device, instance)
	if flags.Record {
		req.Record(l)
	}

	if err := writeReports(c.OutOrStdout(), flags.Format, reports); err != nil {
		return err
	}
	return saveRequest(c.OutOrStdout(), flags.Out, req)
}

func writeReports(w io.Writer, format string, reports []*vulkan.Report) error {
	for _, r := range reports {
		switch format {
		case "json":
			if err := r.WriteJSON(w); err != nil {
				return err
			}
			fmt.Fprintln(w)
		case "proto":
			pb, err := r.ToProto()
			if err != nil {
				return err
			}
			if _, err := protodelim.MarshalTo(w, pb); err != nil {
				return errors.Wrap(err, "Writing report")
			}
		default:
			fmt.Fprintln(w, r)
		}
	}
	return nil
}

func saveRequest(stdout io.Writer, path string, req *config.Request) error {
	switch path {
	case "":
		return nil
	case "-":
		return req.Save(stdout)
	}
	b := &bytes.Buffer{}
	if err := req.Save(b); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, b.Bytes(), 0644), "Writing request file")
}
