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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/protobuf/jsonpb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tracetooltests/vkusage/core/log"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
	"github.com/tracetooltests/vkusage/core/vulkan/spirv"
	"github.com/tracetooltests/vkusage/core/vulkan/vk"
	"github.com/tracetooltests/vkusage/gapii/tracker"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/structpb"
)

// offlineDevice stands in for the device of shaders scanned from files.
const offlineDevice = vk.Device(1)

type scanFlags struct {
	JSON bool
}

func scanCmd() *cobra.Command {
	flags := scanFlags{}
	c := &cobra.Command{
		Use:   "scan <file.spv>...",
		Short: "Report the features required by SPIR-V modules",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := log.Enter(c.Context(), "scan")
			l, exts, err := scanShaders(ctx, features.New(), args)
			if err != nil {
				return err
			}
			if flags.JSON {
				return writeScanJSON(c.OutOrStdout(), l, exts)
			}
			writeScanText(c.OutOrStdout(), l, exts)
			return nil
		},
	}
	c.Flags().BoolVar(&flags.JSON, "json", false, "print the result as JSON")
	return c
}

// scanShaders classifies the SPIR-V modules at paths concurrently through a
// tracking session seeded with seed. It returns the session's ledger and
// the SPIR-V extensions the modules declare.
func scanShaders(ctx context.Context, seed *features.Ledger, paths []string) (*features.Ledger, []string, error) {
	t := tracker.New()
	s, err := t.Begin(ctx, offlineDevice)
	if err != nil {
		return nil, nil, err
	}
	s.Observe(func(l *features.Ledger) { l.Merge(seed) })

	exts := make([][]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			ctx := log.V{"shader": path}.Bind(gctx)
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "Reading shader")
			}
			code, err := spirv.Words(data)
			if err != nil {
				return errors.Wrapf(err, "Decoding %v", path)
			}
			m, err := spirv.Scan(code, len(data))
			if err != nil {
				log.W(ctx, "Shader module scan stopped early: %v", err)
			}
			s.Observe(func(l *features.Ledger) { l.MarkCapabilities(m.Capabilities) })
			exts[i] = m.Extensions
			log.D(ctx, "%d capabilities", len(m.Capabilities))
			return nil
		})
	}
	werr := g.Wait()
	l, err := t.End(ctx, offlineDevice)
	if werr != nil {
		return nil, nil, werr
	}
	if err != nil {
		return nil, nil, err
	}
	return l, uniq(exts), nil
}

func uniq(lists [][]string) []string {
	set := features.ExtensionSet{}
	for _, list := range lists {
		for _, e := range list {
			set[e] = struct{}{}
		}
	}
	return set.Names()
}

func writeScanText(w io.Writer, l *features.Ledger, exts []string) {
	fmt.Fprintln(w, "features:")
	for _, f := range l.Observed() {
		fmt.Fprintf(w, "  %v.%v\n", f.Generation(), f)
	}
	if len(exts) > 0 {
		fmt.Fprintln(w, "spirv extensions:")
		for _, e := range exts {
			fmt.Fprintf(w, "  %v\n", e)
		}
	}
}

func writeScanJSON(w io.Writer, l *features.Ledger, exts []string) error {
	feats := []interface{}{}
	for _, f := range l.Observed() {
		feats = append(feats, map[string]interface{}{
			"generation": f.Generation().String(),
			"name":       f.Name(),
		})
	}
	spv := []interface{}{}
	for _, e := range exts {
		spv = append(spv, e)
	}
	pb, err := structpb.NewStruct(map[string]interface{}{
		"features":        feats,
		"spirvExtensions": spv,
	})
	if err != nil {
		return err
	}
	m := jsonpb.Marshaler{Indent: "  "}
	if err := m.Marshal(w, pb); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
