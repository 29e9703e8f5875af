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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tracetooltests/vkusage/core/app"
	"github.com/tracetooltests/vkusage/core/vulkan/features"
)

func featuresCmd() *cobra.Command {
	var generation string
	var handledOnly bool
	c := &cobra.Command{
		Use:   "features",
		Short: "List the device features and whether their use is detected",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(c *cobra.Command, args []string) error {
			gens := features.Generations
			if generation != "" {
				g, err := features.ParseGeneration(generation)
				if err != nil {
					return app.UsageError{Reason: err.Error()}
				}
				gens = []features.Generation{g}
			}
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "GENERATION\tFEATURE\tTRACKED")
			for _, g := range gens {
				for _, f := range features.All(g) {
					if handledOnly && !f.Handled() {
						continue
					}
					fmt.Fprintf(w, "%v\t%v\t%v\n", g, f, f.Handled())
				}
			}
			return w.Flush()
		},
	}
	c.Flags().StringVar(&generation, "generation", "", "only list this generation (core10..core14 or 1.0..1.4)")
	c.Flags().BoolVar(&handledOnly, "tracked", false, "only list features whose use is detected")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(c.OutOrStdout(), "%v version %v\n", app.Name, app.Version)
			return err
		},
	}
}
