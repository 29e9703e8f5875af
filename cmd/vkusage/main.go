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

// The vkusage command inspects SPIR-V modules and request files, and prunes
// the features and extensions a captured application never used from its
// creation requests.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracetooltests/vkusage/core/app"
)

func main() {
	app.Run(func(ctx context.Context) error {
		root := newRoot()
		root.SetArgs(os.Args[1:])
		return root.ExecuteContext(ctx)
	})
}

func newRoot() *cobra.Command {
	var cleanup app.Cleanup
	root := &cobra.Command{
		Use:           "vkusage",
		Short:         "Vulkan feature usage tracking and request pruning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var err error
			cleanup, err = app.UpdateLogging(c.Context(), &app.Flags)
			return err
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			cleanup = cleanup.Invoke(c.Context())
		},
	}
	app.Flags.Bind(root.PersistentFlags())
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return app.UsageError{Reason: err.Error() + "\n" + c.UsageString()}
	})
	root.AddCommand(scanCmd())
	root.AddCommand(adjustCmd())
	root.AddCommand(featuresCmd())
	root.AddCommand(versionCmd())
	return root
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if err := validate(c, args); err != nil {
			return app.UsageError{Reason: err.Error() + "\n" + c.UsageString()}
		}
		return nil
	}
}
