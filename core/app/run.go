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

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/tracetooltests/vkusage/core/log"
)

var (
	// Flags holds the logging flags, bound by the main program's command tree.
	Flags = logDefaults()
	// ExitFuncForTesting can be set to change the behaviour when the
	// application exits. It defaults to os.Exit
	ExitFuncForTesting = os.Exit
)

// UsageError is returned from a main function when the command line was
// not valid. Run maps it to UsageExit.
type UsageError struct{ Reason string }

func (e UsageError) Error() string { return e.Reason }

// Run performs all the work needed to start up an application.
// It builds a primary context that is cancelled on interrupt, runs main and
// converts its result into the process exit code.
func Run(main func(ctx context.Context) error) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			ExitFuncForTesting(int(cause))
		default:
			panic(cause)
		}
	}()

	rootCtx := prepareContext(&Flags)
	ctx, cancel := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer LogHandler.Close()

	err := main(ctx)
	var usage UsageError
	switch {
	case err == nil:
	case errors.As(err, &usage):
		fmt.Fprintln(os.Stderr, usage.Reason)
		panic(UsageExit)
	default:
		log.F(ctx, true, "Main failed\nError: %v", err)
	}
}
