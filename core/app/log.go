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
	"os"
	"sync/atomic"

	"github.com/spf13/pflag"
	"github.com/tracetooltests/vkusage/core/log"
)

// LogHandler is the primary application logger target.
// It is assigned to the main context on startup and is closed on shutdown.
var LogHandler log.Indirect

// LogFlags holds the command line options that control logging.
type LogFlags struct {
	Level log.Severity
	Style log.Style
	File  string
}

func logDefaults() LogFlags {
	return LogFlags{
		Level: log.Info,
		Style: log.Normal,
	}
}

// Bind registers the logging flags on the given flag set.
func (f *LogFlags) Bind(fs *pflag.FlagSet) {
	fs.Var(&f.Level, "log-level", "the severity to log at (verbose, debug, info, warning, error, fatal)")
	fs.Var(&f.Style, "log-style", "the style of log output (raw, brief, normal, detailed)")
	fs.StringVar(&f.File, "log-file", "", "also write log messages to this file")
}

// levelFilter is a log.Filter whose threshold can change after the root
// context has been built.
type levelFilter struct{ level int32 }

func (f *levelFilter) set(s log.Severity) { atomic.StoreInt32(&f.level, int32(s)) }

func (f *levelFilter) ShowSeverity(s log.Severity) bool {
	return log.Severity(atomic.LoadInt32(&f.level)) <= s
}

var filter levelFilter

func wrapHandler(to log.Handler) log.Handler {
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

func prepareContext(flags *LogFlags) context.Context {
	LogHandler.SetTarget(wrapHandler(flags.Style.Handler(log.Std())))
	filter.set(flags.Level)
	ctx := context.Background()
	ctx = log.PutTag(ctx, Name)
	ctx = log.PutFilter(ctx, &filter)
	ctx = log.PutHandler(ctx, &LogHandler)
	return ctx
}

// UpdateLogging applies parsed logging flags to the application log handler.
// It returns a Cleanup that closes any log file that was opened.
func UpdateLogging(ctx context.Context, flags *LogFlags) (Cleanup, error) {
	filter.set(flags.Level)
	std := flags.Style.Handler(log.Std())
	if flags.File == "" {
		if old := LogHandler.SetTarget(wrapHandler(std)); old != nil {
			old.Close()
		}
		return nil, nil
	}
	file, err := os.Create(flags.File)
	if err != nil {
		return nil, log.Errf(ctx, err, "Failed to create log file %v", flags.File)
	}
	both := log.NewHandler(func(m *log.Message) {
		std.Handle(m)
		file.WriteString(flags.Style.Print(m))
		file.WriteString("\n")
	}, nil)
	if old := LogHandler.SetTarget(wrapHandler(both)); old != nil {
		old.Close()
	}
	log.I(ctx, "Logging to: %v", flags.File)
	return func(context.Context) { file.Close() }, nil
}
