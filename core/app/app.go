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

// Package app provides the process scaffolding shared by the vkusage
// command line tools: logging setup, exit codes and cleanup.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// Name is the full name of the application
	Name string
	// Version holds the version specification for the application.
	Version = VersionSpec{Major: 1, Minor: 4, Point: -1}
)

// ExitCode is the type for named return values from the application main entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for successful termination.
	SuccessExit = ExitCode(0)
	// FatalExit is the exit code if something logs at a fatal severity.
	FatalExit = ExitCode(1)
	// UsageExit is the exit code if the command line was not valid.
	UsageExit = ExitCode(2)
)

// VersionSpec is the structure for the version of an application.
type VersionSpec struct {
	// Major version, the version structure is in valid if <0
	Major int
	// Minor version, not used if <0
	Minor int
	// Point version, not used if <0
	Point int
	// The build identifier, not used if an empty string
	Build string
}

// Format implements fmt.Formatter to print the version.
func (v VersionSpec) Format(f fmt.State, c rune) {
	fmt.Fprint(f, v.Major)
	if v.Minor >= 0 {
		fmt.Fprint(f, ".", v.Minor)
	}
	if v.Point >= 0 {
		fmt.Fprint(f, ".", v.Point)
	}
	if v.Build != "" {
		fmt.Fprint(f, ":", v.Build)
	}
}

func init() {
	base := filepath.Base(os.Args[0])
	Name = strings.TrimSuffix(base, filepath.Ext(base))
}
