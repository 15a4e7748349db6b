// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"context"
	"sync"

	"fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/internal/run"
	"fillmore-labs.com/bindguard/syntax"
)

// Public API constants for the bindguard analyzer.
const (
	Name = "bindguard"
	Doc  = `bindguard reports variables read before they are bound on every path`
	URL  = "https://pkg.go.dev/fillmore-labs.com/bindguard"
)

// Diagnostic is a finding of the analyzer.
type Diagnostic = report.Diagnostic

// Analyzer checks parsed files for reads of variables that are not safe.
type Analyzer struct {
	opts *run.Options

	once    sync.Once
	checker *run.Checker
}

// New creates a new instance of the bindguard analyzer.
// It allows for programmatic configuration using [Option]. Flags registered
// with [Analyzer.RegisterFlags] modify the configuration until the first file
// is analyzed.
func New(opts ...Option) *Analyzer {
	return &Analyzer{opts: makeRunOptions(opts)}
}

// Analyze reports the diagnostics of f, sorted by position.
// It is safe for concurrent use.
func (a *Analyzer) Analyze(ctx context.Context, f *syntax.File) []Diagnostic {
	a.once.Do(func() { a.checker = a.opts.Checker() })

	return a.checker.Run(ctx, f)
}
