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

package run

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/bindguard/internal/logflags"
	"fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/syntax"
	"fillmore-labs.com/bindguard/syntax/python"
	"fillmore-labs.com/bindguard/syntax/starlark"
)

// ErrUnknownDialect is returned for files without a supported source language.
var ErrUnknownDialect = errors.New("unknown source dialect")

// Result is the outcome of analyzing a single file.
type Result struct {
	Path        string
	File        *syntax.File // nil when the file could not be read or parsed
	Diagnostics []report.Diagnostic
	Err         error
}

// AnalyzeFunc analyzes a parsed file.
type AnalyzeFunc func(ctx context.Context, f *syntax.File) []report.Diagnostic

// Files analyzes the given paths with at most jobs files in flight, expanding
// directories. Results are returned in input order; a file that fails to parse
// does not stop the others.
func Files(ctx context.Context, paths []string, jobs int, analyze AnalyzeFunc) ([]Result, error) {
	log := logflags.PipelineLogger()

	files, err := Expand(paths)
	if err != nil {
		return nil, err
	}

	log.Debugf("analyzing %d files", len(files))

	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = analyzeFile(ctx, path, analyze)
			log.WithField("file", path).Debugf("%d diagnostics", len(results[i].Diagnostics))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func analyzeFile(ctx context.Context, path string, analyze AnalyzeFunc) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	f, err := Parse(ctx, path, src)
	if err != nil {
		logflags.ParserLogger().WithField("file", path).Debug(err)

		return Result{Path: path, Err: err}
	}

	return Result{Path: path, File: f, Diagnostics: analyze(ctx, f)}
}

// Parse selects the front-end for path and parses src.
func Parse(ctx context.Context, path string, src []byte) (*syntax.File, error) {
	switch DialectOf(path) {
	case syntax.Python:
		return python.Parse(ctx, path, src)

	case syntax.Starlark:
		return starlark.Parse(path, src)

	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownDialect)
	}
}

// DialectOf selects the source language by file name.
func DialectOf(path string) syntax.Dialect {
	base := filepath.Base(path)

	switch filepath.Ext(base) {
	case ".py", ".pyi":
		return syntax.Python

	case ".star", ".bzl", ".sky":
		return syntax.Starlark
	}

	switch strings.TrimSuffix(base, ".bazel") {
	case "BUILD", "WORKSPACE":
		return syntax.Starlark
	}

	return 0
}

// Expand replaces directories in paths by the supported files they contain.
// Explicitly named files are kept regardless of their name.
func Expand(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		var found []string

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != path && hidden(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if DialectOf(p) != 0 {
				found = append(found, p)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		slices.Sort(found)
		files = append(files, found...)
	}

	return files, nil
}

// hidden reports whether a directory is skipped during expansion.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || name == "__pycache__" || name == "node_modules"
}
