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

// Package run implements the bindguard pipeline: the per-file analysis and the
// multi-file driver.
package run

import (
	"context"
	"runtime/trace"
	"slices"

	lru "github.com/hashicorp/golang-lru"

	"fillmore-labs.com/bindguard/internal/astutil"
	"fillmore-labs.com/bindguard/internal/config"
	"fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/internal/scope"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/safevars"
	"fillmore-labs.com/bindguard/syntax"
)

// Checker analyzes files with fixed options. It is safe for concurrent use.
type Checker struct {
	opts  Options
	cache *lru.Cache // full safe sets of scopes, keyed by scope node
}

// Checker creates a [Checker] from the current options.
func (o *Options) Checker() *Checker {
	c := &Checker{opts: *o}

	if o.CacheSize > 0 {
		c.cache, _ = lru.New(o.CacheSize) // only fails for non-positive sizes
	}

	return c
}

// Run executes the bindguard analysis of a single file.
func (c *Checker) Run(ctx context.Context, f *syntax.File) []report.Diagnostic {
	ctx, task := trace.NewTask(ctx, "BindGuard")
	defer task.End()

	currentFile := astutil.NewCurrentFile(f)
	if !currentFile.Valid() {
		return []report.Diagnostic{astutil.InternalError(syntax.Pos{Line: 1, Col: 1}, "File without valid syntax tree")}
	}

	trace.Log(ctx, "file", f.Name)

	// Skip generated files
	if currentFile.Generated() && !c.opts.Behavior.Enabled(config.IncludeGenerated) {
		return nil
	}

	// Skip files with nolint comment
	if currentFile.NoLintFile() && !c.opts.Behavior.Enabled(config.IgnoreSuppressions) {
		return nil
	}

	if !c.opts.Analyzers.Any() {
		return nil
	}

	// Stage 1: Collect lexical scopes and binding sites
	var scopes *scope.Index

	trace.WithRegion(ctx, "collectScopes", func() {
		scopes = scope.NewIndex(f.Module)
	})

	// Stage 2: Check every read against the names safe at its statement
	var diagnostics []report.Diagnostic

	trace.WithRegion(ctx, "checkReads", func() {
		fc := fileCheck{
			Checker: c,
			file:    currentFile,
			scopes:  scopes,
			index:   syntax.NewIndex(f.Module),
		}

		for s := range scopes.All() {
			if ctx.Err() != nil {
				return
			}

			diagnostics = append(diagnostics, fc.checkScope(s)...)
		}
	})

	slices.SortStableFunc(diagnostics, report.Compare)

	return diagnostics
}

type fileCheck struct {
	*Checker
	file   astutil.CurrentFile
	scopes *scope.Index
	index  *syntax.Index
}

// checkScope reports the reads of all statements in s.
func (fc *fileCheck) checkScope(s *scope.Scope) []report.Diagnostic {
	var diagnostics []report.Diagnostic

	for stmt := range syntax.InScope(s.Node) {
		if stmt == s.Node {
			continue
		}

		var (
			safe     names.Set
			reported = make(names.Set)
		)

		for _, use := range stmt.Uses() {
			if reported.Has(use.ID) || fc.ignored(s, use.ID) {
				continue
			}

			if safe == nil {
				safe = fc.safeAt(s, stmt)
			}

			if safe.Has(use.ID) {
				continue
			}

			d, ok := fc.check(s, use)
			if !ok {
				continue
			}

			reported.Add(use.ID)

			if !fc.opts.Behavior.Enabled(config.IgnoreSuppressions) && fc.file.NoLintComment(use.Pos()) {
				continue
			}

			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

// ignored reports whether reads of name in s are exempt from checking.
func (fc *fileCheck) ignored(s *scope.Scope, name string) bool {
	if fc.opts.Ignore.Has(name) || s.Implicit(name) || s.Declared.Has(name) || s.Stores.Has(name) {
		return true
	}

	for p := range s.Visible() {
		if p.Stores.Has(name) {
			return true
		}
	}

	return false
}

// check classifies a read of use in s that is not safe locally.
func (fc *fileCheck) check(s *scope.Scope, use *syntax.Name) (report.Diagnostic, bool) {
	name := use.ID

	// A function local is never looked up elsewhere
	if s.Binds(name) && !s.IsClass() {
		if _, module := s.Node.(*syntax.Module); module && fc.dynamic(name) {
			return report.Diagnostic{}, false
		}

		return fc.nonExhaustive(use, s)
	}

	for p, immediate := range s.Visible() {
		var safe names.Set
		if immediate {
			safe = fc.safeAt(p, s.Entry(p))
		} else {
			safe = fc.safeAfter(p)
		}

		if safe.Has(name) {
			return report.Diagnostic{}, false
		}

		if p.Binds(name) {
			if _, module := p.Node.(*syntax.Module); module && fc.dynamic(name) {
				return report.Diagnostic{}, false
			}

			return fc.nonExhaustive(use, p)
		}
	}

	if fc.dynamic(name) {
		return report.Diagnostic{}, false
	}

	if s.Binds(name) { // class attribute bound later in the class body
		return fc.nonExhaustive(use, s)
	}

	if !fc.opts.Analyzers.Enabled(config.UndefinedAnalyzer) || fc.scopes.Wildcard() {
		return report.Diagnostic{}, false
	}

	return report.UndefinedRead(use), true
}

// dynamic reports whether name may be bound at module level without a visible binding site.
func (fc *fileCheck) dynamic(name string) bool {
	return fc.file.File().Predeclared.Has(name) || fc.scopes.Globals().Has(name)
}

func (fc *fileCheck) nonExhaustive(use *syntax.Name, owner *scope.Scope) (report.Diagnostic, bool) {
	if !fc.opts.Analyzers.Enabled(config.NonExhaustiveAnalyzer) {
		return report.Diagnostic{}, false
	}

	return report.NonExhaustiveRead(use, owner.Bindings[use.ID]), true
}

// safeAt returns the names safe in s before stmt.
func (fc *fileCheck) safeAt(s *scope.Scope, stmt syntax.Node) names.Set {
	v := safevars.New(safevars.WithIndex(fc.index))
	v.Find(s.Node, stmt, nil)

	return v.Fold()
}

// safeAfter returns the names safe after s completed.
func (fc *fileCheck) safeAfter(s *scope.Scope) names.Set {
	if fc.cache != nil {
		if v, ok := fc.cache.Get(s.Node); ok {
			return v.(names.Set)
		}
	}

	v := safevars.New(safevars.WithIndex(fc.index))
	v.Find(s.Node, nil, nil)
	safe := v.Fold()

	if fc.cache != nil {
		fc.cache.Add(s.Node, safe)
	}

	return safe
}
