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
	"log/slog"
	"slices"

	"fillmore-labs.com/bindguard/internal/config"
	"fillmore-labs.com/bindguard/internal/run"
	"fillmore-labs.com/bindguard/names"
)

// Option configures specific behavior of a [New] bindguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNonExhaustive is an [Option] to configure whether reads of variables not bound on every path are reported.
func WithNonExhaustive(nonExhaustive bool) Option {
	return nonExhaustiveOption{nonExhaustive: nonExhaustive}
}

type nonExhaustiveOption struct{ nonExhaustive bool }

func (o nonExhaustiveOption) apply(r *run.Options) {
	r.Analyzers.Set(config.NonExhaustiveAnalyzer, o.nonExhaustive)
}

func (o nonExhaustiveOption) LogAttr() slog.Attr {
	return slog.Bool("non-exhaustive", o.nonExhaustive)
}

// WithUndefined is an [Option] to configure whether reads of variables bound nowhere are reported.
func WithUndefined(undefined bool) Option {
	return undefinedOption{undefined: undefined}
}

type undefinedOption struct{ undefined bool }

func (o undefinedOption) apply(r *run.Options) {
	r.Analyzers.Set(config.UndefinedAnalyzer, o.undefined)
}

func (o undefinedOption) LogAttr() slog.Attr {
	return slog.Bool("undefined", o.undefined)
}

// WithIgnoreSuppressions is an [Option] to report diagnostics on lines with # noqa or # nolint comments.
func WithIgnoreSuppressions(ignore bool) Option {
	return ignoreSuppressionsOption{ignore: ignore}
}

type ignoreSuppressionsOption struct{ ignore bool }

func (o ignoreSuppressionsOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreSuppressions, o.ignore)
}

func (o ignoreSuppressionsOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-suppressions", o.ignore)
}

// WithIgnoreNames is an [Option] to add names that are never reported.
func WithIgnoreNames(ignore ...string) Option {
	return ignoreNamesOption{names: slices.Clone(ignore)}
}

type ignoreNamesOption struct{ names []string }

func (o ignoreNamesOption) apply(r *run.Options) {
	r.Ignore = r.Ignore.Union(names.Of(o.names...))
}

func (o ignoreNamesOption) LogAttr() slog.Attr {
	return slog.Any("ignore", o.names)
}

// WithCacheSize is an [Option] to configure the number of enclosing-scope results memoized.
func WithCacheSize(size int) Option { return cacheSizeOption{size: size} }

type cacheSizeOption struct{ size int }

func (o cacheSizeOption) apply(r *run.Options) {
	r.CacheSize = o.size
}

func (o cacheSizeOption) LogAttr() slog.Attr {
	return slog.Int("cache-size", o.size)
}
