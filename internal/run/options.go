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
	"fillmore-labs.com/bindguard/internal/config"
	"fillmore-labs.com/bindguard/names"
)

// DefaultCacheSize is the number of enclosing-scope safe sets memoized per [Options].
const DefaultCacheSize = 128

// Options represent configuration runOptions for the bindguard analyzer.
type Options struct {
	// Analyzers represent the Analyzers to be enabled.
	Analyzers config.Analyzers

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Ignore holds names never reported.
	Ignore names.Set

	// CacheSize is the number of enclosing-scope safe sets memoized, 0 disables the cache.
	CacheSize int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Analyzers: config.DefaultAnalyzers(),
		Behavior:  config.DefaultBehavior(),
		Ignore:    names.Of("_"),
		CacheSize: DefaultCacheSize,
	}
}
