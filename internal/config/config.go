// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Package config holds the bit-mask configuration of enabled checks and behavior.
package config

// AnalyzerFlags represents specific checks.
type AnalyzerFlags uint8

const (
	// NonExhaustiveAnalyzer reports reads of variables that are not bound on every path.
	NonExhaustiveAnalyzer AnalyzerFlags = 1 << iota

	// UndefinedAnalyzer reports reads of variables that are bound nowhere.
	UndefinedAnalyzer
)

// Analyzers is the set of enabled checks.
type Analyzers = BitMask[AnalyzerFlags]

// DefaultAnalyzers returns the checks enabled by default.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(NonExhaustiveAnalyzer, UndefinedAnalyzer)
}

// Config represents behavioral options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// IgnoreSuppressions reports diagnostics even on lines with suppression comments.
	IgnoreSuppressions
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the behavior enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
