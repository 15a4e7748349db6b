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
	"github.com/spf13/pflag"

	"fillmore-labs.com/bindguard/internal/config"
)

// RegisterFlags binds the analyzer configuration to command line flag values.
func (a *Analyzer) RegisterFlags(flags *pflag.FlagSet) {
	o := a.opts

	boolVar(flags, newBoolValue(&o.Analyzers, config.NonExhaustiveAnalyzer),
		"non-exhaustive", "report variables not assigned on every path before use")
	boolVar(flags, newBoolValue(&o.Analyzers, config.UndefinedAnalyzer),
		"undefined", "report variables assigned nowhere")
	boolVar(flags, newBoolValue(&o.Behavior, config.IncludeGenerated),
		"generated", "check generated files")
	boolVar(flags, newBoolValue(&o.Behavior, config.IgnoreSuppressions),
		"ignore-suppressions", "report findings on lines with # noqa or # nolint comments")

	flags.Var(namesValue{&o.Ignore}, "ignore", "comma-separated names that are never reported")
	flags.IntVar(&o.CacheSize, "cache-size", o.CacheSize, "number of enclosing scope results to memoize")
}

func boolVar(flags *pflag.FlagSet, value pflag.Value, name, usage string) {
	f := flags.VarPF(value, name, "", usage)
	f.NoOptDefVal = "true"
}
