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

// Package report builds diagnostics and renders them for terminals and tools.
package report

import (
	"fmt"

	"fillmore-labs.com/bindguard/syntax"
)

// Code identifies the check that produced a [Diagnostic].
type Code string

const (
	// NonExhaustive marks a read of a variable not bound on every path before it.
	NonExhaustive Code = "nex"

	// Undefined marks a read of a variable bound nowhere.
	Undefined Code = "und"

	// Internal marks an analyzer bug.
	Internal Code = "int"
)

// Related points to a source location relevant to a [Diagnostic].
type Related struct {
	Pos     syntax.Pos `json:"pos"`
	Message string     `json:"message"`
}

// Diagnostic is a finding at a source range.
type Diagnostic struct {
	Pos     syntax.Pos `json:"pos"`
	End     syntax.Pos `json:"end"`
	Code    Code       `json:"code"`
	Name    string     `json:"name,omitempty"`
	Message string     `json:"message"`
	Related []Related  `json:"related,omitempty"`
}

// NonExhaustiveRead reports a read of use that is not preceded by a binding on every path.
// bindings are the conditional binding sites in the same scope.
func NonExhaustiveRead(use *syntax.Name, bindings []*syntax.Name) Diagnostic {
	d := Diagnostic{
		Pos:     use.Pos(),
		End:     use.End(),
		Code:    NonExhaustive,
		Name:    use.ID,
		Message: fmt.Sprintf("Variable '%s' is not assigned on every path before use (bg:%s)", use.ID, NonExhaustive),
	}

	for _, b := range bindings {
		d.Related = append(d.Related, Related{Pos: b.Pos(), Message: "Conditionally assigned here"})
	}

	return d
}

// UndefinedRead reports a read of use that is never bound.
func UndefinedRead(use *syntax.Name) Diagnostic {
	return Diagnostic{
		Pos:     use.Pos(),
		End:     use.End(),
		Code:    Undefined,
		Name:    use.ID,
		Message: fmt.Sprintf("Undefined variable '%s' (bg:%s)", use.ID, Undefined),
	}
}

// Compare orders diagnostics by position, then code.
func Compare(a, b Diagnostic) int {
	switch {
	case a.Pos.Before(b.Pos):
		return -1

	case b.Pos.Before(a.Pos):
		return 1

	case a.Code < b.Code:
		return -1

	case a.Code > b.Code:
		return 1

	default:
		return 0
	}
}
