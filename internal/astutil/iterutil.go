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

package astutil

import (
	"iter"

	"fillmore-labs.com/bindguard/syntax"
)

// BindingSites yields the names bound by a single statement, independent of any
// analysis mode: assignment targets, definition names, imports, with and loop
// targets, exception names and parameters of n itself.
func BindingSites(n syntax.Node) iter.Seq[*syntax.Name] {
	return func(yield func(*syntax.Name) bool) {
		switch n := n.(type) {
		case *syntax.Assign:
			yieldAll(syntax.AllTargets(n.Targets), yield)

		case *syntax.AnnAssign:
			if n.HasValue {
				yieldAll(syntax.Targets(n.Target), yield)
			}

		case *syntax.AugAssign:
			yieldAll(syntax.Targets(n.Target), yield)

		case *syntax.FunctionDef:
			if n.Name != nil {
				yield(n.Name)
			}

		case *syntax.ClassDef:
			if n.Name != nil {
				yield(n.Name)
			}

		case *syntax.For:
			yieldAll(syntax.Targets(n.Target), yield)

		case *syntax.WithItem:
			if n.Target != nil {
				yieldAll(syntax.Targets(n.Target), yield)
			}

		case *syntax.ExceptHandler:
			if n.Name != nil {
				yield(n.Name)
			}

		case *syntax.Alias:
			yield(&syntax.Name{ID: n.Bound(), Start: n.Pos()})
		}
	}
}

// Stores yields the names bound inside expressions of n.
func Stores(n syntax.Node) iter.Seq[*syntax.Name] {
	return func(yield func(*syntax.Name) bool) {
		s, ok := n.(interface{ Stored() []*syntax.Name })
		if !ok {
			return
		}

		for _, name := range s.Stored() {
			if !yield(name) {
				return
			}
		}
	}
}

func yieldAll(seq iter.Seq[*syntax.Name], yield func(*syntax.Name) bool) {
	for name := range seq {
		if !yield(name) {
			return
		}
	}
}
