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

// Package construct maps syntax nodes to their branch topology and extracts
// the names bound by individual statements.
package construct

import (
	"iter"

	"fillmore-labs.com/bindguard/internal/branch"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Mode selects the binding sites an analysis understands.
type Mode uint8

const (
	// Exhaustive understands assignments, exception handler names and definition
	// names inside conditionals, loops, try statements and scope bodies.
	Exhaustive Mode = iota + 1

	// Safe additionally understands imports, with items, loop targets and function parameters.
	Safe
)

func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Safe:
		return "safe"
	default:
		return "<mode>"
	}
}

var (
	// bodyOrElse runs exactly one of its branches.
	bodyOrElse = branch.Flat(syntax.Body, syntax.Orelse)

	// bodyOnly is a plain scope body.
	bodyOnly = branch.Flat(syntax.Body)

	// importNames binds every imported name.
	importNames = branch.Flat(syntax.Names)

	// withItems enters all context items before the body runs.
	withItems = branch.Hierarchy(
		branch.Edge{From: syntax.Items, To: []syntax.Branch{syntax.Body}},
		branch.Edge{From: syntax.Body},
	)

	// tryRegions has two path families: body, else, finally and body (raising), handler, finally.
	// All handlers share one branch, so a name bound by any handler counts as
	// bound on the handler path even when another handler does not bind it.
	tryRegions = branch.Hierarchy(
		branch.Edge{From: syntax.Body},
		branch.Edge{From: syntax.Handlers},
		branch.Edge{From: syntax.Orelse, To: []syntax.Branch{syntax.Body}},
		branch.Edge{From: syntax.Finalbody, To: []syntax.Branch{syntax.Handlers, syntax.Orelse}},
	)
)

// Classify returns the branch topology of n. ok is false when n is not a
// branching construct in this mode; such nodes are leaves for the analysis.
func (m Mode) Classify(n syntax.Node) (t *branch.Topology, ok bool) {
	switch n.Kind() {
	case syntax.KindIf, syntax.KindFor, syntax.KindAsyncFor, syntax.KindWhile:
		return bodyOrElse, true

	case syntax.KindModule, syntax.KindFunctionDef, syntax.KindAsyncFunctionDef, syntax.KindClassDef, syntax.KindExceptHandler:
		return bodyOnly, true

	case syntax.KindTry:
		return tryRegions, true

	case syntax.KindWith, syntax.KindAsyncWith:
		return withItems, m == Safe

	case syntax.KindImport, syntax.KindImportFrom:
		return importNames, m == Safe

	case syntax.KindInvalid, syntax.KindWithItem, syntax.KindAlias,
		syntax.KindAssign, syntax.KindAnnAssign, syntax.KindAugAssign, syntax.KindGlobal, syntax.KindOther:
		return nil, false
	}

	return nil, false
}

// Seed binds the names a construct binds on entry: function parameters and
// loop targets into the body (the loop may run zero times, so not into orelse)
// and the exception name into the handler body. Names in shadow are skipped.
func (m Mode) Seed(n syntax.Node, set *branch.Set, shadow names.Set) {
	seed := func(name string) {
		if !shadow.Has(name) {
			set.Add(syntax.Body, name)
		}
	}

	switch n := n.(type) {
	case *syntax.FunctionDef:
		if m != Safe {
			return
		}

		for _, p := range n.Params {
			seed(p.ID)
		}

	case *syntax.For:
		if m != Safe {
			return
		}

		for name := range syntax.Targets(n.Target) {
			seed(name.ID)
		}

	case *syntax.ExceptHandler:
		if n.Name != nil {
			seed(n.Name.ID)
		}
	}
}

// Binds yields the names bound by a single statement of a branch.
// Nested definitions bind their own name; their bodies are separate scopes.
func (m Mode) Binds(stmt syntax.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		switch stmt.Kind() {
		case syntax.KindAssign:
			for name := range syntax.AllTargets(stmt.(*syntax.Assign).Targets) {
				if !yield(name.ID) {
					return
				}
			}

		case syntax.KindAnnAssign:
			if s := stmt.(*syntax.AnnAssign); s.HasValue {
				yieldNames(syntax.Targets(s.Target), yield)
			}

		case syntax.KindFunctionDef, syntax.KindAsyncFunctionDef:
			if name := stmt.(*syntax.FunctionDef).Name; name != nil {
				yield(name.ID)
			}

		case syntax.KindClassDef:
			if name := stmt.(*syntax.ClassDef).Name; name != nil {
				yield(name.ID)
			}

		case syntax.KindAlias:
			if m == Safe {
				yield(stmt.(*syntax.Alias).Bound())
			}

		case syntax.KindWithItem:
			if s := stmt.(*syntax.WithItem); m == Safe && s.Target != nil {
				yieldNames(syntax.Targets(s.Target), yield)
			}

		case syntax.KindInvalid, syntax.KindModule, syntax.KindIf, syntax.KindFor, syntax.KindAsyncFor, syntax.KindWhile,
			syntax.KindTry, syntax.KindExceptHandler, syntax.KindWith, syntax.KindAsyncWith,
			syntax.KindImport, syntax.KindImportFrom, syntax.KindAugAssign, syntax.KindGlobal, syntax.KindOther:
		}
	}
}

func yieldNames(seq iter.Seq[*syntax.Name], yield func(string) bool) {
	for name := range seq {
		if !yield(name.ID) {
			return
		}
	}
}
