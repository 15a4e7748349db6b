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

// Package safevars computes the variables that are safe to read at a point of
// a lexical scope: bound on every path that reaches it.
//
// # Overview
//
// In addition to assignments, the analysis treats imports, with item targets,
// loop targets, exception handler names, nested definition names and function
// parameters as binding sites. A query may stop at a node, in which case only
// the bindings preceding that node in its own branch count for the enclosing
// constructs:
//
//	if a:
//	    x = 1
//	    print(x)  # x is safe here
//	print(x)      # but not here
//
// Several [Vars.Find] calls on one instance accumulate, so the bindings of an
// enclosing scope can be combined with those of a nested one.
package safevars

import (
	"fillmore-labs.com/bindguard/internal/construct"
	"fillmore-labs.com/bindguard/internal/flow"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Vars accumulates safe-variable queries.
//
// A Vars is not safe for concurrent use; separate instances share no state.
type Vars struct {
	w       *flow.Walker
	index   *syntax.Index
	reached bool
}

// Option configures a [Vars].
type Option func(*Vars)

// WithIndex supplies a parent index used to resolve stop nodes. Without one,
// an index is built for every [Vars.Find] call with a stop node.
func WithIndex(x *syntax.Index) Option {
	return func(v *Vars) { v.index = x }
}

// New creates an empty [Vars].
func New(opts ...Option) *Vars {
	v := &Vars{w: flow.NewWalker(construct.Safe)}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Find records the bindings of n, ignoring assignments to names in ignored.
// When until is not nil the traversal stops before the statement containing it,
// and Find reports whether that statement was reached.
func (v *Vars) Find(n, until syntax.Node, ignored names.Set) bool {
	if until != nil {
		until = v.resolve(n, until)
	}

	found := v.w.Traverse(n, ignored, until)
	if found {
		v.reached = true
	}

	return found
}

// Reached reports whether any [Vars.Find] call reached its stop node.
func (v *Vars) Reached() bool { return v.reached }

// Fold returns the union of the safe names of all traversed roots.
func (v *Vars) Fold() names.Set {
	return v.w.Tree().Fold()
}

// Get returns the names safe after n, or before until when it is not nil.
func Get(n, until syntax.Node, ignored names.Set) names.Set {
	v := New()
	v.Find(n, until, ignored)

	return v.Fold()
}

// resolve returns the statement directly inside a branch of the nearest
// construct enclosing until. A node in the header of a construct, like the
// condition of an if statement, resolves to the construct itself.
func (v *Vars) resolve(root, until syntax.Node) syntax.Node {
	x := v.index
	if x == nil || !x.Contains(until) {
		x = syntax.NewIndex(root)
	}

	stmt := until
	for parent := range x.Ancestors(until) {
		if scopeLevel(parent) {
			break
		}

		stmt = parent
	}

	return stmt
}

// scopeLevel reports whether statements directly inside n are stop candidates.
func scopeLevel(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindImport, syntax.KindImportFrom:
		return false

	default:
		_, ok := construct.Safe.Classify(n)

		return ok
	}
}
