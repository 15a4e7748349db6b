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

package flow

import (
	"fillmore-labs.com/bindguard/internal/branch"
	"fillmore-labs.com/bindguard/internal/construct"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Walker traverses branching constructs and records their bindings into a [Tree].
type Walker struct {
	mode construct.Mode
	tree Tree

	// until is the statement the traversal stops before, nil for a full traversal.
	until syntax.Node
}

// NewWalker creates a [Walker] for mode.
func NewWalker(mode construct.Mode) *Walker {
	return &Walker{mode: mode}
}

// Mode returns the analysis mode of w.
func (w *Walker) Mode() construct.Mode { return w.mode }

// Tree returns the constructs visited so far.
func (w *Walker) Tree() *Tree { return &w.tree }

// Traverse records the bindings of n and every construct nested in it, ignoring
// assignments to names in shadow. It reports whether the traversal stopped
// before until, which may be nil. Nodes that are not constructs in the
// walker's mode and nodes already traversed are skipped.
func (w *Walker) Traverse(n syntax.Node, shadow names.Set, until syntax.Node) bool {
	if _, ok := w.tree.Lookup(n); ok {
		return false
	}

	w.until = until
	defer func() { w.until = nil }()

	_, found := w.traverse(n, shadow)

	return found
}

func (w *Walker) traverse(n syntax.Node, shadow names.Set) (ID, bool) {
	t, ok := w.mode.Classify(n)
	if !ok {
		return None, false
	}

	set := branch.New(t)
	id := w.tree.add(n, set)
	w.mode.Seed(n, set, shadow)

	c := newChain(set)
	for stmt := range c.stmts(n) {
		b := c.branch()

		if w.until != nil && stmt == w.until {
			w.tree.halt(id, b)

			return id, true
		}

		if stmt.Kind().IsDefinition() {
			w.bind(c, stmt, shadow)

			continue
		}

		if _, ok := w.mode.Classify(stmt); !ok {
			w.bind(c, stmt, shadow)

			continue
		}

		inner := shadow
		if stmt.Kind() != syntax.KindExceptHandler {
			inner = shadow.Union(c.scope())
		}

		child, found := w.traverse(stmt, inner)
		w.tree.link(child, id, b)

		if found {
			w.tree.halt(id, b)

			return id, true
		}
	}

	return id, false
}

func (w *Walker) bind(c *chain, stmt syntax.Node, shadow names.Set) {
	for name := range w.mode.Binds(stmt) {
		if shadow.Has(name) {
			continue
		}

		c.add(name)
	}
}
