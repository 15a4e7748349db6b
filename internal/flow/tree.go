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

// Package flow walks the branching constructs of one lexical scope, records
// the names bound per branch and folds nested results into their enclosing
// branches.
package flow

import (
	"fillmore-labs.com/bindguard/internal/branch"
	"fillmore-labs.com/bindguard/syntax"
)

// ID identifies a construct in a [Tree].
type ID int32

// None is the parent of a root construct.
const None ID = -1

// entry is a visited branching construct.
type entry struct {
	node syntax.Node
	set  *branch.Set

	// parent is the enclosing construct within the same lexical scope, branch
	// the parent's branch containing this construct.
	parent ID
	branch syntax.Branch

	// stopped marks a construct whose traversal halted at the stop node inside stop.
	stopped bool
	stop    syntax.Branch
}

// Tree is the arena of constructs visited by one analysis.
// Parents are referenced by index, so the tree holds no back pointers.
type Tree struct {
	constructs []entry
	visited    map[syntax.Node]ID
}

func (t *Tree) add(n syntax.Node, set *branch.Set) ID {
	if t.visited == nil {
		t.visited = make(map[syntax.Node]ID)
	}

	id := ID(len(t.constructs))
	t.constructs = append(t.constructs, entry{node: n, set: set, parent: None})
	t.visited[n] = id

	return id
}

func (t *Tree) link(child, parent ID, b syntax.Branch) {
	c := &t.constructs[child]
	c.parent, c.branch = parent, b
}

func (t *Tree) halt(id ID, b syntax.Branch) {
	c := &t.constructs[id]
	c.stopped, c.stop = true, b
}

// Len returns the number of visited constructs.
func (t *Tree) Len() int { return len(t.constructs) }

// Lookup returns the construct visited for n.
func (t *Tree) Lookup(n syntax.Node) (ID, bool) {
	id, ok := t.visited[n]

	return id, ok
}

// Parent returns the enclosing construct of id and the branch containing it, or [None].
func (t *Tree) Parent(id ID) (ID, syntax.Branch) {
	c := &t.constructs[id]

	return c.parent, c.branch
}

// Node returns the syntax node of construct id.
func (t *Tree) Node(id ID) syntax.Node { return t.constructs[id].node }

// Set returns the branch set of construct id.
func (t *Tree) Set(id ID) *branch.Set { return t.constructs[id].set }

// Roots returns the constructs without an enclosing construct, in visiting order.
func (t *Tree) Roots() []ID {
	var roots []ID

	for i := range t.constructs {
		if t.constructs[i].parent == None {
			roots = append(roots, ID(i))
		}
	}

	return roots
}
