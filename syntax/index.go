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

package syntax

import "iter"

// Index maps every node of a tree to its parent and to the branch of the parent containing it.
//
// It provides the upward navigation the syntax tree itself does not store.
type Index struct {
	root    Node
	parents map[Node]edge
}

type edge struct {
	parent Node
	branch Branch
}

// NewIndex builds an [Index] for the tree rooted at root.
func NewIndex(root Node) *Index {
	x := &Index{root: root, parents: make(map[Node]edge)}
	x.add(root)

	return x
}

func (x *Index) add(n Node) {
	for b, children := range Blocks(n) {
		for _, child := range children {
			x.parents[child] = edge{parent: n, branch: b}
			x.add(child)
		}
	}
}

// Root returns the root node of the index.
func (x *Index) Root() Node { return x.root }

// Parent returns the parent of n and the parent's branch containing n.
// ok is false for the root and for nodes not in the tree.
func (x *Index) Parent(n Node) (parent Node, branch Branch, ok bool) {
	e, ok := x.parents[n]

	return e.parent, e.branch, ok
}

// Contains reports whether n belongs to the indexed tree.
func (x *Index) Contains(n Node) bool {
	if n == x.root {
		return true
	}

	_, ok := x.parents[n]

	return ok
}

// Ancestors yields the parents of n from the innermost to the root, each with
// the branch containing the previous node.
func (x *Index) Ancestors(n Node) iter.Seq2[Node, Branch] {
	return func(yield func(Node, Branch) bool) {
		for {
			e, ok := x.parents[n]
			if !ok || !yield(e.parent, e.branch) {
				return
			}

			n = e.parent
		}
	}
}
