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

package branch

import (
	"fmt"
	"slices"

	"fillmore-labs.com/bindguard/syntax"
)

// Topology describes the branches of a construct and how a binding in one
// branch also satisfies other branches.
//
// An edge from a to b means b is guaranteed to run after a has run, so
// everything bound in a counts toward b's requirement as well.
type Topology struct {
	branches []syntax.Branch
	feeds    [][]int // outgoing edges by branch index
}

// Edge lists the branches a branch feeds into.
type Edge struct {
	From syntax.Branch
	To   []syntax.Branch
}

// Flat creates a [Topology] of independent branches.
func Flat(branches ...syntax.Branch) *Topology {
	return &Topology{
		branches: slices.Clone(branches),
		feeds:    make([][]int, len(branches)),
	}
}

// Hierarchy creates a [Topology] with propagation edges. Branch order is the
// order of the edges. It panics when an edge references an undeclared branch or
// the edges form a cycle.
func Hierarchy(edges ...Edge) *Topology {
	t := &Topology{
		branches: make([]syntax.Branch, len(edges)),
		feeds:    make([][]int, len(edges)),
	}

	for i, e := range edges {
		t.branches[i] = e.From
	}

	for i, e := range edges {
		for _, to := range e.To {
			j := t.index(to)
			if j < 0 {
				panic(fmt.Sprintf("branch %s feeds undeclared branch %s", e.From, to))
			}

			t.feeds[i] = append(t.feeds[i], j)
		}
	}

	if t.cyclic() {
		panic("branch topology contains a cycle")
	}

	return t
}

// Branches returns the branches in declaration order.
func (t *Topology) Branches() []syntax.Branch { return slices.Clone(t.branches) }

// Len returns the number of branches.
func (t *Topology) Len() int { return len(t.branches) }

// Hierarchical reports whether any branch feeds into another.
func (t *Topology) Hierarchical() bool {
	for _, f := range t.feeds {
		if len(f) > 0 {
			return true
		}
	}

	return false
}

// Leaves returns the branches without outgoing edges. For a flat topology
// these are all branches.
func (t *Topology) Leaves() []syntax.Branch {
	var leaves []syntax.Branch

	for i, f := range t.feeds {
		if len(f) == 0 {
			leaves = append(leaves, t.branches[i])
		}
	}

	return leaves
}

func (t *Topology) index(b syntax.Branch) int {
	return slices.Index(t.branches, b)
}

// cyclic detects cycles with a three-color depth-first search.
func (t *Topology) cyclic() bool {
	const (
		white = iota
		gray
		black
	)

	color := make([]uint8, len(t.branches))

	var visit func(i int) bool
	visit = func(i int) bool {
		color[i] = gray
		for _, j := range t.feeds[i] {
			switch color[j] {
			case gray:
				return true

			case white:
				if visit(j) {
					return true
				}
			}
		}
		color[i] = black

		return false
	}

	for i := range t.branches {
		if color[i] == white && visit(i) {
			return true
		}
	}

	return false
}
