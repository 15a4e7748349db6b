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
	"errors"
	"iter"

	"fillmore-labs.com/bindguard/internal/branch"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// ErrNoActiveBranch is the panic value for asking for the active branch outside
// of statement iteration.
var ErrNoActiveBranch = errors.New("no active branch outside of statement iteration")

// chain iterates the statements of a construct branch by branch and tracks
// which branch is active.
type chain struct {
	set    *branch.Set
	active syntax.Branch
	inside bool
}

func newChain(set *branch.Set) *chain { return &chain{set: set} }

// stmts yields the statements of n in branch declaration order.
func (c *chain) stmts(n syntax.Node) iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		defer func() { c.inside = false }()

		for _, b := range c.set.Topology().Branches() {
			c.active, c.inside = b, true

			for _, stmt := range syntax.Children(n, b) {
				if !yield(stmt) {
					return
				}
			}
		}
	}
}

// branch returns the active branch. It panics with [ErrNoActiveBranch] outside of stmts.
func (c *chain) branch() syntax.Branch {
	c.check()

	return c.active
}

// scope returns the names bound so far in the active branch.
func (c *chain) scope() names.Set {
	c.check()

	return c.set.Names(c.active)
}

// add binds name in the active branch.
func (c *chain) add(name string) {
	c.check()
	c.set.Add(c.active, name)
}

func (c *chain) check() {
	if !c.inside {
		panic(ErrNoActiveBranch)
	}
}
