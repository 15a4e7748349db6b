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

// Package exhaustive computes the names a construct assigns on every control
// flow path through it.
//
// # Overview
//
// The analysis understands assignments, annotated assignments with a value,
// exception handler names and the names of nested definitions. It descends into
// conditionals, loops, try statements and scope bodies:
//
//	if a:
//	    x = 1
//	    y = 2
//	else:
//	    x = 3
//
// assigns {x} on every path. Loop bodies may run zero times, so a loop only
// guarantees what both its body and its else clause assign.
//
// Imports and with statements are not modeled; see package safevars for the
// analysis that treats them as binding sites.
package exhaustive

import (
	"fillmore-labs.com/bindguard/internal/construct"
	"fillmore-labs.com/bindguard/internal/flow"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Scope accumulates one or more traversals and folds them into a name set.
//
// A Scope is not safe for concurrent use; separate instances share no state.
type Scope struct {
	w *flow.Walker
}

// New creates an empty [Scope].
func New() *Scope {
	return &Scope{w: flow.NewWalker(construct.Exhaustive)}
}

// Traverse records the assignments of n, ignoring names in shadow.
// Nodes that are not branching constructs and nodes already traversed are ignored.
func (s *Scope) Traverse(n syntax.Node, shadow names.Set) {
	s.w.Traverse(n, shadow, nil)
}

// Fold returns the names assigned on every path through any traversed root.
func (s *Scope) Fold() names.Set {
	return s.w.Tree().Fold()
}

// Names returns the names n assigns on every path.
func Names(n syntax.Node) names.Set {
	s := New()
	s.Traverse(n, nil)

	return s.Fold()
}
