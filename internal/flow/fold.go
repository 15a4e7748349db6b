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

import "fillmore-labs.com/bindguard/names"

// Fold merges the guaranteed names of every construct into the branch of its
// parent that contains it, innermost first, and returns the union of the
// guaranteed names of all roots.
//
// A construct whose traversal stopped also contributes the names bound before
// the stop node in the branch it stopped in.
func (t *Tree) Fold() names.Set {
	pending := make([]int, len(t.constructs))
	for i := range t.constructs {
		if p := t.constructs[i].parent; p != None {
			pending[p]++
		}
	}

	var queue []ID
	for i := range t.constructs {
		if pending[i] == 0 && t.constructs[i].parent != None {
			queue = append(queue, ID(i))
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c := &t.constructs[id]
		t.constructs[c.parent].set.AddAll(c.branch, t.Guaranteed(id))

		pending[c.parent]--
		if pending[c.parent] == 0 && t.constructs[c.parent].parent != None {
			queue = append(queue, c.parent)
		}
	}

	result := make(names.Set)
	for _, root := range t.Roots() {
		result.AddAll(t.Guaranteed(root))
	}

	return result
}

// Guaranteed returns the names construct id contributes to its parent.
func (t *Tree) Guaranteed(id ID) names.Set {
	c := &t.constructs[id]
	if c.stopped {
		return c.set.Guaranteed().Union(c.set.Names(c.stop))
	}

	return c.set.Guaranteed()
}
