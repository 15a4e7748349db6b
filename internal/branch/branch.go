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

// Package branch implements the branch-set primitive: per-branch sets of bound
// names and the combinator that reduces them to the names bound regardless of
// which branch ran.
package branch

import (
	"fmt"

	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Set holds the names bound in each branch of one construct instance.
type Set struct {
	topology *Topology
	vars     []names.Set
}

// New creates a [Set] with an empty name set for every branch of t.
func New(t *Topology) *Set {
	vars := make([]names.Set, t.Len())
	for i := range vars {
		vars[i] = make(names.Set)
	}

	return &Set{topology: t, vars: vars}
}

// Topology returns the topology the set was created with.
func (s *Set) Topology() *Topology { return s.topology }

// Add binds name in branch b and in every branch b feeds into, transitively.
// It panics if b is not a branch of the set.
func (s *Set) Add(b syntax.Branch, name string) {
	s.add(s.mustIndex(b), name)
}

// AddAll binds all names of ns in branch b, see [Set.Add].
func (s *Set) AddAll(b syntax.Branch, ns names.Set) {
	i := s.mustIndex(b)
	for name := range ns {
		s.add(i, name)
	}
}

func (s *Set) add(i int, name string) {
	s.vars[i].Add(name)

	for _, j := range s.topology.feeds[i] {
		s.add(j, name)
	}
}

// Names returns the names bound in branch b. The result must not be modified.
func (s *Set) Names(b syntax.Branch) names.Set {
	i := s.topology.index(b)
	if i < 0 {
		return nil
	}

	return s.vars[i]
}

// Guaranteed returns the names bound no matter which branch ran: the intersection
// of all leaf branches. Propagation has already merged the contributions of
// feeding branches into the leaves. Without branches the result is empty.
func (s *Set) Guaranteed() names.Set {
	var result names.Set

	for i, f := range s.topology.feeds {
		if len(f) > 0 {
			continue
		}

		if result == nil {
			result = s.vars[i].Clone()

			continue
		}

		result = result.Intersect(s.vars[i])
	}

	if result == nil {
		return make(names.Set)
	}

	return result
}

func (s *Set) mustIndex(b syntax.Branch) int {
	i := s.topology.index(b)
	if i < 0 {
		panic(fmt.Sprintf("branch %s not in construct", b))
	}

	return i
}
