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

// Package names provides the set of variable names produced by the binding analyses.
package names

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is an unordered, duplicate-free collection of variable names.
//
// The zero value is an empty, read-only set; use [Of] or make to create a writable one.
type Set map[string]struct{}

// Of creates a new [Set] containing the given names.
func Of(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Collect creates a new [Set] from a sequence of names.
func Collect(seq iter.Seq[string]) Set {
	s := make(Set)
	for name := range seq {
		s[name] = struct{}{}
	}

	return s
}

// Add inserts a name.
func (s Set) Add(name string) { s[name] = struct{}{} }

// Has reports whether the set contains name.
func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int { return len(s) }

// AddAll inserts all names of o into s.
func (s Set) AddAll(o Set) {
	for name := range o {
		s[name] = struct{}{}
	}
}

// Clone returns a writable copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	c.AddAll(s)

	return c
}

// Union returns a new set containing the names of both s and o.
func (s Set) Union(o Set) Set {
	u := make(Set, len(s)+len(o))
	u.AddAll(s)
	u.AddAll(o)

	return u
}

// Intersect returns a new set containing the names present in both s and o.
func (s Set) Intersect(o Set) Set {
	if len(o) < len(s) {
		s, o = o, s
	}

	i := make(Set, len(s))
	for name := range s {
		if o.Has(name) {
			i[name] = struct{}{}
		}
	}

	return i
}

// All yields the names in unspecified order.
func (s Set) All() iter.Seq[string] { return maps.Keys(s) }

// Sorted returns the names in lexical order.
func (s Set) Sorted() []string { return slices.Sorted(maps.Keys(s)) }

// Equal reports whether s and o contain the same names.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}

	for name := range s {
		if !o.Has(name) {
			return false
		}
	}

	return true
}

// String formats the set in lexical order, e.g. "{x, y}".
func (s Set) String() string {
	var b strings.Builder

	b.WriteByte('{') // ignore error

	for i, name := range s.Sorted() {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		b.WriteString(name) // ignore error
	}

	b.WriteByte('}') // ignore error

	return b.String()
}
