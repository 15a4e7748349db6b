// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package scope resolves the lexical scopes of a module: the module itself,
// function bodies and class bodies.
package scope

import (
	"iter"

	"fillmore-labs.com/bindguard/internal/astutil"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Scope is a single lexical scope.
type Scope struct {
	// Node is a [*syntax.Module], [*syntax.FunctionDef] or [*syntax.ClassDef].
	Node syntax.Node

	// Parent is the enclosing scope, nil for the module.
	Parent *Scope

	// Bindings maps the names bound in the scope to their binding sites in source order.
	Bindings map[string][]*syntax.Name

	// Declared holds the names declared global or nonlocal.
	Declared names.Set

	// Stores holds the names bound inside expressions.
	Stores names.Set
}

// IsClass reports whether s is a class body.
func (s *Scope) IsClass() bool { return s.Node.Kind() == syntax.KindClassDef }

// Binds reports whether name is a local variable of s.
func (s *Scope) Binds(name string) bool {
	_, ok := s.Bindings[name]

	return ok && !s.Declared.Has(name)
}

// Visible yields the enclosing scopes whose names are visible from s, from the
// innermost to the module. Class bodies are never visible from nested scopes.
//
// The second value reports whether s runs while the enclosing scope executes,
// which is the case when only class bodies lie in between.
func (s *Scope) Visible() iter.Seq2[*Scope, bool] {
	return func(yield func(*Scope, bool) bool) {
		immediate := s.IsClass()
		for p := s.Parent; p != nil; p = p.Parent {
			if !p.IsClass() && !yield(p, immediate) {
				return
			}

			immediate = immediate && p.IsClass()
		}
	}
}

// Entry returns the statement of p that defines the nested scope s, nil when
// s is not nested in p.
func (s *Scope) Entry(p *Scope) syntax.Node {
	for c := s; c.Parent != nil; c = c.Parent {
		if c.Parent == p {
			return c.Node
		}
	}

	return nil
}

// Index holds the scopes of a module.
type Index struct {
	scopes   []*Scope
	byNode   map[syntax.Node]*Scope
	globals  names.Set
	wildcard bool
}

// NewIndex collects the scopes of m.
func NewIndex(m *syntax.Module) *Index {
	x := &Index{
		byNode:  make(map[syntax.Node]*Scope),
		globals: make(names.Set),
	}
	x.add(m, nil)

	return x
}

func (x *Index) add(n syntax.Node, parent *Scope) {
	s := &Scope{
		Node:     n,
		Parent:   parent,
		Bindings: make(map[string][]*syntax.Name),
		Declared: make(names.Set),
		Stores:   make(names.Set),
	}
	x.scopes = append(x.scopes, s)
	x.byNode[n] = s

	if f, ok := n.(*syntax.FunctionDef); ok {
		for _, p := range f.Params {
			s.bind(p)
		}
	}

	for stmt := range syntax.InScope(n) {
		if stmt == n {
			continue
		}

		for name := range astutil.BindingSites(stmt) {
			s.bind(name)
		}

		for name := range astutil.Stores(stmt) {
			s.Stores.Add(name.ID)
		}

		switch stmt := stmt.(type) {
		case *syntax.Global:
			for _, name := range stmt.Names {
				s.Declared.Add(name.ID)

				if !stmt.Nonlocal {
					x.globals.Add(name.ID)
				}
			}

		case *syntax.ImportFrom:
			if stmt.Wildcard {
				x.wildcard = true
			}

		case *syntax.FunctionDef, *syntax.ClassDef:
			x.add(stmt, s)
		}
	}
}

func (s *Scope) bind(name *syntax.Name) {
	s.Bindings[name.ID] = append(s.Bindings[name.ID], name)
}

// All yields the scopes in preorder, starting with the module.
func (x *Index) All() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for _, s := range x.scopes {
			if !yield(s) {
				return
			}
		}
	}
}

// Len returns the number of scopes.
func (x *Index) Len() int { return len(x.scopes) }

// Lookup returns the scope introduced by n, nil if n is not a scope node.
func (x *Index) Lookup(n syntax.Node) *Scope { return x.byNode[n] }

// Globals returns the names declared global in any scope. These names may be
// bound at module level at run time.
func (x *Index) Globals() names.Set { return x.globals }

// Wildcard reports whether the module contains a wildcard import.
func (x *Index) Wildcard() bool { return x.wildcard }

// Resolve returns the scope binding name as seen from s, nil if none of the
// visible scopes binds it.
func (x *Index) Resolve(s *Scope, name string) *Scope {
	if s.Binds(name) {
		return s
	}

	for p := range s.Visible() {
		if p.Binds(name) {
			return p
		}
	}

	return nil
}
