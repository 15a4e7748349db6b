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

// Expr is an assignment target expression.
type Expr interface {
	expr()
}

// Name is an identifier, either as a binding target or as a read.
type Name struct {
	ID    string
	Start Pos
}

// Pos returns the start of the identifier.
func (n *Name) Pos() Pos { return n.Start }

// End returns the position immediately after the identifier.
func (n *Name) End() Pos { return Pos{Line: n.Start.Line, Col: n.Start.Col + len(n.ID)} }

// Tuple is a tuple or list of targets, as in a, (b, c) = ...
type Tuple struct {
	Elts []Expr
}

// Starred is a starred target, as in a, *b = ...
type Starred struct {
	Value Expr
}

// Opaque is a target that does not bind a name, like an attribute or a subscript.
type Opaque struct{}

func (*Name) expr()    {}
func (*Tuple) expr()   {}
func (*Starred) expr() {}
func (*Opaque) expr()  {}

// Targets yields all names bound by a target expression, including nested
// and starred unpacking targets.
func Targets(e Expr) iter.Seq[*Name] {
	return func(yield func(*Name) bool) {
		yieldTargets(e, yield)
	}
}

func yieldTargets(e Expr, yield func(*Name) bool) bool {
	switch e := e.(type) {
	case *Name:
		return yield(e)

	case *Tuple:
		for _, elt := range e.Elts {
			if !yieldTargets(elt, yield) {
				return false
			}
		}

	case *Starred:
		return yieldTargets(e.Value, yield)
	}

	return true
}

// AllTargets yields all names bound by a sequence of target expressions.
func AllTargets(exprs []Expr) iter.Seq[*Name] {
	return func(yield func(*Name) bool) {
		for _, e := range exprs {
			if !yieldTargets(e, yield) {
				return
			}
		}
	}
}
