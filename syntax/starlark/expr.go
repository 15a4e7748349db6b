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

package starlark

import (
	slsyntax "go.starlark.net/syntax"

	"fillmore-labs.com/bindguard/syntax"
)

// target converts an assignment target. Names read while evaluating the
// target, like the operand of an index expression, are recorded as loads of st.
func (c *converter) target(e slsyntax.Expr, st *syntax.Stmt) syntax.Expr {
	switch e := e.(type) {
	case *slsyntax.Ident:
		return name(e)

	case *slsyntax.TupleExpr:
		return c.targets(e.List, st)

	case *slsyntax.ListExpr:
		return c.targets(e.List, st)

	case *slsyntax.ParenExpr:
		return c.target(e.X, st)

	default:
		c.loads(e, st)

		return &syntax.Opaque{}
	}
}

func (c *converter) targets(list []slsyntax.Expr, st *syntax.Stmt) *syntax.Tuple {
	t := &syntax.Tuple{Elts: make([]syntax.Expr, 0, len(list))}
	for _, e := range list {
		t.Elts = append(t.Elts, c.target(e, st))
	}

	return t
}

// loads records the names read by an expression. Lambdas and comprehensions
// are their own scopes and are skipped.
func (c *converter) loads(e slsyntax.Expr, st *syntax.Stmt) {
	if e == nil {
		return
	}

	slsyntax.Walk(e, func(n slsyntax.Node) bool {
		switch n := n.(type) {
		case *slsyntax.Ident:
			st.Loads = append(st.Loads, name(n))

		case *slsyntax.DotExpr:
			c.loads(n.X, st)

			return false

		case *slsyntax.LambdaExpr, *slsyntax.Comprehension:
			return false

		case *slsyntax.CallExpr:
			c.loads(n.Fn, st)

			for _, arg := range n.Args {
				if kw, ok := arg.(*slsyntax.BinaryExpr); ok && kw.Op == slsyntax.EQ {
					c.loads(kw.Y, st)
				} else {
					c.loads(arg, st)
				}
			}

			return false
		}

		return true
	})
}
