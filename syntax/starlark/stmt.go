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

type converter struct{}

func (c *converter) stmts(stmts []slsyntax.Stmt) []syntax.Node {
	body := make([]syntax.Node, 0, len(stmts))
	for _, stmt := range stmts {
		body = append(body, c.stmt(stmt))
	}

	return body
}

func (c *converter) stmt(stmt slsyntax.Stmt) syntax.Node {
	st := syntax.Stmt{Start: start(stmt)}

	switch stmt := stmt.(type) {
	case *slsyntax.AssignStmt:
		if stmt.Op != slsyntax.EQ {
			s := &syntax.AugAssign{Stmt: st}
			s.Target = c.target(stmt.LHS, &s.Stmt)
			c.loads(stmt.LHS, &s.Stmt)
			c.loads(stmt.RHS, &s.Stmt)

			return s
		}

		s := &syntax.Assign{Stmt: st}
		s.Targets = []syntax.Expr{c.target(stmt.LHS, &s.Stmt)}
		c.loads(stmt.RHS, &s.Stmt)

		return s

	case *slsyntax.DefStmt:
		s := &syntax.FunctionDef{Stmt: st, Name: name(stmt.Name)}

		for _, param := range stmt.Params {
			c.param(param, s)
		}

		s.Body = c.stmts(stmt.Body)

		return s

	case *slsyntax.IfStmt:
		s := &syntax.If{Stmt: st}
		c.loads(stmt.Cond, &s.Stmt)
		s.Body = c.stmts(stmt.True)
		s.Orelse = c.stmts(stmt.False)

		return s

	case *slsyntax.ForStmt:
		s := &syntax.For{Stmt: st}
		s.Target = c.target(stmt.Vars, &s.Stmt)
		c.loads(stmt.X, &s.Stmt)
		s.Body = c.stmts(stmt.Body)

		return s

	case *slsyntax.WhileStmt:
		s := &syntax.While{Stmt: st}
		c.loads(stmt.Cond, &s.Stmt)
		s.Body = c.stmts(stmt.Body)

		return s

	case *slsyntax.LoadStmt:
		s := &syntax.ImportFrom{Stmt: st, Module: stmt.ModuleName()}

		for i, from := range stmt.From {
			a := &syntax.Alias{Stmt: syntax.Stmt{Start: pos(stmt.To[i].NamePos)}, Name: from.Name}
			if to := stmt.To[i].Name; to != from.Name {
				a.AsName = to
			}

			s.Names = append(s.Names, a)
		}

		return s

	case *slsyntax.ExprStmt:
		s := &syntax.Other{Stmt: st, Desc: "expression"}
		c.loads(stmt.X, &s.Stmt)

		return s

	case *slsyntax.ReturnStmt:
		s := &syntax.Other{Stmt: st, Desc: "return"}
		c.loads(stmt.Result, &s.Stmt)

		return s

	case *slsyntax.BranchStmt:
		return &syntax.Other{Stmt: st, Desc: stmt.Token.String()}

	default:
		return &syntax.Other{Stmt: st, Desc: "statement"}
	}
}

// param collects a parameter name; default values are evaluated at definition time.
func (c *converter) param(p slsyntax.Expr, def *syntax.FunctionDef) {
	switch p := p.(type) {
	case *slsyntax.Ident:
		def.Params = append(def.Params, name(p))

	case *slsyntax.BinaryExpr:
		c.loads(p.Y, &def.Stmt)
		c.param(p.X, def)

	case *slsyntax.UnaryExpr:
		if p.X != nil {
			c.param(p.X, def)
		}
	}
}

func name(id *slsyntax.Ident) *syntax.Name {
	return &syntax.Name{ID: id.Name, Start: pos(id.NamePos)}
}
