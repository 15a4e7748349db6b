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

package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/bindguard/syntax"
)

type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string { return n.Content(c.src) }

func (c *converter) name(n *sitter.Node) *syntax.Name {
	return &syntax.Name{ID: c.text(n), Start: pos(n)}
}

// block converts the statements of a module or block node.
func (c *converter) block(n *sitter.Node) []syntax.Node {
	if n == nil {
		return nil
	}

	var body []syntax.Node

	for i := range int(n.NamedChildCount()) {
		if stmt := c.stmt(n.NamedChild(i)); stmt != nil {
			body = append(body, stmt)
		}
	}

	return body
}

func (c *converter) stmt(n *sitter.Node) syntax.Node {
	switch n.Type() {
	case "comment":
		return nil

	case "expression_statement":
		return c.expressionStatement(n)

	case "if_statement":
		return c.ifStatement(n)

	case "for_statement":
		return c.forStatement(n)

	case "while_statement":
		return c.whileStatement(n)

	case "try_statement":
		return c.tryStatement(n)

	case "with_statement":
		return c.withStatement(n)

	case "function_definition":
		return c.functionDefinition(n, nil)

	case "class_definition":
		return c.classDefinition(n, nil)

	case "decorated_definition":
		return c.decoratedDefinition(n)

	case "import_statement":
		return c.importStatement(n)

	case "import_from_statement", "future_import_statement":
		return c.importFromStatement(n)

	case "global_statement", "nonlocal_statement":
		return c.globalStatement(n)

	case "match_statement":
		return c.matchStatement(n)

	default:
		s := &syntax.Other{Stmt: syntax.Stmt{Start: pos(n)}, Desc: strings.TrimSuffix(n.Type(), "_statement")}
		c.loads(n, &s.Stmt)

		return s
	}
}

func (c *converter) expressionStatement(n *sitter.Node) syntax.Node {
	if n.NamedChildCount() == 1 {
		switch e := n.NamedChild(0); e.Type() {
		case "assignment":
			return c.assignment(n, e)

		case "augmented_assignment":
			s := &syntax.AugAssign{Stmt: syntax.Stmt{Start: pos(n)}}
			left := e.ChildByFieldName("left")
			s.Target = c.target(left, &s.Stmt)
			c.loads(left, &s.Stmt) // reads the old value
			c.loads(e.ChildByFieldName("right"), &s.Stmt)

			return s
		}
	}

	s := &syntax.Other{Stmt: syntax.Stmt{Start: pos(n)}, Desc: "expression"}
	c.loads(n, &s.Stmt)

	return s
}

// assignment converts plain, chained and annotated assignments.
func (c *converter) assignment(stmt, n *sitter.Node) syntax.Node {
	st := syntax.Stmt{Start: pos(stmt)}

	if typ := n.ChildByFieldName("type"); typ != nil {
		c.loads(typ, &st)

		right := n.ChildByFieldName("right")
		if right != nil {
			c.loads(right, &st)
		}

		s := &syntax.AnnAssign{Stmt: st, HasValue: right != nil}
		s.Target = c.target(n.ChildByFieldName("left"), &s.Stmt)

		return s
	}

	s := &syntax.Assign{Stmt: st}

	for {
		s.Targets = append(s.Targets, c.target(n.ChildByFieldName("left"), &s.Stmt))

		right := n.ChildByFieldName("right")
		if right == nil || right.Type() != "assignment" {
			c.loads(right, &s.Stmt)

			break
		}

		n = right
	}

	return s
}

func (c *converter) ifStatement(n *sitter.Node) syntax.Node {
	var alternatives []*sitter.Node

	for i := range int(n.NamedChildCount()) {
		switch child := n.NamedChild(i); child.Type() {
		case "elif_clause", "else_clause":
			alternatives = append(alternatives, child)
		}
	}

	return c.ifChain(n, alternatives)
}

// ifChain converts a conditional and its alternatives; every elif becomes an
// [syntax.If] nested as the only statement of the previous else branch.
func (c *converter) ifChain(n *sitter.Node, alternatives []*sitter.Node) *syntax.If {
	s := &syntax.If{Stmt: syntax.Stmt{Start: pos(n)}}
	c.loads(n.ChildByFieldName("condition"), &s.Stmt)
	s.Body = c.block(n.ChildByFieldName("consequence"))

	if len(alternatives) == 0 {
		return s
	}

	switch alt := alternatives[0]; alt.Type() {
	case "elif_clause":
		s.Orelse = []syntax.Node{c.ifChain(alt, alternatives[1:])}

	default:
		s.Orelse = c.block(alt.ChildByFieldName("body"))
	}

	return s
}

func (c *converter) forStatement(n *sitter.Node) syntax.Node {
	s := &syntax.For{Stmt: syntax.Stmt{Start: pos(n)}, Async: hasToken(n, "async")}
	s.Target = c.target(n.ChildByFieldName("left"), &s.Stmt)
	c.loads(n.ChildByFieldName("right"), &s.Stmt)
	s.Body = c.block(n.ChildByFieldName("body"))
	s.Orelse = c.elseBody(n.ChildByFieldName("alternative"))

	return s
}

func (c *converter) whileStatement(n *sitter.Node) syntax.Node {
	s := &syntax.While{Stmt: syntax.Stmt{Start: pos(n)}}
	c.loads(n.ChildByFieldName("condition"), &s.Stmt)
	s.Body = c.block(n.ChildByFieldName("body"))
	s.Orelse = c.elseBody(n.ChildByFieldName("alternative"))

	return s
}

func (c *converter) elseBody(n *sitter.Node) []syntax.Node {
	if n == nil {
		return nil
	}

	return c.block(n.ChildByFieldName("body"))
}

func (c *converter) tryStatement(n *sitter.Node) syntax.Node {
	s := &syntax.Try{Stmt: syntax.Stmt{Start: pos(n)}, Body: c.block(n.ChildByFieldName("body"))}

	for i := range int(n.NamedChildCount()) {
		switch child := n.NamedChild(i); child.Type() {
		case "except_clause", "except_group_clause":
			s.Handlers = append(s.Handlers, c.exceptClause(child))

		case "else_clause":
			s.Orelse = c.block(child.ChildByFieldName("body"))

		case "finally_clause":
			s.Finalbody = c.block(childOfType(child, "block"))
		}
	}

	return s
}

// exceptClause converts "except E as name:" in both grammar shapes: with an
// as_pattern child, or with the alias following an "as" token.
func (c *converter) exceptClause(n *sitter.Node) *syntax.ExceptHandler {
	h := &syntax.ExceptHandler{Stmt: syntax.Stmt{Start: pos(n)}}

	alias := false

	for i := range int(n.ChildCount()) {
		child := n.Child(i)

		switch {
		case child.Type() == "as" || child.Type() == ",":
			alias = true

		case child.Type() == "block":
			h.Body = c.block(child)

		case !child.IsNamed() || child.Type() == "comment":

		case child.Type() == "as_pattern":
			c.loads(child.NamedChild(0), &h.Stmt)
			h.Name = c.handlerName(child.ChildByFieldName("alias"))

		case alias:
			h.Name = c.handlerName(child)

		default:
			c.loads(child, &h.Stmt)
		}
	}

	return h
}

func (c *converter) handlerName(n *sitter.Node) *syntax.Name {
	for n != nil && n.Type() != "identifier" {
		if n.NamedChildCount() == 0 {
			return nil
		}

		n = n.NamedChild(0)
	}

	if n == nil {
		return nil
	}

	return c.name(n)
}

func (c *converter) withStatement(n *sitter.Node) syntax.Node {
	s := &syntax.With{Stmt: syntax.Stmt{Start: pos(n)}, Async: hasToken(n, "async")}

	if clause := childOfType(n, "with_clause"); clause != nil {
		for i := range int(clause.NamedChildCount()) {
			if item := clause.NamedChild(i); item.Type() == "with_item" {
				s.Items = append(s.Items, c.withItem(item))
			}
		}
	}

	s.Body = c.block(n.ChildByFieldName("body"))

	return s
}

func (c *converter) withItem(n *sitter.Node) *syntax.WithItem {
	item := &syntax.WithItem{Stmt: syntax.Stmt{Start: pos(n)}}

	value := n.ChildByFieldName("value")
	if value == nil {
		value = n.NamedChild(0)
	}

	alias := n.ChildByFieldName("alias")

	if value != nil && value.Type() == "as_pattern" {
		alias = value.ChildByFieldName("alias")
		value = value.NamedChild(0)
	}

	c.loads(value, &item.Stmt)

	if alias != nil {
		if alias.Type() == "as_pattern_target" && alias.NamedChildCount() == 1 {
			alias = alias.NamedChild(0)
		}

		item.Target = c.target(alias, &item.Stmt)
	}

	return item
}

func (c *converter) decoratedDefinition(n *sitter.Node) syntax.Node {
	var decorators syntax.Stmt

	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child.Type() == "decorator" {
			c.loads(child, &decorators)
		}
	}

	def := n.ChildByFieldName("definition")
	if def == nil {
		return nil
	}

	switch def.Type() {
	case "function_definition":
		return c.functionDefinition(def, &decorators)

	case "class_definition":
		return c.classDefinition(def, &decorators)

	default:
		return c.stmt(def)
	}
}

func (c *converter) functionDefinition(n *sitter.Node, decorators *syntax.Stmt) syntax.Node {
	s := &syntax.FunctionDef{Stmt: header(n, decorators), Async: hasToken(n, "async")}

	if name := n.ChildByFieldName("name"); name != nil {
		s.Name = c.name(name)
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := range int(params.NamedChildCount()) {
			c.parameter(params.NamedChild(i), s)
		}
	}

	c.loads(n.ChildByFieldName("return_type"), &s.Stmt)
	s.Body = c.block(n.ChildByFieldName("body"))

	return s
}

// parameter collects the names of a parameter; defaults and annotations are
// evaluated at definition time.
func (c *converter) parameter(n *sitter.Node, def *syntax.FunctionDef) {
	switch n.Type() {
	case "identifier":
		def.Params = append(def.Params, c.name(n))

	case "typed_parameter":
		c.loads(n.ChildByFieldName("type"), &def.Stmt)

		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); child.Type() != "type" {
				c.parameter(child, def)
			}
		}

	case "default_parameter", "typed_default_parameter":
		c.loads(n.ChildByFieldName("type"), &def.Stmt)
		c.loads(n.ChildByFieldName("value"), &def.Stmt)
		c.parameter(n.ChildByFieldName("name"), def)

	case "list_splat_pattern", "dictionary_splat_pattern", "tuple_pattern":
		for i := range int(n.NamedChildCount()) {
			c.parameter(n.NamedChild(i), def)
		}
	}
}

func (c *converter) classDefinition(n *sitter.Node, decorators *syntax.Stmt) syntax.Node {
	s := &syntax.ClassDef{Stmt: header(n, decorators)}

	if name := n.ChildByFieldName("name"); name != nil {
		s.Name = c.name(name)
	}

	c.loads(n.ChildByFieldName("superclasses"), &s.Stmt)
	s.Body = c.block(n.ChildByFieldName("body"))

	return s
}

func header(n *sitter.Node, decorators *syntax.Stmt) syntax.Stmt {
	st := syntax.Stmt{Start: pos(n)}
	if decorators != nil {
		st.Loads = decorators.Loads
		st.Stores = decorators.Stores
	}

	return st
}

func (c *converter) importStatement(n *sitter.Node) syntax.Node {
	s := &syntax.Import{Stmt: syntax.Stmt{Start: pos(n)}}

	for i := range int(n.NamedChildCount()) {
		if n.FieldNameForChild(namedIndex(n, i)) != "name" {
			continue
		}

		s.Names = append(s.Names, c.alias(n.NamedChild(i)))
	}

	return s
}

func (c *converter) importFromStatement(n *sitter.Node) syntax.Node {
	s := &syntax.ImportFrom{Stmt: syntax.Stmt{Start: pos(n)}, Module: "__future__"}

	if module := n.ChildByFieldName("module_name"); module != nil {
		s.Module = c.text(module)
	}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		switch {
		case child.Type() == "wildcard_import":
			s.Wildcard = true

		case n.FieldNameForChild(namedIndex(n, i)) == "name":
			s.Names = append(s.Names, c.alias(child))
		}
	}

	return s
}

func (c *converter) alias(n *sitter.Node) *syntax.Alias {
	a := &syntax.Alias{Stmt: syntax.Stmt{Start: pos(n)}}

	if n.Type() == "aliased_import" {
		a.Name = c.text(n.ChildByFieldName("name"))
		a.AsName = c.text(n.ChildByFieldName("alias"))

		return a
	}

	a.Name = c.text(n)

	return a
}

func (c *converter) globalStatement(n *sitter.Node) syntax.Node {
	s := &syntax.Global{Stmt: syntax.Stmt{Start: pos(n)}, Nonlocal: n.Type() == "nonlocal_statement"}

	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child.Type() == "identifier" {
			s.Names = append(s.Names, c.name(child))
		}
	}

	return s
}

// matchStatement converts a match statement into an [syntax.Other] with one
// block per case. Pattern captures are recorded as stores.
func (c *converter) matchStatement(n *sitter.Node) syntax.Node {
	s := &syntax.Other{Stmt: syntax.Stmt{Start: pos(n)}, Desc: "match"}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		switch {
		case n.FieldNameForChild(namedIndex(n, i)) == "subject":
			c.loads(child, &s.Stmt)

		case child.Type() == "block":
			for j := range int(child.NamedChildCount()) {
				if clause := child.NamedChild(j); clause.Type() == "case_clause" {
					s.Blocks = append(s.Blocks, c.caseClause(clause, &s.Stmt))
				}
			}
		}
	}

	return s
}

func (c *converter) caseClause(n *sitter.Node, st *syntax.Stmt) []syntax.Node {
	var body []syntax.Node

	for i := range int(n.NamedChildCount()) {
		switch child := n.NamedChild(i); child.Type() {
		case "case_pattern":
			c.captures(child, st)

		case "if_clause":
			c.loads(child, st)

		case "block":
			body = c.block(child)
		}
	}

	return body
}

// captures records the names bound by a match pattern. Dotted names are value patterns.
func (c *converter) captures(n *sitter.Node, st *syntax.Stmt) {
	switch n.Type() {
	case "identifier":
		st.Stores = append(st.Stores, c.name(n))

	case "dotted_name":
		if n.NamedChildCount() == 1 {
			st.Stores = append(st.Stores, c.name(n.NamedChild(0)))
		} else {
			c.loads(n.NamedChild(0), st)
		}

	case "class_pattern":
		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); i == 0 && child.Type() == "dotted_name" {
				c.loads(child.NamedChild(0), st)
			} else {
				c.captures(child, st)
			}
		}

	case "keyword_pattern":
		if n.NamedChildCount() > 1 {
			c.captures(n.NamedChild(1), st)
		}

	default:
		for i := range int(n.NamedChildCount()) {
			c.captures(n.NamedChild(i), st)
		}
	}
}

// namedIndex returns the child index of the i-th named child of n.
func namedIndex(n *sitter.Node, i int) int {
	for j := range int(n.ChildCount()) {
		if !n.Child(j).IsNamed() {
			continue
		}

		if i == 0 {
			return j
		}

		i--
	}

	return -1
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child.Type() == typ {
			return child
		}
	}

	return nil
}

func hasToken(n *sitter.Node, token string) bool {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child.Type() == token {
			return true
		}

		if child.IsNamed() {
			return false
		}
	}

	return false
}
