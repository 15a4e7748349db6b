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

import "fmt"

// Pos is a 1-based line and byte column in a source file.
type Pos struct {
	Line int `json:"line"`
	Col  int `json:"column"`
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Before reports whether p is located strictly before q.
func (p Pos) Before(q Pos) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Col < q.Col
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is a statement-level node of the syntax tree.
//
// Nodes are produced by a front-end and never modified by the analyses.
type Node interface {
	// Kind returns the discriminating tag of the node.
	Kind() Kind

	// Pos returns the start of the node.
	Pos() Pos

	// Uses returns the names read by the node itself, excluding reads in nested
	// statement blocks, lambdas and comprehensions.
	Uses() []*Name
}

// Stmt holds the fields shared by all nodes.
type Stmt struct {
	Start Pos
	Loads []*Name

	// Stores are names bound inside expressions of the node, like assignment
	// expressions and match captures. The analyses do not treat them as binding sites.
	Stores []*Name
}

// Pos implements [Node].
func (s *Stmt) Pos() Pos { return s.Start }

// Uses implements [Node].
func (s *Stmt) Uses() []*Name { return s.Loads }

// Stored returns the names bound inside expressions of the node.
func (s *Stmt) Stored() []*Name { return s.Stores }

// Module is the top-level node of a source file.
type Module struct {
	Stmt
	Body []Node
}

// FunctionDef is a function or async function definition.
type FunctionDef struct {
	Stmt
	Name   *Name
	Async  bool
	Params []*Name
	Body   []Node
}

// ClassDef is a class definition.
type ClassDef struct {
	Stmt
	Name *Name
	Body []Node
}

// If is a conditional statement. An elif chain is a nested [If] as the only
// statement of Orelse.
type If struct {
	Stmt
	Body, Orelse []Node
}

// For is a for loop with an optional else clause.
type For struct {
	Stmt
	Async        bool
	Target       Expr
	Body, Orelse []Node
}

// While is a while loop with an optional else clause.
type While struct {
	Stmt
	Body, Orelse []Node
}

// Try is an exception-handling construct.
type Try struct {
	Stmt
	Body      []Node
	Handlers  []*ExceptHandler
	Orelse    []Node
	Finalbody []Node
}

// ExceptHandler is a single except clause of a [Try].
type ExceptHandler struct {
	Stmt
	Name *Name // nil if the exception is not bound
	Body []Node
}

// With is a context-manager block.
type With struct {
	Stmt
	Async bool
	Items []*WithItem
	Body  []Node
}

// WithItem is a single context expression of a [With], optionally bound to a target.
type WithItem struct {
	Stmt
	Target Expr // nil without "as"
}

// Import is an import statement.
type Import struct {
	Stmt
	Names []*Alias
}

// ImportFrom is a from-import statement.
type ImportFrom struct {
	Stmt
	Module   string
	Names    []*Alias
	Wildcard bool
}

// Alias is an imported name, optionally renamed.
type Alias struct {
	Stmt
	Name   string // dotted path as written
	AsName string // empty without "as"
}

// Bound returns the name bound by the alias: the alias itself if given, otherwise
// the first component of a dotted import path.
func (a *Alias) Bound() string {
	if a.AsName != "" {
		return a.AsName
	}

	for i := range len(a.Name) {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}

	return a.Name
}

// Assign is a plain assignment, possibly with multiple targets (a = b = value).
type Assign struct {
	Stmt
	Targets []Expr
}

// AnnAssign is an annotated assignment. It binds only with a value.
type AnnAssign struct {
	Stmt
	Target   Expr
	HasValue bool
}

// AugAssign is an augmented assignment (x += 1). It requires a prior binding.
type AugAssign struct {
	Stmt
	Target Expr
}

// Global is a global or nonlocal declaration.
type Global struct {
	Stmt
	Names    []*Name
	Nonlocal bool
}

// Other is any statement without binding semantics for the analyses.
// Blocks holds nested statement sequences the statement may contain (e.g. match cases).
type Other struct {
	Stmt
	Desc   string
	Blocks [][]Node
}

// keep-sorted start
func (*AnnAssign) Kind() Kind     { return KindAnnAssign }
func (*Alias) Kind() Kind         { return KindAlias }
func (*Assign) Kind() Kind        { return KindAssign }
func (*AugAssign) Kind() Kind     { return KindAugAssign }
func (*ClassDef) Kind() Kind      { return KindClassDef }
func (*ExceptHandler) Kind() Kind { return KindExceptHandler }
func (*Global) Kind() Kind        { return KindGlobal }
func (*If) Kind() Kind            { return KindIf }
func (*Import) Kind() Kind        { return KindImport }
func (*ImportFrom) Kind() Kind    { return KindImportFrom }
func (*Module) Kind() Kind        { return KindModule }
func (*Other) Kind() Kind         { return KindOther }
func (*Try) Kind() Kind           { return KindTry }
func (*While) Kind() Kind         { return KindWhile }
func (*WithItem) Kind() Kind      { return KindWithItem }
// keep-sorted end

// Kind implements [Node].
func (n *FunctionDef) Kind() Kind {
	if n.Async {
		return KindAsyncFunctionDef
	}

	return KindFunctionDef
}

// Kind implements [Node].
func (n *For) Kind() Kind {
	if n.Async {
		return KindAsyncFor
	}

	return KindFor
}

// Kind implements [Node].
func (n *With) Kind() Kind {
	if n.Async {
		return KindAsyncWith
	}

	return KindWith
}
