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

// Package python converts Python source into the [syntax] model using the
// tree-sitter Python grammar.
package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"fillmore-labs.com/bindguard/syntax"
)

// Parse parses a Python source file.
//
// A source with syntax errors yields a [*syntax.SyntaxError] for the first
// erroneous node.
func Parse(ctx context.Context, filename string, src []byte) (*syntax.File, error) {
	p := sitter.NewParser()
	defer p.Close()

	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(filename, src, root)
	}

	c := converter{src: src}

	file := &syntax.File{
		Name:        filename,
		Dialect:     syntax.Python,
		Src:         src,
		Module:      &syntax.Module{Stmt: syntax.Stmt{Start: syntax.Pos{Line: 1, Col: 1}}, Body: c.block(root)},
		Predeclared: Builtins(),
	}

	collectComments(root, src, &file.Comments)

	return file, nil
}

func syntaxError(filename string, src []byte, root *sitter.Node) error {
	n := firstError(root)
	if n == nil {
		n = root
	}

	msg := "invalid syntax"

	switch {
	case n.IsMissing():
		msg = fmt.Sprintf("missing %q", n.Type())

	case n.ChildCount() > 0:
		msg = fmt.Sprintf("unexpected %q", firstLine(n.Child(0).Content(src)))

	case n.EndByte() > n.StartByte():
		msg = fmt.Sprintf("unexpected %q", firstLine(n.Content(src)))
	}

	return &syntax.SyntaxError{Filename: filename, Start: pos(n), Msg: msg}
}

// firstError returns the first error or missing node in source order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := range int(n.ChildCount()) {
		if e := firstError(n.Child(i)); e != nil {
			return e
		}
	}

	return nil
}

func firstLine(s string) string {
	for i := range len(s) {
		if s[i] == '\n' || s[i] == '\r' {
			return s[:i]
		}
	}

	return s
}

func collectComments(n *sitter.Node, src []byte, out *[]syntax.Comment) {
	if n.Type() == "comment" {
		*out = append(*out, syntax.Comment{Start: pos(n), Text: n.Content(src)})

		return
	}

	for i := range int(n.ChildCount()) {
		collectComments(n.Child(i), src, out)
	}
}

func pos(n *sitter.Node) syntax.Pos {
	p := n.StartPoint()

	return syntax.Pos{Line: int(p.Row) + 1, Col: int(p.Column) + 1}
}
