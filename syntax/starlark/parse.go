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

// Package starlark converts Starlark source into the [syntax] model using the
// go.starlark.net parser.
package starlark

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	sl "go.starlark.net/starlark"
	slsyntax "go.starlark.net/syntax"

	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

// Parse parses a Starlark source file.
//
// A source with syntax errors yields a [*syntax.SyntaxError].
func Parse(filename string, src []byte) (*syntax.File, error) {
	f, err := slsyntax.Parse(filename, src, slsyntax.RetainComments)
	if err != nil {
		if e := (slsyntax.Error{}); errors.As(err, &e) {
			return nil, &syntax.SyntaxError{Filename: filename, Start: pos(e.Pos), Msg: e.Msg}
		}

		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var c converter

	file := &syntax.File{
		Name:        filename,
		Dialect:     syntax.Starlark,
		Src:         src,
		Module:      &syntax.Module{Stmt: syntax.Stmt{Start: syntax.Pos{Line: 1, Col: 1}}, Body: c.stmts(f.Stmts)},
		Comments:    comments(f),
		Predeclared: Universe(),
	}

	return file, nil
}

// Universe returns the names predeclared in every Starlark module.
func Universe() names.Set {
	u := make(names.Set, len(sl.Universe))
	for name := range sl.Universe {
		u.Add(name)
	}

	return u
}

func comments(f *slsyntax.File) []syntax.Comment {
	var result []syntax.Comment

	add := func(cs []slsyntax.Comment) {
		for _, c := range cs {
			result = append(result, syntax.Comment{Start: pos(c.Start), Text: c.Text})
		}
	}

	slsyntax.Walk(f, func(n slsyntax.Node) bool {
		if n == nil {
			return true
		}

		if cs := n.Comments(); cs != nil {
			add(cs.Before)
			add(cs.Suffix)
			add(cs.After)
		}

		return true
	})

	slices.SortFunc(result, func(a, b syntax.Comment) int {
		return cmp.Or(cmp.Compare(a.Start.Line, b.Start.Line), cmp.Compare(a.Start.Col, b.Start.Col))
	})

	return result
}

func pos(p slsyntax.Position) syntax.Pos {
	return syntax.Pos{Line: int(p.Line), Col: int(p.Col)}
}

func start(n slsyntax.Node) syntax.Pos {
	p, _ := n.Span()

	return pos(p)
}
