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

// Package testsource provides utilities for parsing Python source fragments in tests.
//
// It is designed to simplify testing of the binding analyses by handling the
// boilerplate of dedenting fragments, wrapping them into a function or class
// scope and locating statements in the parsed tree.
package testsource

import (
	"context"
	"strings"
	"testing"

	"fillmore-labs.com/bindguard/syntax"
	"fillmore-labs.com/bindguard/syntax/python"
)

// Parse parses a Python source fragment after removing its common indentation.
func Parse(tb testing.TB, src string) *syntax.File {
	tb.Helper()

	const filename = "test.py"

	f, err := python.Parse(context.Background(), filename, []byte(Dedent(src)))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Context is a lexical scope a fragment can be placed in.
type Context struct {
	Name   string
	header []string
}

// Contexts are the scopes fragments are tested in: the module, a function,
// an async function, a method and a class body.
var Contexts = []Context{
	{Name: "module"},
	{Name: "function", header: []string{"def wrapper():"}},
	{Name: "async function", header: []string{"async def wrapper():"}},
	{Name: "method", header: []string{"class Wrapper:", "    def method(self):"}},
	{Name: "class", header: []string{"class Wrapper:"}},
}

// Wrap places the dedented fragment src into the scope c.
func (c Context) Wrap(src string) string {
	src = Dedent(src)
	if len(c.header) == 0 {
		return src
	}

	var b strings.Builder

	for _, line := range c.header {
		b.WriteString(line) // ignore error
		b.WriteByte('\n')   // ignore error
	}

	indent := strings.Repeat("    ", len(c.header))
	for line := range strings.Lines(src) {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent) // ignore error
		}

		b.WriteString(line) // ignore error
	}

	return b.String()
}

// Scope returns the innermost scope node of a wrapped fragment: the module or
// the last wrapping definition.
func Scope(f *syntax.File) syntax.Node {
	var n syntax.Node = f.Module

	for {
		body := syntax.Children(n, syntax.Body)
		if len(body) != 1 || !body[0].Kind().IsDefinition() {
			return n
		}

		switch d := body[0].(type) {
		case *syntax.FunctionDef:
			if d.Name == nil || d.Name.ID != "wrapper" && d.Name.ID != "method" {
				return n
			}

		case *syntax.ClassDef:
			if d.Name == nil || d.Name.ID != "Wrapper" {
				return n
			}
		}

		n = body[0]
	}
}

// FindUse returns the statement containing the n-th read of name, counting from zero
// in source order.
func FindUse(tb testing.TB, root syntax.Node, name string, n int) syntax.Node {
	tb.Helper()

	for stmt := range syntax.Preorder(root) {
		for _, use := range stmt.Uses() {
			if use.ID != name {
				continue
			}

			if n == 0 {
				return stmt
			}

			n--
		}
	}

	tb.Fatalf("Can't find read of %q", name)

	return nil
}

// Dedent removes the common leading whitespace of all non-blank lines and a
// leading newline.
func Dedent(src string) string {
	src = strings.TrimPrefix(src, "\n")

	prefix := ""
	first := true

	for line := range strings.Lines(src) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = indent, false

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	if prefix == "" {
		return src
	}

	var b strings.Builder
	for line := range strings.Lines(src) {
		b.WriteString(strings.TrimPrefix(line, prefix)) // ignore error
	}

	return b.String()
}
