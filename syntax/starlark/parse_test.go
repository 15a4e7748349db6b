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


package starlark_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/bindguard/syntax"
	. "fillmore-labs.com/bindguard/syntax/starlark"
)

const src = `# head
load(":defs.bzl", "rule", alias = "other")
x = 1  # one
y += x
def f(a, b = c, *args, **kwargs):
    if a:
        return b  # inner
    else:
        pass
for i, j in pairs:
    print(i.name, key = j)
`

func parse(t *testing.T) *syntax.File {
	t.Helper()

	f, err := Parse("BUILD", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return f
}

func ids(ns []*syntax.Name) []string {
	var s []string
	for _, n := range ns {
		s = append(s, n.ID)
	}

	return s
}

func TestStatements(t *testing.T) {
	t.Parallel()

	f := parse(t)

	var got []syntax.Kind
	for n := range syntax.Preorder(f.Module) {
		got = append(got, n.Kind())
	}

	want := []syntax.Kind{
		syntax.KindModule,
		syntax.KindImportFrom, syntax.KindAlias, syntax.KindAlias,
		syntax.KindAssign,
		syntax.KindAugAssign,
		syntax.KindFunctionDef, syntax.KindIf, syntax.KindOther, syntax.KindOther,
		syntax.KindFor, syntax.KindOther,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}

	if f.Dialect != syntax.Starlark {
		t.Errorf("Got dialect %s, want %s", f.Dialect, syntax.Starlark)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	load := parse(t).Module.Body[0].(*syntax.ImportFrom)

	if got, want := load.Module, ":defs.bzl"; got != want {
		t.Errorf("Got module %q, want %q", got, want)
	}

	var got []string
	for _, a := range load.Names {
		got = append(got, a.Bound())
	}

	if want := []string{"rule", "alias"}; !slices.Equal(got, want) {
		t.Errorf("Got bound names %v, want %v", got, want)
	}

	if a := load.Names[1]; a.Name != "other" {
		t.Errorf("Got loaded name %q, want %q", a.Name, "other")
	}
}

func TestDefinitions(t *testing.T) {
	t.Parallel()

	body := parse(t).Module.Body

	aug := body[2].(*syntax.AugAssign)
	if got, want := ids(aug.Uses()), []string{"y", "x"}; !slices.Equal(got, want) {
		t.Errorf("Got augmented assignment uses %v, want %v", got, want)
	}

	def := body[3].(*syntax.FunctionDef)
	if got, want := ids(def.Params), []string{"a", "b", "args", "kwargs"}; !slices.Equal(got, want) {
		t.Errorf("Got parameters %v, want %v", got, want)
	}

	if got, want := ids(def.Uses()), []string{"c"}; !slices.Equal(got, want) {
		t.Errorf("Got definition uses %v, want %v", got, want)
	}

	loop := body[4].(*syntax.For)
	if got, want := slices.Collect(syntax.Targets(loop.Target)), 2; len(got) != want {
		t.Errorf("Got %d loop targets, want %d", len(got), want)
	}

	if got, want := ids(loop.Body[0].Uses()), []string{"print", "i", "j"}; !slices.Equal(got, want) {
		t.Errorf("Got call uses %v, want %v", got, want)
	}
}

func TestComments(t *testing.T) {
	t.Parallel()

	want := []syntax.Comment{
		{Start: syntax.Pos{Line: 1, Col: 1}, Text: "# head"},
		{Start: syntax.Pos{Line: 3, Col: 8}, Text: "# one"},
		{Start: syntax.Pos{Line: 7, Col: 19}, Text: "# inner"},
	}

	if diff := cmp.Diff(want, parse(t).Comments); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}
}

func TestUniverse(t *testing.T) {
	t.Parallel()

	u := Universe()

	for _, name := range [...]string{"None", "True", "len", "print"} {
		if !u.Has(name) {
			t.Errorf("Expected %q to be predeclared", name)
		}
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad.star", []byte("x = 1\ndef (:\n"))
	if !errors.Is(err, syntax.ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, syntax.ErrSyntax)
	}

	var serr *syntax.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Got error %T, want %T", err, serr)
	}

	if serr.Filename != "bad.star" || serr.Start.Line != 2 {
		t.Errorf("Got error at %s:%s, want bad.star:2", serr.Filename, serr.Start)
	}
}
