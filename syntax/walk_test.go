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


package syntax_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bindguard/syntax"
)

func name(id string, line int) *Name { return &Name{ID: id, Start: Pos{Line: line, Col: 1}} }

// tree builds:
//
//	try:
//	    x = 1
//	    def f():
//	        y = 2
//	except:
//	    pass
type tree struct {
	root    *Module
	try     *Try
	assign  *Assign
	def     *FunctionDef
	inner   *Assign
	handler *ExceptHandler
	pass    *Other
}

func newTree() tree {
	var t tree

	t.assign = &Assign{Stmt: Stmt{Start: Pos{Line: 2, Col: 5}}, Targets: []Expr{name("x", 2)}}
	t.inner = &Assign{Stmt: Stmt{Start: Pos{Line: 4, Col: 9}}, Targets: []Expr{name("y", 4)}}
	t.def = &FunctionDef{Stmt: Stmt{Start: Pos{Line: 3, Col: 5}}, Name: name("f", 3), Body: []Node{t.inner}}
	t.pass = &Other{Stmt: Stmt{Start: Pos{Line: 6, Col: 5}}, Desc: "pass"}
	t.handler = &ExceptHandler{Stmt: Stmt{Start: Pos{Line: 5, Col: 1}}, Body: []Node{t.pass}}
	t.try = &Try{Stmt: Stmt{Start: Pos{Line: 1, Col: 1}}, Body: []Node{t.assign, t.def}, Handlers: []*ExceptHandler{t.handler}}
	t.root = &Module{Body: []Node{t.try}}

	return t
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	tr := newTree()

	got := slices.Collect(Preorder(tr.root))
	want := []Node{tr.root, tr.try, tr.assign, tr.def, tr.inner, tr.handler, tr.pass}

	if !slices.Equal(got, want) {
		t.Errorf("Got preorder %v, want %v", got, want)
	}
}

func TestInScope(t *testing.T) {
	t.Parallel()

	tr := newTree()

	got := slices.Collect(InScope(tr.root))
	want := []Node{tr.root, tr.try, tr.assign, tr.def, tr.handler, tr.pass}

	if !slices.Equal(got, want) {
		t.Errorf("Got scope nodes %v, want %v", got, want)
	}

	if got := slices.Collect(InScope(tr.def)); !slices.Equal(got, []Node{tr.def, tr.inner}) {
		t.Errorf("Got function scope nodes %v, want the definition and its body", got)
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	tr := newTree()

	var got []Kind

	Inspect(tr.root, func(n Node) bool {
		got = append(got, n.Kind())

		return n.Kind() != KindTry
	})

	if diff := cmp.Diff([]Kind{KindModule, KindTry}, got); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	tr := newTree()
	x := NewIndex(tr.root)

	if p, b, ok := x.Parent(tr.pass); !ok || p != tr.handler || b != Body {
		t.Errorf("Got parent %v in %s, want the handler body", p, b)
	}

	if p, b, ok := x.Parent(tr.handler); !ok || p != tr.try || b != Handlers {
		t.Errorf("Got parent %v in %s, want the try handlers", p, b)
	}

	if _, _, ok := x.Parent(tr.root); ok {
		t.Error("Root has no parent")
	}

	if !x.Contains(tr.root) || !x.Contains(tr.inner) || x.Contains(&Other{}) {
		t.Error("Unexpected containment")
	}

	var got []Branch
	for _, b := range x.Ancestors(tr.inner) {
		got = append(got, b)
	}

	if diff := cmp.Diff([]Branch{Body, Body, Body}, got); diff != "" {
		t.Errorf("Branches mismatch (-want +got):\n%s", diff)
	}
}

func TestBranches(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		node Node
		want []Branch
	}{
		{&Module{}, []Branch{Body}},
		{&If{}, []Branch{Body, Orelse}},
		{&Try{}, []Branch{Body, Handlers, Orelse, Finalbody}},
		{&With{}, []Branch{Items, Body}},
		{&ImportFrom{}, []Branch{Names}},
		{&Assign{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.node.Kind().String(), func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Branches(tt.node)); diff != "" {
				t.Errorf("Branches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	t.Parallel()

	e := &Tuple{Elts: []Expr{
		name("a", 1),
		&Opaque{},
		&Starred{Value: &Tuple{Elts: []Expr{name("b", 1), name("c", 1)}}},
	}}

	var got []string
	for n := range AllTargets([]Expr{e, name("d", 1)}) {
		got = append(got, n.ID)
	}

	if want := []string{"a", "b", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("Got targets %v, want %v", got, want)
	}
}

func TestAliasBound(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		alias Alias
		want  string
	}{
		{Alias{Name: "os"}, "os"},
		{Alias{Name: "os.path"}, "os"},
		{Alias{Name: "os.path", AsName: "p"}, "p"},
	}

	for _, tt := range tests {
		if got := tt.alias.Bound(); got != tt.want {
			t.Errorf("Got %q for %s, want %q", got, tt.alias.Name, tt.want)
		}
	}
}

func TestPos(t *testing.T) {
	t.Parallel()

	p, q := Pos{Line: 1, Col: 5}, Pos{Line: 2, Col: 1}

	if !p.Before(q) || q.Before(p) || p.Before(p) {
		t.Error("Unexpected position order")
	}

	if got, want := (Pos{}).String(), "-"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := p.String(), "1:5"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestFileLine(t *testing.T) {
	t.Parallel()

	f := &File{Src: []byte("first\r\nsecond\nthird")}

	for i, want := range [...]string{"first", "second", "third", ""} {
		if got := f.Line(i + 1); got != want {
			t.Errorf("Got line %d %q, want %q", i+1, got, want)
		}
	}
}
