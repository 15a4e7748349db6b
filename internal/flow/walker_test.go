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

package flow_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bindguard/internal/flow"
	"fillmore-labs.com/bindguard/internal/construct"
	"fillmore-labs.com/bindguard/internal/testsource"
	"fillmore-labs.com/bindguard/names"
	"fillmore-labs.com/bindguard/syntax"
)

const nested = `
if a:
    x = 1
    while b:
        y = 1
        use(y)
    else:
        y = 2
else:
    try:
        x = 2
    except E as e:
        x = 3
`

func TestTree(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, nested)

	w := NewWalker(construct.Safe)
	if found := w.Traverse(f.Module, nil, nil); found {
		t.Fatal("Unexpected stop without stop node")
	}

	tree := w.Tree()

	if got, want := tree.Len(), 5; got != want {
		t.Fatalf("Got %d constructs, want %d", got, want)
	}

	root, ok := tree.Lookup(f.Module)
	if !ok {
		t.Fatal("Module not recorded")
	}

	if diff := cmp.Diff([]ID{root}, tree.Roots()); diff != "" {
		t.Errorf("Roots() mismatch (-want +got):\n%s", diff)
	}

	ifStmt := f.Module.Body[0].(*syntax.If)
	try := ifStmt.Orelse[0].(*syntax.Try)

	id, _ := tree.Lookup(try.Handlers[0])
	parent, b := tree.Parent(id)

	if tree.Node(parent) != try || b != syntax.Handlers {
		t.Errorf("Got handler parent %v in %s, want try in handlers", tree.Node(parent).Kind(), b)
	}

	if got := tree.Set(id).Names(syntax.Body); !got.Equal(names.Of("e", "x")) {
		t.Errorf("Got handler names %v, want {e, x}", got)
	}

	if got, want := tree.Fold(), names.Of("x"); !got.Equal(want) {
		t.Errorf("Fold() = %v, want %v", got, want)
	}
}

func TestStopPropagation(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, nested)
	until := testsource.FindUse(t, f.Module, "use", 0)

	w := NewWalker(construct.Safe)
	if found := w.Traverse(f.Module, nil, until); !found {
		t.Fatal("Stop node not reached")
	}

	tree := w.Tree()

	if got, want := tree.Len(), 3; got != want {
		t.Errorf("Got %d constructs, want %d", got, want)
	}

	if got, want := tree.Fold(), names.Of("x", "y"); !got.Equal(want) {
		t.Errorf("Fold() = %v, want %v", got, want)
	}
}

func TestShadowedAssignment(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `
		x = 1
		if a:
		    x = 2
		    y = 2
		else:
		    y = 3
		`)

	w := NewWalker(construct.Exhaustive)
	w.Traverse(f.Module, nil, nil)

	tree := w.Tree()
	id, _ := tree.Lookup(f.Module.Body[1])

	if got, want := tree.Set(id).Names(syntax.Body), names.Of("y"); !got.Equal(want) {
		t.Errorf("Got body names %v, want %v", got, want)
	}

	if got, want := tree.Fold(), names.Of("x", "y"); !got.Equal(want) {
		t.Errorf("Fold() = %v, want %v", got, want)
	}
}

func TestSkipsVisited(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, nested)

	w := NewWalker(construct.Exhaustive)
	w.Traverse(f.Module, nil, nil)
	n := w.Tree().Len()

	w.Traverse(f.Module, nil, nil)

	if got := w.Tree().Len(); got != n {
		t.Errorf("Got %d constructs after second traversal, want %d", got, n)
	}
}
