// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package scope_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bindguard/internal/scope"
	"fillmore-labs.com/bindguard/internal/testsource"
	"fillmore-labs.com/bindguard/syntax"
)

const nested = `
import os

def outer(a, *args):
    global g
    b = 1
    g = 2

    class Inner:
        c = b

        def method(self):
            nonlocal b
            return c

    if (w := a):
        pass

from m import *
`

func scopes(t *testing.T) (*Index, map[string]*Scope) {
	t.Helper()

	f := testsource.Parse(t, nested)
	x := NewIndex(f.Module)

	byName := make(map[string]*Scope)
	for s := range x.All() {
		byName[label(s.Node)] = s
	}

	return x, byName
}

func label(n syntax.Node) string {
	switch n := n.(type) {
	case *syntax.FunctionDef:
		return n.Name.ID

	case *syntax.ClassDef:
		return n.Name.ID

	default:
		return Name(n)
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	x, byName := scopes(t)

	if got, want := x.Len(), 4; got != want {
		t.Fatalf("Got %d scopes, want %d", got, want)
	}

	if !x.Wildcard() {
		t.Error("Expected wildcard import")
	}

	if got, want := x.Globals().Sorted(), []string{"g"}; !cmp.Equal(got, want) {
		t.Errorf("Globals() = %v, want %v", got, want)
	}

	tests := [...]struct {
		scope    string
		bindings []string
		declared []string
		stores   []string
	}{
		{"module", []string{"os", "outer"}, nil, nil},
		{"outer", []string{"Inner", "a", "args", "b", "g"}, []string{"g"}, []string{"w"}},
		{"Inner", []string{"c", "method"}, nil, nil},
		{"method", []string{"self"}, []string{"b"}, nil},
	}

	for _, tt := range tests {
		s := byName[tt.scope]
		if s == nil {
			t.Errorf("Missing scope %s", tt.scope)

			continue
		}

		if diff := cmp.Diff(tt.bindings, slices.Sorted(maps.Keys(s.Bindings))); diff != "" {
			t.Errorf("%s bindings mismatch (-want +got):\n%s", tt.scope, diff)
		}

		if diff := cmp.Diff(tt.declared, s.Declared.Sorted()); diff != "" {
			t.Errorf("%s declared mismatch (-want +got):\n%s", tt.scope, diff)
		}

		if diff := cmp.Diff(tt.stores, s.Stores.Sorted()); diff != "" {
			t.Errorf("%s stores mismatch (-want +got):\n%s", tt.scope, diff)
		}
	}
}

func TestVisible(t *testing.T) {
	t.Parallel()

	_, byName := scopes(t)

	tests := [...]struct {
		scope string
		want  []string
	}{
		{"module", nil},
		{"outer", []string{"module/false"}},
		{"Inner", []string{"outer/true", "module/false"}},
		{"method", []string{"outer/false", "module/false"}},
	}

	for _, tt := range tests {
		var got []string
		for p, immediate := range byName[tt.scope].Visible() {
			if immediate {
				got = append(got, label(p.Node)+"/true")
			} else {
				got = append(got, label(p.Node)+"/false")
			}
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s visible mismatch (-want +got):\n%s", tt.scope, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	x, byName := scopes(t)

	tests := [...]struct {
		scope, name, want string
	}{
		{"method", "c", ""},
		{"method", "b", "outer"},
		{"method", "os", "module"},
		{"Inner", "b", "outer"},
		{"Inner", "c", "Inner"},
		{"outer", "g", ""},
		{"outer", "undefined", ""},
	}

	for _, tt := range tests {
		var got string
		if s := x.Resolve(byName[tt.scope], tt.name); s != nil {
			got = label(s.Node)
		}

		if got != tt.want {
			t.Errorf("Resolve(%s, %q) = %q, want %q", tt.scope, tt.name, got, tt.want)
		}
	}
}

func TestEntry(t *testing.T) {
	t.Parallel()

	_, byName := scopes(t)

	method, module := byName["method"], byName["module"]

	if got, want := method.Entry(module), byName["outer"].Node; got != want {
		t.Errorf("Entry() = %v, want outer", got)
	}

	if got := module.Entry(method); got != nil {
		t.Errorf("Entry() = %v, want nil", got)
	}
}

func TestImplicit(t *testing.T) {
	t.Parallel()

	_, byName := scopes(t)

	if byName["module"].Implicit("__qualname__") {
		t.Error("Module has no __qualname__")
	}

	if !byName["Inner"].Implicit("__qualname__") {
		t.Error("Class body has __qualname__")
	}

	if byName["method"].Implicit("self") {
		t.Error("self is not implicit")
	}
}
