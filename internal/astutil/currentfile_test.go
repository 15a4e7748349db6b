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

package astutil_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/bindguard/internal/astutil"
	"fillmore-labs.com/bindguard/internal/testsource"
	"fillmore-labs.com/bindguard/syntax"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		comment string
		nolint  bool
		noqa    bool
	}{
		{"# nolint:bindguard", true, false},
		{"#nolint:all", true, false},
		{"# nolint:other,bindguard // reason", true, false},
		{"# nolint:other", false, false},
		{"# noqa", false, true},
		{"# NOQA", false, true},
		{"# noqa: bg:nex", false, true},
		{"# noqa: E501, BG", false, true},
		{"# noqa: E501", false, false},
		{"# comment", false, false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.comment); got != tt.nolint {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.nolint)
		}

		if got := CommentHasNoQA(tt.comment); got != tt.noqa {
			t.Errorf("CommentHasNoQA(%q) = %t, want %t", tt.comment, got, tt.noqa)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		generated bool
		nolint    bool
	}{
		{"plain", "x = 1\n", false, false},
		{"generated", "# Code generated by gen. DO NOT EDIT.\nx = 1\n", true, false},
		{"nolint", "# nolint:bindguard\n# more\nx = 1\n", false, true},
		{"late nolint", "# header\n# nolint:bindguard\nx = 1\n", false, false},
		{"after code", "x = 1\n# Code generated by gen. DO NOT EDIT.\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCurrentFile(testsource.Parse(t, tt.src))

			if !c.Valid() {
				t.Fatal("Expected valid file")
			}

			if got := c.Generated(); got != tt.generated {
				t.Errorf("Generated() = %t, want %t", got, tt.generated)
			}

			if got := c.NoLintFile(); got != tt.nolint {
				t.Errorf("NoLintFile() = %t, want %t", got, tt.nolint)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `
		a = 1  # noqa
		b = 2  # nolint:bindguard
		c = 3  # unrelated
		d = 4
	`

	c := NewCurrentFile(testsource.Parse(t, src))

	for line, want := range []bool{false, true, true, false, false} {
		if got := c.NoLintComment(syntax.Pos{Line: line, Col: 1}); got != want {
			t.Errorf("NoLintComment(line %d) = %t, want %t", line, got, want)
		}
	}

	if (CurrentFile{}).NoLintComment(syntax.Pos{Line: 1, Col: 1}) {
		t.Error("Invalid file has no comments")
	}
}

func TestBindingSites(t *testing.T) {
	t.Parallel()

	const src = `
		import os.path as p, sys
		a, (b, *c) = d.e = 1
		f: int = 2
		g: int
		h += 1
		with open("x") as i:
		    pass
		for k in l:
		    pass
		try:
		    pass
		except E as m:
		    pass
		def n(): pass
		class o: pass
	`

	f := testsource.Parse(t, src)

	var got []string
	for n := range syntax.Preorder(f.Module) {
		for name := range BindingSites(n) {
			got = append(got, name.ID)
		}
	}

	want := []string{"p", "sys", "a", "b", "c", "f", "h", "i", "k", "m", "n", "o"}
	if !slices.Equal(got, want) {
		t.Errorf("Got binding sites %v, want %v", got, want)
	}
}
