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

package run_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bindguard/internal/run"
	"fillmore-labs.com/bindguard/syntax"
)

func TestDialectOf(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		path string
		want syntax.Dialect
	}{
		{"a/b.py", syntax.Python},
		{"stubs.pyi", syntax.Python},
		{"rules.bzl", syntax.Starlark},
		{"config.star", syntax.Starlark},
		{"pkg/BUILD", syntax.Starlark},
		{"pkg/BUILD.bazel", syntax.Starlark},
		{"WORKSPACE", syntax.Starlark},
		{"README.md", 0},
		{"MODULE.bazel", 0},
	}

	for _, tt := range tests {
		if got := DialectOf(tt.path); got != tt.want {
			t.Errorf("DialectOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func tree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"b.py":              "if c:\n    x = 1\nprint(x)\n",
		"a/BUILD":           "x = 1\n",
		"a/notes.txt":       "text",
		"bad.py":            "def (:\n",
		".git/hook.py":      "",
		"__pycache__/c.py":  "",
		"a/__init__.py":     "",
		"a/nested/defs.bzl": "def f():\n    return 1\n",
	}

	for name, src := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func relative(t *testing.T, dir string, paths []string) []string {
	t.Helper()

	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatal(err)
		}

		rel = append(rel, filepath.ToSlash(r))
	}

	return rel
}

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := tree(t)

	got, err := Expand([]string{filepath.Join(dir, "a", "notes.txt"), dir})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	want := []string{"a/notes.txt", "a/BUILD", "a/__init__.py", "a/nested/defs.bzl", "b.py", "bad.py"}
	if diff := cmp.Diff(want, relative(t, dir, got)); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}

	if _, err := Expand([]string{filepath.Join(dir, "missing")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := tree(t)

	checker := DefaultOptions().Checker()

	results, err := Files(context.Background(), []string{dir}, 2, checker.Run)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	var paths []string
	for _, r := range results {
		paths = append(paths, r.Path)
	}

	want := []string{"a/BUILD", "a/__init__.py", "a/nested/defs.bzl", "b.py", "bad.py"}
	if diff := cmp.Diff(want, relative(t, dir, paths)); diff != "" {
		t.Fatalf("Result order mismatch (-want +got):\n%s", diff)
	}

	for _, r := range results {
		switch filepath.Base(r.Path) {
		case "bad.py":
			if !errors.Is(r.Err, syntax.ErrSyntax) || r.File != nil {
				t.Errorf("Got error %v, want %v", r.Err, syntax.ErrSyntax)
			}

		case "b.py":
			if got, want := len(r.Diagnostics), 2; got != want {
				t.Errorf("Got %d diagnostics for b.py, want %d", got, want)
			}

		default:
			if r.Err != nil || len(r.Diagnostics) != 0 {
				t.Errorf("%s: unexpected result %v %v", r.Path, r.Err, r.Diagnostics)
			}
		}
	}
}

func TestFilesCanceled(t *testing.T) {
	t.Parallel()

	dir := tree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Files(ctx, []string{dir}, 1, DefaultOptions().Checker().Run); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}

func TestParseUnknown(t *testing.T) {
	t.Parallel()

	if _, err := Parse(context.Background(), "notes.txt", nil); !errors.Is(err, ErrUnknownDialect) {
		t.Errorf("Got error %v, want %v", err, ErrUnknownDialect)
	}
}
