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

package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/syntax"
)

func TestCaret(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name       string
		line       string
		start, end int
		want       string
	}{
		{"plain", "print(x)", 7, 8, "      ^"},
		{"tab", "\tprint(x)", 8, 9, "\t      ^"},
		{"wide", "s = '日本' + xy", 16, 18, "             ^^"},
		{"empty", "x", 1, 1, "^"},
		{"overflow", "ab", 5, 9, "  ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Caret(tt.line, tt.start, tt.end); got != tt.want {
				t.Errorf("Caret(%q, %d, %d) = %q, want %q", tt.line, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func testFile() (*syntax.File, []Diagnostic) {
	f := &syntax.File{
		Name: "test.py",
		Src:  []byte("if a:\n    x = 1\nprint(x)\n"),
	}

	use := &syntax.Name{ID: "x", Start: syntax.Pos{Line: 3, Col: 7}}
	site := &syntax.Name{ID: "x", Start: syntax.Pos{Line: 2, Col: 5}}

	return f, []Diagnostic{NonExhaustiveRead(use, []*syntax.Name{site})}
}

func TestPrintText(t *testing.T) {
	t.Parallel()

	f, diagnostics := testFile()

	var buf bytes.Buffer
	if err := NewPrinter(&buf, Text, false).Print(f, diagnostics); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = `test.py:3:7: Variable 'x' is not assigned on every path before use (bg:nex)
print(x)
      ^
	test.py:2:5: Conditionally assigned here
`

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Print mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintColor(t *testing.T) {
	t.Parallel()

	f, diagnostics := testFile()

	var buf bytes.Buffer
	if err := NewPrinter(&buf, Text, true).Print(f, diagnostics); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := buf.String(); !strings.Contains(got, "\x1b[1mtest.py:3:7\x1b[0m") {
		t.Errorf("Expected bold location in %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	f, diagnostics := testFile()

	var buf bytes.Buffer
	p := NewPrinter(&buf, JSON, true)

	if err := p.Print(f, diagnostics); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	var got struct {
		File    string `json:"file"`
		Code    string `json:"code"`
		Name    string `json:"name"`
		Pos     struct{ Line, Column int }
		Related []struct{ Message string }
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Invalid JSON %q: %v", buf.String(), err)
	}

	if got.File != "test.py" || got.Code != "nex" || got.Name != "x" || got.Pos.Line != 3 || got.Pos.Column != 7 {
		t.Errorf("Unexpected record %+v", got)
	}

	if len(got.Related) != 1 || got.Related[0].Message != "Conditionally assigned here" {
		t.Errorf("Unexpected related %+v", got.Related)
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewPrinter(&buf, Text, false).PrintError("bad.py", errors.New("syntax error")); err != nil {
		t.Fatalf("PrintError failed: %v", err)
	}

	if got, want := buf.String(), "bad.py: syntax error\n"; got != want {
		t.Errorf("PrintError() = %q, want %q", got, want)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"text", "json"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
		}

		if got := f.String(); got != name {
			t.Errorf("Got format %s, want %s", got, name)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Got error %v, want %v", err, ErrUnknownFormat)
	}
}
