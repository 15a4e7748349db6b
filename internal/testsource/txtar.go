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

package testsource

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/syntax"
)

// Archive is a test fixture of source files sharing the same analyzer flags.
type Archive struct {
	// Flags are the command line flags listed in a "flags:" line of the archive comment.
	Flags []string
	Files []txtar.File
}

// ReadArchive reads a txtar fixture.
func ReadArchive(tb testing.TB, path string) Archive {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't read archive %s: %v", path, err)
	}

	var flags []string

	for line := range strings.Lines(string(ar.Comment)) {
		if f, ok := strings.CutPrefix(strings.TrimSpace(line), "flags:"); ok {
			flags = append(flags, strings.Fields(f)...)
		}
	}

	return Archive{Flags: flags, Files: ar.Files}
}

var (
	wantPattern   = regexp.MustCompile(`#\s*want((?:\s+"(?:[^"\\]|\\.)*")+)\s*$`)
	quotedPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
)

// Want returns the expected diagnostic messages of f by line, given as
// `# want "regexp"` comments.
func Want(tb testing.TB, f *syntax.File) map[int][]*regexp.Regexp {
	tb.Helper()

	want := make(map[int][]*regexp.Regexp)

	for _, c := range f.Comments {
		m := wantPattern.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}

		for _, q := range quotedPattern.FindAllString(m[1], -1) {
			s, err := strconv.Unquote(q)
			if err != nil {
				tb.Fatalf("%s:%s: invalid expectation %s: %v", f.Name, c.Start, q, err)
			}

			re, err := regexp.Compile(s)
			if err != nil {
				tb.Fatalf("%s:%s: invalid pattern %q: %v", f.Name, c.Start, s, err)
			}

			want[c.Start.Line] = append(want[c.Start.Line], re)
		}
	}

	return want
}

// CheckDiagnostics matches diagnostics against the expectations of f.
func CheckDiagnostics(tb testing.TB, f *syntax.File, diagnostics []report.Diagnostic) {
	tb.Helper()

	want := Want(tb, f)

	for _, d := range diagnostics {
		patterns := want[d.Pos.Line]

		i := -1
		for j, re := range patterns {
			if re.MatchString(d.Message) {
				i = j

				break
			}
		}

		if i < 0 {
			tb.Errorf("%s:%s: unexpected diagnostic: %s", f.Name, d.Pos, d.Message)

			continue
		}

		want[d.Pos.Line] = append(patterns[:i], patterns[i+1:]...)
	}

	for line, patterns := range want {
		for _, re := range patterns {
			tb.Errorf("%s:%d: no diagnostic matching %q", f.Name, line, re)
		}
	}
}
