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

// Package astutil provides per-file helpers for the analyzers: suppression
// comments, generated-file detection and binding sites.
package astutil

import (
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/bindguard/syntax"
)

// bindguard is the name of the linter.
const bindguard = "bindguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *syntax.File
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed [syntax.File].
func NewCurrentFile(file *syntax.File) CurrentFile {
	if file == nil || file.Module == nil {
		return CurrentFile{}
	}

	generated, nolint := header(file)

	return CurrentFile{file, generated, nolint}
}

// header inspects the comments preceding the first statement.
func header(file *syntax.File) (generated, nolint bool) {
	first := syntax.Pos{Line: len(file.Src) + 1}
	if len(file.Module.Body) > 0 {
		first = file.Module.Body[0].Pos()
	}

	for i, c := range file.Comments {
		if !c.Start.Before(first) {
			break
		}

		if generatedPattern.MatchString(c.Text) {
			generated = true
		}

		if i == 0 && CommentHasNoLint(c.Text) {
			nolint = true
		}
	}

	return generated, nolint
}

// Valid returns true if the [CurrentFile] was successfully created
// from a parsed file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the underlying file.
func (c CurrentFile) File() *syntax.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintFile returns true if the first comment of the file is a # nolint:bindguard comment.
func (c CurrentFile) NoLintFile() bool {
	return c.nolint
}

// NoLintComment checks if a line carries a # noqa or # nolint:bindguard comment.
func (c CurrentFile) NoLintComment(pos syntax.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment on the line
	comments := c.file.Comments
	i, _ := slices.BinarySearchFunc(comments, pos.Line,
		func(c syntax.Comment, line int) int { return c.Start.Line - line })

	for ; i < len(comments) && comments[i].Start.Line == pos.Line; i++ {
		if CommentHasNoLint(comments[i].Text) || CommentHasNoQA(comments[i].Text) {
			return true
		}
	}

	return false
}

var (
	generatedPattern = regexp.MustCompile(`^#\s*Code generated .* DO NOT EDIT\.$`)
	nolintPattern    = regexp.MustCompile(`^#\s*nolint:([a-zA-Z0-9,_-]+)`)
	noqaPattern      = regexp.MustCompile(`(?i)^#\s*noqa(?::\s*([A-Za-z0-9:, ]+))?\s*$`)
)

// CommentHasNoLint checks if the provided comment contains a `# nolint:bindguard` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == bindguard || l == "all" {
			return true
		}
	}

	return false
}

// CommentHasNoQA checks if the provided comment is a bare `# noqa` or lists a bg: code.
func CommentHasNoQA(text string) bool {
	matches := noqaPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	if matches[1] == "" {
		return true
	}

	for code := range strings.SplitSeq(matches[1], ",") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(code)), "bg") {
			return true
		}
	}

	return false
}
