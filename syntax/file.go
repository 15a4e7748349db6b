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

package syntax

import (
	"bytes"

	"fillmore-labs.com/bindguard/names"
)

// Dialect is the source language of a [File].
type Dialect uint8

const (
	Python Dialect = iota + 1
	Starlark
)

func (d Dialect) String() string {
	switch d {
	case Python:
		return "python"
	case Starlark:
		return "starlark"
	default:
		return "unknown"
	}
}

// Comment is a source comment, including its leading "#".
type Comment struct {
	Start Pos
	Text  string
}

// File is a parsed source file.
type File struct {
	Name     string
	Dialect  Dialect
	Src      []byte
	Module   *Module
	Comments []Comment // in source order

	// Predeclared holds the names available without a binding (builtins).
	Predeclared names.Set
}

// Line returns the text of the 1-based line n without its line terminator.
func (f *File) Line(n int) string {
	src := f.Src
	for line := 1; line < n; line++ {
		i := bytes.IndexByte(src, '\n')
		if i < 0 {
			return ""
		}

		src = src[i+1:]
	}

	if i := bytes.IndexByte(src, '\n'); i >= 0 {
		src = src[:i]
	}

	return string(bytes.TrimSuffix(src, []byte{'\r'}))
}
