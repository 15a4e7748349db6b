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

package scope

import (
	"slices"

	"fillmore-labs.com/bindguard/syntax"
)

// Name returns a human-readable name for the scope type.
func Name(node syntax.Node) string {
	switch node.(type) {
	// keep-sorted start newline_separated=yes
	case *syntax.ClassDef:
		return "class"

	case *syntax.FunctionDef:
		return "function"

	case *syntax.Module:
		return "module"

	case nil:
		return "<nil>"

	default:
		return node.Kind().String()
		// keep-sorted end
	}
}

// implicit are the names available in every function and class body.
var implicit = [...]string{"__class__", "__module__", "__qualname__"}

// Implicit reports whether name is implicitly bound in s.
func (s *Scope) Implicit(name string) bool {
	if _, ok := s.Node.(*syntax.Module); ok {
		return false
	}

	return slices.Contains(implicit[:], name)
}
