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

// Kind discriminates the statement-level nodes of a syntax tree.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindInvalid is the zero Kind.
	KindInvalid Kind = iota // invalid

	KindModule           // module
	KindFunctionDef      // def
	KindAsyncFunctionDef // async def
	KindClassDef         // class
	KindIf               // if
	KindFor              // for
	KindAsyncFor         // async for
	KindWhile            // while
	KindTry              // try
	KindExceptHandler    // except
	KindWith             // with
	KindAsyncWith        // async with
	KindWithItem         // with item
	KindImport           // import
	KindImportFrom       // from import
	KindAlias            // alias
	KindAssign           // assignment
	KindAnnAssign        // annotated assignment
	KindAugAssign        // augmented assignment
	KindGlobal           // global
	KindOther            // statement
)

// IsDefinition reports whether nodes of this kind introduce a new lexical scope
// whose body is not part of the enclosing scope.
func (i Kind) IsDefinition() bool {
	switch i {
	case KindFunctionDef, KindAsyncFunctionDef, KindClassDef:
		return true

	default:
		return false
	}
}
