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

import "iter"

// Branches returns the branches of n in declaration order.
func Branches(n Node) []Branch {
	switch n.(type) {
	case *Module, *FunctionDef, *ClassDef, *ExceptHandler:
		return []Branch{Body}

	case *If, *For, *While:
		return []Branch{Body, Orelse}

	case *Try:
		return []Branch{Body, Handlers, Orelse, Finalbody}

	case *With:
		return []Branch{Items, Body}

	case *Import, *ImportFrom:
		return []Branch{Names}

	default:
		return nil
	}
}

// Blocks yields the non-empty child statement sequences of n in declaration order.
func Blocks(n Node) iter.Seq2[Branch, []Node] {
	return func(yield func(Branch, []Node) bool) {
		if o, ok := n.(*Other); ok {
			for _, block := range o.Blocks {
				if len(block) > 0 && !yield(Body, block) {
					return
				}
			}

			return
		}

		for _, b := range Branches(n) {
			if children := Children(n, b); len(children) > 0 && !yield(b, children) {
				return
			}
		}
	}
}

// Inspect traverses the tree rooted at n in depth-first order, calling f for each node.
// Children of a node are visited only when f returns true for it.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, children := range Blocks(n) {
		for _, child := range children {
			Inspect(child, f)
		}
	}
}

// Preorder yields all nodes of the tree rooted at n in depth-first order,
// crossing into nested definitions.
func Preorder(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if n == nil || !yield(n) {
		return false
	}

	for _, children := range Blocks(n) {
		for _, child := range children {
			if !preorder(child, yield) {
				return false
			}
		}
	}

	return true
}

// InScope yields n and all nodes below it that belong to the same lexical scope.
// Nested definitions are yielded, their bodies are not.
func InScope(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		inScope(n, true, yield)
	}
}

func inScope(n Node, root bool, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	if !root && n.Kind().IsDefinition() {
		return true
	}

	for _, children := range Blocks(n) {
		for _, child := range children {
			if !inScope(child, false, yield) {
				return false
			}
		}
	}

	return true
}
