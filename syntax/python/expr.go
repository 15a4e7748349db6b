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

package python

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/bindguard/syntax"
)

// target converts an assignment target. Names read while evaluating the
// target, like the object of an attribute, are recorded as loads of st.
func (c *converter) target(n *sitter.Node, st *syntax.Stmt) syntax.Expr {
	if n == nil {
		return &syntax.Opaque{}
	}

	switch n.Type() {
	case "identifier":
		return c.name(n)

	case "pattern_list", "tuple_pattern", "list_pattern", "expression_list", "tuple", "list":
		t := &syntax.Tuple{}

		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); child.Type() != "comment" {
				t.Elts = append(t.Elts, c.target(child, st))
			}
		}

		return t

	case "list_splat_pattern", "list_splat":
		if n.NamedChildCount() == 0 {
			return &syntax.Opaque{}
		}

		return &syntax.Starred{Value: c.target(n.NamedChild(0), st)}

	case "parenthesized_expression":
		if n.NamedChildCount() == 0 {
			return &syntax.Opaque{}
		}

		return c.target(n.NamedChild(0), st)

	default:
		c.loads(n, st)

		return &syntax.Opaque{}
	}
}

// loads records the names read by an expression. Lambdas and comprehensions
// are their own scopes and are skipped; assignment expressions are stores.
func (c *converter) loads(n *sitter.Node, st *syntax.Stmt) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier":
		st.Loads = append(st.Loads, c.name(n))

	case "attribute":
		c.loads(n.ChildByFieldName("object"), st)

	case "keyword_argument":
		c.loads(n.ChildByFieldName("value"), st)

	case "named_expression":
		if name := n.ChildByFieldName("name"); name != nil {
			st.Stores = append(st.Stores, c.name(name))
		}

		c.loads(n.ChildByFieldName("value"), st)

	case "lambda", "list_comprehension", "set_comprehension", "dictionary_comprehension",
		"generator_expression", "comment":

	default:
		for i := range int(n.NamedChildCount()) {
			c.loads(n.NamedChild(i), st)
		}
	}
}
