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

// Branch names a child statement sequence of a node.
type Branch uint8

const (
	Body Branch = iota
	Orelse
	Handlers
	Finalbody
	Items
	Names
)

func (b Branch) String() string {
	switch b {
	case Body:
		return "body"
	case Orelse:
		return "orelse"
	case Handlers:
		return "handlers"
	case Finalbody:
		return "finalbody"
	case Items:
		return "items"
	case Names:
		return "names"
	default:
		return "<branch>"
	}
}

// Children returns the statement sequence of node n in branch b.
//
// A branch the node does not have is empty, so malformed or partial trees
// degrade to "nothing bound here".
func Children(n Node, b Branch) []Node {
	switch n := n.(type) {
	case *Module:
		if b == Body {
			return n.Body
		}

	case *FunctionDef:
		if b == Body {
			return n.Body
		}

	case *ClassDef:
		if b == Body {
			return n.Body
		}

	case *ExceptHandler:
		if b == Body {
			return n.Body
		}

	case *If:
		return bodyOrElse(n.Body, n.Orelse, b)

	case *For:
		return bodyOrElse(n.Body, n.Orelse, b)

	case *While:
		return bodyOrElse(n.Body, n.Orelse, b)

	case *Try:
		switch b {
		case Body:
			return n.Body
		case Handlers:
			return nodes(n.Handlers)
		case Orelse:
			return n.Orelse
		case Finalbody:
			return n.Finalbody
		}

	case *With:
		switch b {
		case Items:
			return nodes(n.Items)
		case Body:
			return n.Body
		}

	case *Import:
		if b == Names {
			return nodes(n.Names)
		}

	case *ImportFrom:
		if b == Names {
			return nodes(n.Names)
		}
	}

	return nil
}

func bodyOrElse(body, orelse []Node, b Branch) []Node {
	switch b {
	case Body:
		return body
	case Orelse:
		return orelse
	default:
		return nil
	}
}

func nodes[N Node](list []N) []Node {
	if len(list) == 0 {
		return nil
	}

	ns := make([]Node, len(list))
	for i, n := range list {
		ns[i] = n
	}

	return ns
}
