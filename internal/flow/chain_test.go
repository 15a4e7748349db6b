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

package flow

import (
	"errors"
	"testing"

	"fillmore-labs.com/bindguard/internal/branch"
	"fillmore-labs.com/bindguard/syntax"
)

func TestChainOutsideIteration(t *testing.T) {
	t.Parallel()

	n := &syntax.If{
		Body:   []syntax.Node{&syntax.Other{}},
		Orelse: []syntax.Node{&syntax.Other{}},
	}

	c := newChain(branch.New(branch.Flat(syntax.Body, syntax.Orelse)))

	var seen []syntax.Branch
	for range c.stmts(n) {
		seen = append(seen, c.branch())
	}

	if len(seen) != 2 || seen[0] != syntax.Body || seen[1] != syntax.Orelse {
		t.Errorf("Got branches %v, want [body orelse]", seen)
	}

	defer func() {
		r := recover()

		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoActiveBranch) {
			t.Errorf("Got panic %v, want %v", r, ErrNoActiveBranch)
		}
	}()

	c.add("x")
}

func TestChainEarlyExit(t *testing.T) {
	t.Parallel()

	n := &syntax.If{Body: []syntax.Node{&syntax.Other{}, &syntax.Other{}}}
	c := newChain(branch.New(branch.Flat(syntax.Body, syntax.Orelse)))

	for range c.stmts(n) {
		break
	}

	if c.inside {
		t.Error("Chain still active after iteration stopped")
	}
}
