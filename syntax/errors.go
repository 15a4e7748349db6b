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
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by all errors reporting malformed source.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is a parse error at a source position.
type SyntaxError struct {
	Filename string
	Start    Pos
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Start, e.Msg)
}

// Unwrap returns [ErrSyntax].
func (*SyntaxError) Unwrap() error { return ErrSyntax }
