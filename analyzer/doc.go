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

// Package analyzer implements the bindguard static analysis of Python and
// Starlark files.
//
// # Overview
//
// BindGuard detects reads of variables that are not bound on every control
// flow path leading to them:
//
//	def load(path):
//	    if path:
//	        data = read(path)
//	    return data  # not assigned when path is empty
//
// Assignments, imports, with items, loop targets, exception handler names,
// parameters and nested definitions count as binding sites. A loop body may
// run zero times, and an exception may leave a try body at any statement.
//
// # Scopes
//
// Function bodies see the names their enclosing functions and the module bind
// anywhere on every path, since they usually run after those completed.
// Class bodies run immediately, so they only see the names bound before the
// class statement. Class scopes are never visible from nested functions.
//
// # Diagnostics
//
// Reads of names bound somewhere but not on every path are reported as
// "bg:nex", reads of names bound nowhere as "bg:und". A "# noqa" or
// "# nolint:bindguard" comment suppresses the diagnostics of a line, a
// "# nolint:bindguard" comment heading the file suppresses the whole file.
package analyzer
