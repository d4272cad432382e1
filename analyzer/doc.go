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

// Package analyzer implements the clonecheck static analysis pass.
//
// # Overview
//
// clonecheck detects calls of a duplication method, by default Clone, on values
// whose type is trivially copyable. For such types an assignment already creates an
// independent copy, so the call only obscures the code.
//
// A type is trivially copyable when it is a boolean, numeric or string type, or an
// array or struct composed only of those. Type parameters qualify when every type in
// their type set does. Pointers, slices, maps, channels, functions and interfaces
// share their referent, and types containing a [sync.Locker] must not be copied.
//
// # Example
//
// Before:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) Clone() Point { return p }
//
//	func move(p *Point) Point {
//	    q := p.Clone()
//	    q.X++
//	    return q
//	}
//
// After applying clonecheck's suggested fix:
//
//	func move(p *Point) Point {
//	    q := *p
//	    q.X++
//	    return q
//	}
//
// # Suggested Fixes
//
// Receivers of the value type replace the call, receivers of pointer type are
// dereferenced. Fixes are attached by default only when the duplication method
// returns a plain copy of its receiver, which is recorded as a fact and therefore
// also known for methods from other packages. The -fixes flag selects between
// safe, all and off.
//
// Generated files are skipped unless -generated is set, and never receive fixes.
// A //nolint:clonecheck comment suppresses diagnostics on its line, or for a
// whole function or file when attached to its documentation.
package analyzer
