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

package callsite_test

import (
	"go/ast"
	"go/types"
	"testing"

	. "fillmore-labs.com/clonecheck/internal/callsite"
	"fillmore-labs.com/clonecheck/internal/config"
	"fillmore-labs.com/clonecheck/internal/testsource"
)

const decls = `
type Point struct{ X, Y int }

func (p Point) Clone() Point      { return p }
func (p Point) Copy() Point       { return p }
func (p Point) Scale(n int) Point { return Point{p.X * n, p.Y * n} }

type Pair [2]uint32

func (p *Pair) Clone() Pair { return *p }

type Other struct{}

func (Other) Clone() Point { return Point{} }

type Cloner interface{ Clone() Cloner }

type Outer struct{ Point }
`

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		stmts    string
		match    bool
		indirect bool
		context  Context
	}{
		{"value", `var p Point; _ = p.Clone()`, true, false, Plain},
		{"pointer", `p := &Point{}; _ = p.Clone()`, true, true, Plain},
		{"pointer receiver", `var p Pair; _ = p.Clone()`, true, false, Plain},
		{"chained selector", `var p Point; _ = p.Clone().X`, true, false, Chained},
		{"chained call", `var p Point; _ = p.Clone().Scale(2)`, true, false, Chained},
		{"chained index", `p := &Pair{}; _ = p.Clone()[0]`, true, true, Chained},
		{"parenthesized", `var p Point; _ = (p.Clone()).X`, true, false, Plain},
		{"statement", `var p Point; p.Clone()`, true, false, Discarded},
		{"defer", `var p Point; defer p.Clone()`, true, false, Deferred},
		{"other name", `var p Point; _ = p.Copy()`, false, false, Plain},
		{"arguments", `var p Point; _ = p.Scale(1)`, false, false, Plain},
		{"different result", `var o Other; _ = o.Clone()`, false, false, Plain},
		{"promoted", `var o Outer; _ = o.Clone()`, false, false, Plain},
		{"embedded field", `var o Outer; _ = o.Point.Clone()`, true, false, Plain},
		{"method expression", `var p Point; _ = Point.Clone(p)`, false, false, Plain},
		{"interface", `var c Cloner; _ = c.Clone()`, true, false, Plain},
		{"repeated", `var p Point; _ = p.Clone().Clone()`, true, false, Plain},
	}

	m := config.NewMethods("Clone")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, decls, tt.stmts)
			matcher := Matcher{Info: src.Info, Methods: m}

			var (
				site  CallSite
				found bool
			)

			for _, c := range src.Calls(t) {
				if site, found = matcher.Match(c); found {
					break
				}
			}

			if found != tt.match {
				t.Fatalf("Match() = %t, want %t", found, tt.match)
			}

			if !found {
				return
			}

			if site.Indirect != tt.indirect {
				t.Errorf("Got Indirect = %t, want %t", site.Indirect, tt.indirect)
			}

			if site.Context != tt.context {
				t.Errorf("Got Context = %s, want %s", site.Context, tt.context)
			}

			if site.Receiver != site.Selector.X {
				t.Errorf("Receiver %s is not the selector operand", types.ExprString(site.Receiver))
			}
		})
	}
}

func TestOuter(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, decls, `var p Point; _ = p.Clone().Scale(2).X`)
	matcher := Matcher{Info: src.Info, Methods: config.DefaultMethods()}

	for _, c := range src.Calls(t) {
		site, ok := matcher.Match(c)
		if !ok {
			continue
		}

		outer, ok := site.Outer.(*ast.SelectorExpr)
		if !ok {
			t.Fatalf("Expected outer selector, got %T", site.Outer)
		}

		if got, want := types.ExprString(outer), "p.Clone().Scale(2).X"; got != want {
			t.Errorf("Got outer %q, want %q", got, want)
		}

		if site.Call.End() >= outer.End() {
			t.Errorf("Call %s is not nested in %s", types.ExprString(site.Call), types.ExprString(outer))
		}

		return
	}

	t.Fatal("Call not found")
}

func TestMatchCall(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, decls, `var p Point; _ = p.Clone().Clone()`)
	matcher := Matcher{Info: src.Info, Methods: config.DefaultMethods()}

	calls := src.Calls(t)
	if len(calls) != 2 {
		t.Fatalf("Got %d calls, want 2", len(calls))
	}

	outer, ok := matcher.Match(calls[0])
	if !ok {
		t.Fatal("Outer call not matched")
	}

	inner, ok := outer.Receiver.(*ast.CallExpr)
	if !ok {
		t.Fatalf("Expected call receiver, got %T", outer.Receiver)
	}

	site, ok := matcher.MatchCall(inner)
	if !ok {
		t.Fatal("Receiver call not matched")
	}

	if site.Context != Plain || site.Outer != inner {
		t.Errorf("Got context %s, outer %T, want plain call", site.Context, site.Outer)
	}
}
