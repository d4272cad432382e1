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

package suggest_test

import (
	"testing"

	"fillmore-labs.com/clonecheck/internal/astutil"
	"fillmore-labs.com/clonecheck/internal/callsite"
	"fillmore-labs.com/clonecheck/internal/config"
	. "fillmore-labs.com/clonecheck/internal/suggest"
	"fillmore-labs.com/clonecheck/internal/testsource"
)

const decls = `
type Int int

func (i Int) Clone() Int           { return i }
func (i Int) RotateLeft(k int) Int { return i<<k | i>>(32-k) }

type Pair [2]uint32

func (p Pair) Clone() Pair { return p }

type Cell struct{ v Int }

func (c *Cell) Borrow() *Int { return &c.v }

func Make[T any](a, b int) T { var t T; return t }
`

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		stmts    string
		shape    Shape
		text     string
		replaced string
	}{
		{"literal", `_ = Pair{1, 2}.Clone()`, Literal, "Pair{1, 2}", "Pair{1, 2}.Clone()"},
		{"conversion", `_ = Int(42).Clone()`, Conversion, "Int(42)", "Int(42).Clone()"},
		{"reference", `v := Int(42); _ = (&v).Clone()`, Reference, "*(&v)", "(&v).Clone()"},
		{"borrow", `var rc Cell; _ = rc.Borrow().Clone()`, ReferenceCall, "*rc.Borrow()", "rc.Borrow().Clone()"},
		{"chained method", `var x Int; _ = x.Clone().RotateLeft(1)`, Binding, "x", "x.Clone()"},
		{"generic call", `_ = Make[Pair](1,  2).Clone()`, Call, "Make[Pair](1,  2)", "Make[Pair](1,  2).Clone()"},
		{"chained index", `x := &Pair{}; _ = x.Clone()[0]`, ReferenceBinding, "(*x)", "x.Clone()"},
		{"place", `var ps [3]Pair; _ = ps[1].Clone()`, Place, "ps[1]", "ps[1].Clone()"},
		{"reference place", `var ps [3]*Pair; _ = ps[1].Clone()`, ReferencePlace, "*ps[1]", "ps[1].Clone()"},
		{"operation", `var x Int; _ = (x + 1).Clone()`, Operation, "(x + 1)", "(x + 1).Clone()"},
		{"statement", `var x Int; x.Clone()`, Binding, "_ = x", "x.Clone()"},
		{"pointer statement", `x := new(Int); x.Clone()`, ReferenceBinding, "_ = *x", "x.Clone()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, decls, tt.stmts)
			matcher := callsite.Matcher{Info: src.Info, Methods: config.DefaultMethods()}
			reader := astutil.NewSourceReader(src.Fset, src.ReadFile)

			for _, c := range src.Calls(t) {
				site, ok := matcher.Match(c)
				if !ok {
					continue
				}

				shape := Classify(src.Info, site.Receiver, site.Indirect)
				if shape != tt.shape {
					t.Errorf("Got shape %s, want %s", shape, tt.shape)
				}

				s := Build(site, shape, reader.Text(site.Receiver))

				if s.Form != tt.shape.Form() {
					t.Errorf("Got form %s, want %s", s.Form, tt.shape.Form())
				}

				if s.Text != tt.text {
					t.Errorf("Got replacement %q, want %q", s.Text, tt.text)
				}

				handle := src.Fset.File(s.Pos)
				if replaced := src.Text[handle.Offset(s.Pos):handle.Offset(s.End)]; replaced != tt.replaced {
					t.Errorf("Got replaced span %q, want %q", replaced, tt.replaced)
				}

				return
			}

			t.Fatal("Duplication call not found")
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Literal, Binding, Call, Conversion, Place, Operation} {
		if shape.Form() != RemoveCall {
			t.Errorf("Shape %s: got form %s, want %s", shape, shape.Form(), RemoveCall)
		}
	}

	for _, shape := range []Shape{Reference, ReferenceBinding, ReferenceCall, ReferencePlace} {
		if shape.Form() != Dereference {
			t.Errorf("Shape %s: got form %s, want %s", shape, shape.Form(), Dereference)
		}
	}

	if got, want := RemoveCall.Help("Clone"), "try removing the `Clone` call"; got != want {
		t.Errorf("Got help %q, want %q", got, want)
	}

	if got, want := Dereference.Help("Clone"), "try dereferencing it"; got != want {
		t.Errorf("Got help %q, want %q", got, want)
	}
}
