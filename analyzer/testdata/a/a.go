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

package a

import "sync"

type Int int

func (i Int) Clone() Int { return i } // want Clone:"trivialCopy"

func (i Int) RotateLeft(k int) Int { return i<<k | i>>(32-k) }

type Pair [2]uint32

func (p Pair) Clone() Pair { return p } // want Clone:"trivialCopy"

func Make[T any](a, b int) T {
	var t T
	return t
}

type Cell struct{ v Int }

func (c *Cell) Borrow() *Int { return &c.v }

func literal() Int {
	return Int(42).Clone() // want "using `Clone` on type `Int` which is trivially copyable"
}

type I8 int8

func (i I8) Clone() I8 { return i } // want Clone:"trivialCopy"

func constant() I8 {
	return I8(100).Clone() * 2 // want "using `Clone` on type `I8` which is trivially copyable"
}

func repeated(x Int) Int {
	return x.Clone().Clone() // want "using `Clone` on type `Int` which is trivially copyable" "using `Clone` on type `Int` which is trivially copyable"
}

func reference() Int {
	v := Int(42)
	return (&v).Clone() // want "using `Clone` on type `Int` which is trivially copyable"
}

func borrowed(rc *Cell) Int {
	return rc.Borrow().Clone() // want "using `Clone` on type `Int` which is trivially copyable"
}

func chainedMethod(x Int) Int {
	return x.Clone().RotateLeft(1) // want "using `Clone` on type `Int` which is trivially copyable"
}

func genericCall() Pair {
	return Make[Pair](1 /* first */, 2).Clone() // want "using `Clone` on type `Pair` which is trivially copyable"
}

func chainedIndex(x *Pair) uint32 {
	return x.Clone()[0] // want "using `Clone` on type `Pair` which is trivially copyable"
}

func statement(x Int) {
	x.Clone() // want "using `Clone` on type `Int` which is trivially copyable"
}

func deferred(x Int) {
	defer x.Clone() // want "using `Clone` on type `Int` which is trivially copyable"
}

type Point struct{ X, Y int }

func (p Point) Clone() Point { return Point{p.X, p.Y} } // want Clone:"trivialCopy"

func points(ps []Point) Point {
	return ps[1].Clone() // want "using `Clone` on type `Point` which is trivially copyable"
}

type Fixed[T ~int | ~uint] struct{ v T }

func (f Fixed[T]) Clone() Fixed[T] { return f } // want Clone:"trivialCopy"

func generic[T ~int](f Fixed[T]) Fixed[T] {
	return f.Clone() // want "using `Clone` on type `Fixed\\[T\\]` which is trivially copyable"
}

type Counter struct{ n int }

func (c Counter) Clone() Counter {
	println("clone")
	return c
}

func custom(c Counter) Counter {
	return c.Clone() // want "using `Clone` on type `Counter` which is trivially copyable"
}

type Buffer struct{ data []byte }

func (b Buffer) Clone() Buffer { return Buffer{append([]byte(nil), b.data...)} }

type Guarded struct {
	mu sync.Mutex
	n  int
}

func (g *Guarded) Clone() Guarded { return Guarded{n: g.n} }

type Box[T any] struct{ v T }

func (b Box[T]) Clone() Box[T] { return b } // want Clone:"trivialCopy"

type Cloner interface{ Clone() Cloner }

func negatives(b Buffer, g *Guarded, s Box[[]int], c Cloner) {
	_ = b.Clone()
	_ = g.Clone()
	_ = s.Clone()
	_ = c.Clone()
}

func suppressed(x Int) Int {
	return x.Clone() //nolint:clonecheck
}

//nolint:all
func suppressedFunction(x Int) Int {
	return x.Clone()
}

var global = Int(7).Clone() // want "using `Clone` on type `Int` which is trivially copyable"
