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

package lib

type Vec struct{ X, Y, Z float64 }

func (v Vec) Clone() Vec { return Vec{X: v.X, Y: v.Y, Z: v.Z} }

type Matrix [3]Vec

func (m *Matrix) Clone() Matrix {
	c := *m
	return c
}

func (m *Matrix) Row(i int) *Vec { return &m[i] }
