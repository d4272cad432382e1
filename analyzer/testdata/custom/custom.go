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

package custom

type Span struct{ Start, End int }

func (s Span) Copy() Span {
	if s.End < s.Start {
		return Span{s.End, s.Start}
	}
	return s
}

func (s Span) Clone() Span { return s }

func normalized(s *Span) Span {
	return s.Copy() // want "using `Copy` on type `Span` which is trivially copyable"
}

func width(s Span) int {
	c := s.Clone()
	return c.End - c.Start
}
