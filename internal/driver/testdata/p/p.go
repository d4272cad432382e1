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

package p

type Celsius float64

func (c Celsius) Clone() Celsius { return c }

func warmer(c *Celsius) Celsius {
	return c.Clone() + 1
}

type Names []string

func (n Names) Clone() Names { return append(Names(nil), n...) }

func copied(n Names) Names {
	return n.Clone()
}
