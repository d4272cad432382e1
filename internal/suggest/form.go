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

package suggest

import "fmt"

// Form is the strategy used to replace a redundant duplication call.
type Form uint8

//go:generate go tool stringer -type Form -linecomment
const (
	// RemoveCall replaces the call by the receiver.
	RemoveCall Form = iota // remove

	// Dereference replaces the call by an explicit dereference of the receiver.
	Dereference // dereference
)

// Help returns the help message for this form, without the replacement text.
func (f Form) Help(method string) string {
	switch f {
	case Dereference:
		return "try dereferencing it"

	default:
		return fmt.Sprintf("try removing the `%s` call", method)
	}
}
