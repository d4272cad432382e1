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

package level

import (
	"fmt"
	"strings"
)

// Fixes specifies which suggested fixes are attached to diagnostics.
type Fixes uint8

const (
	// FixesSafe attaches only fixes that are known to preserve program semantics.
	FixesSafe Fixes = iota

	// FixesAll also attaches fixes for duplication methods with custom bodies.
	FixesAll

	// FixesOff reports diagnostics without fixes.
	FixesOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o Fixes) MarshalText() ([]byte, error) {
	switch o {
	case FixesSafe:
		return []byte("safe"), nil

	case FixesAll:
		return []byte("all"), nil

	case FixesOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown fix level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Fixes) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "safe":
		*o = FixesSafe

	case "all", "unsafe":
		*o = FixesAll

	case "off", "false", "none":
		*o = FixesOff

	default:
		return fmt.Errorf("unknown fix level %q", string(text))
	}

	return nil
}

// String returns the textual representation of the fix level.
func (o Fixes) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Fixes(%d)", o)
	}

	return string(text)
}

// Set implements [flag.Value].
func (o *Fixes) Set(s string) error {
	return o.UnmarshalText([]byte(s))
}
