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

package config

import (
	"slices"
	"strings"
)

// BehaviorFlags represents behavioral options of the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// SafeFixes attaches suggested fixes known to preserve program semantics.
	SafeFixes

	// UnsafeFixes attaches suggested fixes that may change behavior, e.g. when a Clone method has a custom body.
	UnsafeFixes
)

// Behavior is the bitmask of enabled [BehaviorFlags].
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default analyzer behavior.
func DefaultBehavior() Behavior {
	return NewBitMask(SafeFixes)
}

// DefaultMethod is the name of the duplication method checked by default.
const DefaultMethod = "Clone"

// Methods is a normalized set of duplication method names.
type Methods []string

// DefaultMethods returns the default duplication method names.
func DefaultMethods() Methods {
	return Methods{DefaultMethod}
}

// ParseMethods parses a comma-separated list of method names.
// Empty elements are dropped and duplicates removed.
func ParseMethods(s string) Methods {
	var m Methods

	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			m = append(m, name)
		}
	}

	return m.normalize()
}

// NewMethods returns a normalized set of the given method names.
func NewMethods(names ...string) Methods {
	m := make(Methods, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			m = append(m, name)
		}
	}

	return m.normalize()
}

func (m Methods) normalize() Methods {
	slices.Sort(m)

	return slices.Compact(m)
}

// Contains reports whether name is one of the duplication methods.
func (m Methods) Contains(name string) bool {
	_, found := slices.BinarySearch(m, name)

	return found
}

// String returns the comma-separated method names.
func (m Methods) String() string {
	return strings.Join(m, ",")
}
