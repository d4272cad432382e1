// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import (
	"fillmore-labs.com/clonecheck/analyzer"
	"fillmore-labs.com/clonecheck/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Methods are the names of the checked duplication methods.
	Methods []string `json:"methods,omitzero"`
	// Fixes selects the suggested fixes: safe, all or off.
	Fixes *level.Fixes `json:"fixes,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the clonecheck analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	if len(s.Methods) > 0 {
		opts = append(opts, analyzer.WithMethods(s.Methods...))
	}

	opts = appendOption(opts, s.Fixes, analyzer.WithFixes)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
