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

package analyzer

import (
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/clonecheck/internal/applicability"
	"fillmore-labs.com/clonecheck/internal/report"
	"fillmore-labs.com/clonecheck/internal/run"
)

// Public API constants for the clonecheck analyzer.
const (
	name = "clonecheck"
	doc  = `clonecheck detects redundant Clone calls on values that are trivially copyable`
	url  = "https://pkg.go.dev/fillmore-labs.com/clonecheck"
)

// New creates a new instance of the clonecheck analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
//
// The analyzer's result is the [report.Findings] of the analyzed package.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		Run:        r.Run,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		FactTypes:  []analysis.Fact{new(applicability.TrivialCopy)},
		ResultType: reflect.TypeFor[report.Findings](),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting redundant Clone calls.
var Analyzer = New()
