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

// Package clone detects duplication calls on values that are trivially copyable.
package clone

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/clonecheck/internal/applicability"
	"fillmore-labs.com/clonecheck/internal/callsite"
	"fillmore-labs.com/clonecheck/internal/config"
	"fillmore-labs.com/clonecheck/internal/copyable"
	"fillmore-labs.com/clonecheck/internal/report"
	"fillmore-labs.com/clonecheck/internal/suggest"
)

// Analyzer inspects call expressions for redundant duplication calls.
type Analyzer struct {
	// Info is the type information of the analyzed package.
	Info *types.Info

	// Qualifier formats type names in messages, usually relative to the analyzed package.
	Qualifier types.Qualifier

	// Methods are the names of duplication methods.
	Methods config.Methods

	// Source returns the source text of a node as written.
	Source func(n ast.Node) string

	// Applicability rates the replacement of a call to the given method.
	// A nil function rates every replacement [applicability.MaybeIncorrect].
	Applicability func(method *types.Func) applicability.Level

	copyable copyable.Checker
}

// Analyze checks the call expression at c. fixable is false when the call is part of
// generated code, where suggestions are withheld.
func (a *Analyzer) Analyze(c inspector.Cursor, fixable bool) (report.Finding, bool) {
	matcher := callsite.Matcher{Info: a.Info, Methods: a.Methods}

	site, ok := matcher.Match(c)
	if !ok {
		return report.Finding{}, false
	}

	if !a.copyable.Copyable(site.ValueType) {
		return report.Finding{}, false
	}

	method := site.Selector.Sel.Name
	typeName := types.TypeString(site.ValueType, a.Qualifier)

	finding := report.Finding{
		Pos:      site.Call.Pos(),
		End:      site.Call.End(),
		Method:   method,
		TypeName: typeName,
		Message:  report.Message(method, typeName),
	}

	if !fixable || site.Context == callsite.Deferred {
		return finding, true
	}

	// In `x.Clone().Clone()` both calls are reported, but only the inner one gets a
	// suggestion, so that the edits do not overlap.
	if inner, ok := astutil.Unparen(site.Receiver).(*ast.CallExpr); ok {
		if _, ok := matcher.MatchCall(inner); ok {
			return finding, true
		}
	}

	shape := suggest.Classify(a.Info, site.Receiver, site.Indirect)
	sg := suggest.Build(site, shape, a.Source(site.Receiver))

	finding.Suggestion = &report.Suggestion{
		Pos:           sg.Pos,
		End:           sg.End,
		Text:          sg.Text,
		Help:          sg.Help(method),
		Form:          sg.Form,
		Applicability: a.applicability(site),
	}

	return finding, true
}

// applicability rates the replacement of the call at site.
// A constant receiver turns the enclosing expression into a constant expression,
// which is checked for overflow at compile time.
func (a *Analyzer) applicability(site callsite.CallSite) applicability.Level {
	if a.Applicability == nil || a.constant(site.Receiver) {
		return applicability.MaybeIncorrect
	}

	return a.Applicability(site.Method)
}

func (a *Analyzer) constant(e ast.Expr) bool {
	tv, ok := a.Info.Types[e]

	return ok && tv.Value != nil
}

// Qualifier formats package-level names relative to pkg. Names from other packages
// are qualified by the package name, not the import path, as they would be written
// in a source file of pkg.
func Qualifier(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if pkg == other {
			return ""
		}

		return other.Name()
	}
}
