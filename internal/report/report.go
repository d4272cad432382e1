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

// Package report defines the findings of the analyzer and emits them as diagnostics.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/clonecheck/internal/applicability"
	"fillmore-labs.com/clonecheck/internal/config"
	"fillmore-labs.com/clonecheck/internal/suggest"
)

// Category is the diagnostic category of all findings.
const Category = "clonecheck"

// Finding is a redundant duplication call on a value with copy semantics.
type Finding struct {
	// Pos and End delimit the complete call expression.
	Pos, End token.Pos

	// Method is the name of the duplication method.
	Method string

	// TypeName is the receiver's value type, qualified relative to the analyzed package.
	TypeName string

	// Message is the diagnostic message.
	Message string

	// Suggestion is the replacement of the call, nil when no fix can be offered.
	Suggestion *Suggestion
}

// Suggestion is a suggested replacement of a duplication call.
type Suggestion struct {
	// Pos and End delimit the replaced text.
	Pos, End token.Pos

	// Text is the replacement text.
	Text string

	// Help describes the replacement, without the replacement text.
	Help string

	Form          suggest.Form
	Applicability applicability.Level
}

// Findings is the result of the analyzer for a package.
type Findings []Finding

// Message formats the diagnostic message for a duplication call.
func Message(method, typeName string) string {
	return fmt.Sprintf("using `%s` on type `%s` which is trivially copyable", method, typeName)
}

// HelpText returns the complete help message, including the replacement text.
func (s Suggestion) HelpText() string {
	return s.Help + ": `" + s.Text + "`"
}

// Sink receives findings.
type Sink interface {
	Emit(f Finding)
}

// PassSink reports findings as diagnostics of an analysis pass and collects them.
type PassSink struct {
	Pass     *analysis.Pass
	Behavior config.Behavior
	Findings Findings
}

// Emit implements [Sink].
func (s *PassSink) Emit(f Finding) {
	diagnostic := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: Category,
		Message:  f.Message,
	}

	if fix, ok := s.suggestedFix(f.Suggestion); ok {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{fix}
	}

	s.Pass.Report(diagnostic)

	s.Findings = append(s.Findings, f)
}

// suggestedFix converts a suggestion into an [analysis.SuggestedFix], depending on the enabled fix levels.
func (s *PassSink) suggestedFix(sg *Suggestion) (analysis.SuggestedFix, bool) {
	if sg == nil {
		return analysis.SuggestedFix{}, false
	}

	switch sg.Applicability {
	case applicability.MachineApplicable:
		if !s.Behavior.Enabled(config.SafeFixes) {
			return analysis.SuggestedFix{}, false
		}

	default:
		if !s.Behavior.Enabled(config.UnsafeFixes) {
			return analysis.SuggestedFix{}, false
		}
	}

	return analysis.SuggestedFix{
		Message:   sg.HelpText(),
		TextEdits: []analysis.TextEdit{{Pos: sg.Pos, End: sg.End, NewText: []byte(sg.Text)}},
	}, true
}
