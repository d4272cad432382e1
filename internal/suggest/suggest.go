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

// Package suggest synthesizes the replacement for redundant duplication calls.
//
// The receiver shape selects the [Form]: receivers that already are values of the
// call's type replace the call, receivers of pointer type are dereferenced. The
// replacement always covers exactly the call expression, so chained operations
// like `x.Clone().Method()` or `x.Clone()[0]` keep their surrounding syntax.
package suggest

import (
	"go/token"

	"fillmore-labs.com/clonecheck/internal/callsite"
)

// Suggestion is a replacement for a duplication call.
type Suggestion struct {
	Shape Shape
	Form  Form

	// Pos and End delimit the replaced call expression.
	Pos, End token.Pos

	// Text is the replacement text.
	Text string
}

// Build creates the [Suggestion] for site, given the verbatim source text of the receiver.
func Build(site callsite.CallSite, shape Shape, receiver string) Suggestion {
	form := shape.Form()

	text := receiver
	if form == Dereference {
		text = "*" + text

		if site.Context == callsite.Chained {
			text = "(" + text + ")"
		}
	}

	if site.Context == callsite.Discarded {
		text = "_ = " + text
	}

	return Suggestion{
		Shape: shape,
		Form:  form,
		Pos:   site.Call.Pos(),
		End:   site.Call.End(),
		Text:  text,
	}
}

// Help returns the help message of the suggestion.
func (s Suggestion) Help(method string) string {
	return s.Form.Help(method)
}
