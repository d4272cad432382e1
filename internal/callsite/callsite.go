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

// Package callsite matches duplication calls and describes their syntactic context.
package callsite

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/clonecheck/internal/config"
)

// Context describes how the value of a call is used by the enclosing expression.
type Context uint8

//go:generate go tool stringer -type Context -linecomment
const (
	// Plain is a call used as an operand, argument or assigned value.
	Plain Context = iota // plain

	// Chained is a call that is itself the operand of a selector, index, slice,
	// type assertion or call expression.
	Chained // chained

	// Discarded is a call used as an expression statement.
	Discarded // discarded

	// Deferred is the call of a go or defer statement.
	Deferred // deferred
)

// CallSite is a matched duplication call `recv.M()`.
type CallSite struct {
	// Call is the complete call expression, including the empty argument list.
	Call *ast.CallExpr

	// Selector is the method selector of the call.
	Selector *ast.SelectorExpr

	// Receiver is the receiver expression as written.
	Receiver ast.Expr

	// Method is the called method.
	Method *types.Func

	// ReceiverType is the static type of Receiver.
	ReceiverType types.Type

	// ValueType is the type of the call result, the value type of the receiver.
	ValueType types.Type

	// Indirect reports whether ReceiverType is a pointer to ValueType.
	Indirect bool

	// Context is the usage of the call in the enclosing expression.
	Context Context

	// Outer is the outermost expression the call is chained into, or Call itself.
	Outer ast.Node
}

// Matcher matches duplication calls.
type Matcher struct {
	Info    *types.Info
	Methods config.Methods
}

// Match reports whether the cursor points to a duplication call: a method value call
// with a configured name, no arguments and a result identical to the receiver's value type.
func (m Matcher) Match(c inspector.Cursor) (CallSite, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return CallSite{}, false
	}

	site, ok := m.MatchCall(call)
	if !ok {
		return CallSite{}, false
	}

	site.Context, site.Outer = enclosing(c)

	return site, true
}

// MatchCall is like [Matcher.Match], but does not determine the context of the call.
// The returned [CallSite] has a [Plain] context and Outer set to the call itself.
func (m Matcher) MatchCall(call *ast.CallExpr) (CallSite, bool) {
	if len(call.Args) != 0 || call.Ellipsis.IsValid() {
		return CallSite{}, false
	}

	sel, ok := astutil.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || !m.Methods.Contains(sel.Sel.Name) {
		return CallSite{}, false
	}

	selection, ok := m.Info.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return CallSite{}, false
	}

	method, ok := selection.Obj().(*types.Func)
	if !ok {
		return CallSite{}, false
	}

	sig, ok := selection.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return CallSite{}, false
	}

	recvType := m.Info.TypeOf(sel.X)
	if recvType == nil {
		return CallSite{}, false
	}

	valueType, indirect := recvType, false
	if ptr, ok := types.Unalias(recvType).(*types.Pointer); ok {
		valueType, indirect = ptr.Elem(), true
	}

	if !types.Identical(sig.Results().At(0).Type(), valueType) {
		return CallSite{}, false
	}

	return CallSite{
		Call:         call,
		Selector:     sel,
		Receiver:     sel.X,
		Method:       method,
		ReceiverType: recvType,
		ValueType:    valueType,
		Indirect:     indirect,
		Context:      Plain,
		Outer:        call,
	}, true
}

// enclosing determines the [Context] of the call at c and the outermost expression
// it is chained into.
func enclosing(c inspector.Cursor) (Context, ast.Node) {
	var context Context

	switch k, _ := c.ParentEdge(); k {
	case edge.ExprStmt_X:
		return Discarded, c.Node()

	case edge.GoStmt_Call, edge.DeferStmt_Call:
		return Deferred, c.Node()

	default:
		if chained(k) {
			context = Chained
		}
	}

	outer := c
	for {
		k, _ := outer.ParentEdge()
		if !chained(k) {
			break
		}

		outer = outer.Parent()
	}

	return context, outer.Node()
}

// chained reports whether an expression in position k is the operand of a primary expression suffix.
func chained(k edge.Kind) bool {
	switch k {
	case edge.SelectorExpr_X,
		edge.IndexExpr_X,
		edge.IndexListExpr_X,
		edge.SliceExpr_X,
		edge.TypeAssertExpr_X,
		edge.CallExpr_Fun:
		return true

	default:
		return false
	}
}
