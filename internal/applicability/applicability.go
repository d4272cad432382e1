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

// Package applicability decides whether replacing a duplication call preserves program semantics.
//
// Copy capability guarantees that a plain copy of the receiver is an independent value, but
// not that the duplication method performs just that copy. Methods whose body is a trivial
// copy of the receiver are marked with a [TrivialCopy] fact, so that calls to them can be
// fixed automatically, also from other packages.
package applicability

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/clonecheck/internal/config"
)

// Level is the confidence that a suggested replacement preserves program semantics.
type Level uint8

//go:generate go tool stringer -type Level -linecomment
const (
	// MachineApplicable suggestions are safe for fully automated application.
	MachineApplicable Level = iota // machine-applicable

	// MaybeIncorrect suggestions need human review.
	MaybeIncorrect // maybe-incorrect
)

// TrivialCopy marks a duplication method that returns a plain copy of its receiver.
type TrivialCopy struct{}

// AFact implements [analysis.Fact].
func (*TrivialCopy) AFact() {}

func (*TrivialCopy) String() string { return "trivialCopy" }

// Facts exports and imports [TrivialCopy] facts.
type Facts struct {
	Pass    *analysis.Pass
	Methods config.Methods
}

// Export marks decl with a [TrivialCopy] fact when it is a duplication method with a trivial body.
func (f Facts) Export(decl *ast.FuncDecl) {
	if decl.Recv == nil || decl.Body == nil || !f.Methods.Contains(decl.Name.Name) {
		return
	}

	fn, ok := f.Pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return
	}

	if TrivialBody(f.Pass.TypesInfo, decl, fn) {
		f.Pass.ExportObjectFact(fn, new(TrivialCopy))
	}
}

// Of returns the applicability of replacing a call to method.
func (f Facts) Of(method *types.Func) Level {
	if method == nil || method.Pkg() == nil {
		return MaybeIncorrect
	}

	var fact TrivialCopy
	if f.Pass.ImportObjectFact(method.Origin(), &fact) {
		return MachineApplicable
	}

	return MaybeIncorrect
}

// TrivialBody reports whether decl, the declaration of method fn, returns a copy of its receiver.
//
// Recognized bodies are `return r` for value receivers, `return *r` for pointer receivers
// and composite literals copying every field of r in order.
func TrivialBody(info *types.Info, decl *ast.FuncDecl, fn *types.Func) bool {
	sig := fn.Signature()

	recv := sig.Recv()
	if recv == nil || recv.Name() == "" || recv.Name() == "_" || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	valueType, indirect := recv.Type(), false
	if ptr, ok := types.Unalias(valueType).(*types.Pointer); ok {
		valueType, indirect = ptr.Elem(), true
	}

	if !types.Identical(sig.Results().At(0).Type(), valueType) {
		return false
	}

	if decl.Body == nil || len(decl.Body.List) != 1 {
		return false
	}

	ret, ok := decl.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return false
	}

	isRecv := func(e ast.Expr) bool {
		id, ok := astutil.Unparen(e).(*ast.Ident)

		return ok && info.Uses[id] == recv
	}

	switch result := astutil.Unparen(ret.Results[0]).(type) {
	case *ast.Ident:
		return !indirect && isRecv(result)

	case *ast.StarExpr:
		return indirect && isRecv(result.X)

	case *ast.CompositeLit:
		return copiesFields(info, result, valueType, isRecv)

	default:
		return false
	}
}

// copiesFields reports whether lit is a composite literal of type t with every field
// initialized from the same field of the receiver, in declaration order.
func copiesFields(info *types.Info, lit *ast.CompositeLit, t types.Type, isRecv func(ast.Expr) bool) bool {
	if !types.Identical(info.TypeOf(lit), t) {
		return false
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok || st.NumFields() != len(lit.Elts) {
		return false
	}

	for i, elt := range lit.Elts {
		field := st.Field(i)

		value := elt
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			key, ok := kv.Key.(*ast.Ident)
			if !ok || key.Name != field.Name() {
				return false
			}

			value = kv.Value
		}

		sel, ok := astutil.Unparen(value).(*ast.SelectorExpr)
		if !ok || !isRecv(sel.X) {
			return false
		}

		selection, ok := info.Selections[sel]
		if !ok || selection.Kind() != types.FieldVal || len(selection.Index()) != 1 {
			return false
		}

		if v, ok := selection.Obj().(*types.Var); !ok || v.Origin() != field.Origin() {
			return false
		}
	}

	return true
}
