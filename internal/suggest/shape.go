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

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
)

// Shape classifies the receiver expression of a duplication call.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment
const (
	// Literal is a basic, composite or function literal.
	Literal Shape = iota // literal

	// Binding is a variable or constant, possibly package qualified.
	Binding // binding

	// Call is the result of a function or method call.
	Call // call

	// Conversion is a type conversion.
	Conversion // conversion

	// Place is a field, element or pointer indirection.
	Place // place

	// Operation is any other value, like an arithmetic expression.
	Operation // operation

	// Reference takes the address of an operand.
	Reference // reference

	// ReferenceBinding is a variable of pointer type.
	ReferenceBinding // reference binding

	// ReferenceCall is a call or conversion returning a pointer.
	ReferenceCall // reference call

	// ReferencePlace is a field or element of pointer type.
	ReferencePlace // reference place
)

// Form returns the suggestion strategy for receivers of this shape.
func (s Shape) Form() Form {
	if s >= Reference {
		return Dereference
	}

	return RemoveCall
}

// Classify determines the [Shape] of a receiver expression.
// indirect reports whether the receiver is a pointer to the value type.
func Classify(info *types.Info, recv ast.Expr, indirect bool) Shape {
	shape := classify(info, astutil.Unparen(recv))
	if !indirect {
		if shape == Reference {
			return Operation
		}

		return shape
	}

	switch shape {
	case Reference:
		return Reference

	case Binding:
		return ReferenceBinding

	case Call, Conversion:
		return ReferenceCall

	default:
		return ReferencePlace
	}
}

func classify(info *types.Info, e ast.Expr) Shape {
	switch e := e.(type) {
	case *ast.BasicLit, *ast.CompositeLit, *ast.FuncLit:
		return Literal

	case *ast.Ident:
		return Binding

	case *ast.UnaryExpr:
		if e.Op == token.AND {
			return Reference
		}

		return Operation

	case *ast.CallExpr:
		if tv, ok := info.Types[e.Fun]; ok && tv.IsType() {
			return Conversion
		}

		return Call

	case *ast.SelectorExpr:
		if _, ok := info.Selections[e]; !ok {
			return Binding // qualified identifier
		}

		return Place

	case *ast.IndexExpr, *ast.IndexListExpr, *ast.StarExpr, *ast.TypeAssertExpr, *ast.SliceExpr:
		return Place

	default:
		return Operation
	}
}
