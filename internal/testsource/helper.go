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

// Package testsource provides utilities for parsing and type checking Go source fragments in tests.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed and type checked test file.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info

	// Text is the complete source of the file, including the generated wrapper.
	Text string
}

// Parse parses and type checks a statement list.
//
// decls is placed at package level, stmts is wrapped in a function body `func _() { ... }`
// within package `test`. This allows testing expressions together with the package level
// declarations (methods, generic types) they need.
func Parse(tb testing.TB, decls, stmts string) Source {
	tb.Helper()

	var src strings.Builder
	src.WriteString("package " + testpkg + "\n\n") // ignore error
	src.WriteString(decls)                         // ignore error
	src.WriteString("\n\nfunc _() {\n")            // ignore error
	src.WriteString(stmts)                         // ignore error
	src.WriteString("\n}\n")                       // ignore error

	return ParseFile(tb, src.String())
}

// ParseFile parses and type checks a complete source file.
func ParseFile(tb testing.TB, text string) Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", text, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return Source{Fset: fset, File: f, Pkg: pkg, Info: info, Text: text}
}

// Root returns a cursor at the root of the parsed file.
func (s Source) Root() inspector.Cursor {
	return inspector.New([]*ast.File{s.File}).Root()
}

// Body returns a cursor positioned at the body of the last function declaration.
func (s Source) Body(tb testing.TB) inspector.Cursor {
	tb.Helper()

	var (
		body  inspector.Cursor
		found bool
	)

	for c := range s.Root().Preorder((*ast.FuncDecl)(nil)) {
		if c.Node().(*ast.FuncDecl).Body != nil {
			body, found = c.ChildAt(edge.FuncDecl_Body, -1), true
		}
	}

	if !found {
		tb.Fatal("Can't find function")
	}

	return body
}

// Lookup returns the type of the package level type name.
func (s Source) Lookup(tb testing.TB, name string) types.Type {
	tb.Helper()

	obj, ok := s.Pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		tb.Fatalf("Type %s not found", name)
	}

	return obj.Type()
}

// Calls returns cursors of all call expressions in the function body, in source order.
func (s Source) Calls(tb testing.TB) []inspector.Cursor {
	tb.Helper()

	var calls []inspector.Cursor
	for c := range s.Body(tb).Preorder((*ast.CallExpr)(nil)) {
		calls = append(calls, c)
	}

	return calls
}

// ReadFile returns the source text for the test file, satisfying analysis.Pass.ReadFile.
func (s Source) ReadFile(name string) ([]byte, error) {
	if name != filename {
		return nil, &fileError{name}
	}

	return []byte(s.Text), nil
}

type fileError struct{ name string }

func (e *fileError) Error() string { return "unknown test file " + e.name }
