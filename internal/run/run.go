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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/clonecheck/internal/applicability"
	"fillmore-labs.com/clonecheck/internal/astutil"
	"fillmore-labs.com/clonecheck/internal/clone"
	"fillmore-labs.com/clonecheck/internal/config"
	"fillmore-labs.com/clonecheck/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the clonecheck analyzer's pipeline and returns the [report.Findings] of the package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("clonecheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CloneCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	facts := applicability.Facts{Pass: p, Methods: r.Methods}

	// Stage 1: Mark trivial duplication methods, also in generated and suppressed code
	trace.WithRegion(ctx, "facts", func() {
		for c := range in.Root().Preorder((*ast.FuncDecl)(nil)) {
			facts.Export(c.Node().(*ast.FuncDecl))
		}
	})

	source := astutil.NewSourceReader(p.Fset, p.ReadFile)

	a := &clone.Analyzer{
		Info:          p.TypesInfo,
		Qualifier:     clone.Qualifier(p.Pkg),
		Methods:       r.Methods,
		Source:        source.Text,
		Applicability: facts.Of,
	}

	sink := &report.PassSink{Pass: p, Behavior: r.Behavior}

	// Stage 2: Check all duplication calls
	trace.WithRegion(ctx, "calls", func() {
		for f := range in.Root().Children() {
			file := f.Node().(*ast.File)

			currentFile := astutil.NewCurrentFile(p.Fset, file)
			if !currentFile.Valid() {
				astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

				continue
			}

			r.checkFile(f, currentFile, a, sink)
		}
	})

	return sink.Findings, nil
}

// checkFile reports all redundant duplication calls in the file at f.
func (r *Options) checkFile(f inspector.Cursor, currentFile astutil.CurrentFile, a *clone.Analyzer, sink report.Sink) {
	generated := currentFile.Generated()

	// Skip generated files
	if generated && !r.Behavior.Enabled(config.IncludeGenerated) {
		return
	}

	// Skip files with nolint comment
	if astutil.GroupHasNoLint(f.Node().(*ast.File).Doc) {
		return
	}

	nodeTypes := []ast.Node{(*ast.FuncDecl)(nil), (*ast.CallExpr)(nil)}
	f.Inspect(nodeTypes, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment
			return !astutil.GroupHasNoLint(n.Doc)

		case *ast.CallExpr:
			finding, ok := a.Analyze(c, !generated)
			if ok && !currentFile.NoLintComment(n.Pos()) {
				sink.Emit(finding)
			}
		}

		return true
	})
}
