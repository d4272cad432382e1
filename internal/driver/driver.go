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

// Package driver loads packages and runs the clonecheck analyzer outside of go vet.
package driver

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/clonecheck/internal/report"
)

var (
	// ErrLoad is returned when the package loader fails.
	ErrLoad = errors.New("can't load packages")

	// ErrPackages is returned when loaded packages contain errors.
	ErrPackages = errors.New("packages contain errors")
)

// loadMode loads syntax and types of all packages, which the checker needs for facts of dependencies.
const loadMode = packages.LoadAllSyntax

// Options configures the package loader.
type Options struct {
	// Dir is the directory patterns are resolved in, the current directory when empty.
	Dir string

	// Tests includes test packages.
	Tests bool

	// Logger receives progress messages, [slog.Default] when nil.
	Logger *slog.Logger
}

// Result holds the findings of all analyzed packages.
type Result struct {
	// Fset is the file set of all findings.
	Fset *token.FileSet

	Findings report.Findings
}

// Check loads the packages matching patterns and runs a, which must return [report.Findings].
func Check(ctx context.Context, a *analysis.Analyzer, opts Options, patterns ...string) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Loading packages",
		slog.String("dir", opts.Dir), slog.Any("patterns", patterns))

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     opts.Dir,
		Tests:   opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if err := packageErrors(pkgs); err != nil {
		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Analyzing packages", slog.Int("count", len(pkgs)))

	graph, err := checker.Analyze([]*analysis.Analyzer{a}, pkgs, &checker.Options{})
	if err != nil {
		return nil, fmt.Errorf("clonecheck: %w", err)
	}

	result := &Result{Fset: token.NewFileSet()}
	if len(pkgs) > 0 {
		result.Fset = pkgs[0].Fset
	}

	for _, act := range graph.Roots {
		if act.Err != nil {
			return nil, fmt.Errorf("clonecheck: %s: %w", act.Package.PkgPath, act.Err)
		}

		findings, ok := act.Result.(report.Findings)
		if !ok {
			continue
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed package",
			slog.String("package", act.Package.PkgPath), slog.Int("findings", len(findings)))

		result.Findings = append(result.Findings, findings...)
	}

	result.Findings = sortFindings(result.Fset, result.Findings)

	return result, nil
}

// sortFindings orders findings by position and removes duplicates, reported when a file is
// part of a package and its test variant.
func sortFindings(fset *token.FileSet, findings report.Findings) report.Findings {
	compare := func(a, b report.Finding) int {
		pa, pb := fset.Position(a.Pos), fset.Position(b.Pos)

		return cmp.Or(
			cmp.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Line, pb.Line),
			cmp.Compare(pa.Column, pb.Column),
			cmp.Compare(a.Message, b.Message),
		)
	}

	slices.SortStableFunc(findings, compare)

	return slices.CompactFunc(findings, func(a, b report.Finding) bool { return compare(a, b) == 0 })
}

// packageErrors collects the errors of all loaded packages, including dependencies.
func packageErrors(pkgs []*packages.Package) error {
	var msgs []string

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			msgs = append(msgs, e.Error())
		}
	})

	if len(msgs) == 0 {
		return nil
	}

	return fmt.Errorf("%w:\n%s", ErrPackages, strings.Join(msgs, "\n"))
}
