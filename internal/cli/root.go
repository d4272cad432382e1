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

// Package cli implements the clonecheck-report command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/clonecheck/analyzer"
	"fillmore-labs.com/clonecheck/internal/driver"
	"fillmore-labs.com/clonecheck/internal/render"
)

// ErrFindings is returned when redundant duplication calls were found.
var ErrFindings = errors.New("redundant duplication calls found")

type rootFlags struct {
	dir       string
	config    string
	color     bool
	normalize bool
	verbose   bool
}

// NewRootCommand creates the clonecheck-report command.
func NewRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "clonecheck-report [flags] [packages]",
		Short: "Report redundant Clone calls on trivially copyable values",
		Long: "Loads the given packages (default ./...) and renders every redundant duplication call\n" +
			"with its source line and suggested replacement. Settings are read from " + SettingsFile + ".",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd.Context(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), f.verbose), args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.dir, "dir", "C", ".", "directory to resolve package patterns in")
	flags.StringVar(&f.config, "config", "", "settings file (default "+SettingsFile+" in --dir)")
	flags.BoolVar(&f.color, "color", !color.NoColor, "colorize output")
	flags.BoolVar(&f.normalize, "normalize", false, "replace line numbers by LL for snapshot tests")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newMCPCommand())

	return cmd
}

func (f rootFlags) run(ctx context.Context, w io.Writer, logger *slog.Logger, patterns []string) error {
	dir, err := filepath.Abs(f.dir)
	if err != nil {
		return err
	}

	path, optional := f.config, false
	if path == "" {
		path, optional = filepath.Join(dir, SettingsFile), true
	}

	settings, err := LoadSettings(path, optional)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Settings loaded", slog.String("path", path), slog.Any("settings", settings))

	out, n, err := check(ctx, logger, dir, settings, render.Options{Color: f.color, Normalize: f.normalize, Base: dir}, patterns)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return err
	}

	if n > 0 {
		return fmt.Errorf("%w: %d", ErrFindings, n)
	}

	return nil
}

// check analyzes the packages matching patterns in dir and returns the rendered findings and their count.
func check(ctx context.Context, logger *slog.Logger, dir string, settings Settings, opts render.Options, patterns []string) (string, int, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	a := analyzer.New(settings.Options())

	result, err := driver.Check(ctx, a, driver.Options{Dir: dir, Tests: settings.Tests, Logger: logger}, patterns...)
	if err != nil {
		return "", 0, err
	}

	var out strings.Builder

	r := render.New(result.Fset, os.ReadFile, opts)
	if err := r.Render(&out, result.Findings); err != nil {
		return "", 0, err
	}

	return out.String(), len(result.Findings), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
