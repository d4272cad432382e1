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

// Package render formats findings as compiler-style snapshot text.
//
// Each finding renders as
//
//	error: using `Clone` on type `Int` which is trivially copyable
//	  --> a.go:4:9
//	   |
//	LL |     return x.Clone()
//	   |            ^^^^^^^^^ help: try removing the `Clone` call: `x`
//
// followed by an empty line, and the output ends with a summary line.
package render

import (
	"bufio"
	"fmt"
	"go/token"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/clonecheck/internal/report"
)

// tabWidth is the number of spaces a tab in a source line renders as.
const tabWidth = 4

// normalizedLine replaces line numbers in normalized output.
const normalizedLine = "LL"

// Options configures rendering.
type Options struct {
	// Color enables ANSI colors.
	Color bool

	// Normalize replaces line numbers in the source gutter by LL, for stable snapshots.
	Normalize bool

	// Base makes file names relative to this directory when set.
	Base string
}

// Renderer renders findings with their source context.
type Renderer struct {
	fset     *token.FileSet
	readFile func(filename string) ([]byte, error)
	opts     Options

	sources map[string][]string

	errorColor, emphasisColor, gutterColor, caretColor, helpColor *color.Color
}

// New creates a [Renderer]. readFile provides the source text of the files referenced by fset.
func New(fset *token.FileSet, readFile func(filename string) ([]byte, error), opts Options) *Renderer {
	r := &Renderer{
		fset:     fset,
		readFile: readFile,
		opts:     opts,
		sources:  make(map[string][]string),

		errorColor:    color.New(color.FgRed, color.Bold),
		emphasisColor: color.New(color.Bold),
		gutterColor:   color.New(color.FgBlue, color.Bold),
		caretColor:    color.New(color.FgRed, color.Bold),
		helpColor:     color.New(color.FgCyan, color.Bold),
	}

	for _, c := range []*color.Color{r.errorColor, r.emphasisColor, r.gutterColor, r.caretColor, r.helpColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Render writes all findings and the summary line to w.
func (r *Renderer) Render(w io.Writer, findings report.Findings) error {
	bw := bufio.NewWriter(w)

	gutter := r.gutterWidth(findings)

	for _, f := range findings {
		r.finding(bw, f, gutter)
	}

	if n := len(findings); n > 0 {
		r.summary(bw, n)
	}

	return bw.Flush()
}

func (r *Renderer) finding(w *bufio.Writer, f report.Finding, gutter int) {
	pos := r.fset.PositionFor(f.Pos, false)
	end := r.fset.PositionFor(f.End, false)

	fmt.Fprintf(w, "%s%s\n", r.errorColor.Sprint("error"), r.emphasisColor.Sprint(": "+f.Message))

	fmt.Fprintf(w, "%s%s %s:%d:%d\n", strings.Repeat(" ", gutter), r.gutterColor.Sprint("-->"),
		r.filename(pos.Filename), pos.Line, pos.Column)

	bar := strings.Repeat(" ", gutter+1) + r.gutterColor.Sprint("|")
	fmt.Fprintln(w, bar)

	line, ok := r.line(pos.Filename, pos.Line)
	if ok {
		number := normalizedLine
		if !r.opts.Normalize {
			number = strconv.Itoa(pos.Line)
		}

		fmt.Fprintf(w, "%s %s\n", r.gutterColor.Sprint(pad(number, gutter)+" |"), expandTabs(line))

		start, width := caretSpan(line, pos, end)
		label := strings.Repeat("^", width)

		if sg := f.Suggestion; sg != nil {
			label += " help: " + sg.HelpText()
		}

		fmt.Fprintf(w, "%s %s%s\n", bar, strings.Repeat(" ", start), r.caretColor.Sprint(label))
	} else if sg := f.Suggestion; sg != nil {
		fmt.Fprintf(w, "%s %s\n", bar, r.helpColor.Sprint("help: "+sg.HelpText()))
	}

	fmt.Fprintln(w)
}

func (r *Renderer) summary(w *bufio.Writer, n int) {
	msg := "aborting due to 1 previous error"
	if n > 1 {
		msg = fmt.Sprintf("aborting due to %d previous errors", n)
	}

	fmt.Fprintf(w, "%s%s\n", r.errorColor.Sprint("error"), r.emphasisColor.Sprint(": "+msg))
}

// gutterWidth is the width of the widest line number shown.
func (r *Renderer) gutterWidth(findings report.Findings) int {
	if r.opts.Normalize {
		return len(normalizedLine)
	}

	width := 1
	for _, f := range findings {
		if w := len(strconv.Itoa(r.fset.PositionFor(f.Pos, false).Line)); w > width {
			width = w
		}
	}

	return width
}

func (r *Renderer) filename(name string) string {
	if r.opts.Base == "" {
		return name
	}

	if rel, err := filepath.Rel(r.opts.Base, name); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}

	return name
}

// line returns the source line with the given 1-based number, without the line terminator.
func (r *Renderer) line(filename string, number int) (string, bool) {
	lines, ok := r.sources[filename]
	if !ok {
		if r.readFile != nil {
			if content, err := r.readFile(filename); err == nil {
				lines = strings.Split(string(content), "\n")
			}
		}

		r.sources[filename] = lines
	}

	if number < 1 || number > len(lines) {
		return "", false
	}

	return strings.TrimRight(lines[number-1], "\r"), true
}

// caretSpan returns the display column and width of the underlined span on line.
// Spans continuing on later lines are underlined up to the end of the line.
func caretSpan(line string, pos, end token.Position) (start, width int) {
	from := min(max(pos.Column-1, 0), len(line))

	to := len(line)
	if end.Line == pos.Line {
		to = min(max(end.Column-1, from), len(line))
	}

	start = displayWidth(line[:from])
	width = displayWidth(line[:to]) - start

	return start, max(width, 1)
}

// displayWidth is the width of s in terminal cells, with tabs expanded.
func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// pad right-aligns s in a field of the given width.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}

	return s
}
