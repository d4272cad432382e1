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

package astutil

import (
	"go/ast"
	"go/printer"
	"go/token"
	"strings"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// SourceReader returns the verbatim source text of syntax nodes.
//
// Each file is read at most once. When the source is unavailable, the node is printed instead.
type SourceReader struct {
	fset     *token.FileSet
	readFile func(filename string) ([]byte, error)
	content  map[*token.File][]byte
}

// NewSourceReader creates a [SourceReader] reading files with readFile, usually [analysis.Pass.ReadFile].
func NewSourceReader(fset *token.FileSet, readFile func(filename string) ([]byte, error)) *SourceReader {
	return &SourceReader{
		fset:     fset,
		readFile: readFile,
		content:  make(map[*token.File][]byte),
	}
}

// Text returns the source text of n as written.
func (s *SourceReader) Text(n ast.Node) string {
	if text, ok := s.verbatim(n); ok {
		return text
	}

	var buf strings.Builder
	if err := rawcfg.Fprint(&buf, s.fset, n); err != nil {
		return ""
	}

	return buf.String()
}

func (s *SourceReader) verbatim(n ast.Node) (string, bool) {
	handle := s.fset.File(n.Pos())
	if handle == nil || s.readFile == nil {
		return "", false
	}

	content, ok := s.content[handle]
	if !ok {
		var err error
		if content, err = s.readFile(handle.Name()); err != nil || len(content) != handle.Size() {
			content = nil // unreadable or changed on disk
		}

		s.content[handle] = content
	}

	start, end := handle.Offset(n.Pos()), handle.Offset(n.End())
	if content == nil || start > end {
		return "", false
	}

	return string(content[start:end]), true
}
