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

// Command clonecheck reports redundant Clone calls on trivially copyable values.
//
// Usage:
//
//	clonecheck [-fixes=safe|all|off] [-methods=Clone] [-generated] [-fix] packages...
//	go vet -vettool=$(which clonecheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"fillmore-labs.com/clonecheck/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
