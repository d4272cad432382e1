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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/clonecheck/analyzer/level"
	"fillmore-labs.com/clonecheck/internal/config"
	"fillmore-labs.com/clonecheck/internal/run"
)

// Option configures specific behavior of a [New] clonecheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
// Diagnostics in generated files never carry suggested fixes.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMethods is an [Option] to configure the names of the checked duplication methods.
// An empty list restores the default, Clone.
func WithMethods(methods ...string) Option { return methodsOption{methods: config.NewMethods(methods...)} }

type methodsOption struct{ methods config.Methods }

func (o methodsOption) apply(r *run.Options) {
	if len(o.methods) == 0 {
		r.Methods = config.DefaultMethods()

		return
	}

	r.Methods = o.methods
}

func (o methodsOption) LogAttr() slog.Attr {
	return slog.String("methods", o.methods.String())
}

// WithFixes is an [Option] to configure which suggested fixes are attached to diagnostics.
func WithFixes(fixes level.Fixes) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes level.Fixes }

func (o fixesOption) apply(r *run.Options) {
	setFixes(&r.Behavior, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.String("fixes", o.fixes.String())
}

// setFixes translates a fix level into behavior flags.
func setFixes(b *config.Behavior, fixes level.Fixes) {
	b.Set(config.SafeFixes, fixes != level.FixesOff)
	b.Set(config.UnsafeFixes, fixes == level.FixesAll)
}

// fixesOf returns the fix level of the behavior flags.
func fixesOf(b config.Behavior) level.Fixes {
	switch {
	case b.Enabled(config.UnsafeFixes):
		return level.FixesAll

	case b.Enabled(config.SafeFixes):
		return level.FixesSafe

	default:
		return level.FixesOff
	}
}
