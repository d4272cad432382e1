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

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/clonecheck/analyzer"
	"fillmore-labs.com/clonecheck/analyzer/level"
)

// SettingsFile is the name of the settings file looked up in the analyzed directory.
const SettingsFile = ".clonecheck.toml"

// ErrUnknownSetting is returned for settings files with unknown keys.
var ErrUnknownSetting = errors.New("unknown setting")

// Settings are the analyzer settings read from a TOML file.
type Settings struct {
	// Methods are the names of the duplication methods, Clone when empty.
	Methods []string `toml:"methods"`

	// Fixes selects the attached suggested fixes: safe, all or off.
	Fixes level.Fixes `toml:"fixes"`

	// Generated includes generated files.
	Generated bool `toml:"generated"`

	// Tests includes test packages.
	Tests bool `toml:"tests"`
}

// LoadSettings reads settings from path. A missing file yields the default settings when optional is set.
func LoadSettings(path string, optional bool) (Settings, error) {
	var s Settings

	md, err := toml.DecodeFile(path, &s)
	switch {
	case err == nil:

	case optional && errors.Is(err, fs.ErrNotExist):
		return Settings{}, nil

	default:
		return Settings{}, fmt.Errorf("can't read settings %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Settings{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownSetting, strings.Join(keys, ", "))
	}

	return s, nil
}

// Options converts the settings into analyzer options.
func (s Settings) Options() analyzer.Options {
	return analyzer.Options{
		analyzer.WithMethods(s.Methods...),
		analyzer.WithFixes(s.Fixes),
		analyzer.WithGenerated(s.Generated),
	}
}

// LogValue implements [slog.LogValuer].
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("options", s.Options()),
		slog.Bool("tests", s.Tests),
	)
}
