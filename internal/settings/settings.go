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

// Package settings reads the bindguard configuration file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golangci/plugin-module-register/register"
	"gopkg.in/yaml.v3"

	bindguard "fillmore-labs.com/bindguard/analyzer"
	"fillmore-labs.com/bindguard/internal/logflags"
)

// DefaultFile is the configuration file used when none is given explicitly.
const DefaultFile = ".bindguard.yaml"

// Settings represents the configuration options of the bindguard analyzer.
type Settings struct {
	// NonExhaustive enables reports of variables not assigned on every path.
	NonExhaustive *bool `json:"non-exhaustive,omitzero"`
	// Undefined enables reports of variables assigned nowhere.
	Undefined *bool `json:"undefined,omitzero"`
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// IgnoreSuppressions reports findings on lines with suppression comments.
	IgnoreSuppressions *bool `json:"ignore-suppressions,omitzero"`
	// Ignore lists names that are never reported.
	Ignore []string `json:"ignore,omitzero"`
	// CacheSize sets the number of enclosing scope results to memoize.
	CacheSize *int `json:"cache-size,omitzero"`
}

// Options converts [Settings] into a list of [bindguard.Option] for the bindguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []bindguard.Option {
	var opts []bindguard.Option

	opts = appendOption(opts, s.NonExhaustive, bindguard.WithNonExhaustive)
	opts = appendOption(opts, s.Undefined, bindguard.WithUndefined)
	opts = appendOption(opts, s.Generated, bindguard.WithGenerated)
	opts = appendOption(opts, s.IgnoreSuppressions, bindguard.WithIgnoreSuppressions)
	opts = appendOption(opts, s.CacheSize, bindguard.WithCacheSize)

	if len(s.Ignore) > 0 {
		opts = append(opts, bindguard.WithIgnoreNames(s.Ignore...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [bindguard.Option] list.
func appendOption[T any](opts []bindguard.Option, value *T, constructor func(T) bindguard.Option) []bindguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Decode parses YAML configuration data.
func Decode(data []byte) (Settings, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if raw == nil { // empty document
		return Settings{}, nil
	}

	s, err := register.DecodeSettings[Settings](raw)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}

// Load reads the configuration file at path. When path is empty, [DefaultFile]
// is read if it exists.
func Load(path string) (Settings, error) {
	log := logflags.SettingsLogger()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no configuration file %s", path)

			return Settings{}, nil
		}

		return Settings{}, err
	}

	s, err := Decode(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("file", path).Debugf("loaded %d options", len(s.Options()))

	return s, nil
}
