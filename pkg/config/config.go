// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📏 MaxFileSizeBytes is the default size ceiling. Files larger than this
// are never touched, to keep pre-commit runs fast and to avoid scanning
// generated blobs.
const MaxFileSizeBytes = 1024 * 1024

// PathPlaceholder is the token inside a style template that is replaced
// with the file's repository-relative path.
const PathPlaceholder = "{}"

// 📚 Config holds everything the processor needs for one run. It is built
// once at startup and treated as read-only afterwards.
type Config struct {
	// Styles maps a file-type key (lowercase extension, ".dockerfile", or a
	// full dotfile name) to a comment template containing one {} placeholder.
	// An empty template means the type is known but has no safe comment form.
	Styles map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`

	// Exclude lists exact base names that must never be touched, regardless
	// of extension (lockfiles, generated manifests).
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// IgnorePatterns are doublestar globs matched against the forward-slash
	// path. Matching files are skipped silently.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`

	// MaxFileSize overrides the default size ceiling when > 0.
	MaxFileSize int64 `json:"max_file_size,omitempty" yaml:"max_file_size,omitempty"`

	excluded map[string]bool
}

// 🎯 Load loads the configuration from a file, merging it over the built-in
// defaults. A missing file is not an error: the defaults are used as-is.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			if err := cfg.Validate(); err != nil {
				return nil, errors.Errorf("validating default config: %w", err)
			}
			return cfg, nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	overrides, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.merge(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔀 merge layers file-provided overrides on top of the defaults.
func (cfg *Config) merge(overrides *Config) {
	for key, tpl := range overrides.Styles {
		cfg.Styles[strings.ToLower(key)] = tpl
	}
	cfg.Exclude = append(cfg.Exclude, overrides.Exclude...)
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, overrides.IgnorePatterns...)
	if overrides.MaxFileSize > 0 {
		cfg.MaxFileSize = overrides.MaxFileSize
	}
}

// 🔍 Validate checks templates and patterns, and builds the exclusion index.
func (cfg *Config) Validate() error {
	for key, tpl := range cfg.Styles {
		if strings.Count(tpl, PathPlaceholder) > 1 {
			return errors.Errorf("style %q: template may contain at most one %s placeholder", key, PathPlaceholder)
		}
	}

	for _, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %q", pattern)
		}
	}

	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = MaxFileSizeBytes
	}

	cfg.excluded = make(map[string]bool, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		cfg.excluded[name] = true
	}

	return nil
}

// 🗺️ StyleFor returns the comment template for a file-type key. The second
// return is false when the key is unknown. Note that a known key may still
// carry an empty template, which callers must treat as unsupported.
func (cfg *Config) StyleFor(key string) (string, bool) {
	tpl, ok := cfg.Styles[key]
	return tpl, ok
}

// 🔒 IsExcluded reports whether a base name is on the do-not-touch list.
func (cfg *Config) IsExcluded(baseName string) bool {
	return cfg.excluded[baseName]
}

// 🔍 IsIgnored reports whether a forward-slash path matches any ignore
// pattern. Invalid patterns were rejected in Validate, so Match errors here
// only on malformed input and is logged rather than surfaced.
func (cfg *Config) IsIgnored(ctx context.Context, path string) bool {
	logger := zerolog.Ctx(ctx)
	for _, pattern := range cfg.IgnorePatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
