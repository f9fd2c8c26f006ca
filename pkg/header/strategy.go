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

// Package header computes where a path banner comment may be safely placed
// in a source file, per file-type family.
package header

import (
	"strings"

	"github.com/walteh/fileheader/pkg/config"
)

// shebangMarker starts an interpreter directive. A line with this prefix is
// never a banner, and a banner must never be inserted above it.
const shebangMarker = "#!"

// 📍 Insertion is the result of an insertion-point scan: either a line index
// at which the banner belongs, or Skip, meaning the file must not be touched
// automatically (ambiguous or unterminated preamble).
type Insertion struct {
	Index int
	Skip  bool
}

// At returns an insertion at the given line index.
func At(index int) Insertion {
	return Insertion{Index: index}
}

// SkipFile returns the do-not-touch result.
func SkipFile() Insertion {
	return Insertion{Skip: true}
}

// 🎯 Strategy is the per-file-type policy for banner placement. Strategies
// are stateless apart from the comment template they were built with; each
// call receives fresh content.
type Strategy interface {
	// ExpectedHeader renders the banner for the given path, with a trailing
	// newline.
	ExpectedHeader(path string) string

	// IsHeaderLine reports whether a line has the shape of this style's
	// banner, regardless of the path it records.
	IsHeaderLine(line string) bool

	// InsertionIndex computes where in the given lines a banner belongs.
	InsertionIndex(lines []string) Insertion
}

// baseStrategy carries the comment template and the logic shared by every
// variant.
type baseStrategy struct {
	style string
}

// 📝 ExpectedHeader renders the template with the forward-slash path.
func (s baseStrategy) ExpectedHeader(path string) string {
	clean := strings.ReplaceAll(path, "\\", "/")
	clean = strings.TrimPrefix(clean, "./")
	return strings.Replace(s.style, config.PathPlaceholder, clean, 1) + "\n"
}

// 🔍 IsHeaderLine matches the template's prefix and suffix around the
// placeholder. Shebang lines are never banners, and a template whose prefix
// and suffix are both empty would match every line, so it matches none.
func (s baseStrategy) IsHeaderLine(line string) bool {
	if strings.HasPrefix(line, shebangMarker) {
		return false
	}
	if s.style == "" {
		return false
	}

	prefix, suffix, _ := strings.Cut(s.style, config.PathPlaceholder)
	prefix = strings.TrimSpace(prefix)
	suffix = strings.TrimSpace(suffix)
	if prefix == "" && suffix == "" {
		return false
	}

	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, prefix) && strings.HasSuffix(trimmed, suffix)
}
