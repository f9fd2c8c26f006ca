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

package header

import (
	"strings"
)

// 🐚 ShebangStrategy skips an interpreter directive on line 0. It doubles as
// the default for every supported type with no other preamble: the shebang
// check is a no-op on non-script files and the banner lands at line 0.
type ShebangStrategy struct {
	baseStrategy
}

func (s ShebangStrategy) InsertionIndex(lines []string) Insertion {
	if len(lines) == 0 {
		return At(0)
	}
	if strings.HasPrefix(lines[0], shebangMarker) {
		return At(1)
	}
	return At(0)
}

// 🐍 PythonStrategy additionally skips a PEP 263 encoding cookie, which may
// only appear on the first or second line of the file.
type PythonStrategy struct {
	ShebangStrategy
}

// encodingCookieLookahead bounds the scan: the cookie is only honored on
// lines 0-1.
const encodingCookieLookahead = 2

func (s PythonStrategy) InsertionIndex(lines []string) Insertion {
	ins := s.ShebangStrategy.InsertionIndex(lines)

	limit := len(lines)
	if limit > encodingCookieLookahead {
		limit = encodingCookieLookahead
	}
	for i := ins.Index; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "#") && strings.Contains(line, "coding") &&
			(strings.Contains(line, "=") || strings.Contains(line, ":")) {
			return At(i + 1)
		}
	}

	return ins
}

// 🐳 DockerfileStrategy skips leading parser directives (# syntax=, escape=,
// check=). Directives are case-insensitive, tolerate whitespace around the
// key and "=", and stop at the first line that is not one, including an
// ordinary comment.
type DockerfileStrategy struct {
	ShebangStrategy
}

func (s DockerfileStrategy) InsertionIndex(lines []string) Insertion {
	ins := s.ShebangStrategy.InsertionIndex(lines)
	idx := ins.Index

	for idx < len(lines) {
		line := strings.TrimSpace(lines[idx])
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.ToLower(strings.TrimSpace(line[1:]))
		key, _, found := strings.Cut(content, "=")
		if !found || !isParserDirectiveKey(strings.TrimSpace(key)) {
			break
		}

		idx++
	}

	return At(idx)
}

func isParserDirectiveKey(key string) bool {
	switch key {
	case "syntax", "escape", "check":
		return true
	}
	return false
}

// declSearchLimit bounds the scan for a declaration's closing ">".
const declSearchLimit = 20

// cssSearchLimit bounds the scan for @charset's closing ";". Charset rules
// must sit at the very top of the sheet.
const cssSearchLimit = 5

// 📜 DeclarationStrategy handles markup and stylesheet files that may begin
// with a must-come-first declaration: an XML declaration, an HTML doctype, a
// JSP/ASP directive (<%@), a CSS @charset rule, or a Razor @page directive.
// If a declaration never terminates within the lookahead bound, the file is
// skipped rather than guessed at.
type DeclarationStrategy struct {
	baseStrategy
}

func (s DeclarationStrategy) InsertionIndex(lines []string) Insertion {
	if len(lines) == 0 {
		return At(0)
	}

	firstLine := strings.TrimSpace(lines[0])
	lowerLine := strings.ToLower(firstLine)

	isTagDecl := strings.HasPrefix(firstLine, "<?xml") ||
		strings.HasPrefix(lowerLine, "<!doctype") ||
		strings.HasPrefix(firstLine, "<%@")

	if isTagDecl {
		return s.scanForCloser(lines, ">", declSearchLimit)
	}

	if strings.HasPrefix(lowerLine, "@charset") {
		return s.scanForCloser(lines, ";", cssSearchLimit)
	}

	if strings.HasPrefix(lowerLine, "@page") {
		// Razor @page directives end at the newline.
		return At(1)
	}

	return At(0)
}

// scanForCloser finds the first line (including line 0) containing the
// closing token, within the given bound.
func (s DeclarationStrategy) scanForCloser(lines []string, closer string, limit int) Insertion {
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if strings.Contains(lines[i], closer) {
			return At(i + 1)
		}
	}
	return SkipFile()
}

// 🐘 PhpStrategy places the banner after the opening <?php tag. Files with
// no open tag are presumed to be markup served through the PHP engine, where
// a // comment would render as visible text, so they are skipped. One-line
// files (tag closes on the same line) and XML declarations masquerading as
// open tags are skipped for the same reason.
type PhpStrategy struct {
	ShebangStrategy
}

func (s PhpStrategy) InsertionIndex(lines []string) Insertion {
	if len(lines) == 0 {
		return At(0)
	}

	ins := s.ShebangStrategy.InsertionIndex(lines)
	idx := ins.Index

	if idx < len(lines) {
		line := strings.TrimSpace(lines[idx])
		if strings.HasPrefix(line, "<?") {
			if strings.HasPrefix(strings.ToLower(line), "<?xml") {
				return SkipFile()
			}
			if strings.Contains(line, "?>") {
				return SkipFile()
			}
			return At(idx + 1)
		}
	}

	return SkipFile()
}

// frontmatterFence delimits a leading metadata block, on its own line.
const frontmatterFence = "---"

// 📑 FrontmatterStrategy skips a leading frontmatter block. An opening fence
// with no closing fence means the metadata never ends, so the file is
// skipped rather than having a banner dropped into the block.
type FrontmatterStrategy struct {
	baseStrategy
}

func (s FrontmatterStrategy) InsertionIndex(lines []string) Insertion {
	if len(lines) == 0 {
		return At(0)
	}

	if strings.TrimSpace(lines[0]) != frontmatterFence {
		return At(0)
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterFence {
			return At(i + 1)
		}
	}

	return SkipFile()
}
