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
	"path/filepath"
	"strings"

	"github.com/walteh/fileheader/pkg/config"
)

// dockerfileKey is the fixed style key for Dockerfile and its variants.
const dockerfileKey = ".dockerfile"

var (
	// pythonExts get the encoding-cookie-aware strategy.
	pythonExts = map[string]bool{
		".py": true, ".pyi": true, ".pyw": true, ".pyx": true,
	}

	// phpExts get the open-tag strategy.
	phpExts = map[string]bool{
		".php": true, ".phtml": true, ".php3": true, ".php4": true, ".phps": true,
	}

	// frontmatterExts get the metadata-fence strategy.
	frontmatterExts = map[string]bool{
		".astro": true, ".md": true, ".markdown": true,
	}

	// declarationExts get the declaration-skipping strategy. The CSS family
	// is here because @charset must stay the first rule in the sheet.
	declarationExts = map[string]bool{
		".xml": true, ".html": true, ".htm": true, ".xhtml": true,
		".jhtml": true, ".vue": true, ".svelte": true,
		".aspx": true, ".cshtml": true, ".jsp": true,
		".css": true, ".scss": true, ".less": true,
	}
)

// 🔑 KeyFor derives the style-table key for a file name: the fixed
// dockerfile key for Dockerfile and environment-qualified variants
// (Dockerfile.prod), otherwise the lowercase extension, falling back to the
// full lowercased name for extensionless dotfiles (.bashrc).
func KeyFor(name string) string {
	base := filepath.Base(name)
	lower := strings.ToLower(base)

	if lower == "dockerfile" || strings.HasPrefix(lower, "dockerfile.") {
		return dockerfileKey
	}

	ext := strings.ToLower(filepath.Ext(base))
	if strings.HasPrefix(base, ".") && ext == lower {
		// A dotfile like ".bashrc" is all extension to filepath.Ext; treat
		// the whole name as the key.
		return lower
	}
	return ext
}

// 🏭 ForFile returns the strategy for a file name, or nil when the type is
// unsupported (unknown key, or a known key with an empty template — some
// types have no comment form that stays invisible in their rendered output).
func ForFile(name string, cfg *config.Config) Strategy {
	key := KeyFor(name)

	style, ok := cfg.StyleFor(key)
	if !ok || style == "" {
		return nil
	}

	base := baseStrategy{style: style}

	switch {
	case pythonExts[key]:
		return PythonStrategy{ShebangStrategy{base}}
	case phpExts[key]:
		return PhpStrategy{ShebangStrategy{base}}
	case frontmatterExts[key]:
		return FrontmatterStrategy{base}
	case declarationExts[key]:
		return DeclarationStrategy{base}
	case key == dockerfileKey:
		return DockerfileStrategy{ShebangStrategy{base}}
	}

	// Everything else supported gets the shebang-aware default. The shebang
	// check is harmless for non-script types.
	return ShebangStrategy{base}
}
