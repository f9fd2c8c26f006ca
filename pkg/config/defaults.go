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

// 🏭 Default returns the built-in configuration. The style table keys are
// lowercase extensions, the fixed ".dockerfile" key, or full dotfile names.
func Default() *Config {
	return &Config{
		Styles: map[string]string{
			// Scripting / config
			".py":         "# File: {}",
			".pyi":        "# File: {}",
			".pyw":        "# File: {}",
			".pyx":        "# File: {}",
			".yaml":       "# File: {}",
			".yml":        "# File: {}",
			".sh":         "# File: {}",
			".bash":       "# File: {}",
			".zsh":        "# File: {}",
			".toml":       "# File: {}",
			".tf":         "# File: {}",
			".dockerfile": "# File: {}",
			".rb":         "# File: {}",
			".pl":         "# File: {}",
			".conf":       "# File: {}",
			".properties": "# File: {}",
			".env":        "# File: {}",
			".bashrc":     "# File: {}",
			".zshrc":      "# File: {}",
			".gitignore":  "# File: {}",
			".ini":        "; File: {}",
			// Database
			".sql": "-- File: {}",
			// Web / JS
			".js":   "// File: {}",
			".ts":   "// File: {}",
			".jsx":  "// File: {}",
			".tsx":  "// File: {}",
			".css":  "/* File: {} */",
			".scss": "/* File: {} */",
			".less": "/* File: {} */",
			// Compiled / systems
			".java":  "// File: {}",
			".kt":    "// File: {}",
			".rs":    "// File: {}",
			".go":    "// File: {}",
			".c":     "// File: {}",
			".cpp":   "// File: {}",
			".h":     "// File: {}",
			".hpp":   "// File: {}",
			".cs":    "// File: {}",
			".swift": "// File: {}",
			".php":   "// File: {}",
			".phtml": "// File: {}",
			// Markup (HTML comments are invisible in rendered output)
			".html":     "<!-- File: {} -->",
			".htm":      "<!-- File: {} -->",
			".xhtml":    "<!-- File: {} -->",
			".xml":      "<!-- File: {} -->",
			".vue":      "<!-- File: {} -->",
			".svelte":   "<!-- File: {} -->",
			".jsp":      "<!-- File: {} -->",
			".aspx":     "<!-- File: {} -->",
			".cshtml":   "<!-- File: {} -->",
			".md":       "<!-- File: {} -->",
			".markdown": "<!-- File: {} -->",
			".astro":    "<!-- File: {} -->",
		},
		Exclude: []string{
			"package.json",
			"package-lock.json",
			"yarn.lock",
			"pnpm-lock.yaml",
			"go.sum",
			"Cargo.lock",
			"poetry.lock",
			"Gemfile.lock",
			"composer.lock",
			".DS_Store",
			"LICENSE",
		},
		MaxFileSize: MaxFileSizeBytes,
	}
}
