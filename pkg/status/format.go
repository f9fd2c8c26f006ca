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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for filename
	statusWidth = 12 // Width for status text
)

// FileFormatter defines how per-file outcomes are formatted for the console
type FileFormatter interface {
	// FormatFileOperation formats one file's outcome line
	FormatFileOperation(info FileInfo) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats one file's outcome line with a colored symbol
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	var prefix string
	switch info.Status {
	case StatusAdded:
		prefix = color.GreenString("✓")
	case StatusUpdated:
		prefix = color.YellowString("⟳")
	case StatusRemoved:
		prefix = color.RedString("✗")
	case StatusMissing, StatusIncorrect:
		prefix = color.YellowString("!")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, info.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, info.Status.String())

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
	)
	if info.Reason != "" {
		line += color.HiBlackString("(%s)", info.Reason)
	}
	if info.Err != nil {
		line += " " + f.FormatError(info.Err)
	}
	return line
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
