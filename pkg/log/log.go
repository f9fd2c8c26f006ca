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

package log

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about header changes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 HeaderChangeType represents what happened to a file's banner
type HeaderChangeType int

const (
	HeaderAdded HeaderChangeType = iota
	HeaderUpdated
	HeaderRemoved
	HeaderMissing
	FileSkipped
	FileError
)

// 🖼️ HeaderChange represents a change to one file's banner
type HeaderChange struct {
	Type        HeaderChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogHeaderChange logs a header change with appropriate prefix and level
func (u *UserLogger) LogHeaderChange(change HeaderChange) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case HeaderAdded:
		action = "Added header"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case HeaderUpdated:
		action = "Updated header"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
	case HeaderRemoved:
		action = "Removed header"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🗑️"})
	case HeaderMissing:
		action = "Missing or incorrect header"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"})
	case FileSkipped:
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case FileError:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s: %s", action, change.Path)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	switch {
	case change.Error != nil:
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg) // Also log to zerolog for debugging
	case change.Type == FileSkipped:
		// Skips stay silent unless debug output is enabled.
		printer.Println(msg)
		u.log.Debug().Msg(msg)
	default:
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogSummary logs the end-of-run summary line
func (u *UserLogger) LogSummary(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
