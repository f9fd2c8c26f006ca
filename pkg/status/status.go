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
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the banner state of a processed file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusOK                   // Banner present and correct
	StatusMissing              // No banner at the insertion point
	StatusIncorrect            // A banner-shaped line with the wrong content
	StatusAdded                // Banner inserted (fix mode)
	StatusUpdated              // Banner rewritten (fix mode)
	StatusRemoved              // Banner stripped (remove mode)
	StatusSkipped              // File left untouched (unsupported, excluded, unsafe, unreadable, failed)
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusIncorrect:
		return "incorrect"
	case StatusAdded:
		return "added"
	case StatusUpdated:
		return "updated"
	case StatusRemoved:
		return "removed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 FileInfo records the outcome for one file
type FileInfo struct {
	Path   string     // Path as given by the caller
	Status FileStatus // Outcome of processing
	Reason string     // Why the file was skipped or flagged, when relevant
	Err    error      // The failure that left the file untouched, when one occurred
}

// 🔧 Manager tracks per-file outcomes and performs the write-backs. All file
// IO for fix/remove goes through WriteFileAtomic so a crash mid-write never
// leaves a truncated source file behind.
type Manager struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo
	order []string
}

// 🏭 NewManager creates a new status manager
func NewManager(logger *zerolog.Logger, formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		logger:    logger,
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 📈 TrackFile records the outcome for a file
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.files[info.Path]; !seen {
		m.order = append(m.order, info.Path)
	}
	m.files[info.Path] = info

	m.logger.Debug().
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Str("reason", info.Reason).
		Msg("tracked file")
}

// 📋 ListFiles returns the tracked outcomes in processing order
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.order))
	for _, path := range m.order {
		files = append(files, m.files[path])
	}
	return files
}

// 🖨️ PrintReport writes one formatted line per tracked file to w, in
// processing order
func (m *Manager) PrintReport(ctx context.Context, w io.Writer) {
	for _, info := range m.ListFiles(ctx) {
		fmt.Fprintln(w, m.formatter.FormatFileOperation(info))
	}
}

// 🔢 Count returns how many tracked files carry the given status
func (m *Manager) Count(status FileStatus) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, info := range m.files {
		if info.Status == status {
			n++
		}
	}
	return n
}

// 📖 ReadFile reads a file's full content
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// 💾 WriteFileAtomic writes content via a temp file and rename in the
// target's directory, preserving the given mode.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
