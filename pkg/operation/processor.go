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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/fileheader/pkg/header"
	"github.com/walteh/fileheader/pkg/log"
	"github.com/walteh/fileheader/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📄 processFile runs the whole pipeline for one file: guards, strategy
// lookup, read, classification, and the mode-specific action. The returned
// bool means "this file needed or received a change". Anything the tool is
// unsure about degrades to an untouched file, never an error: only a failed
// write-back surfaces as one.
func (o *operator) processFile(ctx context.Context, path string, mode Mode) (bool, error) {
	logger := zerolog.Ctx(ctx)

	base := filepath.Base(path)
	slashPath := strings.ReplaceAll(path, "\\", "/")

	// Exact-name exclusions run before any extension logic.
	if o.config.IsExcluded(base) {
		o.trackSkip(ctx, path, "excluded name")
		return false, nil
	}
	if o.config.IsIgnored(ctx, slashPath) {
		o.trackSkip(ctx, path, "ignored by pattern")
		return false, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		logger.Debug().Err(err).Str("file", path).Msg("stat failed")
		o.trackSkip(ctx, path, "stat failed")
		return false, nil
	}
	if fi.Size() > o.config.MaxFileSize {
		o.trackSkip(ctx, path, "file too large")
		return false, nil
	}

	strategy := header.ForFile(base, o.config)
	if strategy == nil {
		o.trackSkip(ctx, path, "unsupported file type")
		return false, nil
	}

	content, err := o.statusMgr.ReadFile(ctx, path)
	if err != nil {
		logger.Debug().Err(err).Str("file", path).Msg("read failed")
		o.trackSkip(ctx, path, "read failed")
		return false, nil
	}
	if !utf8.Valid(content) {
		o.trackSkip(ctx, path, "not valid UTF-8")
		return false, nil
	}

	lines := splitLines(string(content))
	if len(lines) == 0 {
		// Never insert into an empty file: no shebang to respect and, for
		// markup types, the banner could end up as the rendered document.
		o.trackSkip(ctx, path, "empty file")
		return false, nil
	}

	ins := strategy.InsertionIndex(lines)
	if ins.Skip {
		o.trackSkip(ctx, path, "no safe insertion point")
		return false, nil
	}

	// Force a trailing terminator before indexing so an inserted banner can
	// never merge with prior content.
	if !strings.HasSuffix(lines[len(lines)-1], "\n") {
		lines[len(lines)-1] += "\n"
	}

	idx := ins.Index
	if idx > len(lines) {
		idx = len(lines)
	}

	expected := strategy.ExpectedHeader(slashPath)

	st := status.StatusMissing
	if idx < len(lines) {
		current := lines[idx]
		if strings.TrimSpace(current) == strings.TrimSpace(expected) {
			st = status.StatusOK
		} else if strategy.IsHeaderLine(current) {
			st = status.StatusIncorrect
		}
	}

	switch mode {
	case ModeRemove:
		return o.removeHeader(ctx, path, lines, idx, st, fi.Mode())
	case ModeFix:
		return o.fixHeader(ctx, path, lines, idx, st, expected, fi.Mode())
	default:
		return o.reportHeader(ctx, path, st), nil
	}
}

// 🗑️ removeHeader deletes the banner line when one is present, exact or
// merely banner-shaped.
func (o *operator) removeHeader(ctx context.Context, path string, lines []string, idx int, st status.FileStatus, mode os.FileMode) (bool, error) {
	if st != status.StatusOK && st != status.StatusIncorrect {
		o.trackSkip(ctx, path, "no header to remove")
		return false, nil
	}

	lines = append(lines[:idx], lines[idx+1:]...)
	if err := o.writeBack(ctx, path, lines, mode); err != nil {
		return false, err
	}

	o.userLogger.LogHeaderChange(log.HeaderChange{Type: log.HeaderRemoved, Path: path})
	o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusRemoved})
	return true, nil
}

// 🔧 fixHeader rewrites a wrong banner in place, or inserts a fresh one.
func (o *operator) fixHeader(ctx context.Context, path string, lines []string, idx int, st status.FileStatus, expected string, mode os.FileMode) (bool, error) {
	switch st {
	case status.StatusOK:
		o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusOK})
		return false, nil

	case status.StatusIncorrect:
		lines[idx] = expected
		if err := o.writeBack(ctx, path, lines, mode); err != nil {
			return false, err
		}
		o.userLogger.LogHeaderChange(log.HeaderChange{Type: log.HeaderUpdated, Path: path})
		o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusUpdated})
		return true, nil

	default:
		lines = append(lines[:idx], append([]string{expected}, lines[idx:]...)...)
		if err := o.writeBack(ctx, path, lines, mode); err != nil {
			return false, err
		}
		o.userLogger.LogHeaderChange(log.HeaderChange{Type: log.HeaderAdded, Path: path})
		o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusAdded})
		return true, nil
	}
}

// 🔍 reportHeader is check mode: no writes, just the verdict. The returned
// bool means "requires action".
func (o *operator) reportHeader(ctx context.Context, path string, st status.FileStatus) bool {
	if st == status.StatusOK {
		o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusOK})
		return false
	}

	o.userLogger.LogHeaderChange(log.HeaderChange{
		Type:        log.HeaderMissing,
		Path:        path,
		Description: st.String(),
	})
	o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: st})
	return true
}

// 💾 writeBack flushes the mutated snapshot to storage atomically.
func (o *operator) writeBack(ctx context.Context, path string, lines []string, mode os.FileMode) error {
	content := strings.Join(lines, "")
	if err := o.statusMgr.WriteFileAtomic(ctx, path, []byte(content), mode.Perm()); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// trackSkip records a silently skipped file.
func (o *operator) trackSkip(ctx context.Context, path, reason string) {
	o.userLogger.LogHeaderChange(log.HeaderChange{
		Type:        log.FileSkipped,
		Path:        path,
		Description: reason,
	})
	o.statusMgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusSkipped, Reason: reason})
}

// ✂️ splitLines splits content into line-terminated segments, keeping each
// terminator with its line. A final segment without a terminator is kept;
// the trailing empty segment SplitAfter produces for terminated content is
// not.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
