package status

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestManager() *Manager {
	logger := zerolog.Nop()
	return NewManager(&logger, nil)
}

func TestFileStatus_String(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusOK, "ok"},
		{StatusMissing, "missing"},
		{StatusIncorrect, "incorrect"},
		{StatusAdded, "added"},
		{StatusUpdated, "updated"},
		{StatusRemoved, "removed"},
		{StatusSkipped, "skipped"},
		{StatusUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestManager_TrackAndList(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.TrackFile(ctx, FileInfo{Path: "a.py", Status: StatusAdded})
	m.TrackFile(ctx, FileInfo{Path: "b.py", Status: StatusOK})
	m.TrackFile(ctx, FileInfo{Path: "c.py", Status: StatusSkipped, Reason: "unsupported file type"})

	files := m.ListFiles(ctx)
	require.Len(t, files, 3)

	// Processing order is preserved.
	assert.Equal(t, "a.py", files[0].Path)
	assert.Equal(t, "b.py", files[1].Path)
	assert.Equal(t, "c.py", files[2].Path)

	assert.Equal(t, 1, m.Count(StatusAdded))
	assert.Equal(t, 1, m.Count(StatusOK))
	assert.Equal(t, 1, m.Count(StatusSkipped))
	assert.Equal(t, 0, m.Count(StatusRemoved))
}

func TestManager_TrackFileOverwrites(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.TrackFile(ctx, FileInfo{Path: "a.py", Status: StatusMissing})
	m.TrackFile(ctx, FileInfo{Path: "a.py", Status: StatusAdded})

	files := m.ListFiles(ctx)
	require.Len(t, files, 1)
	assert.Equal(t, StatusAdded, files[0].Status)
}

func TestManager_PrintReport(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.TrackFile(ctx, FileInfo{Path: "a.py", Status: StatusAdded})
	m.TrackFile(ctx, FileInfo{Path: "b.bin", Status: StatusSkipped, Reason: "not valid UTF-8"})
	m.TrackFile(ctx, FileInfo{Path: "c.py", Status: StatusSkipped, Reason: "error", Err: errors.New("disk full")})

	var buf bytes.Buffer
	m.PrintReport(ctx, &buf)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "\n"), "one line per tracked file")
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, "added")
	assert.Contains(t, out, "not valid UTF-8")
	assert.Contains(t, out, "disk full")

	// Order follows processing order.
	assert.Less(t, strings.Index(out, "a.py"), strings.Index(out, "b.bin"))
	assert.Less(t, strings.Index(out, "b.bin"), strings.Index(out, "c.py"))
}

func TestManager_WriteFileAtomic(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "out.txt")
	require.NoError(t, m.WriteFileAtomic(ctx, path, []byte("hello\n"), 0644))

	got, err := m.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	// Overwrite keeps working.
	require.NoError(t, m.WriteFileAtomic(ctx, path, []byte("bye\n"), 0644))
	got, err = m.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "bye\n", string(got))
}

func TestManager_ReadFileMissing(t *testing.T) {
	m := newTestManager()

	_, err := m.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}
