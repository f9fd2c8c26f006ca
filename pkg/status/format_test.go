package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter_FormatFileOperation(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name string
		info FileInfo
		want []string
	}{
		{
			name: "added",
			info: FileInfo{Path: "a.py", Status: StatusAdded},
			want: []string{"a.py", "added"},
		},
		{
			name: "updated",
			info: FileInfo{Path: "b.py", Status: StatusUpdated},
			want: []string{"b.py", "updated"},
		},
		{
			name: "skipped_with_reason",
			info: FileInfo{Path: "c.bin", Status: StatusSkipped, Reason: "unsupported file type"},
			want: []string{"c.bin", "skipped", "unsupported file type"},
		},
		{
			name: "missing",
			info: FileInfo{Path: "d.py", Status: StatusMissing},
			want: []string{"d.py", "missing"},
		},
		{
			name: "skipped_with_error",
			info: FileInfo{Path: "e.py", Status: StatusSkipped, Reason: "error", Err: errors.New("disk full")},
			want: []string{"e.py", "skipped", "error", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatFileOperation(tt.info)
			for _, fragment := range tt.want {
				assert.Contains(t, got, fragment)
			}
		})
	}
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "", f.FormatError(nil))
	assert.Contains(t, f.FormatError(errors.New("boom")), "boom")
}
