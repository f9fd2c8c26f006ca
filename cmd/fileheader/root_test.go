package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fileheader/pkg/operation"
	"github.com/walteh/fileheader/pkg/status"
)

func trackedManager(t *testing.T, statuses ...status.FileStatus) *status.Manager {
	t.Helper()

	logger := zerolog.Nop()
	m := status.NewManager(&logger, nil)
	ctx := context.Background()
	for i, st := range statuses {
		m.TrackFile(ctx, status.FileInfo{Path: fmt.Sprintf("f%d.py", i), Status: st})
	}
	return m
}

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name     string
		mode     operation.Mode
		statuses []status.FileStatus
		want     string
	}{
		{
			name: "check_counts_missing_and_incorrect",
			mode: operation.ModeCheck,
			statuses: []status.FileStatus{
				status.StatusMissing, status.StatusIncorrect,
				status.StatusMissing, status.StatusOK,
			},
			want: "3 files have missing/incorrect headers. Run with --fix.",
		},
		{
			name: "fix_counts_added_and_updated",
			mode: operation.ModeFix,
			statuses: []status.FileStatus{
				status.StatusAdded, status.StatusUpdated, status.StatusOK,
			},
			want: "2 files were updated with headers.",
		},
		{
			name: "remove_counts_removed",
			mode: operation.ModeRemove,
			statuses: []status.FileStatus{
				status.StatusRemoved, status.StatusSkipped,
			},
			want: "1 files had headers removed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := trackedManager(t, tt.statuses...)
			assert.Equal(t, tt.want, summaryMessage(tt.mode, m))
		})
	}
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	require.NotNil(t, cmd.Flags().Lookup("fix"))
	require.NotNil(t, cmd.Flags().Lookup("remove"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	assert.Equal(t, ".fileheader.yaml", cmd.PersistentFlags().Lookup("config").DefValue)
}

func TestSetupLogging_DebugToggle(t *testing.T) {
	debug = true
	setupLogging()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.True(t, pterm.PrintDebugMessages)

	debug = false
	setupLogging()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.False(t, pterm.PrintDebugMessages)
}
