package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fileheader/pkg/config"
	"github.com/walteh/fileheader/pkg/log"
	"github.com/walteh/fileheader/pkg/operation"
	"github.com/walteh/fileheader/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	fixMode    bool
	removeMode bool
)

// errFilesImpacted signals a clean run in which files needed or received
// changes, mapped to a non-zero exit status for hooks and CI.
var errFilesImpacted = errors.New("files impacted")

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fileheader [files...]",
		Short: "Check and enforce path banner comments in source files",
		Long: `fileheader keeps a single-line path banner (e.g. "// File: pkg/foo/bar.go")
at the top of source files so that every file self-documents its location.

Given a list of files (typically from a pre-commit hook), it:
1. Picks the comment style and insertion point per file type
2. Skips files it cannot touch safely (shebangs, declarations, frontmatter
   and open tags are respected; ambiguous files are left alone)
3. Reports, fixes, or removes banners depending on the mode`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runRoot,
	}

	addRootFlags(cmd)
	return cmd
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&fixMode, "fix", false, "automatically add or update headers")
	cmd.Flags().BoolVar(&removeMode, "remove", false, "remove path headers from files")
	cmd.MarkFlagsMutuallyExclusive("fix", "remove")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".fileheader.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog and pterm based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		pterm.EnableDebugMessages()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		pterm.DisableDebugMessages()
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// runRoot executes the selected mode over the positional file arguments
func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	userLogger := log.NewUserLogger(ctx)

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	statusMgr := status.NewManager(zerolog.Ctx(ctx), status.NewDefaultFileFormatter())

	op, err := operation.New(operation.Options{
		Config:     cfg,
		StatusMgr:  statusMgr,
		UserLogger: userLogger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	// No files is a successful no-op.
	if len(args) == 0 {
		return nil
	}

	mode := operation.ModeCheck
	switch {
	case fixMode:
		mode = operation.ModeFix
	case removeMode:
		mode = operation.ModeRemove
	}

	var impacted int
	switch mode {
	case operation.ModeFix:
		impacted, err = op.Fix(ctx, args)
	case operation.ModeRemove:
		impacted, err = op.Remove(ctx, args)
	default:
		impacted, err = op.Check(ctx, args)
	}
	if err != nil {
		return errors.Errorf("processing files: %w", err)
	}

	statusMgr.PrintReport(ctx, cmd.OutOrStdout())

	if impacted > 0 {
		userLogger.LogSummary(summaryMessage(mode, statusMgr))
		return errFilesImpacted
	}

	return nil
}

// summaryMessage builds the end-of-run summary line from the tracked counts
func summaryMessage(mode operation.Mode, st *status.Manager) string {
	switch mode {
	case operation.ModeFix:
		n := st.Count(status.StatusAdded) + st.Count(status.StatusUpdated)
		return fmt.Sprintf("%d files were updated with headers.", n)
	case operation.ModeRemove:
		return fmt.Sprintf("%d files had headers removed.", st.Count(status.StatusRemoved))
	default:
		n := st.Count(status.StatusMissing) + st.Count(status.StatusIncorrect)
		return fmt.Sprintf("%d files have missing/incorrect headers. Run with --fix.", n)
	}
}
