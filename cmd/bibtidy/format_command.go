package main

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bibtidy/internal/bibtex"
	"bibtidy/internal/format"
	"bibtidy/internal/logging"
	"bibtidy/internal/pipeline"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Reformat a bibliography and split it into valid and invalid entries",
		Long: `Reformat every entry of a BibTeX file, derive canonical ids, and drop
duplicate ids (the first occurrence wins). Entries whose fields all
normalized cleanly are written to the valid output file; entries needing a
manual fix go to the invalid one. Flagged fields carry a trailing ` + bibtex.FixMarker + `
marker in the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			records, err := bibtex.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Info("bibliography parsed",
				logging.String("file", args[0]),
				logging.Int("entries", len(records)),
			)

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another bibtidy run is writing to %s", cfg.Output.Directory)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			valid, err := os.Create(cfg.ValidPath())
			if err != nil {
				return fmt.Errorf("create valid output: %w", err)
			}
			defer valid.Close()

			invalid, err := os.Create(cfg.InvalidPath())
			if err != nil {
				return fmt.Errorf("create invalid output: %w", err)
			}
			defer invalid.Close()

			out := cmd.OutOrStdout()
			var reporter pipeline.Reporter
			if cfg.Report.Enabled {
				reporter = newConsoleReporter(out, resolveColorize(cfg.Report.Color, out))
			}

			formatter := format.New(ctx.venueMatcher(cfg))
			runner := pipeline.NewRunner(formatter, reporter, logger)
			summary, err := runner.Run(records, valid, invalid)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, renderSummaryTable(summary, cfg.ValidPath(), cfg.InvalidPath()))
			if err := valid.Close(); err != nil {
				return fmt.Errorf("close valid output: %w", err)
			}
			if err := invalid.Close(); err != nil {
				return fmt.Errorf("close invalid output: %w", err)
			}
			return nil
		},
	}

	return cmd
}
