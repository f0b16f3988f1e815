package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Milover/isbnref/internal/config"
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/logger"
	"github.com/Milover/isbnref/internal/metainfo"
	"github.com/Milover/isbnref/internal/numdb"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// cfg holds the configuration, environment first, then flags.
	cfg = config.FromEnv()

	// outputFormat is the result output format.
	outputFormat output.Format

	// flushLog flushes the logger set up by setup.
	flushLog = func() {}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isbnref [options...] <command>",
	Short: "Validate, convert and split ISBNs.",
	Long: `Validate, convert and split International Standard Book Numbers.

Numbers are read from the arguments, or from standard input, one per line,
when no arguments are given.`,
	Version:           metainfo.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLog()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&cfg.RangesFile, "ranges", cfg.RangesFile, "ISBN range database file (default: embedded)")
	pf.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "number of inputs processed concurrently")
	pf.VarP(&outputFormat, "output", "o", "output format (text, json, csv)")
}

// setup configures logging and loads the range database.
func setup(cmd *cobra.Command, args []string) error {
	done, err := logger.Setup(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	flushLog = done

	if len(cfg.RangesFile) == 0 {
		isbn.SetRanges(nil)
		return nil
	}
	db, err := numdb.Read(cfg.RangesFile)
	if err != nil {
		return err
	}
	isbn.SetRanges(db)
	zap.S().Debugw("loaded range database", "file", cfg.RangesFile)
	return nil
}
