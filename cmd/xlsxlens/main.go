// Package main provides the CLI entry point for xlsxlens-go.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/config"
)

var (
	configPath string
	debug      bool
	outputPath string
	pretty     bool
	workers    int
	format     string
	noImage    bool
	noCSV      bool
	noRecords  bool
	model      string
	promptFile string
)

// env is the state shared by all commands once the configuration is loaded.
type env struct {
	cfg  *config.Config
	log  *zap.Logger
	opts xlsxlens.Options
}

var app env

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if app.log != nil {
			app.log.Error("Command failed", zap.Error(err))
			_ = app.log.Sync()
		}
		os.Exit(1)
	}
	if app.log != nil {
		_ = app.log.Sync()
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxlens",
		Short: "Render Excel sheets as styled tables and analyze them with an LLM",
		Long: `xlsxlens-go converts the first sheet of an Excel workbook into a styled HTML
table, a screenshot of that table, CSV and record text, and sends them to a
multimodal model for analysis.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug messages to the console")

	rootCmd.AddCommand(
		newExtractCmd(),
		newHTMLCmd(),
		newImageCmd(),
		newAnalyzeCmd(),
		newBatchCmd(),
		newValidateCmd(),
		newDumpConfigCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfiguration(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return err
	}
	app = env{cfg: cfg, log: log, opts: xlsxlens.NewOptions(cfg, log)}
	// errors are logged by main
	cmd.SilenceErrors = true
	return nil
}
