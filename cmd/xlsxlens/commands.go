package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/config"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/validate"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract INPUT",
		Short: "Print the parsed sheet window as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := xlsxlens.Extract(args[0], app.opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			var data []byte
			if pretty {
				data, err = json.MarshalIndent(wb, "", "  ")
			} else {
				data, err = json.Marshal(wb)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(outputPath, data)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html INPUT",
		Short: "Render the first sheet as a styled HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertHTML(args[0], outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>.html, - for stdout)")
	return cmd
}

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image INPUT",
		Short: "Render the first sheet and capture it as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertImage(cmd.Context(), args[0], outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>.png)")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze INPUT",
		Short: "Send the sheet as image, records and CSV to the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyAnalysisFlags(); err != nil {
				return err
			}
			return analyze(cmd.Context(), args[0], outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>.txt)")
	addAnalysisFlags(cmd)
	return cmd
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch INPUT...",
		Short: "Convert several workbooks concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var job func(ctx context.Context, input string) error
			switch format {
			case "html":
				job = func(_ context.Context, input string) error { return convertHTML(input, "") }
			case "image":
				job = func(ctx context.Context, input string) error { return convertImage(ctx, input, "") }
			case "analyze":
				if err := applyAnalysisFlags(); err != nil {
					return err
				}
				job = func(ctx context.Context, input string) error { return analyze(ctx, input, "") }
			default:
				return fmt.Errorf("invalid format: %s (must be html, image, or analyze)", format)
			}

			n := workers
			if n <= 0 {
				n = app.cfg.Batch.Workers
			}
			results := xlsxlens.Batch(cmd.Context(), args, n, job)
			for _, r := range results {
				if r.Err != nil {
					app.log.Error("Conversion failed", zap.String("input", r.Input), zap.Error(r.Err))
				}
			}
			if failed := xlsxlens.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d conversions failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "html", "Output kind: html, image, analyze")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent conversions (default: from configuration)")
	addAnalysisFlags(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate ANALYSIS",
		Short: "Check gas prices and working interest values in an analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			passed := true
			for _, res := range validate.Run(string(data), validate.DefaultSeries()) {
				for _, c := range res.Checks {
					if !c.OK {
						app.log.Warn("Value out of tolerance", zap.String("series", res.Name), zap.Int("period", c.Index),
							zap.Float64("expected", c.Expected), zap.Float64("actual", c.Actual))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.String())
				passed = passed && res.Passed()
			}
			if !passed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
}

func newDumpConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dumpconfig [OUTPUT]",
		Short: "Print the effective configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Dump(app.cfg)
			if err != nil {
				return err
			}
			var out string
			if len(args) > 0 {
				out = args[0]
			}
			return writeOutput(out, data)
		},
	}
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noImage, "no-image", false, "Do not send the rendered image")
	cmd.Flags().BoolVar(&noCSV, "no-csv", false, "Do not send CSV data")
	cmd.Flags().BoolVar(&noRecords, "no-records", false, "Do not send record formatted data")
	cmd.Flags().StringVar(&model, "model", "", "Model name (default: from configuration)")
	cmd.Flags().StringVar(&promptFile, "prompt-file", "", "File with a custom system prompt")
}

func applyAnalysisFlags() error {
	if noImage {
		app.opts.Forms.Image = false
	}
	if noCSV {
		app.opts.Forms.CSV = false
	}
	if noRecords {
		app.opts.Forms.Records = false
	}
	if model != "" {
		app.opts.Model = model
	}
	if promptFile != "" {
		data, err := os.ReadFile(promptFile)
		if err != nil {
			return fmt.Errorf("failed to read prompt file: %w", err)
		}
		app.opts.SystemPrompt = string(data)
	}
	return nil
}

func convertHTML(input, out string) error {
	doc, err := xlsxlens.RenderHTML(input, app.opts)
	if err != nil {
		return err
	}
	if out == "" {
		out = xlsxlens.OutputName(input, ".html")
	}
	if err := writeOutput(out, []byte(doc)); err != nil {
		return err
	}
	if out != "-" {
		app.log.Info("Document saved", zap.String("path", out))
	}
	return nil
}

func convertImage(ctx context.Context, input, out string) error {
	if out == "" {
		out = xlsxlens.OutputName(input, ".png")
	}
	return xlsxlens.RenderImage(ctx, input, out, nil, app.opts)
}

func analyze(ctx context.Context, input, out string) error {
	if out == "" {
		out = xlsxlens.OutputName(input, ".txt")
	}
	_, err := xlsxlens.Analyze(ctx, input, out, nil, nil, app.opts)
	return err
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
