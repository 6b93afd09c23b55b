package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jakefish18/wanikani-parser/internal/export"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

const stdoutOutput = "-"

type formatFlag export.Format

// Set implements pflag.Value.
func (f *formatFlag) Set(v string) error {
	format, err := export.ParseFormat(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v, export.FormatCSV, export.FormatYAML, export.FormatDeck)
	}
	*f = formatFlag(format)
	return nil
}

// String implements pflag.Value.
func (f *formatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *formatFlag) Type() string {
	return "format"
}

var (
	_ pflag.Value = (*formatFlag)(nil)
)

func newExportCommand() *cobra.Command {
	var (
		level       int
		formatValue = formatFlag(export.FormatCSV)
		withPDF     bool
		output      string
	)
	cmd := &cobra.Command{
		Use:       "export {radicals|kanji|vocabulary}",
		Short:     "Export stored subjects as CSV, YAML or a flashcard deck",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"radicals", "kanji", "vocabulary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := subject.ParseKind(args[0])
			if err != nil {
				return err
			}
			format := export.Format(formatValue)
			if withPDF && format != export.FormatDeck {
				return fmt.Errorf("--pdf requires --format %s", export.FormatDeck)
			}
			if withPDF && output == stdoutOutput {
				return fmt.Errorf("--pdf cannot be combined with --output %s", stdoutOutput)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx := cmd.Context()
			repos, err := openRepositories(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = repos.Close(ctx)
			}()

			exporter := export.NewExporter(repos.radicals, repos.kanji, repos.words, cfg.Export.Template, slog.Default())
			var buf bytes.Buffer
			count, err := exporter.Export(ctx, kind, level, format, &buf)
			if err != nil {
				return err
			}

			if output == stdoutOutput {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if output == "" {
				output = filepath.Join(cfg.Export.Directory, fmt.Sprintf("%s_level_%d%s", kind, level, format.Extension()))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s subjects to %s\n", count, kind, output)

			if withPDF {
				pdfPath := export.PDFPath(output)
				if err := export.RenderPDF(buf.Bytes(), pdfPath); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", pdfPath)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&level, "before-level", 60, "export subjects up to and including this level")
	flags.Var(&formatValue, "format", "output format: csv, yaml or deck")
	flags.BoolVar(&withPDF, "pdf", false, "also render the deck as PDF")
	flags.StringVar(&output, "output", "", "output file, - for stdout (default: export directory)")
	return cmd
}
