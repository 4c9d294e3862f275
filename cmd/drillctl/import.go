package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/norsk-drill/internal/app"
	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/importer"
)

type importFlags struct {
	kind   string
	format string
	file   string
}

func newImportCmd(g *globals) *cobra.Command {
	var f importFlags
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import words from a text or CSV file",
		Long: "Reads --file (or stdin for \"-\") and stores every record through the\n" +
			"same duplicate-aware path as the admin API. The report is printed as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, format, err := f.resolve()
			if err != nil {
				return err
			}

			src, closeSrc, err := openSource(cmd.InOrStdin(), f.file)
			if err != nil {
				return err
			}
			defer closeSrc()

			e, err := g.loadEnv(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer e.Close()

			svc := app.NewServices(e.cfg, e.pool, e.logger)
			report, err := svc.Importer.Import(cmd.Context(), kind, format, src)
			if err != nil {
				e.logger.Error("import aborted",
					slog.Int("added", report.Added),
					slog.String("error", err.Error()),
				)
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", "", "word class: noun, verb, adjective or phrase")
	cmd.Flags().StringVar(&f.format, "format", "", "text or csv (default: from the file extension)")
	cmd.Flags().StringVar(&f.file, "file", "-", "file to read, - for stdin")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

// resolve validates the flags. Without --format a .csv extension selects
// CSV and anything else text.
func (f importFlags) resolve() (domain.Kind, importer.Format, error) {
	kind, err := domain.ParseKind(f.kind)
	if err != nil {
		return "", "", err
	}
	name := f.format
	if name == "" {
		name = string(importer.FormatText)
		if strings.EqualFold(filepath.Ext(f.file), ".csv") {
			name = string(importer.FormatCSV)
		}
	}
	format, err := importer.ParseFormat(name)
	if err != nil {
		return "", "", err
	}
	return kind, format, nil
}

func openSource(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open import file: %w", err)
	}
	return fh, func() { _ = fh.Close() }, nil
}
