// Package export renders clusters as CSV, JSON, a text tree or a SQLite
// database.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/thar/internal/cluster"
	"github.com/standardbeagle/thar/internal/display"
	tharerrors "github.com/standardbeagle/thar/internal/errors"
	"github.com/standardbeagle/thar/internal/taxonomy"
)

// Format names an export format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatCSV), string(FormatJSON), string(FormatText), string(FormatSQLite)}
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatJSON, FormatText, FormatSQLite:
		return f, nil
	case "":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unknown export format %q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// Options describes one export.
type Options struct {
	Format    Format
	Output    string // file path; empty means the stdout writer passed to Save
	Threshold float64
	Taxonomy  *taxonomy.Taxonomy
	Display   display.FormatterOptions
}

// Write renders clusters to w. SQLite needs a file and is rejected here.
func Write(w io.Writer, opts Options, clusters []cluster.Cluster) error {
	switch opts.Format {
	case FormatCSV, "":
		return WriteCSV(w, clusters)
	case FormatJSON:
		return WriteJSON(w, clusters, opts.Threshold)
	case FormatText:
		_, err := io.WriteString(w, display.NewTreeFormatter(opts.Display).Format(clusters)+"\n")
		return err
	case FormatSQLite:
		return fmt.Errorf("sqlite export needs an output file")
	}
	return fmt.Errorf("unknown export format %q", opts.Format)
}

// Save writes clusters to opts.Output, or to stdout when no output is set.
func Save(ctx context.Context, opts Options, clusters []cluster.Cluster, stdout io.Writer) error {
	if opts.Format == FormatSQLite {
		if opts.Output == "" {
			return tharerrors.NewExportError(string(opts.Format), "", fmt.Errorf("an output file is required"))
		}
		if err := SQLite(ctx, opts.Output, clusters, opts.Taxonomy); err != nil {
			return tharerrors.NewExportError(string(opts.Format), opts.Output, err)
		}
		return nil
	}

	if opts.Output == "" {
		if err := Write(stdout, opts, clusters); err != nil {
			return tharerrors.NewExportError(string(opts.Format), "", err)
		}
		return nil
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return tharerrors.NewExportError(string(opts.Format), opts.Output, err)
	}
	if err := Write(f, opts, clusters); err != nil {
		f.Close()
		return tharerrors.NewExportError(string(opts.Format), opts.Output, err)
	}
	if err := f.Close(); err != nil {
		return tharerrors.NewExportError(string(opts.Format), opts.Output, err)
	}
	return nil
}
