// Package cmdutil provides shared flags and rendering helpers for casematch commands.
package cmdutil

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/casematch/internal/cmd/output"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/dataset"
)

// defaultExport marks --export given without a value.
const defaultExport = "-"

// ExportFlags holds the export flag of commands that produce a dataset.
type ExportFlags struct {
	Path string
}

// AddExportFlags adds --export to a command. Without a value the file is
// named after the source: report.xlsx exports to report_exported.xlsx.
func AddExportFlags(cmd *cobra.Command) *ExportFlags {
	flags := &ExportFlags{}
	cmd.Flags().StringVar(&flags.Path, "export", "",
		"Write the displayed rows to a file (.xlsx or .csv)")
	cmd.Flags().Lookup("export").NoOptDefVal = defaultExport
	return flags
}

// Requested reports whether --export was given.
func (f *ExportFlags) Requested() bool {
	return f.Path != ""
}

// Export writes ds when --export was given and returns the written path.
func (f *ExportFlags) Export(ctx context.Context, ds *dataset.Dataset, opts ...sheets.Option) (string, error) {
	if !f.Requested() {
		return "", nil
	}
	path := f.Path
	if path == defaultExport {
		path = ""
	}
	return sheets.Export(ctx, ds, path, opts...)
}

// Render writes ds to w in the given output format. An empty format picks a
// table for terminals and JSON for pipes.
func Render(w io.Writer, ds *dataset.Dataset, format string) error {
	f, err := output.ParseFormat(string(output.DetectFormat(format)))
	if err != nil {
		return err
	}
	return output.FormatDataset(w, ds, f)
}
