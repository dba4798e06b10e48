// Package report provides the report command: load a report, normalize its
// identifiers, mark duplicates and show the qualifying rows.
package report

import (
	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/casematch/cmd/casematch/context"
	"github.com/agentstation/casematch/internal/cmd/cmdutil"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/identifier"
	"github.com/agentstation/casematch/pkg/logging"
)

// NewCommand creates the report command with app dependencies.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report <file>",
		GroupID: "core",
		Short:   "Load and clean a report",
		Long: `Report loads a report (.xlsx, .xls or .csv), rewrites every identifier cell to
its canonical "n1, n2" form, marks rows sharing an identifier as duplicates
and drops rows without an identifier or without any auxiliary number.

Rows are shown ordered by their first identifier number.`,
		Example: `  casematch report cases.xlsx                      # Show the cleaned report
  casematch report cases.csv -o json               # Machine readable output
  casematch report cases.xlsx --export             # Also write cases_exported.xlsx
  casematch report cases.xlsx --export=clean.csv   # Write to a chosen file`,
		Args: cobra.ExactArgs(1),
	}
	export := cmdutil.AddExportFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := appCtx.Logger()
		ctx := logging.WithLogger(cmd.Context(), logger)
		opts := appCtx.SheetOptions()

		raw, err := sheets.Load(ctx, args[0], opts...)
		if err != nil {
			return err
		}

		s, err := appCtx.Session()
		if err != nil {
			return err
		}
		report, err := s.LoadReport(ctx, raw)
		if err != nil {
			return err
		}

		view := identifier.SortByLeadingToken(report, s.Layout().IdentifierColumn)
		if err := cmdutil.Render(cmd.OutOrStdout(), view, appCtx.OutputFormat()); err != nil {
			return err
		}

		if path, err := export.Export(ctx, view, opts...); err != nil {
			return err
		} else if path != "" {
			logger.Info().Str("file", path).Msg("Report exported")
		}
		return nil
	}

	return cmd
}
