// Package feed provides the feed command: load a status feed and show the
// baseline the comparisons run against.
package feed

import (
	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/casematch/cmd/casematch/context"
	"github.com/agentstation/casematch/internal/cmd/cmdutil"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/logging"
)

// NewCommand creates the feed command with app dependencies.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feed <file>",
		GroupID: "core",
		Short:   "Load a status feed and show its baseline",
		Long: `Feed loads a status feed (.xlsx, .xls or .csv), keeps the configured columns
(by default A, G, O and AL) and drops rows whose identifier is not a number.
The result is the baseline used by compare.`,
		Example: `  casematch feed statuses.xlsx              # Show the baseline
  casematch feed statuses.csv -o yaml       # Machine readable output
  casematch feed statuses.xlsx --export     # Also write statuses_exported.xlsx`,
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
		baseline, err := s.LoadStatusFeed(ctx, raw)
		if err != nil {
			return err
		}

		view := baseline.SortByColumn(s.Layout().IdentifierColumn)
		if err := cmdutil.Render(cmd.OutOrStdout(), view, appCtx.OutputFormat()); err != nil {
			return err
		}

		if path, err := export.Export(ctx, view, opts...); err != nil {
			return err
		} else if path != "" {
			logger.Info().Str("file", path).Msg("Baseline exported")
		}
		return nil
	}

	return cmd
}
