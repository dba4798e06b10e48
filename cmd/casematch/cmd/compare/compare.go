// Package compare provides the compare command: reconcile a report against a
// status feed baseline.
package compare

import (
	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/casematch/cmd/casematch/context"
	"github.com/agentstation/casematch/internal/cmd/cmdutil"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/logging"
	"github.com/agentstation/casematch/pkg/reconciler"
)

// Flags holds the compare command inputs.
type Flags struct {
	Report string
	Feed   string
	Mode   string
}

// NewCommand creates the compare command with app dependencies.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "compare",
		GroupID: "core",
		Short:   "Reconcile a report against a status feed",
		Long: `Compare loads a report and a status feed and derives one of two views
from the feed baseline:

  unmatched-active   active contracts whose identifier the report never mentions
  matched-inactive   contracts the report mentions that are no longer active

Both views are computed from the untouched baseline, so running one never
changes the other. Without --report every active row is unmatched and no
row is matched.`,
		Example: `  casematch compare --report cases.xlsx --feed statuses.xlsx
  casematch compare --report cases.xlsx --feed statuses.xlsx --mode matched-inactive
  casematch compare --report cases.xlsx --feed statuses.xlsx --export=gone.xlsx`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&flags.Report, "report", "r", "", "Report file (.xlsx, .xls or .csv)")
	cmd.Flags().StringVarP(&flags.Feed, "feed", "f", "", "Status feed file (.xlsx, .xls or .csv)")
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", string(reconciler.ModeUnmatchedActive),
		"View to derive: unmatched-active or matched-inactive")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range reconciler.Modes() {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	export := cmdutil.AddExportFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, appCtx, flags, export)
	}

	return cmd
}

func run(cmd *cobra.Command, appCtx appcontext.Context, flags *Flags, export *cmdutil.ExportFlags) error {
	mode, err := reconciler.ParseMode(flags.Mode)
	if err != nil {
		return err
	}

	logger := appCtx.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)
	opts := appCtx.SheetOptions()

	loaded, err := sheets.LoadAll(ctx, []string{flags.Report, flags.Feed}, opts...)
	if err != nil {
		return err
	}

	s, err := appCtx.Session()
	if err != nil {
		return err
	}
	if raw := loaded[0]; raw != nil {
		if _, err := s.LoadReport(ctx, raw); err != nil {
			return err
		}
	}
	if raw := loaded[1]; raw != nil {
		if _, err := s.LoadStatusFeed(ctx, raw); err != nil {
			return err
		}
	}

	result, err := s.Reconcile(ctx, mode)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("run_id", result.Metadata.RunID.String()).
		Dur("duration", result.Metadata.Duration).
		Msg("Comparison finished")

	view := result.Dataset.SortByColumn(s.Layout().IdentifierColumn)
	if err := cmdutil.Render(cmd.OutOrStdout(), view, appCtx.OutputFormat()); err != nil {
		return err
	}

	if path, err := export.Export(ctx, view, opts...); err != nil {
		return err
	} else if path != "" {
		logger.Info().Str("file", path).Msg("Comparison exported")
	}
	return nil
}
