package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/casematch/cmd/casematch/cmd/compare"
	"github.com/agentstation/casematch/cmd/casematch/cmd/feed"
	"github.com/agentstation/casematch/cmd/casematch/cmd/report"
	"github.com/agentstation/casematch/internal/cmd/completion"
	"github.com/agentstation/casematch/internal/cmd/constants"
	"github.com/agentstation/casematch/internal/cmd/output"
)

// NewReportCommand creates the report command with app dependencies.
func (a *App) NewReportCommand() *cobra.Command {
	return report.NewCommand(a)
}

// NewFeedCommand creates the feed command with app dependencies.
func (a *App) NewFeedCommand() *cobra.Command {
	return feed.NewCommand(a)
}

// NewCompareCommand creates the compare command with app dependencies.
func (a *App) NewCompareCommand() *cobra.Command {
	return compare.NewCommand(a)
}

// VersionInfo is the structured form of the version command output.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{
				Version: a.version,
				Commit:  a.commit,
				Date:    a.date,
				BuiltBy: a.builtBy,
			}

			w := cmd.OutOrStdout()

			// Plain text unless a structured format was asked for
			switch a.config.Format {
			case constants.FormatJSON, constants.FormatYAML:
				return output.NewFormatter(output.Format(a.config.Format)).Format(w, info)
			}

			fmt.Fprintf(w, "casematch %s\n", info.Version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
				fmt.Fprintf(w, "  built:    %s\n", info.Date)
				fmt.Fprintf(w, "  built by: %s\n", info.BuiltBy)
			}
			return nil
		},
	}
}

// NewCompletionCommand creates the completion command.
func (a *App) NewCompletionCommand() *cobra.Command {
	var install, uninstall bool

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for bash, zsh, fish or powershell.

  $ source <(casematch completion bash)
  $ casematch completion fish | source

With --install the script is written to the shell's per-user completion
directory instead; --uninstall removes it again.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: constants.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			w := cmd.OutOrStdout()

			switch {
			case install:
				path, err := completion.Install(cmd.Root(), shell)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s completions installed to %s\n", shell, path)
			case uninstall:
				path, removed, err := completion.Uninstall(cmd.Root().Name(), shell)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(w, "No %s completions found at %s\n", shell, path)
					return nil
				}
				fmt.Fprintf(w, "Removed %s completions from %s\n", shell, path)
			default:
				return completion.Write(cmd.Root(), shell, w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "install the script for the current user")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "remove an installed script")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall")

	return cmd
}
