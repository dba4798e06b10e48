// Package completion generates and installs shell completion scripts.
package completion

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/casematch/internal/cmd/constants"
	pkgconstants "github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/errors"
)

// Write generates the completion script of root for shell.
func Write(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return unsupported(shell)
	}
}

// Install writes the completion script for shell to its per-user location
// and returns the written path.
func Install(root *cobra.Command, shell string) (string, error) {
	path, err := Path(root.Name(), shell)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), pkgconstants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(path), err)
	}

	file, err := os.Create(path) // #nosec G304 - path comes from Path which builds controlled locations
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	if err := Write(root, shell, file); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", errors.WrapIO("close", path, err)
	}
	return path, nil
}

// Uninstall removes the completion script Install would write. It reports
// whether a file was removed.
func Uninstall(name, shell string) (string, bool, error) {
	path, err := Path(name, shell)
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return path, false, nil
	}
	if err := os.Remove(path); err != nil {
		return path, false, errors.WrapIO("remove", path, err)
	}
	return path, true, nil
}

// Path returns where the completion script of program name lives for shell.
// HOMEBREW_PREFIX wins when set; otherwise the user's home directory is used.
func Path(name, shell string) (string, error) {
	if prefix := os.Getenv("HOMEBREW_PREFIX"); prefix != "" {
		switch shell {
		case constants.ShellBash:
			return filepath.Join(prefix, "etc", "bash_completion.d", name), nil
		case constants.ShellZsh:
			return filepath.Join(prefix, "share", "zsh", "site-functions", "_"+name), nil
		case constants.ShellFish:
			return filepath.Join(prefix, "share", "fish", "vendor_completions.d", name+".fish"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapIO("resolve", "home directory", err)
	}
	switch shell {
	case constants.ShellBash:
		return filepath.Join(home, ".bash_completion.d", name), nil
	case constants.ShellZsh:
		return filepath.Join(home, ".zsh", "completions", "_"+name), nil
	case constants.ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", name+".fish"), nil
	default:
		// PowerShell has no completion directory; scripts are sourced from the profile
		return "", unsupported(shell)
	}
}

func unsupported(shell string) error {
	return errors.NewValidationError("shell", shell, "must be one of bash, zsh, fish, powershell")
}
