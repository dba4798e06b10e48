package completion

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/casematch/internal/cmd/constants"
	"github.com/agentstation/casematch/pkg/errors"
)

func root() *cobra.Command {
	cmd := &cobra.Command{Use: "casematch"}
	cmd.AddCommand(&cobra.Command{Use: "compare", Run: func(*cobra.Command, []string) {}})
	return cmd
}

func TestWrite(t *testing.T) {
	for _, shell := range constants.Shells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(root(), shell, &buf))
			assert.Contains(t, buf.String(), "casematch")
		})
	}

	err := Write(root(), "tcsh", &bytes.Buffer{})
	assert.True(t, errors.IsValidationError(err))
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HOMEBREW_PREFIX", "")

	path, err := Path("casematch", constants.ShellZsh)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zsh", "completions", "_casematch"), path)

	t.Setenv("HOMEBREW_PREFIX", "/opt/homebrew")
	path, err = Path("casematch", constants.ShellFish)
	require.NoError(t, err)
	assert.Equal(t, "/opt/homebrew/share/fish/vendor_completions.d/casematch.fish", path)

	_, err = Path("casematch", constants.ShellPowerShell)
	assert.Error(t, err)
}

func TestInstallUninstall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOMEBREW_PREFIX", "")

	path, err := Install(root(), constants.ShellBash)
	require.NoError(t, err)
	assert.FileExists(t, path)

	removed, ok, err := Uninstall("casematch", constants.ShellBash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, path, removed)
	assert.NoFileExists(t, path)

	_, ok, err = Uninstall("casematch", constants.ShellBash)
	require.NoError(t, err)
	assert.False(t, ok)
}
