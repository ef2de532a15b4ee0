package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/punter/pkg/config"
	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/testutil"
)

// execute runs the root command with args and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSyncListsDirectEntries(t *testing.T) {
	base := testutil.TempTree(t, testutil.FileTree{
		"punter.toml": "[files]\nvimrc = \".vimrc\"\n",
		"vimrc":       "set nu\n",
		"zshrc":       "",
	})
	home := t.TempDir()

	out, _, err := execute(t, "-p", base, "--format", "text", "sync", "--dest", home)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.ElementsMatch(t, []string{
		filepath.Join(base, "punter.toml"),
		filepath.Join(base, "vimrc"),
		filepath.Join(base, "zshrc"),
	}, lines[:3])
	assert.Equal(t, "sync: 3 action(s) executed", lines[3])
}

func TestSyncUsesConfigFileDirectories(t *testing.T) {
	base := testutil.TempTree(t, testutil.FileTree{
		"dots":        testutil.FileTree{"gitconfig": ""},
		"home":        testutil.FileTree{},
		"punter.toml": "[sync]\nsrc = \"dots\"\ndest = \"home\"\n",
	})

	out, _, err := execute(t, "--path", base, "--format", "text", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(base, "dots", "gitconfig"))
	assert.NotContains(t, out, "punter.toml")
}

func TestSyncFlagsOverrideConfigFile(t *testing.T) {
	base := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "only-here"), "")
	writeFile(t, filepath.Join(base, "punter.toml"), "[sync]\nsrc = \"missing\"\ndest = \"missing\"\n")

	out, _, err := execute(t, "-p", base, "--format", "text", "sync", "-s", other, "-d", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(other, "only-here"))
}

func TestSyncJSONOutput(t *testing.T) {
	base := testutil.TempTree(t, testutil.FileTree{"bashrc": ""})

	out, _, err := execute(t, "-p", base, "--format", "json", "sync", "--dest", t.TempDir())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var entry struct {
		Entry struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "bashrc", entry.Entry.Name)
	assert.Equal(t, "file", entry.Entry.Kind)
	assert.JSONEq(t, `{"summary":{"command":"sync","executed":["Report file `+filepath.Join(base, "bashrc")+`"]}}`, lines[1])
}

func TestSyncErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		base := t.TempDir()
		out, _, err := execute(t, "-p", base, "sync", "--src", filepath.Join(base, "nope"), "--dest", t.TempDir())
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotDir))
		assert.Empty(t, out)
	})

	t.Run("destination is a file", func(t *testing.T) {
		base := t.TempDir()
		dest := filepath.Join(base, "file")
		writeFile(t, dest, "")
		_, _, err := execute(t, "-p", base, "sync", "--dest", dest)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDestNotDir))
	})

	t.Run("config path is a directory", func(t *testing.T) {
		base := t.TempDir()
		_, _, err := execute(t, "-p", base, "-c", base, "sync")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigPath))
	})

	t.Run("malformed config", func(t *testing.T) {
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "punter.toml"), "files = [")
		_, _, err := execute(t, "-p", base, "sync", "--dest", t.TempDir())
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("bad format", func(t *testing.T) {
		base := t.TempDir()
		_, _, err := execute(t, "-p", base, "--format", "xml", "sync", "--dest", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --format")
	})

	t.Run("unexpected argument", func(t *testing.T) {
		_, _, err := execute(t, "sync", "extra")
		assert.Error(t, err)
	})
}

func TestNoCommand(t *testing.T) {
	out, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, out, "punter")
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		out, _, err := execute(t, "gen-config")
		require.NoError(t, err)
		assert.Equal(t, config.GetTemplateContent(), out)
	})

	t.Run("write", func(t *testing.T) {
		base := t.TempDir()
		out, _, err := execute(t, "-p", base, "gen-config", "-w")
		require.NoError(t, err)
		assert.Contains(t, out, filepath.Join(base, "punter.toml"))
		assert.FileExists(t, filepath.Join(base, "punter.toml"))

		out, _, err = execute(t, "-p", base, "gen-config", "-w")
		require.NoError(t, err)
		assert.Equal(t, "punter.toml already exists, not overwriting\n", out)
	})

	t.Run("write as json", func(t *testing.T) {
		base := t.TempDir()
		out, _, err := execute(t, "-p", base, "--format", "json", "gen-config", "-w")
		require.NoError(t, err)

		var msg map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &msg))
		assert.Equal(t, "Wrote "+filepath.Join(base, "punter.toml"), msg["message"])
	})
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "punter version")
}

func TestTopicsCmd(t *testing.T) {
	out, _, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "sync")

	out, _, err = execute(t, "topics", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "PUNTER_SYNC_DEST")
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "punter")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
