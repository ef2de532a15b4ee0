package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFileSystem(t *testing.T) {
	fsys := NewAfero(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/dots/nvim", 0755))
	require.NoError(t, fsys.WriteFile("/dots/zshrc", []byte("export A=1"), 0644))
	require.NoError(t, fsys.WriteFile("/dots/bashrc", nil, 0644))

	data, err := fsys.ReadFile("/dots/zshrc")
	require.NoError(t, err)
	assert.Equal(t, "export A=1", string(data))

	_, err = fsys.ReadFile("/dots/nvim")
	assert.Error(t, err)

	entries, err := fsys.ReadDir("/dots")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"bashrc", "nvim", "zshrc"}, names)

	info, err := fsys.Lstat("/dots/zshrc")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	assert.True(t, IsDir(fsys, "/dots/nvim"))
	assert.True(t, IsRegularFile(fsys, "/dots/bashrc"))
	assert.False(t, IsRegularFile(fsys, "/dots/missing"))
}

func TestAferoBasePath(t *testing.T) {
	root := t.TempDir()
	fsys := NewAfero(afero.NewBasePathFs(afero.NewOsFs(), root))

	require.NoError(t, fsys.WriteFile("/punter.toml", []byte("verbosity = 1\n"), 0644))
	assert.FileExists(t, root+"/punter.toml")
	assert.True(t, IsRegularFile(NewOS(), root+"/punter.toml"))
}
