package localmirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilesReadsMarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mdx"), []byte("# B"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.md"), []byte("# C"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0o755))

	m := New(dir)
	files, err := m.ListFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)

	byName := map[string]string{}
	for _, f := range files {
		byName[f.FileName] = f.Content
	}
	assert.Equal(t, "# A", byName["a.md"])
	assert.Equal(t, "# B", byName["b.mdx"])
	assert.Equal(t, "# C", byName["c.md"])
}

func TestListFilesMissingDirIsEmpty(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "does-not-exist"))
	files, err := m.ListFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}
