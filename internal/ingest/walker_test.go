package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestCollectDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"), []byte("pdf-a"))
	writeFile(t, filepath.Join(root, "sub", "b.PDF"), []byte("pdf-b"))
	writeFile(t, filepath.Join(root, "notes.txt"), []byte("skip"))
	writeFile(t, filepath.Join(root, ".hidden", "c.pdf"), []byte("skip"))

	docs, stats, err := CollectDirectory(root, true, nil)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	names := []string{docs[0].Name, docs[1].Name}
	assert.Contains(t, names, "a.pdf")
	assert.Contains(t, names, "b.PDF")
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(0), stats.Failed)
}

func TestCollectDirectory_HiddenIncludedWhenAllowed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden", "c.pdf"), []byte("pdf-c"))

	docs, _, err := CollectDirectory(root, false, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "c.pdf", docs[0].Name)
}

func TestCollectDirectory_EmptyRoot(t *testing.T) {
	_, _, err := CollectDirectory("   ", true, nil)
	assert.Error(t, err)
}

func TestCollectPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.pdf")
	writeFile(t, path, []byte("payload"))

	t.Run("reads allowed file", func(t *testing.T) {
		doc, err := CollectPath(path)
		require.NoError(t, err)
		assert.Equal(t, "doc.pdf", doc.Name)
		assert.Equal(t, []byte("payload"), doc.Data)
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		other := filepath.Join(root, "doc.docx")
		writeFile(t, other, []byte("payload"))
		_, err := CollectPath(other)
		assert.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := CollectPath(filepath.Join(root, "missing.pdf"))
		assert.Error(t, err)
	})
}
