package consolidate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files below root from a map of slash-separated relative paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// newTestConfig returns the default configuration rooted at a fresh temp dir
// with parts written to a separate temp dir.
func newTestConfig(t *testing.T) Config {
	t.Helper()
	return DefaultConfig(t.TempDir(), t.TempDir())
}

// readPart returns the content of an output part.
func readPart(t *testing.T, p Part) string {
	t.Helper()
	data, err := os.ReadFile(p.Path)
	require.NoError(t, err)
	return string(data)
}
