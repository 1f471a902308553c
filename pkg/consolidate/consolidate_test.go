package consolidate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunConsolidatesTree(t *testing.T) {
	cfg := newTestConfig(t)
	writeTree(t, cfg.Root, map[string]string{
		"README.md":                 "# Title\n\nSome text.\n",
		"src/app.ts":                "// header\nimport x from 'y';\n\n/* doc */\nexport const a = 1;\n",
		"src/data.json":             "{\n  \"k\": [1, 2]\n}\n",
		"src/empty.js":              "// nothing\n\n/* */\n",
		"src/notes.txt":             "not selected",
		"node_modules/lib/index.js": "module.exports = 1;",
	})
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root, "bad.ts"), []byte{0xff, 0xfe, 0xfd}, 0644))

	core, logs := observer.New(zap.WarnLevel)
	var out bytes.Buffer
	result, err := Run(cfg, zap.New(core), &out)
	require.NoError(t, err)

	require.Len(t, result.Parts, 1)
	want := "\n// FILE: README.md\n# Title\nSome text." +
		"\n// FILE: " + filepath.Join("src", "app.ts") + "\nimport x from 'y';\nexport const a = 1;" +
		"\n// FILE: " + filepath.Join("src", "data.json") + "\n{\"k\":[1,2]}"
	assert.Equal(t, want, readPart(t, result.Parts[0]))
	assert.Equal(t, int64(len(want)), result.Parts[0].Size)

	assert.Equal(t, 3, result.Blocks)
	assert.Equal(t, 1, result.Empty)
	assert.Equal(t, 1, result.ReadErrors)
	assert.Equal(t, 5, result.Walk.Files)

	readErrs := logs.FilterMessage("Error reading/processing file").All()
	require.Len(t, readErrs, 1)
	assert.Equal(t, filepath.Join(cfg.Root, "bad.ts"), readErrs[0].ContextMap()["file"])

	assert.Contains(t, out.String(), "Starting MINIFIED consolidation from: "+cfg.Root)
	assert.Contains(t, out.String(), "Creating new part: "+PartPath(cfg, 1))
	assert.Contains(t, out.String(), "Single MINIFIED file: "+PartPath(cfg, 1))
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.MaxPartSize = 256
	files := map[string]string{}
	for i := 0; i < 20; i++ {
		files[filepath.ToSlash(filepath.Join("pkg", string(rune('a'+i))+".rs"))] = strings.Repeat("let v = 1;\n", 5+i)
	}
	writeTree(t, cfg.Root, files)

	first, err := Run(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	var firstContents []string
	for _, p := range first.Parts {
		firstContents = append(firstContents, readPart(t, p))
	}

	second, err := Run(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	require.Equal(t, first.Parts, second.Parts)
	for i, p := range second.Parts {
		assert.Equal(t, firstContents[i], readPart(t, p))
	}
	assert.Greater(t, len(second.Parts), 1)
}

func TestRunSplitsAcrossParts(t *testing.T) {
	cfg := newTestConfig(t)
	a := strings.Repeat("a", 200*1024)
	b := strings.Repeat("b", 350*1024)
	writeTree(t, cfg.Root, map[string]string{"a.ts": a, "b.ts": b})

	var out bytes.Buffer
	result, err := Run(cfg, zaptest.NewLogger(t), &out)
	require.NoError(t, err)

	require.Len(t, result.Parts, 2)
	assert.Equal(t, "\n// FILE: a.ts\n"+a, readPart(t, result.Parts[0]))
	assert.Equal(t, "\n// FILE: b.ts\n"+b, readPart(t, result.Parts[1]))
	assert.Contains(t, out.String(), "Split into 2 files")
	assert.Contains(t, out.String(), "Total consolidated size:")
}

func TestRunEmptyTree(t *testing.T) {
	cfg := newTestConfig(t)
	writeTree(t, cfg.Root, map[string]string{
		"only-comments.ts": "// a\n/* b */\n",
		"ignored.go":       "package x",
	})

	var out bytes.Buffer
	result, err := Run(cfg, zaptest.NewLogger(t), &out)
	require.NoError(t, err)

	require.Len(t, result.Parts, 1)
	info, err := os.Stat(PartPath(cfg, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
	assert.Contains(t, out.String(), "No content found.")
}

func TestRunOutputErrorIsFatal(t *testing.T) {
	cfg := newTestConfig(t)
	writeTree(t, cfg.Root, map[string]string{"a.ts": "a();"})
	blocker := filepath.Join(cfg.OutputDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.OutputDir = filepath.Join(blocker, "out")

	_, err := Run(cfg, zaptest.NewLogger(t), nil)
	assert.Error(t, err)
}

func TestRunRotationErrorClosesFirstPart(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.MaxPartSize = 64
	a := strings.Repeat("a", 40)
	writeTree(t, cfg.Root, map[string]string{"a.ts": a, "b.ts": "b();"})
	require.NoError(t, os.Mkdir(PartPath(cfg, 2), 0755))

	result, err := Run(cfg, zaptest.NewLogger(t), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output part")
	assert.Equal(t, 1, result.Blocks)

	data, err := os.ReadFile(PartPath(cfg, 1))
	require.NoError(t, err)
	assert.Equal(t, "\n// FILE: a.ts\n"+a, string(data))

	agg, err := NewAggregator(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err, "output lock should be released after a failed run")
	assert.NoError(t, agg.Close())
}

func TestRunRejectsBadExclusion(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Excluded = []string{"a/b"}

	_, err := Run(cfg, nil, nil)
	assert.Error(t, err)
	_, statErr := os.Stat(PartPath(cfg, 1))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
