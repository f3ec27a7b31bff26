package parser

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a fortune file in dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFortunesSingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "jokes", "first one\n%\nsecond one\nspans two lines\n%\nthird one\n%\n")

	fortunes, err := ReadFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 3)

	assert.Equal(t, "first one", fortunes[0].Text)
	assert.Equal(t, "second one\nspans two lines", fortunes[1].Text)
	assert.Equal(t, "third one", fortunes[2].Text)

	for _, f := range fortunes {
		assert.Equal(t, "jokes", f.Source, "source should be the base file name")
	}
}

func TestReadFortunesPreservesInternalBlankLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "verses", "line one\n\nline three\n%\n")

	fortunes, err := ReadFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 1)
	assert.Equal(t, "line one\n\nline three", fortunes[0].Text)
}

func TestReadFortunesTrailingBlockDropped(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "quotes", "kept\n%\ndropped, no terminator\n")

	fortunes, err := ReadFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 1)
	assert.Equal(t, "kept", fortunes[0].Text)
}

func TestReadFortunesEmptyBlocksDropped(t *testing.T) {
	tmpDir := t.TempDir()

	// Leading terminator and doubled terminators produce no records.
	path := writeFile(t, tmpDir, "sparse", "%\nreal\n%\n%\nanother\n%\n")

	fortunes, err := ReadFortunes([]string{path})
	require.NoError(t, err)
	require.Len(t, fortunes, 2)
	assert.Equal(t, "real", fortunes[0].Text)
	assert.Equal(t, "another", fortunes[1].Text)
}

func TestReadFortunesOnlyTerminators(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "empty", "%\n%\n%\n")

	fortunes, err := ReadFortunes([]string{path})
	require.NoError(t, err)
	assert.Empty(t, fortunes)
}

func TestReadFortunesMultipleFilesKeepOrder(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeFile(t, tmpDir, "aaa", "a1\n%\na2\n%\n")
	second := writeFile(t, tmpDir, "bbb", "b1\n%\n")

	fortunes, err := ReadFortunes([]string{first, second})
	require.NoError(t, err)
	require.Len(t, fortunes, 3)

	assert.Equal(t, "a1", fortunes[0].Text)
	assert.Equal(t, "a2", fortunes[1].Text)
	assert.Equal(t, "b1", fortunes[2].Text)

	assert.Equal(t, "aaa", fortunes[0].Source)
	assert.Equal(t, "bbb", fortunes[2].Source)
}

func TestReadFortunesOpenErrorFailsParse(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeFile(t, tmpDir, "good", "fine\n%\n")
	missing := filepath.Join(tmpDir, "missing")

	fortunes, err := ReadFortunes([]string{good, missing})
	require.Error(t, err)
	assert.Nil(t, fortunes, "an open failure aborts the whole parse")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing, "error should name the path")
}

func TestReadFortunesNoFiles(t *testing.T) {
	fortunes, err := ReadFortunes(nil)
	require.NoError(t, err)
	assert.Empty(t, fortunes)
}
