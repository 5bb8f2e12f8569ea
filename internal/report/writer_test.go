package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.UnixMilli(1760517000123)

	assert.Equal(t, "nft-performance-1760517000123.json", FileName(DefaultFilePrefix, ts))
	assert.Regexp(t, FileNamePattern(DefaultFilePrefix), FileName(DefaultFilePrefix, ts))
	assert.NotRegexp(t, FileNamePattern(DefaultFilePrefix), "nft-performance-abc.json")
	assert.NotRegexp(t, FileNamePattern("a.b-"), "axb-1.json", "prefix must be matched literally")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSON(dir, "out.json", map[string]any{"ok": true, "list": []string{}}, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"list\": [],\n  \"ok\": true\n}", string(data))
}

func TestWriteJSON_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "performance")

	path, err := WriteJSON(dir, "out.json", struct{}{}, true)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteJSON_EncodeErrorCreatesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteJSON(dir, "out.json", map[string]any{"bad": make(chan int)}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode report")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
