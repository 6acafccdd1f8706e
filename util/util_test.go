package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherAllScorePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.score.json", "a.score.json", "sub/c.score.json", "notes.json", "d.mid"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	paths, err := GatherAllScorePaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.score.json"),
		filepath.Join(dir, "b.score.json"),
		filepath.Join(dir, "sub", "c.score.json"),
	}, paths)

	paths, err = GatherAllScorePaths(dir, 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	_, err = GatherAllScorePaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, Clamp(-0.5, 0, 1))
	assert.Equal(1.0, Clamp(1.5, 0, 1))
	assert.Equal(0.25, Clamp(0.25, 0, 1))
	assert.Equal(3, Clamp(3, 0, 5))
}

func TestGetKeysSorted(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, GetKeys(map[int]string{3: "c", 1: "a", 2: "b"}))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]uint8{}))
}
