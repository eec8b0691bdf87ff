package history

import (
	"path/filepath"
	"testing"
	"time"

	"VoxelVision/shared/voxel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	s := openTemp(t)

	st := voxel.Structure{Prompt: "ponte", Voxels: []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: -2, Y: 5, Z: 3}}}
	rec, err := s.Record(st, false, "test.schem", 1500*time.Millisecond)
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, 3, rec.VoxelCount)
	assert.Equal(t, int64(1500), rec.DurationMs)

	got, gotSt, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "ponte", got.Prompt)
	assert.Equal(t, "test.schem", got.SchematicPath)
	assert.Equal(t, st, gotSt)
}

func TestGetMissing(t *testing.T) {
	s := openTemp(t)
	_, _, err := s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTemp(t)

	for _, p := range []string{"a", "b", "c", "d"} {
		_, err := s.Record(voxel.Structure{Prompt: p}, p == "a", "", 0)
		require.NoError(t, err)
	}

	recs, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "d", recs[0].Prompt)
	assert.Equal(t, "c", recs[1].Prompt)

	all, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.True(t, all[3].Test)
	assert.Equal(t, 0, all[3].VoxelCount)
}
