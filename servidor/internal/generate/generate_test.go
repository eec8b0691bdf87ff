package generate

import (
	"context"
	"testing"

	"VoxelVision/shared/voxel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHollowShell(t *testing.T) {
	tests := []struct {
		size int32
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 8},
		{5, 25 + 16*4},
	}
	for _, tt := range tests {
		assert.Len(t, HollowShell(tt.size), tt.want, "size %d", tt.size)
	}
}

func TestHollowShellHasNoRoofOrInterior(t *testing.T) {
	seen := make(map[voxel.Coord]bool)
	for _, c := range HollowShell(5) {
		assert.False(t, seen[c], "duplicado %v", c)
		seen[c] = true

		inside := c.X > 0 && c.X < 4 && c.Z > 0 && c.Z < 4
		assert.False(t, inside && c.Y > 0, "voxel interno %v", c)
	}
	assert.False(t, seen[voxel.Coord{X: 2, Y: 4, Z: 2}], "sem teto")
	assert.True(t, seen[voxel.Coord{X: 2, Y: 0, Z: 2}], "com chão")
}

func TestDummy(t *testing.T) {
	ctx := context.Background()

	out, err := Dummy{}.Generate(ctx, TestPrompt)
	require.NoError(t, err)
	assert.True(t, out.Test)
	assert.Nil(t, out.SchematicPath)
	assert.Len(t, out.Voxels, 89)

	out, err = Dummy{}.Generate(ctx, "um castelo")
	require.NoError(t, err)
	assert.False(t, out.Test)
	require.NotNil(t, out.SchematicPath)
	assert.Equal(t, DefaultSchematic, *out.SchematicPath)
	assert.Equal(t, []voxel.Coord{{X: 0, Y: 0, Z: 0}}, out.Voxels)
}

func TestDummyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Dummy{}.Generate(ctx, TestPrompt)
	assert.ErrorIs(t, err, context.Canceled)
}
