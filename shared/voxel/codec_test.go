package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestStructureRoundTripKeepsOrderAndSigns(t *testing.T) {
	in := Structure{
		Prompt: "castelo de pedra",
		Voxels: []Coord{{0, 0, 0}, {-3, 7, -1}, {-3, 7, -1}, {1 << 20, -(1 << 20), 5}},
	}

	out, err := UnmarshalStructure(MarshalStructure(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnmarshalEmptyFrame(t *testing.T) {
	s, err := UnmarshalStructure(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Prompt)
	assert.Empty(t, s.Voxels)
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	frame := protowire.AppendTag(nil, 9, protowire.VarintType)
	frame = protowire.AppendVarint(frame, 42)
	frame = append(frame, MarshalStructure(Structure{Voxels: []Coord{{1, 2, 3}}})...)

	s, err := UnmarshalStructure(frame)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{1, 2, 3}}, s.Voxels)
}

func TestUnmarshalRejectsTruncatedCoords(t *testing.T) {
	packed := protowire.AppendVarint(nil, protowire.EncodeZigZag(1))
	packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(2))
	frame := protowire.AppendTag(nil, fieldCoords, protowire.BytesType)
	frame = protowire.AppendBytes(frame, packed)

	_, err := UnmarshalStructure(frame)
	assert.ErrorIs(t, err, ErrTruncatedCoords)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := UnmarshalStructure([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

func TestBounds(t *testing.T) {
	_, _, ok := Bounds(nil)
	assert.False(t, ok)

	lo, hi, ok := Bounds([]Coord{{2, -1, 4}, {-5, 3, 0}, {1, 1, 9}})
	require.True(t, ok)
	assert.Equal(t, Coord{-5, -1, 0}, lo)
	assert.Equal(t, Coord{2, 3, 9}, hi)
	assert.Equal(t, Coord{8, 5, 10}, Extent(lo, hi))
}
