package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"VoxelVision/shared/voxel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuccess(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Prompt

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"voxels":[{"x":0,"y":0,"z":0},{"x":-1,"y":2,"z":3}],"schematic_path":"test.schem"}`)
	}))
	defer srv.Close()

	c := NewGenerateClient(srv.URL+"/", time.Second)
	res, err := c.Generate(context.Background(), "castelo")
	require.NoError(t, err)

	assert.Equal(t, "castelo", gotPrompt)
	assert.Equal(t, []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 2, Z: 3}}, res.Voxels)
	assert.Equal(t, "test.schem", res.SchematicPath)
	assert.False(t, res.Test)
}

func TestGenerateStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := NewGenerateClient(srv.URL, time.Second).Generate(context.Background(), "x")
	require.ErrorIs(t, err, ErrBackendStatus)
	assert.Nil(t, res)
}

func TestGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res, err := NewGenerateClient(url, time.Second).Generate(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBackendStatus)
	assert.Nil(t, res)
}

func TestGenerateCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"voxels":[]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGenerateClient(srv.URL, time.Second).Generate(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateMalformedBodyIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	res, err := NewGenerateClient(srv.URL, time.Second).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, res.Voxels)
}

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		voxels []voxel.Coord
		path   string
		test   bool
	}{
		{"vazio", ``, nil, "", false},
		{"sem voxels", `{}`, nil, "", false},
		{"voxels nulo", `{"voxels":null}`, nil, "", false},
		{"voxels não-array", `{"voxels":"abc"}`, nil, "", false},
		{"voxels objeto", `{"voxels":{"x":1}}`, nil, "", false},
		{"elemento inválido", `{"voxels":[{"x":"a","y":0,"z":0}]}`, nil, "", false},
		{"array vazio", `{"voxels":[]}`, []voxel.Coord{}, "", false},
		{"teste", `{"voxels":[{"x":1,"y":2,"z":3}],"schematic_path":null,"test":true}`, []voxel.Coord{{X: 1, Y: 2, Z: 3}}, "", true},
		{"com caminho", `{"voxels":[{"x":0,"y":0,"z":0}],"schematic_path":"out/a.schem"}`, []voxel.Coord{{X: 0, Y: 0, Z: 0}}, "out/a.schem", false},
		{"duplicados mantidos", `{"voxels":[{"x":0,"y":0,"z":0},{"x":0,"y":0,"z":0}]}`, []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DecodeResult([]byte(tt.body))
			require.NotNil(t, res)
			assert.Len(t, res.Voxels, len(tt.voxels))
			if len(tt.voxels) > 0 {
				assert.Equal(t, tt.voxels, res.Voxels)
			}
			assert.Equal(t, tt.path, res.SchematicPath)
			assert.Equal(t, tt.test, res.Test)
		})
	}
}
