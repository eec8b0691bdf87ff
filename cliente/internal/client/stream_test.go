package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"VoxelVision/shared/voxel"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReceivesStructures(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.TextMessage, []byte("ignorado"))
		conn.WriteMessage(websocket.BinaryMessage, []byte{0xff, 0xff})
		conn.WriteMessage(websocket.BinaryMessage, voxel.MarshalStructure(voxel.Structure{
			Prompt: "torre",
			Voxels: []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		}))
		// Mantém a conexão até o cliente fechar
		conn.ReadMessage()
	}))
	defer srv.Close()

	got := make(chan voxel.Structure, 1)
	c := NewStreamClient("ws" + strings.TrimPrefix(srv.URL, "http"))
	c.OnStructure = func(s voxel.Structure) { got <- s }
	require.NoError(t, c.Connect())
	assert.True(t, c.IsConnected())

	select {
	case s := <-got:
		assert.Equal(t, "torre", s.Prompt)
		assert.Equal(t, []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}, s.Voxels)
	case <-time.After(2 * time.Second):
		t.Fatal("nenhuma estrutura recebida")
	}

	require.NoError(t, c.Close())
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("readLoop não terminou")
	}
	assert.False(t, c.IsConnected())
	assert.NoError(t, c.Close())
}

func TestStreamConnectFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	c := NewStreamClient(url)
	c.MaxRetries = 2
	c.RetryDelay = time.Millisecond
	require.Error(t, c.Connect())
	assert.False(t, c.IsConnected())
}

func TestStreamConnectAfterClose(t *testing.T) {
	c := NewStreamClient("ws://127.0.0.1:1/ws")
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Connect(), ErrStreamClosed)
}
