package client

import (
	"errors"
	"log"
	"sync"
	"time"

	"VoxelVision/shared/voxel"

	"github.com/gorilla/websocket"
)

// ErrStreamClosed indica Connect depois de Close.
var ErrStreamClosed = errors.New("client: stream já encerrado")

// StreamClient acompanha o WebSocket do servidor e recebe cada estrutura
// gerada (modo "seguir").
type StreamClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	closed    bool
	mu        sync.RWMutex
	done      chan struct{}

	// Tentativas de conexão
	MaxRetries int
	RetryDelay time.Duration

	// Callback chamado na goroutine de leitura para cada estrutura recebida
	OnStructure func(s voxel.Structure)
}

// NewStreamClient cria um cliente para a URL ws:// informada.
func NewStreamClient(url string) *StreamClient {
	return &StreamClient{
		url:        url,
		MaxRetries: 10,
		RetryDelay: 2 * time.Second,
		done:       make(chan struct{}),
	}
}

// Connect tenta conectar (com retentativas) e inicia a leitura em background.
func (c *StreamClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var conn *websocket.Conn
	var err error
	for i := 0; i < c.MaxRetries; i++ {
		if c.isClosed() {
			return ErrStreamClosed
		}
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, c.MaxRetries, c.url)
		conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(c.RetryDelay)
	}
	if err != nil {
		log.Printf("[Network] ERRO após %d tentativas: %v", c.MaxRetries, err)
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrStreamClosed
	}
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

// IsConnected informa se a conexão está ativa.
func (c *StreamClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *StreamClient) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Done é fechado quando a leitura termina.
func (c *StreamClient) Done() <-chan struct{} {
	return c.done
}

// Close encerra a conexão. A goroutine de leitura termina em seguida.
func (c *StreamClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.conn == nil {
		c.closed = true
		return nil
	}
	c.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)) //nolint:errcheck
	return c.conn.Close()
}

func (c *StreamClient) readLoop(conn *websocket.Conn) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em readLoop: %v", r)
		}
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		conn.Close()
		close(c.done)
	}()

	for {
		msgType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão encerrada: %v", err)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		s, err := voxel.UnmarshalStructure(message)
		if err != nil {
			log.Printf("[Network] Erro ao decodificar estrutura: %v", err)
			continue
		}
		if c.OnStructure != nil {
			c.OnStructure(s)
		}
	}
}
