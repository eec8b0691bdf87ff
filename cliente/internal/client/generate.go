package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"VoxelVision/shared/voxel"
)

// ErrBackendStatus indica uma resposta não-2xx do backend de geração.
var ErrBackendStatus = errors.New("client: backend respondeu com erro")

// GenerateRequest é o corpo do POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Result é a resposta do backend já normalizada.
type Result struct {
	Voxels        []voxel.Coord
	SchematicPath string // Caminho do .schem gerado (vazio se não houver)
	Test          bool   // Resposta de teste (estrutura de demonstração)
}

// GenerateClient chama o backend texto -> estrutura.
type GenerateClient struct {
	baseURL string
	http    *http.Client
}

// NewGenerateClient cria um cliente para o backend em baseURL (ex: http://localhost:5328).
func NewGenerateClient(baseURL string, timeout time.Duration) *GenerateClient {
	return &GenerateClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Generate envia o prompt e retorna a lista de voxels.
// Falha de transporte ou status não-2xx retornam erro (a cena não deve ser tocada).
// Payload malformado vira lista vazia.
func (c *GenerateClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	body, err := json.Marshal(GenerateRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: requisição inválida: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: falha ao conectar no backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("%w: %s", ErrBackendStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: falha ao ler resposta: %w", err)
	}

	res := DecodeResult(data)
	log.Printf("[Network] Prompt %q -> %d voxels em %v", prompt, len(res.Voxels), time.Since(start).Round(time.Millisecond))
	return res, nil
}

// DecodeResult interpreta o corpo de resposta do /generate. Campo "voxels"
// ausente, nulo, que não seja array ou com elementos inválidos resulta em
// lista vazia, nunca em erro.
func DecodeResult(data []byte) *Result {
	var raw struct {
		Voxels        json.RawMessage `json:"voxels"`
		SchematicPath *string         `json:"schematic_path"`
		Test          bool            `json:"test"`
	}
	res := &Result{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("[Network] Resposta malformada, tratando como vazia: %v", err)
		return res
	}
	if raw.SchematicPath != nil {
		res.SchematicPath = *raw.SchematicPath
	}
	res.Test = raw.Test

	if len(raw.Voxels) == 0 || string(raw.Voxels) == "null" {
		return res
	}
	var coords []voxel.Coord
	if err := json.Unmarshal(raw.Voxels, &coords); err != nil {
		log.Printf("[Network] Campo voxels inválido, tratando como vazio: %v", err)
		return res
	}
	res.Voxels = coords
	return res
}
