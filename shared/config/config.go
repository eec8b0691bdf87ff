package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config armazena as configurações do VoxelVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Backend de geração (Usado pelo Cliente)
	BackendURL       string `json:"backend_url"`
	StreamURL        string `json:"stream_url"`
	RequestTimeoutMs int    `json:"request_timeout_ms"`
	FollowStream     bool   `json:"follow_stream"` // Reconstrói a cada estrutura transmitida pelo servidor

	// Servidor de desenvolvimento (Usado pelo Servidor)
	ServerPort int    `json:"server_port"`
	HistoryDB  string `json:"history_db"`

	// Câmera
	RotateSpeed float32 `json:"rotate_speed"`
	ZoomSpeed   float32 `json:"zoom_speed"`
	PanSpeed    float32 `json:"pan_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelVision",
		Fullscreen:   false,
		TargetFPS:    60,

		BackendURL:       "http://127.0.0.1:5328",
		StreamURL:        "ws://127.0.0.1:5328/ws",
		RequestTimeoutMs: 120000,
		FollowStream:     false,

		ServerPort: 5328,
		HistoryDB:  "history.db",

		RotateSpeed: 1.0,
		ZoomSpeed:   1.0,
		PanSpeed:    1.0,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// RequestTimeout retorna o timeout das requisições ao backend.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do config.json ao lado do executável.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	return LoadFrom(configPath())
}

// LoadFrom carrega as configurações de um arquivo JSON específico.
// Arquivo ausente ou inválido resulta nas configurações padrão.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
