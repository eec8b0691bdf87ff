package main

import (
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"VoxelVision/servidor/internal/generate"
	"VoxelVision/servidor/internal/history"
	"VoxelVision/shared/config"
)

func main() {
	// Working directory = diretório do executável, para que caminhos
	// relativos (tmp/, history.db) funcionem
	if exePath, err := os.Executable(); err == nil {
		os.Chdir(filepath.Dir(exePath))
	}

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Log em arquivo para depuração de crash
	if err := os.MkdirAll("tmp", 0755); err == nil {
		logFile, err := os.OpenFile("tmp/server.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			// MultiWriter para logar no console e no arquivo simultaneamente
			log.SetOutput(io.MultiWriter(os.Stdout, logFile))
		}
	}
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║      VoxelVision SERVER v0.1.0       ║")
	log.Println("╚══════════════════════════════════════╝")

	cfg := config.DefaultConfig()

	hub := newHub()
	go hub.run()

	dbPath := cfg.HistoryDB
	if p := os.Getenv("VV_HISTORY_DB"); p != "" {
		dbPath = p
	}
	store, err := history.Open(dbPath)
	if err != nil {
		// O histórico é opcional: o servidor continua sem ele
		log.Printf("[History] AVISO: histórico desativado: %v", err)
	} else {
		defer store.Close()
	}

	srv := &Server{hub: hub, gen: generate.Dummy{}, history: store}

	port := strconv.Itoa(cfg.ServerPort)
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	// Verifica a porta antes de subir o servidor
	addr := "127.0.0.1:" + port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("╔══════════════════════════════════════════════════════════════╗")
		log.Printf("║ ERRO CRÍTICO: Não foi possível abrir a porta %s.            ║", port)
		log.Printf("║ Provavelmente há outra instância do servidor rodando.        ║")
		log.Printf("╚══════════════════════════════════════════════════════════════╝")
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	log.Printf("Servidor VoxelVision iniciado em %s", addr)
	if err := http.Serve(ln, srv.routes()); err != nil {
		log.Fatalf("Erro fatal no servidor HTTP: %v", err)
	}
}
