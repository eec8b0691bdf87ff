package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"VoxelVision/shared/config"
)

func main() {
	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║        VoxelVision Launcher          ║")
	fmt.Println("╚══════════════════════════════════════╝")

	cfg := config.DefaultConfig()

	// 1. Iniciar o Servidor em uma nova janela (necessário para ver os logs)
	fmt.Println("[1/2] Iniciando Servidor...")
	serverCmd := serverCommand()
	serverCmd.Dir = "servidor"
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	// 2. Aguardar o servidor responder no /test
	fmt.Println("Aguardando inicialização do servidor...")
	if !waitServer(cfg.BackendURL+"/test", 10*time.Second) {
		fmt.Println("AVISO: servidor não respondeu a tempo, abrindo o cliente mesmo assim.")
	}

	// 3. Iniciar o Cliente
	fmt.Println("[2/2] Abrindo Cliente...")

	absClientPath, err := filepath.Abs(filepath.Join("cliente", binaryName("client")))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(absClientPath)
	clientCmd.Dir = "cliente"
	clientCmd.Stdout = os.Stdout
	clientCmd.Stderr = os.Stderr

	if err := clientCmd.Start(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o cliente em %s\n", absClientPath)
		fmt.Printf("Detalhes: %v\n", err)
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
		return
	}

	fmt.Println("\nSucesso! VoxelVision foi iniciado.")
	fmt.Println("O Launcher fechará automaticamente em 2 segundos...")
	time.Sleep(2 * time.Second)
}

// serverCommand abre o servidor em um terminal próprio no Windows e em
// background nos outros sistemas.
func serverCommand() *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", "start", "VoxelVision SERVER", binaryName("server"))
	}
	cmd := exec.Command("./" + binaryName("server"))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func binaryName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// waitServer consulta url até receber 200 ou o prazo acabar.
func waitServer(url string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	httpClient := &http.Client{Timeout: time.Second}
	for time.Now().Before(deadline) {
		resp, err := httpClient.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(250 * time.Millisecond)
	}
	return false
}
