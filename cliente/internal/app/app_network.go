package app

import (
	"log"

	"VoxelVision/cliente/internal/client"
	"VoxelVision/shared/voxel"
)

// runGenerate chama o backend e entrega o resultado para a thread da UI.
func (a *App) runGenerate(prompt string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em runGenerate: %v", r)
		}
	}()

	res, err := a.backend.Generate(a.ctx, prompt)
	select {
	case a.results <- update{prompt: prompt, result: res, err: err}:
	case <-a.ctx.Done():
	}
}

// followStream conecta ao WebSocket do servidor e reconstrói a cena a cada
// estrutura transmitida (modo seguir).
func (a *App) followStream() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em followStream: %v", r)
		}
	}()

	a.stream.OnStructure = func(s voxel.Structure) {
		select {
		case a.results <- update{prompt: s.Prompt, result: &client.Result{Voxels: s.Voxels}, stream: true}:
		case <-a.ctx.Done():
		}
	}

	if err := a.stream.Connect(); err != nil {
		log.Printf("[Server] Erro ao conectar no stream: %v", err)
		return
	}
	log.Println("[Network] Seguindo estruturas do servidor")
}
