package app

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"VoxelVision/cliente/internal/meshing"
	"VoxelVision/shared/voxel"
)

const maxPromptLen = 200

// typeRune acrescenta um caractere ao prompt. Ignorado durante a geração.
func (a *App) typeRune(r rune) {
	if a.State == StateGenerating || !unicode.IsPrint(r) || len(a.prompt) >= maxPromptLen {
		return
	}
	a.prompt = append(a.prompt, r)
}

// backspace apaga o último caractere do prompt.
func (a *App) backspace() {
	if a.State == StateGenerating || len(a.prompt) == 0 {
		return
	}
	a.prompt = a.prompt[:len(a.prompt)-1]
}

// clearPrompt esvazia a caixa de texto.
func (a *App) clearPrompt() {
	if a.State == StateGenerating {
		return
	}
	a.prompt = a.prompt[:0]
}

// Prompt retorna o texto atual da caixa.
func (a *App) Prompt() string {
	return string(a.prompt)
}

// submit dispara a geração para o prompt atual. Prompt vazio não faz nada;
// uma requisição por vez.
func (a *App) submit() bool {
	prompt := strings.TrimSpace(string(a.prompt))
	if prompt == "" || a.State == StateGenerating {
		return false
	}

	a.State = StateGenerating
	a.Status = "Generating..."
	log.Printf("[App] Gerando estrutura para %q", prompt)

	go a.runGenerate(prompt)
	return true
}

// drainResults aplica, na thread da UI, tudo que as goroutines de rede
// entregaram desde o último frame.
func (a *App) drainResults() int {
	n := 0
	for {
		select {
		case u := <-a.results:
			a.apply(u)
			n++
		default:
			return n
		}
	}
}

// apply reconstrói a cena com o resultado. Em caso de erro a cena não é tocada.
func (a *App) apply(u update) {
	if u.err != nil {
		log.Printf("[App] Falha na geração de %q: %v", u.prompt, u.err)
		a.State = StateError
		a.Status = fmt.Sprintf("Erro: %v", u.err)
		return
	}
	if a.handle == nil || a.handle.Closed() {
		return
	}

	coords := u.result.Voxels
	if err := meshing.Rebuild(coords, a.handle); err != nil {
		log.Printf("[App] Falha ao reconstruir a cena: %v", err)
		a.State = StateError
		a.Status = fmt.Sprintf("Erro: %v", err)
		return
	}

	a.rebuilds++
	a.lastPrompt = u.prompt
	a.voxelCount = len(coords)
	a.boundsLo, a.boundsHi, a.hasBounds = voxel.Bounds(coords)
	a.schematicPath = u.result.SchematicPath

	switch {
	case len(coords) == 0:
		a.Status = "Nenhum voxel retornado"
	case u.stream:
		a.Status = fmt.Sprintf("Recebido do servidor: %d voxels", len(coords))
	default:
		a.Status = fmt.Sprintf("%d voxels", len(coords))
	}
	if !u.stream {
		a.State = StateIdle
	}
}
