package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa teclado e mouse do frame.
func (a *App) updateInput() {
	mouse := rl.GetMousePosition()
	overPrompt := rl.CheckCollisionPointRec(mouse, promptRect())

	// Clique decide o foco: caixa de texto ou visualização 3D
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.promptFocused = overPrompt
	}
	if a.window != nil {
		a.window.Mouse().Captured = overPrompt
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if a.promptFocused {
		a.updatePromptInput()
		return
	}

	// Atalhos de uma letra só valem fora da caixa de texto
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
		a.applyViewSettings()
	}
	if rl.IsKeyPressed(rl.KeyR) && a.handle != nil {
		if err := a.handle.ResetView(); err == nil {
			log.Println("[Camera] Visão reiniciada")
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyTab) {
		a.promptFocused = true
	}
}

// updatePromptInput edita a caixa de texto do prompt.
func (a *App) updatePromptInput() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		a.typeRune(rune(ch))
	}

	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		a.backspace()
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		a.submit()
	}

	// ESC limpa o texto; com a caixa vazia devolve o foco para a cena
	if rl.IsKeyPressed(rl.KeyEscape) {
		if len(a.prompt) == 0 {
			a.promptFocused = false
		}
		a.clearPrompt()
	}
}
