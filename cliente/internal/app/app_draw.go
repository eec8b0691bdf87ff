package app

import (
	"fmt"

	"VoxelVision/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw apresenta o frame 3D e desenha a interface por cima.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(15, 23, 42, 255))

	if a.window != nil {
		a.window.Present()
	}

	a.drawPromptBox()
	a.drawHUD()

	rl.EndDrawing()
}

// promptRect é a área da caixa de texto, centralizada no rodapé.
func promptRect() rl.Rectangle {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	width := screenWidth - 40
	if width > 900 {
		width = 900
	}
	return rl.Rectangle{X: (screenWidth - width) / 2, Y: screenHeight - 70, Width: width, Height: 44}
}

// drawPromptBox desenha a caixa de texto e a linha de status acima dela.
func (a *App) drawPromptBox() {
	box := promptRect()
	x, y := int32(box.X), int32(box.Y)
	w, h := int32(box.Width), int32(box.Height)

	border := rl.NewColor(71, 85, 105, 255)
	if a.promptFocused {
		border = rl.NewColor(74, 222, 128, 255)
	}
	rl.DrawRectangle(x, y, w, h, rl.NewColor(2, 6, 23, 220))
	rl.DrawRectangleLines(x, y, w, h, border)

	text := a.Prompt()
	color := rl.White
	switch {
	case a.State == StateGenerating:
		text = "Generating..."
		color = rl.Gold
	case text == "" && !a.promptFocused:
		text = "Clique aqui e descreva uma estrutura"
		color = rl.Gray
	}

	text = visibleTail(text, func(s string) bool { return rl.MeasureText(s, 20) <= w-24 })
	rl.DrawText(text, x+12, y+12, 20, color)

	// Cursor piscando
	if a.promptFocused && a.State != StateGenerating && int(rl.GetTime()*2)%2 == 0 {
		cx := x + 14 + rl.MeasureText(text, 20)
		rl.DrawRectangle(cx, y+10, 2, 24, rl.White)
	}

	statusColor := rl.LightGray
	if a.State == StateError {
		statusColor = rl.Red
	}
	rl.DrawText(a.Status, x, y-24, 16, statusColor)
}

// drawHUD desenha a interface de debug sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(190)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(a.State.String(), x+180, y+10, 20, rl.SkyBlue)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("ESTRUTURA", x+10, y+45, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Voxels: %d", a.voxelCount), x+10, y+60, 16, rl.White)
	if a.hasBounds {
		size := voxel.Extent(a.boundsLo, a.boundsHi)
		rl.DrawText(fmt.Sprintf("Tamanho: %dx%dx%d", size.X, size.Y, size.Z), x+10, y+80, 14, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Min %s  Max %s", a.boundsLo, a.boundsHi), x+10, y+96, 14, rl.LightGray)
	}
	if a.schematicPath != "" {
		rl.DrawText(fmt.Sprintf("Schematic: %s", a.schematicPath), x+10, y+112, 14, rl.Gold)
	}

	follow := "Off"
	if a.stream != nil && a.stream.IsConnected() {
		follow = "Conectado"
	}
	rl.DrawText(fmt.Sprintf("Seguir servidor: %s", follow), x+10, y+130, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+150, x+width-10, y+150, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("Mouse: Girar/Arrastar | Scroll: Zoom", x+10, y+158, 12, rl.LightGray)
	rl.DrawText("R: Câmera | G: Grade | F11: Tela Cheia | F3: HUD", x+10, y+173, 12, rl.SkyBlue)
}

// visibleTail corta o começo do texto, rune a rune, até que fits aceite o
// restante. Mantém o fim do texto visível quando ele passa da largura da caixa.
func visibleTail(text string, fits func(string) bool) string {
	runes := []rune(text)
	for len(runes) > 0 && !fits(string(runes)) {
		runes = runes[1:]
	}
	return string(runes)
}
