package render

import (
	"VoxelVision/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mouse lê o ponteiro da raylib para os controles de órbita.
// Botão esquerdo gira, direito/meio arrastam, roda aproxima.
type Mouse struct {
	// Captured desliga o input da câmera (ex: mouse sobre a caixa de texto).
	Captured bool
}

var _ camera.PointerSource = (*Mouse)(nil)

// Pointer implementa camera.PointerSource.
func (m *Mouse) Pointer() camera.PointerState {
	if m.Captured {
		return camera.PointerState{}
	}
	delta := rl.GetMouseDelta()
	return camera.PointerState{
		DeltaX: delta.X,
		DeltaY: delta.Y,
		Rotate: rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Pan:    rl.IsMouseButtonDown(rl.MouseButtonRight) || rl.IsMouseButtonDown(rl.MouseButtonMiddle),
		Wheel:  rl.GetMouseWheelMove(),
	}
}
