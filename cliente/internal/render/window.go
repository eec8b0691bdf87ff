package render

import (
	"log"
	"sort"

	"VoxelVision/cliente/internal/camera"
	"VoxelVision/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window é a scene.Surface sobre a janela raylib. O loop principal chama
// Tick uma vez por frame de tela e Present entre BeginDrawing/EndDrawing.
type Window struct {
	frames *scene.FrameQueue
	mouse  *Mouse

	observers map[int]func(width, height int)
	nextObs   int

	attached []scene.Device

	lastW, lastH int
}

var _ scene.Surface = (*Window)(nil)

// NewWindow envolve a janela raylib já inicializada.
func NewWindow() *Window {
	w := &Window{
		frames:    scene.NewFrameQueue(),
		mouse:     &Mouse{},
		observers: make(map[int]func(width, height int)),
	}
	w.lastW, w.lastH = w.Size()
	return w
}

// Size retorna o tamanho atual da janela em pixels.
func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// NewDevice cria o Renderer raylib.
func (w *Window) NewDevice(width, height int) (scene.Device, error) {
	return NewRenderer(width, height)
}

// Scheduler retorna a fila de frames bombeada por Tick.
func (w *Window) Scheduler() scene.FrameScheduler { return w.frames }

// Pointer retorna o mouse da janela.
func (w *Window) Pointer() camera.PointerSource { return w.mouse }

// Mouse dá acesso ao input para que a UI possa capturá-lo.
func (w *Window) Mouse() *Mouse { return w.mouse }

// ObserveResize registra fn para mudanças de tamanho da janela.
func (w *Window) ObserveResize(fn func(width, height int)) func() {
	id := w.nextObs
	w.nextObs++
	w.observers[id] = fn
	return func() { delete(w.observers, id) }
}

// Attach passa a apresentar a saída do device.
func (w *Window) Attach(d scene.Device) {
	w.attached = append(w.attached, d)
}

// Detach remove o device da apresentação.
func (w *Window) Detach(d scene.Device) {
	for i, a := range w.attached {
		if a == d {
			w.attached = append(w.attached[:i], w.attached[i+1:]...)
			return
		}
	}
}

// Tick verifica redimensionamento e executa os callbacks de frame agendados.
func (w *Window) Tick(dt float32) int {
	w.pollResize()
	return w.frames.Pump(dt)
}

func (w *Window) pollResize() {
	width, height := w.Size()
	if width == w.lastW && height == w.lastH {
		return
	}
	w.lastW, w.lastH = width, height
	log.Printf("[Window] Redimensionada para %dx%d", width, height)

	ids := make([]int, 0, len(w.observers))
	for id := range w.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := w.observers[id]; ok {
			fn(width, height)
		}
	}
}

// Present desenha na tela a saída dos devices ligados.
func (w *Window) Present() {
	for _, d := range w.attached {
		r, ok := d.(*Renderer)
		if !ok {
			continue
		}
		tex := r.Texture()
		// Render textures são armazenadas de cabeça para baixo
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: -float32(tex.Height)}
		rl.DrawTextureRec(tex, src, rl.Vector2{}, rl.White)
	}
}
