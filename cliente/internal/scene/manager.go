// Package scene mantém o grafo de cena, a câmera, o renderizador, as luzes e
// o loop de render de uma visualização de voxels.
package scene

import (
	"errors"
	"fmt"
	"log"

	"VoxelVision/cliente/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrZeroSurface indica uma superfície sem área no momento do Init.
	ErrZeroSurface = errors.New("scene: superfície com largura ou altura zero")
	// ErrSceneClosed indica uso de um Handle após o teardown.
	ErrSceneClosed = errors.New("scene: cena já finalizada")
)

// Parâmetros fixos da cena.
var (
	BackgroundColor = Hex(0x0f172a)
	CameraStart     = mgl32.Vec3{10, 10, 10} // Visto de um canto, nunca de frente para uma aresta
)

const (
	CameraFov  = 75
	CameraNear = 0.1
	CameraFar  = 1000
)

// Handle é o contexto de uma cena montada. Criado por Init e mantido por quem
// monta a visualização; é passado por referência ao construtor de geometria.
type Handle struct {
	World    *World
	Camera   *camera.Perspective
	Controls *camera.OrbitControls

	surface Surface
	device  Device
	sched   FrameScheduler

	frameID   FrameID
	frames    uint64
	unobserve func()
	closed    bool

	// Lote de voxels atualmente na cena (no máximo um de cada)
	faces *InstancedMesh
	edges *LineSegments
}

// Init monta a cena sobre a superfície e inicia o loop de render.
// Retorna o Handle e a função de teardown, que é a única forma de parar o loop.
func Init(surface Surface) (*Handle, func(), error) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("%w (%dx%d)", ErrZeroSurface, width, height)
	}

	device, err := surface.NewDevice(width, height)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: falha ao criar renderizador: %w", err)
	}
	surface.Attach(device)

	cam := camera.NewPerspective(CameraFov, float32(width)/float32(height), CameraNear, CameraFar)
	cam.Position = CameraStart
	cam.LookAt(mgl32.Vec3{})

	h := &Handle{
		World:    NewWorld(BackgroundColor),
		Camera:   cam,
		Controls: camera.NewOrbitControls(cam, surface.Pointer()),
		surface:  surface,
		device:   device,
		sched:    surface.Scheduler(),
	}

	// Luz ambiente forte mantém todas as faces claras; duas direcionais
	// fracas e opostas dão só um pouco de profundidade.
	h.World.Add(&AmbientLight{Color: Hex(0xffffff), Intensity: 1.0})
	h.World.Add(&DirectionalLight{Color: Hex(0xffffff), Intensity: 0.15, Position: mgl32.Vec3{5, 10, 7.5}})
	h.World.Add(&DirectionalLight{Color: Hex(0xffffff), Intensity: 0.15, Position: mgl32.Vec3{-5, -10, -7.5}})

	h.unobserve = surface.ObserveResize(h.resize)
	h.frameID = h.sched.RequestFrame(h.animate)

	log.Printf("[Scene] Cena inicializada (%dx%d)", width, height)
	return h, h.teardown, nil
}

// animate é um tick do loop: re-agenda, amortece a câmera e desenha.
func (h *Handle) animate(dt float32) {
	if h.closed {
		return
	}
	h.frameID = h.sched.RequestFrame(h.animate)
	h.Controls.Update(dt)
	h.device.Render(h.World, h.Camera)
	h.frames++
}

// resize ajusta câmera e buffer de saída ao novo tamanho da superfície.
func (h *Handle) resize(width, height int) {
	if h.closed {
		return
	}
	if width <= 0 || height <= 0 {
		log.Printf("[Scene] Redimensionamento ignorado: %dx%d", width, height)
		return
	}
	h.Camera.SetAspect(float32(width) / float32(height))
	h.device.SetSize(width, height)
}

// teardown libera tudo que Init alocou. Chamadas repetidas são ignoradas.
func (h *Handle) teardown() {
	if h.closed {
		return
	}
	h.closed = true

	h.sched.CancelFrame(h.frameID)
	if h.unobserve != nil {
		h.unobserve()
	}
	h.Controls.Dispose()
	h.ClearBatches()
	h.device.Dispose()
	h.surface.Detach(h.device)

	h.World = nil
	h.Camera = nil
	h.Controls = nil
	h.device = nil
	h.surface = nil
	h.sched = nil
	h.unobserve = nil

	log.Printf("[Scene] Cena finalizada após %d frames", h.frames)
}

// Closed informa se o teardown já foi executado.
func (h *Handle) Closed() bool {
	return h.closed
}

// FrameCount retorna quantos frames foram desenhados.
func (h *Handle) FrameCount() uint64 {
	return h.frames
}

// Device retorna o renderizador (nil após o teardown).
func (h *Handle) Device() Device {
	return h.device
}

// Batches retorna o lote de faces e o de arestas atualmente na cena (nil se vazio).
func (h *Handle) Batches() (*InstancedMesh, *LineSegments) {
	return h.faces, h.edges
}

// SetBatches insere um novo par de lotes no mundo. O par anterior precisa ter
// sido liberado antes (ClearBatches): trocar sem liberar vazaria GPU.
func (h *Handle) SetBatches(faces *InstancedMesh, edges *LineSegments) error {
	if h.closed {
		return ErrSceneClosed
	}
	if h.faces != nil || h.edges != nil {
		return errors.New("scene: lote anterior ainda não foi liberado")
	}
	if faces != nil {
		h.World.Add(faces)
		h.faces = faces
	}
	if edges != nil {
		h.World.Add(edges)
		h.edges = edges
	}
	return nil
}

// ClearBatches remove o par de lotes atual do mundo e libera geometria e material.
func (h *Handle) ClearBatches() {
	if h.faces != nil {
		h.World.Remove(h.faces)
		h.faces.Dispose()
		h.faces = nil
	}
	if h.edges != nil {
		h.World.Remove(h.edges)
		h.edges.Dispose()
		h.edges = nil
	}
}

// ResetView volta a câmera para a posição inicial olhando para a origem.
func (h *Handle) ResetView() error {
	if h.closed {
		return ErrSceneClosed
	}
	h.Controls.Reset()
	h.Camera.Position = CameraStart
	h.Controls.SetTarget(mgl32.Vec3{})
	return nil
}
