package camera

import (
	"math"

	"VoxelVision/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// PointerState é o estado do ponteiro acumulado desde o último frame.
type PointerState struct {
	DeltaX, DeltaY float32 // Movimento em pixels
	Rotate         bool    // Botão de órbita pressionado
	Pan            bool    // Botão de arraste pressionado
	Wheel          float32 // Rolagem (positivo = aproximar)
}

// PointerSource fornece o input do ponteiro da superfície de desenho.
type PointerSource interface {
	Pointer() PointerState
}

// OrbitControls gira, aproxima e arrasta a câmera ao redor de um ponto de foco.
// Segue o estilo do controlador antigo: deltas alvo aplicados com amortecimento
// independente de frame rate (normalizado para 60 FPS).
type OrbitControls struct {
	camera *Perspective
	input  PointerSource

	// Ponto de foco da órbita
	Target mgl32.Vec3

	// Configurações
	EnableDamping bool
	DampingFactor float32 // 0.0 a 1.0 (quanto menor, mais inércia)
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32

	// Deltas pendentes (consumidos aos poucos quando há amortecimento)
	thetaDelta float32
	phiDelta   float32
	panOffset  mgl32.Vec3
	scale      float32

	disposed bool
}

// NewOrbitControls cria controles de órbita para a câmera, lendo o ponteiro de input.
// input pode ser nil (câmera controlada apenas por código).
func NewOrbitControls(cam *Perspective, input PointerSource) *OrbitControls {
	return &OrbitControls{
		camera:        cam,
		input:         input,
		Target:        cam.Target,
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1.0,
		ZoomSpeed:     1.0,
		PanSpeed:      1.0,
		MinDistance:   0.5,
		MaxDistance:   500,
		scale:         1,
	}
}

// SetTarget move o foco da órbita e aplica a mudança imediatamente (sem suavização).
func (c *OrbitControls) SetTarget(target mgl32.Vec3) {
	c.Target = target
	c.apply(0)
}

// Reset descarta a inércia pendente (rotação, pan e zoom ainda não aplicados).
func (c *OrbitControls) Reset() {
	c.thetaDelta, c.phiDelta = 0, 0
	c.panOffset = mgl32.Vec3{}
	c.scale = 1
}

// Disposed informa se os controles já foram liberados.
func (c *OrbitControls) Disposed() bool {
	return c.disposed
}

// Dispose solta o input e zera o estado interno. Update vira no-op depois disso.
func (c *OrbitControls) Dispose() {
	c.input = nil
	c.camera = nil
	c.Reset()
	c.disposed = true
}

// Update consome o input do frame e reposiciona a câmera. Deve ser chamado a cada frame.
// Retorna true se a câmera se moveu.
func (c *OrbitControls) Update(dt float32) bool {
	if c.disposed || c.camera == nil {
		return false
	}

	if c.input != nil {
		c.handleInput(c.input.Pointer())
	}
	return c.apply(dt)
}

// apply aplica os deltas pendentes e recalcula a posição da câmera.
func (c *OrbitControls) apply(dt float32) bool {
	if c.disposed || c.camera == nil {
		return false
	}

	factor := float32(1.0)
	if c.EnableDamping {
		factor = c.DampingFactor * 60.0 * dt // Normaliza para 60 FPS
		if factor > 1.0 {
			factor = 1.0
		}
	}

	// Converte a posição relativa ao foco para coordenadas esféricas
	offset := c.camera.Position.Sub(c.Target)
	radius := offset.Len()
	if radius < 1e-6 {
		offset = mgl32.Vec3{0, 0, 1}
		radius = c.MinDistance
	}
	theta := float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	phi := float32(math.Acos(float64(clamp(offset.Y()/offset.Len(), -1, 1))))

	oldPos := c.camera.Position

	theta += c.thetaDelta * factor
	phi += c.phiDelta * factor
	// Evita virar a câmera de ponta cabeça nos polos
	phi = clamp(phi, 1e-3, math.Pi-1e-3)

	radius *= c.scale
	radius = clamp(radius, c.MinDistance, c.MaxDistance)

	c.Target = c.Target.Add(c.panOffset.Mul(factor))

	sinPhi := float32(math.Sin(float64(phi)))
	offset = mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	}
	c.camera.Position = c.Target.Add(offset)
	c.camera.LookAt(c.Target)

	if c.EnableDamping {
		c.thetaDelta *= 1 - factor
		c.phiDelta *= 1 - factor
		c.panOffset = c.panOffset.Mul(1 - factor)
	} else {
		c.thetaDelta, c.phiDelta = 0, 0
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1

	return util.DistSq(oldPos, c.camera.Position) > 1e-8
}

// handleInput acumula os deltas do ponteiro. Rotação com o botão de órbita,
// arraste no plano da câmera com o botão de pan e zoom com a roda.
func (c *OrbitControls) handleInput(p PointerState) {
	if p.Rotate {
		c.thetaDelta -= p.DeltaX * c.RotateSpeed * 0.005
		c.phiDelta -= p.DeltaY * c.RotateSpeed * 0.005
	}

	if p.Pan && (p.DeltaX != 0 || p.DeltaY != 0) {
		forward := c.Target.Sub(c.camera.Position)
		dist := forward.Len()
		if dist > 0 {
			forward = forward.Mul(1 / dist)
			right := forward.Cross(c.camera.Up).Normalize()
			up := right.Cross(forward).Normalize()
			panScale := dist * 0.002 * c.PanSpeed
			c.panOffset = c.panOffset.
				Add(right.Mul(-p.DeltaX * panScale)).
				Add(up.Mul(p.DeltaY * panScale))
		}
	}

	if p.Wheel != 0 {
		c.scale *= float32(math.Pow(0.95, float64(p.Wheel*c.ZoomSpeed)))
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
