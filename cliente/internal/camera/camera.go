package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective é uma câmera de projeção em perspectiva (eixo Y para cima).
type Perspective struct {
	Fov    float32 // Campo de visão vertical em graus
	Aspect float32 // Largura / altura da superfície
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Up       mgl32.Vec3
	Target   mgl32.Vec3 // Ponto para onde a câmera olha

	projection mgl32.Mat4
}

// NewPerspective cria uma câmera em perspectiva olhando para a origem.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	p := &Perspective{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
	}
	p.UpdateProjectionMatrix()
	return p
}

// SetAspect altera a proporção e recalcula a projeção imediatamente.
func (p *Perspective) SetAspect(aspect float32) {
	p.Aspect = aspect
	p.UpdateProjectionMatrix()
}

// UpdateProjectionMatrix recalcula a matriz de projeção após mudar Fov/Aspect/Near/Far.
func (p *Perspective) UpdateProjectionMatrix() {
	p.projection = mgl32.Perspective(mgl32.DegToRad(p.Fov), p.Aspect, p.Near, p.Far)
}

// Projection retorna a última matriz de projeção calculada.
func (p *Perspective) Projection() mgl32.Mat4 {
	return p.projection
}

// LookAt aponta a câmera para o alvo informado.
func (p *Perspective) LookAt(target mgl32.Vec3) {
	p.Target = target
}

// View retorna a matriz de visão (mundo -> câmera).
func (p *Perspective) View() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Target, p.Up)
}
