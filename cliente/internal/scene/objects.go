package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifica o tipo de um objeto do grafo.
type Kind int

const (
	KindAmbientLight Kind = iota
	KindDirectionalLight
	KindInstancedMesh
	KindLineSegments
)

func (k Kind) String() string {
	switch k {
	case KindAmbientLight:
		return "AmbientLight"
	case KindDirectionalLight:
		return "DirectionalLight"
	case KindInstancedMesh:
		return "InstancedMesh"
	case KindLineSegments:
		return "LineSegments"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Object é qualquer nó que pode ser adicionado ao World.
type Object interface {
	Kind() Kind
}

// AmbientLight ilumina todas as faces por igual.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

func (*AmbientLight) Kind() Kind { return KindAmbientLight }

// DirectionalLight ilumina a partir de Position em direção à origem.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Position  mgl32.Vec3
}

func (*DirectionalLight) Kind() Kind { return KindDirectionalLight }

// Direction retorna a direção (normalizada) em que a luz viaja.
func (l *DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}

// InstancedMesh desenha Count cópias da mesma geometria com um único draw call.
type InstancedMesh struct {
	Geometry *Geometry
	Material *Material

	matrices []mgl32.Mat4
}

// NewInstancedMesh cria o lote com exatamente count instâncias (identidade).
// count negativo é erro de programação.
func NewInstancedMesh(g *Geometry, m *Material, count int) *InstancedMesh {
	if count < 0 {
		panic(fmt.Sprintf("scene: contagem de instâncias inválida: %d", count))
	}
	matrices := make([]mgl32.Mat4, count)
	for i := range matrices {
		matrices[i] = mgl32.Ident4()
	}
	return &InstancedMesh{Geometry: g, Material: m, matrices: matrices}
}

func (*InstancedMesh) Kind() Kind { return KindInstancedMesh }

// Count retorna o número de instâncias.
func (m *InstancedMesh) Count() int { return len(m.matrices) }

// SetMatrixAt define a transformação da instância i.
func (m *InstancedMesh) SetMatrixAt(i int, mat mgl32.Mat4) { m.matrices[i] = mat }

// MatrixAt retorna a transformação da instância i.
func (m *InstancedMesh) MatrixAt(i int) mgl32.Mat4 { return m.matrices[i] }

// Matrices expõe o buffer de transformações (somente leitura para o Device).
func (m *InstancedMesh) Matrices() []mgl32.Mat4 { return m.matrices }

// Dispose libera a geometria e o material do lote.
func (m *InstancedMesh) Dispose() {
	m.Geometry.Dispose()
	m.Material.Dispose()
}

// LineSegments desenha pares de vértices como segmentos de reta.
type LineSegments struct {
	Geometry *Geometry
	Material *Material
}

// NewLineSegments cria um lote de segmentos. Positions deve ter pares de vértices.
func NewLineSegments(g *Geometry, m *Material) *LineSegments {
	return &LineSegments{Geometry: g, Material: m}
}

func (*LineSegments) Kind() Kind { return KindLineSegments }

// Dispose libera a geometria e o material do lote.
func (l *LineSegments) Dispose() {
	l.Geometry.Dispose()
	l.Material.Dispose()
}
