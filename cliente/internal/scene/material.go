package scene

import "fmt"

// Color é uma cor RGBA de 8 bits por canal.
type Color struct {
	R, G, B, A uint8
}

// Hex converte 0xRRGGBB em uma cor opaca.
func Hex(rgb uint32) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}
}

// Floats retorna os canais normalizados (0..1), usados como uniforms de shader.
func (c Color) Floats() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// String retorna a cor no formato #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MaterialKind define o modelo de shading.
type MaterialKind int

const (
	MaterialLambert   MaterialKind = iota // Difuso com luz ambiente + direcional
	MaterialLineBasic                     // Linhas de cor sólida, sem luz
)

// Material descreve como uma geometria é pintada.
type Material struct {
	resource

	Kind  MaterialKind
	Color Color

	// Deslocamento de profundidade: empurra as faces para trás para que as
	// arestas coplanares desenhadas depois não briguem no z-buffer.
	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	LineWidth float32
}

// NewLambertMaterial cria um material difuso de cor única.
func NewLambertMaterial(c Color) *Material {
	return &Material{Kind: MaterialLambert, Color: c}
}

// NewLineMaterial cria um material de linha sólida.
func NewLineMaterial(c Color) *Material {
	return &Material{Kind: MaterialLineBasic, Color: c, LineWidth: 1}
}
