// Package voxel define as coordenadas de voxel trocadas entre backend, servidor e visualizador.
package voxel

import "fmt"

// Coord representa um voxel (cubo unitário) em uma célula inteira da grade.
// Não carrega tipo de bloco: apenas posição.
type Coord struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// NewCoord cria uma nova coordenada.
func NewCoord(x, y, z int32) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub subtrai duas coordenadas.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

// Extent retorna o tamanho em voxels da caixa [lo, hi] (inclusiva).
func Extent(lo, hi Coord) Coord {
	return hi.Sub(lo).Add(Coord{1, 1, 1})
}

// String retorna a representação em string da coordenada.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Structure é o resultado de uma geração: o prompt de origem e a lista de voxels.
type Structure struct {
	Prompt string
	Voxels []Coord
}

// Bounds retorna o menor e o maior canto da caixa que envolve os voxels.
// ok é false para uma lista vazia.
func Bounds(coords []Coord) (lo, hi Coord, ok bool) {
	if len(coords) == 0 {
		return Coord{}, Coord{}, false
	}
	lo, hi = coords[0], coords[0]
	for _, c := range coords[1:] {
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
		lo.Z, hi.Z = min(lo.Z, c.Z), max(hi.Z, c.Z)
	}
	return lo, hi, true
}
