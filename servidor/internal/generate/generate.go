// Package generate produz estruturas de voxels a partir de um prompt.
package generate

import (
	"context"

	"VoxelVision/shared/voxel"
)

// TestPrompt é o atalho de demonstração que devolve uma casca oca 5x5x5.
const TestPrompt = "test"

// DefaultSchematic é o arquivo .schem reportado pelas gerações normais.
const DefaultSchematic = "test.schem"

// Output é o resultado de uma geração.
type Output struct {
	Voxels        []voxel.Coord
	SchematicPath *string // nil quando nenhum .schem foi gerado
	Test          bool
}

// Generator transforma um prompt em estrutura.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Output, error)
}

// Dummy é o gerador de desenvolvimento: "test" devolve a casca oca e
// qualquer outro prompt um único voxel na origem.
type Dummy struct{}

// Generate implementa Generator.
func (Dummy) Generate(ctx context.Context, prompt string) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if prompt == TestPrompt {
		return Output{Voxels: HollowShell(5), Test: true}, nil
	}
	path := DefaultSchematic
	return Output{Voxels: []voxel.Coord{{X: 0, Y: 0, Z: 0}}, SchematicPath: &path}, nil
}

// HollowShell retorna o chão e as quatro paredes de um cubo size^3, sem teto.
func HollowShell(size int32) []voxel.Coord {
	var out []voxel.Coord
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			for z := int32(0); z < size; z++ {
				if x == 0 || x == size-1 || z == 0 || z == size-1 || y == 0 {
					out = append(out, voxel.NewCoord(x, y, z))
				}
			}
		}
	}
	return out
}
