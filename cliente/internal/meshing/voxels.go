// Package meshing converte listas de coordenadas de voxel em lotes de geometria da cena.
package meshing

import (
	"fmt"
	"log"
	"sync"

	"VoxelVision/cliente/internal/scene"
	"VoxelVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Cores dos lotes de voxel.
var (
	FaceColor = scene.Hex(0x4ade80) // Verde vibrante
	EdgeColor = scene.Hex(0x000000)
)

// FloatsPerCube é o tamanho do contorno de um voxel no buffer de arestas (24 vértices × 3).
const FloatsPerCube = 72

// cubeEdges é o contorno de um cubo unitário centrado na origem, calculado uma vez.
var cubeEdges = sync.OnceValue(unitCubeEdges)

// unitCubeEdges deriva as 12 arestas (24 vértices) do cubo unitário: pares de
// cantos que diferem em exatamente um eixo. Sem diagonais de face.
func unitCubeEdges() []float32 {
	var corners [8]mgl32.Vec3
	for i := range corners {
		corners[i] = mgl32.Vec3{
			float32(i&1) - 0.5,
			float32(i>>1&1) - 0.5,
			float32(i>>2&1) - 0.5,
		}
	}

	edges := make([]float32, 0, FloatsPerCube)
	for a := 0; a < 8; a++ {
		for axis := 0; axis < 3; axis++ {
			b := a | 1<<axis
			if b == a {
				continue
			}
			edges = append(edges, corners[a][:]...)
			edges = append(edges, corners[b][:]...)
		}
	}
	if len(edges) != FloatsPerCube {
		panic(fmt.Sprintf("meshing: contorno do cubo com %d floats", len(edges)))
	}
	return edges
}

// Centroid retorna a média aritmética das coordenadas. ok é false para lista vazia.
func Centroid(coords []voxel.Coord) (c [3]float64, ok bool) {
	if len(coords) == 0 {
		return c, false
	}
	var sx, sy, sz float64
	for _, v := range coords {
		sx += float64(v.X)
		sy += float64(v.Y)
		sz += float64(v.Z)
	}
	n := float64(len(coords))
	return [3]float64{sx / n, sy / n, sz / n}, true
}

// offset retorna a posição do voxel relativa ao centróide.
func offset(v voxel.Coord, c [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(float64(v.X) - c[0]),
		float32(float64(v.Y) - c[1]),
		float32(float64(v.Z) - c[2]),
	}
}

// Rebuild substitui a estrutura exibida na cena pela lista de coordenadas.
//
// O par de lotes anterior é sempre removido e liberado antes de qualquer
// construção, inclusive para lista vazia (que apenas limpa a cena). Em seguida
// a estrutura é centralizada no centróide, o lote de faces (instanciado) e o de
// arestas (um único buffer de segmentos) são inseridos e o foco da órbita volta
// para a origem.
func Rebuild(coords []voxel.Coord, h *scene.Handle) error {
	if h == nil || h.Closed() {
		return scene.ErrSceneClosed
	}

	h.ClearBatches()

	center, ok := Centroid(coords)
	if !ok {
		log.Println("[Meshing] Lista vazia: cena limpa")
		return nil
	}

	faces := buildFaces(coords, center)
	edges := buildEdges(coords, center)
	if err := h.SetBatches(faces, edges); err != nil {
		faces.Dispose()
		edges.Dispose()
		return fmt.Errorf("meshing: falha ao inserir lotes: %w", err)
	}

	h.Controls.SetTarget(mgl32.Vec3{})

	log.Printf("[Meshing] %d voxels (centro %.2f, %.2f, %.2f)", len(coords), center[0], center[1], center[2])
	return nil
}

// buildFaces cria o lote instanciado: uma caixa unitária, um material, uma
// translação pura por voxel.
func buildFaces(coords []voxel.Coord, center [3]float64) *scene.InstancedMesh {
	material := scene.NewLambertMaterial(FaceColor)
	material.PolygonOffset = true
	material.PolygonOffsetFactor = 1
	material.PolygonOffsetUnits = 1

	mesh := scene.NewInstancedMesh(scene.NewBoxGeometry(1, 1, 1), material, len(coords))
	for i, v := range coords {
		mesh.SetMatrixAt(i, mgl32.Translate3D(offset(v, center).Elem()))
	}
	return mesh
}

// buildEdges copia o contorno do cubo para cada voxel em um único buffer,
// voxel i no deslocamento i*72.
func buildEdges(coords []voxel.Coord, center [3]float64) *scene.LineSegments {
	template := cubeEdges()
	positions := make([]float32, len(coords)*FloatsPerCube)
	for i, v := range coords {
		o := offset(v, center)
		base := i * FloatsPerCube
		for j := 0; j < FloatsPerCube; j += 3 {
			positions[base+j] = template[j] + o[0]
			positions[base+j+1] = template[j+1] + o[1]
			positions[base+j+2] = template[j+2] + o[2]
		}
	}
	return scene.NewLineSegments(&scene.Geometry{Positions: positions}, scene.NewLineMaterial(EdgeColor))
}
