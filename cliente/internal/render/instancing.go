package render

import (
	"VoxelVision/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// instanceBuffer converte as matrizes de um InstancedMesh para o formato da
// raylib reaproveitando o mesmo slice entre frames (zero garbage).
type instanceBuffer struct {
	transforms []rl.Matrix
}

// fill copia as transformações do lote para o buffer e retorna o slice pronto
// para DrawMeshInstanced.
func (b *instanceBuffer) fill(mesh *scene.InstancedMesh) []rl.Matrix {
	src := mesh.Matrices()
	if cap(b.transforms) < len(src) {
		b.transforms = make([]rl.Matrix, 0, len(src))
	}
	b.transforms = b.transforms[:0]
	for _, m := range src {
		b.transforms = append(b.transforms, toMatrix(m))
	}
	return b.transforms
}

// toMatrix converte uma mgl32.Mat4 (coluna-maior) em rl.Matrix. Os dois
// usam a mesma ordem de memória: M12, M13, M14 são a translação.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func toColor(c scene.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
