package scene

// Geometry guarda os buffers de vértices de uma malha na RAM.
// O Device faz o upload na primeira vez que a desenha.
type Geometry struct {
	resource

	Positions []float32 // x, y, z por vértice
	Normals   []float32 // opcional
	Indices   []uint16  // opcional (sem índices = lista direta)
}

// VertexCount retorna o número de vértices (Positions / 3).
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// boxFaces descreve as 6 faces de uma caixa: normal e os dois eixos tangentes.
var boxFaces = [6]struct {
	normal [3]float32
	u, v   [3]float32
}{
	{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},  // +X
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},  // -X
	{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},  // +Y
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},  // -Y
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},   // +Z
	{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}}, // -Z
}

// NewBoxGeometry cria uma caixa centrada na origem: 24 vértices (4 por face,
// normais planas) e 36 índices em ordem anti-horária vista de fora.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	half := [3]float32{width / 2, height / 2, depth / 2}
	g := &Geometry{
		Positions: make([]float32, 0, 24*3),
		Normals:   make([]float32, 0, 24*3),
		Indices:   make([]uint16, 0, 36),
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for f, face := range boxFaces {
		for _, c := range corners {
			for axis := 0; axis < 3; axis++ {
				p := face.normal[axis] + c[0]*face.u[axis] + c[1]*face.v[axis]
				g.Positions = append(g.Positions, p*half[axis])
			}
			g.Normals = append(g.Normals, face.normal[0], face.normal[1], face.normal[2])
		}
		base := uint16(f * 4)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
