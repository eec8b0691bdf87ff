package render

import (
	"VoxelVision/cliente/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// lineBuffer é um lote de segmentos já residente na GPU.
type lineBuffer struct {
	vao, vbo uint32
	vertices int32
}

// lineBackend envia e desenha buffers de segmentos. A raylib só desenha
// malhas como triângulos, então o backend real fala OpenGL direto.
type lineBackend interface {
	upload(positions []float32) lineBuffer
	draw(buf lineBuffer, mvp mgl32.Mat4, color [4]float32)
	release(buf lineBuffer)
	close()
}

// lineBatches guarda um buffer de GPU por geometria de arestas. O upload
// acontece no primeiro desenho e o buffer é liberado no Dispose da geometria;
// cada lote vira um único draw call de GL_LINES.
type lineBatches struct {
	backend lineBackend
	buffers map[*scene.Geometry]lineBuffer
	closed  bool
}

func newLineBatches(backend lineBackend) *lineBatches {
	return &lineBatches{
		backend: backend,
		buffers: make(map[*scene.Geometry]lineBuffer),
	}
}

// draw desenha o lote, enviando a geometria para a GPU se for a primeira vez.
func (lb *lineBatches) draw(lines *scene.LineSegments, mvp mgl32.Mat4) {
	g := lines.Geometry
	if lb.closed || g.Disposed() || lines.Material.Disposed() || g.VertexCount() < 2 {
		return
	}
	buf, ok := lb.buffers[g]
	if !ok {
		buf = lb.backend.upload(g.Positions)
		lb.buffers[g] = buf
		g.OnDispose(func() { lb.release(g) })
	}
	lb.backend.draw(buf, mvp, lines.Material.Color.Floats())
}

func (lb *lineBatches) release(g *scene.Geometry) {
	buf, ok := lb.buffers[g]
	if !ok {
		return
	}
	delete(lb.buffers, g)
	lb.backend.release(buf)
}

// live retorna quantos lotes de arestas estão na GPU.
func (lb *lineBatches) live() int {
	return len(lb.buffers)
}

// dispose libera todos os buffers e o programa de linhas.
func (lb *lineBatches) dispose() {
	if lb.closed {
		return
	}
	for g := range lb.buffers {
		lb.release(g)
	}
	lb.backend.close()
	lb.closed = true
}
