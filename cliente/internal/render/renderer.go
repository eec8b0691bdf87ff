package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"log"
	"unsafe"

	"VoxelVision/cliente/internal/camera"
	"VoxelVision/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrNoWindow indica que não há contexto OpenGL (janela não inicializada).
	ErrNoWindow = errors.New("render: janela não inicializada")
	// ErrShader indica falha ao compilar o shader de voxels.
	ErrShader = errors.New("render: falha ao compilar shader")
)

// Renderer implementa scene.Device sobre a raylib. Desenha em uma
// RenderTexture do tamanho do buffer; a Window apresenta essa textura.
type Renderer struct {
	width, height int
	target        rl.RenderTexture2D

	shader       rl.Shader
	faceMaterial rl.Material

	ambientLoc     int32
	lightDirLoc    int32
	lightColorLoc  int32
	depthOffsetLoc int32

	// Geometrias já enviadas para a GPU. A entrada some quando a geometria recebe Dispose.
	meshes    map[*scene.Geometry]rl.Mesh
	instances instanceBuffer

	// Lotes de arestas, um buffer de GL_LINES por geometria
	lines *lineBatches

	// Grade de referência no plano y=0
	ShowGrid bool

	disposed bool
}

var _ scene.Device = (*Renderer)(nil)

// NewRenderer cria o renderizador com um buffer de saída width x height.
// Exige a janela raylib já aberta.
func NewRenderer(width, height int) (*Renderer, error) {
	if !rl.IsWindowReady() {
		return nil, ErrNoWindow
	}

	r := &Renderer{
		width:  width,
		height: height,
		meshes: make(map[*scene.Geometry]rl.Mesh),
	}

	r.shader = rl.LoadShaderFromMemory(voxelInstancedVertexShader, voxelLambertFragmentShader)
	if r.shader.ID == 0 {
		return nil, ErrShader
	}

	// instanceTransform ocupa o slot de matriz de modelo usado por DrawMeshInstanced
	r.shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(r.shader, "mvp"))
	r.shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(r.shader, "instanceTransform"))
	r.shader.UpdateLocation(rl.ShaderLocColorDiffuse, rl.GetShaderLocation(r.shader, "colDiffuse"))

	r.ambientLoc = rl.GetShaderLocation(r.shader, "ambientColor")
	r.lightDirLoc = rl.GetShaderLocation(r.shader, "lightDir")
	r.lightColorLoc = rl.GetShaderLocation(r.shader, "lightColor")
	r.depthOffsetLoc = rl.GetShaderLocation(r.shader, "depthOffset")

	gll, err := newGLLines()
	if err != nil {
		rl.UnloadShader(r.shader)
		return nil, err
	}
	r.lines = newLineBatches(gll)

	r.faceMaterial = rl.LoadMaterialDefault()
	r.faceMaterial.Shader = r.shader

	r.target = rl.LoadRenderTexture(int32(width), int32(height))

	log.Printf("[Renderer] Device criado (%dx%d)", width, height)
	return r, nil
}

// SetSize recria o buffer de saída com o novo tamanho.
func (r *Renderer) SetSize(width, height int) {
	if r.disposed || (width == r.width && height == r.height) {
		return
	}
	rl.UnloadRenderTexture(r.target)
	r.target = rl.LoadRenderTexture(int32(width), int32(height))
	r.width, r.height = width, height
}

// Size retorna o tamanho do buffer de saída.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Texture retorna a textura com o último frame desenhado.
func (r *Renderer) Texture() rl.Texture2D {
	return r.target.Texture
}

// Render desenha o mundo no buffer de saída.
func (r *Renderer) Render(world *scene.World, cam *camera.Perspective) {
	if r.disposed {
		return
	}

	objects := world.Objects()
	r.applyLights(objects)

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(toColor(world.Background))

	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	})
	// A raylib fixa near/far; usamos a projeção da própria câmera
	rl.SetMatrixProjection(toMatrix(cam.Projection()))

	// PASS 1: faces (com deslocamento de profundidade)
	for _, obj := range objects {
		if mesh, ok := obj.(*scene.InstancedMesh); ok {
			r.drawInstanced(mesh)
		}
	}

	// PASS 2: arestas
	mvp := cam.Projection().Mul4(cam.View())
	for _, obj := range objects {
		if lines, ok := obj.(*scene.LineSegments); ok {
			r.lines.draw(lines, mvp)
		}
	}

	if r.ShowGrid {
		rl.DrawGrid(40, 1.0)
	}

	rl.EndMode3D()
	rl.EndTextureMode()
}

func (r *Renderer) applyLights(objects []scene.Object) {
	var ambient [3]float32
	dirs := make([]float32, 0, maxDirLights*3)
	colors := make([]float32, 0, maxDirLights*3)

	n := 0
	for _, obj := range objects {
		switch l := obj.(type) {
		case *scene.AmbientLight:
			c := l.Color.Floats()
			for i := 0; i < 3; i++ {
				ambient[i] += c[i] * l.Intensity
			}
		case *scene.DirectionalLight:
			if n == maxDirLights {
				continue
			}
			d := l.Direction()
			c := l.Color.Floats()
			dirs = append(dirs, d[0], d[1], d[2])
			colors = append(colors, c[0]*l.Intensity, c[1]*l.Intensity, c[2]*l.Intensity)
			n++
		}
	}
	for ; n < maxDirLights; n++ {
		dirs = append(dirs, 0, -1, 0)
		colors = append(colors, 0, 0, 0)
	}

	rl.SetShaderValue(r.shader, r.ambientLoc, ambient[:], rl.ShaderUniformVec3)
	rl.SetShaderValueV(r.shader, r.lightDirLoc, dirs, rl.ShaderUniformVec3, maxDirLights)
	rl.SetShaderValueV(r.shader, r.lightColorLoc, colors, rl.ShaderUniformVec3, maxDirLights)
}

func (r *Renderer) drawInstanced(batch *scene.InstancedMesh) {
	if batch.Count() == 0 || batch.Geometry.Disposed() || batch.Material.Disposed() {
		return
	}
	mesh := r.mesh(batch.Geometry)

	offset := []float32{0, 0}
	if batch.Material.PolygonOffset {
		offset[0] = batch.Material.PolygonOffsetFactor
		offset[1] = batch.Material.PolygonOffsetUnits
	}
	rl.SetShaderValue(r.shader, r.depthOffsetLoc, offset, rl.ShaderUniformVec2)

	maps := unsafe.Slice(r.faceMaterial.Maps, rl.MapDiffuse+1)
	maps[rl.MapDiffuse].Color = toColor(batch.Material.Color)

	transforms := r.instances.fill(batch)
	rl.DrawMeshInstanced(mesh, r.faceMaterial, transforms, len(transforms))
}

// mesh retorna a malha na GPU da geometria, enviando-a no primeiro uso.
func (r *Renderer) mesh(g *scene.Geometry) rl.Mesh {
	if m, ok := r.meshes[g]; ok {
		return m
	}
	m := geometryToMesh(g)
	rl.UploadMesh(&m, false)
	r.meshes[g] = m
	g.OnDispose(func() { r.unloadMesh(g) })
	return m
}

func (r *Renderer) unloadMesh(g *scene.Geometry) {
	m, ok := r.meshes[g]
	if !ok {
		return
	}
	delete(r.meshes, g)
	rl.UnloadMesh(&m)
}

// Dispose libera todas as malhas, os lotes de arestas, os shaders e o buffer de saída.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	for g := range r.meshes {
		r.unloadMesh(g)
	}
	r.lines.dispose()
	// UnloadMaterial também descarrega o shader associado
	rl.UnloadMaterial(r.faceMaterial)
	rl.UnloadRenderTexture(r.target)
	r.disposed = true
	log.Println("[Renderer] Device liberado")
}

// geometryToMesh copia os buffers da geometria para memória C, que a raylib
// libera em UnloadMesh.
func geometryToMesh(g *scene.Geometry) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(g.VertexCount())
	if len(g.Indices) > 0 {
		mesh.TriangleCount = int32(len(g.Indices) / 3)
	} else {
		mesh.TriangleCount = mesh.VertexCount / 3
	}

	if len(g.Positions) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&g.Positions[0]), len(g.Positions)*4))
	}
	if len(g.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&g.Normals[0]), len(g.Normals)*4))
	}
	if len(g.Indices) > 0 {
		mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&g.Indices[0]), len(g.Indices)*2))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}
