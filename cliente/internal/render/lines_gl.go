package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glLines desenha lotes de segmentos com VAO próprio no contexto da raylib.
type glLines struct {
	program  uint32
	mvpLoc   int32
	colorLoc int32
}

var _ lineBackend = (*glLines)(nil)

// newGLLines carrega as funções do OpenGL do contexto atual e compila o
// programa de linhas. Exige a janela raylib já aberta.
func newGLLines() (*glLines, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: falha ao carregar OpenGL: %w", err)
	}
	prog, err := newProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%w: linhas: %v", ErrShader, err)
	}
	return &glLines{
		program:  prog,
		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		colorLoc: gl.GetUniformLocation(prog, gl.Str("lineColor\x00")),
	}, nil
}

func (l *glLines) upload(positions []float32) lineBuffer {
	buf := lineBuffer{vertices: int32(len(positions) / 3)}

	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	gl.BindVertexArray(buf.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return buf
}

func (l *glLines) draw(buf lineBuffer, mvp mgl32.Mat4, color [4]float32) {
	// Descarrega o lote interno da raylib antes de mexer no estado do OpenGL
	rl.DrawRenderBatchActive()

	gl.UseProgram(l.program)
	gl.UniformMatrix4fv(l.mvpLoc, 1, false, &mvp[0])
	gl.Uniform4fv(l.colorLoc, 1, &color[0])

	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.LINES, 0, buf.vertices)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (l *glLines) release(buf lineBuffer) {
	gl.DeleteBuffers(1, &buf.vbo)
	gl.DeleteVertexArrays(1, &buf.vao)
}

func (l *glLines) close() {
	gl.DeleteProgram(l.program)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return shader, nil
}
