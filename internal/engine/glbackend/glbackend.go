// Package glbackend implements render.Backend on OpenGL 4.1 core.
package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Backend issues GL calls on the current context.
type Backend struct{}

// New loads GL function pointers for the current context.
// IMPORTANT: Must be called AFTER the OpenGL context is created and made current!
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", render.ErrNoContext, err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return &Backend{}, nil
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", render.ErrLink, log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %w: %s", name, render.ErrCompile, log)
	}

	return shader, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return gl.GoStr(&buf[0])
}

func (b *Backend) UseProgram(program uint32) { gl.UseProgram(program) }

func (b *Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) UniformMatrix4(loc int32, m math.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

func (b *Backend) Uniform4f(loc int32, v [4]float32) { gl.Uniform4fv(loc, 1, &v[0]) }
func (b *Backend) Uniform3f(loc int32, v [3]float32) { gl.Uniform3fv(loc, 1, &v[0]) }
func (b *Backend) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (b *Backend) Uniform1i(loc int32, v int32)      { gl.Uniform1i(loc, v) }

func (b *Backend) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (b *Backend) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (b *Backend) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (b *Backend) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (b *Backend) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (b *Backend) BindArrayBuffer(buf uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, buf) }

func (b *Backend) BindElementBuffer(buf uint32) { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf) }

func (b *Backend) ArrayBufferData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
}

func (b *Backend) ElementBufferData(data []uint16) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
}

func (b *Backend) VertexAttribPointer(slot uint32, size int32) {
	gl.EnableVertexAttribArray(slot)
	gl.VertexAttribPointer(slot, size, gl.FLOAT, false, 0, nil)
}

func (b *Backend) DrawElements(mode render.Primitive, count int32) {
	glMode := uint32(gl.TRIANGLES)
	if mode == render.Lines {
		glMode = gl.LINES
	}
	gl.DrawElements(glMode, count, gl.UNSIGNED_SHORT, nil)
}

func (b *Backend) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (b *Backend) SetClearColor(c [4]float32) { gl.ClearColor(c[0], c[1], c[2], c[3]) }

func (b *Backend) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (b *Backend) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (b *Backend) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

var _ render.Backend = (*Backend)(nil)
