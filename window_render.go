package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/glfractal-nav/programs"
	"github.com/stewi1014/glfractal-nav/render"
)

// Covers the whole surface with a single triangle; the parts outside clip space are clipped.
var fullSurfaceTriangle = []float32{
	-1, -1,
	3, -1,
	-1, 3,
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "notification"
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "marker"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_POP_GROUP:
		typeStr = "popGroup"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		typeStr = "pushGroup"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	log.Printf("%v(%v): %v; %v\n", sourceStr, severityStr, typeStr, message)
}

// glBackend creates drawables sharing one linked shader program.
// All methods must be called on the thread owning the GL context.
type glBackend struct {
	program      uint32
	vertexAttrib uint32
}

var _ render.Backend = (*glBackend)(nil)

func newGLBackend(program programs.Program, debug bool) (*glBackend, error) {
	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		gl.DebugMessageCallback(glDebugMessage, nil)
	}

	p, err := loadProgram(program)
	if err != nil {
		return nil, fmt.Errorf("loading program %q: %w", program.Name, err)
	}

	b := &glBackend{program: p}

	blockIndex := gl.GetUniformBlockIndex(p, gl.Str(programs.UniformBlockName+"\x00"))
	if blockIndex == gl.INVALID_INDEX {
		b.Close()
		return nil, fmt.Errorf("program %q has no %v uniform block", program.Name, programs.UniformBlockName)
	}
	gl.UniformBlockBinding(p, blockIndex, programs.UniformBinding)

	attrib := gl.GetAttribLocation(p, gl.Str("vert\x00"))
	if attrib < 0 {
		b.Close()
		return nil, fmt.Errorf("program %q has no vert attribute", program.Name)
	}
	b.vertexAttrib = uint32(attrib)

	return b, nil
}

func (b *glBackend) NewDrawable(u programs.Uniforms) (render.Drawable, error) {
	d := &glDrawable{program: b.program}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(fullSurfaceTriangle)*4, gl.Ptr(fullSurfaceTriangle), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(b.vertexAttrib)
	gl.VertexAttribPointerWithOffset(b.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	block := u.Block()
	gl.GenBuffers(1, &d.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, u.Size(), gl.Ptr(&block[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		d.Release()
		return nil, fmt.Errorf("allocating drawable: gl error 0x%x", code)
	}

	return d, nil
}

func (b *glBackend) Close() {
	gl.DeleteProgram(b.program)
}

type glDrawable struct {
	program uint32
	vao     uint32
	vbo     uint32
	ubo     uint32
}

func (d *glDrawable) Draw() {
	gl.UseProgram(d.program)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, programs.UniformBinding, d.ubo)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (d *glDrawable) Release() {
	gl.DeleteBuffers(1, &d.ubo)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	d.ubo, d.vbo, d.vao = 0, 0, 0
}

func loadProgram(program programs.Program) (uint32, error) {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	p := gl.CreateProgram()
	gl.AttachShader(p, vertexShader)
	gl.AttachShader(p, fragmentShader)
	gl.BindFragDataLocation(p, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(p, l, nil, gl.Str(log))
		gl.DeleteProgram(p)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}
