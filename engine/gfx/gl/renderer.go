package glbackend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/ember/engine/colors"
	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/gfx/immediate"
)

// RendererGL issues one GL draw per primitive call. The vertex buffer
// pair is created, filled and destroyed inside each call, so no GPU
// resource outlives a primitive and nothing needs central tracking.
type RendererGL struct {
	program       uint32
	projLoc       int32
	clear         colors.Color
	width, height float32
	log           *slog.Logger
}

func NewRendererGL(_ core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{
		clear:  cfg.ClearColor.WithAlpha(1),
		width:  float32(cfg.Width),
		height: float32(cfg.Height),
		log:    cfg.Logger(),
	}
	r.init()
	return r, nil
}

// init compiles the fixed primitive shader and sets blend state. A
// compile or link failure is logged and the renderer keeps the broken
// program handle: a bad shader must not take down the scripting host.
func (r *RendererGL) init() {
	prog, err := makeProgram(vertexSource, fragmentSource)
	if err != nil {
		r.log.Error("shader program", "err", err)
	}
	r.program = prog
	r.projLoc = gl.GetUniformLocation(prog, gl.Str("projection\x00"))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (r *RendererGL) Shutdown() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	r.width, r.height = float32(w), float32(h)
}

func (r *RendererGL) SetClearColor(c colors.Color) { r.clear = c.WithAlpha(1) }
func (r *RendererGL) ClearColor() colors.Color     { return r.clear }

func (r *RendererGL) Clear() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) Rect(x, y, w, h float32, c colors.Color) {
	r.draw(immediate.RectVertices(x, y, w, h, c), gl.TRIANGLE_FAN)
}

func (r *RendererGL) Circle(x, y, radius float32, c colors.Color) {
	r.draw(immediate.CircleVertices(x, y, radius, c), gl.TRIANGLE_FAN)
}

func (r *RendererGL) Line(x1, y1, x2, y2 float32, c colors.Color) {
	r.draw(immediate.LineVertices(x1, y1, x2, y2, c), gl.LINE_LOOP)
}

// Text is a stub until a font atlas lands; it records the request so
// scripts calling it still get a trace.
func (r *RendererGL) Text(s string, x, y float32) {
	r.log.Info("text", "s", s, "x", x, "y", y)
}

// draw uploads verts into a transient VAO/VBO pair, issues one draw
// call and deletes both. The projection is rebuilt from the current
// logical size each time.
func (r *RendererGL) draw(verts []float32, mode uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	const stride = immediate.Stride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.UseProgram(r.program)
	proj := immediate.Projection(r.width, r.height)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.DrawArrays(mode, 0, int32(len(verts)/immediate.Stride))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
out vec4 vColor;
uniform mat4 projection;
void main() {
    vColor = aColor;
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;
void main() {
    FragColor = vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
