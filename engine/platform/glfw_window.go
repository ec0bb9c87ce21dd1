package platform

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/ember/engine/core"
)

// GLFWWindow implements core.Window. Input is exposed as on-demand
// state queries; the engine polls each frame rather than consuming
// buffered events.
type GLFWWindow struct {
	w *glfw.Window
}

// Must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	cfg.Logger().Info("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	return &GLFWWindow{w: win}, nil
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                 { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }
func (g *GLFWWindow) Time() float64               { return glfw.GetTime() }

func (g *GLFWWindow) KeyDown(k core.Key) bool {
	return g.w.GetKey(translateKey(k)) == glfw.Press
}

func (g *GLFWWindow) CursorPos() (float64, float64) {
	return g.w.GetCursorPos()
}

func (g *GLFWWindow) Terminate() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k core.Key) glfw.Key {
	switch k {
	case core.KeySpace:
		return glfw.KeySpace
	case core.KeyUp:
		return glfw.KeyUp
	case core.KeyDown:
		return glfw.KeyDown
	case core.KeyLeft:
		return glfw.KeyLeft
	case core.KeyRight:
		return glfw.KeyRight
	case core.KeyA:
		return glfw.KeyA
	case core.KeyD:
		return glfw.KeyD
	case core.KeyW:
		return glfw.KeyW
	case core.KeyS:
		return glfw.KeyS
	case core.KeyEscape:
		return glfw.KeyEscape
	default:
		return glfw.KeySpace
	}
}
