package core

import (
	"log/slog"

	"github.com/hubastard/ember/engine/colors"
)

// Engine owns the window, renderer and script runtime for one session.
// Exactly one exists per run; everything happens on the main thread.
type Engine struct {
	Window   Window
	Renderer Renderer
	Script   Script
	Log      *slog.Logger

	width, height float32
	lastTime      float64
	running       bool
}

// Window abstraction over the platform layer. Input is polled on
// demand; there is no event buffering.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	KeyDown(k Key) bool
	CursorPos() (x, y float64)
	Time() float64 // seconds since platform init
	Terminate()
}

// Renderer abstraction: immediate-mode primitives only. Each primitive
// call is self-contained; no GPU resource it creates outlives the call.
type Renderer interface {
	Resize(w, h int)
	SetClearColor(c colors.Color)
	ClearColor() colors.Color
	Clear()
	Rect(x, y, w, h float32, c colors.Color)
	Circle(x, y, radius float32, c colors.Color)
	Line(x1, y1, x2, y2 float32, c colors.Color)
	Text(s string, x, y float32)
	Shutdown()
}

// Script is the user-code callback surface the engine drives each
// frame: init() once, then loop(dt) and window() per frame.
type Script interface {
	Init() error
	Loop(dt float64) error
	Window() error
	Close()
}

// --- script binding surface ---
//
// These methods implement script.Host. The binding registry holds the
// Engine behind that interface instead of reaching into a global.

func (e *Engine) Rect(x, y, w, h, r, g, b, a float64) {
	e.Renderer.Rect(float32(x), float32(y), float32(w), float32(h), colors.FromRGBA(r, g, b, a))
}

func (e *Engine) Circle(x, y, radius, r, g, b, a float64) {
	e.Renderer.Circle(float32(x), float32(y), float32(radius), colors.FromRGBA(r, g, b, a))
}

func (e *Engine) Line(x1, y1, x2, y2, r, g, b, a float64) {
	e.Renderer.Line(float32(x1), float32(y1), float32(x2), float32(y2), colors.FromRGBA(r, g, b, a))
}

func (e *Engine) Text(s string, x, y float64) {
	e.Renderer.Text(s, float32(x), float32(y))
}

// KeyDown reports the live state of the named key. Unknown names keep
// the historical alias-to-space behavior.
func (e *Engine) KeyDown(name string) bool {
	k, _ := LookupKey(name)
	return e.Window.KeyDown(k)
}

func (e *Engine) CursorPos() (float64, float64) {
	return e.Window.CursorPos()
}

// SetClearColor sets the background used by the per-frame clear.
// Alpha is always opaque.
func (e *Engine) SetClearColor(r, g, b float64) {
	e.Renderer.SetClearColor(colors.FromRGB(r, g, b))
}

func (e *Engine) ClearColor() (r, g, b float64) {
	c := e.Renderer.ClearColor()
	return float64(c[0]), float64(c[1]), float64(c[2])
}

// WindowSize reports the logical dimensions drawing coordinates are
// expressed in.
func (e *Engine) WindowSize() (w, h float64) {
	return float64(e.width), float64(e.height)
}
