// Package script embeds the Lua runtime and installs the host binding
// surface user games draw and read input through.
//
// The callback contract: the script defines init() (run once at
// bootstrap), loop(dt) (every frame before the clear) and window()
// (every frame after the clear, where draw calls belong).
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Host is everything a script can reach: immediate drawing, live input
// queries, and clear-color/window-size state. core.Engine implements
// it; tests substitute a recording fake.
type Host interface {
	Rect(x, y, w, h, r, g, b, a float64)
	Circle(x, y, radius, r, g, b, a float64)
	Line(x1, y1, x2, y2, r, g, b, a float64)
	Text(s string, x, y float64)
	KeyDown(name string) bool
	CursorPos() (x, y float64)
	SetClearColor(r, g, b float64)
	ClearColor() (r, g, b float64)
	WindowSize() (w, h float64)
}

// Env wraps one Lua state running a single game script.
type Env struct {
	l *lua.LState
}

// NewEnv starts a Lua state with the standard library, installs the
// host namespaces, and runs the script's top-level code. A failure
// here is fatal to bootstrap; per-frame callbacks are more forgiving.
func NewEnv(host Host, source string) (*Env, error) {
	L := lua.NewState()
	register(L, host)
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	return &Env{l: L}, nil
}

// Init runs the script's init() once.
func (e *Env) Init() error { return e.call("init") }

// Loop runs loop(dt), the pre-clear update callback.
func (e *Env) Loop(dt float64) error { return e.call("loop", lua.LNumber(dt)) }

// Window runs window(), the draw-phase callback.
func (e *Env) Window() error { return e.call("window") }

func (e *Env) Close() { e.l.Close() }

// call invokes a global function in protected mode. A missing global
// is reported the same way Lua would: calling a nil value errors.
func (e *Env) call(name string, args ...lua.LValue) error {
	fn := e.l.GetGlobal(name)
	err := e.l.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
