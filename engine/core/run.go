package core

import "runtime"

// Run wires the platform window, renderer and script runtime together
// and executes the main loop. Factories keep the platform and graphics
// backends out of this package.
//
// Any failure before the loop starts (window/context, renderer, script
// top-level code, script init()) is fatal and returned to the caller.
// Once running, script errors are logged and the loop continues.
func Run(cfg Config,
	newWindow func(Config) (Window, error),
	newRenderer func(Window, Config) (Renderer, error),
	newScript func(*Engine) (Script, error),
) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Terminate()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	rend.Resize(cfg.Width, cfg.Height)
	rend.SetClearColor(cfg.ClearColor)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Log:      cfg.Logger(),
		width:    float32(cfg.Width),
		height:   float32(cfg.Height),
	}

	script, err := newScript(eng)
	if err != nil {
		return err
	}
	eng.Script = script
	defer script.Close()

	if err := script.Init(); err != nil {
		return err
	}

	eng.lastTime = win.Time()
	eng.running = true
	for eng.running && !win.ShouldClose() {
		eng.Frame()
	}
	eng.Log.Info("engine exit")
	return nil
}

// Frame runs one loop iteration: advance the clock, loop(dt), clear,
// window(), present, poll, then evaluate the close request. Script
// errors are logged and the rest of the frame still runs.
func (e *Engine) Frame() {
	now := e.Window.Time()
	dt := now - e.lastTime
	e.lastTime = now

	if err := e.Script.Loop(dt); err != nil {
		e.Log.Error("script loop", "err", err)
	}

	e.Renderer.Clear()

	if err := e.Script.Window(); err != nil {
		e.Log.Error("script window", "err", err)
	}

	e.Window.SwapBuffers()
	e.Window.PollEvents()

	// Pick up window resizes; the projection is rebuilt from the
	// logical size on every draw call, so this is all it takes.
	if w, h := e.Window.FramebufferSize(); w >= 1 && h >= 1 &&
		(float32(w) != e.width || float32(h) != e.height) {
		e.width, e.height = float32(w), float32(h)
		e.Renderer.Resize(w, h)
	}

	if e.Window.ShouldClose() {
		e.running = false
	}
}
