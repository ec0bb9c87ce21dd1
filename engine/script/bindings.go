package script

import lua "github.com/yuin/gopher-lua"

// register installs the draw, keyboard, mouse and graphics namespaces
// as globals. The set is fixed at startup; scripts may shadow the
// tables but the host never re-reads them.
func register(L *lua.LState, host Host) {
	draw := L.NewTable()
	L.SetField(draw, "rect", L.NewFunction(func(L *lua.LState) int {
		x := float64(L.CheckNumber(1))
		y := float64(L.CheckNumber(2))
		w := float64(L.CheckNumber(3))
		h := float64(L.CheckNumber(4))
		r := float64(L.CheckNumber(5))
		g := float64(L.CheckNumber(6))
		b := float64(L.CheckNumber(7))
		a := float64(L.OptNumber(8, 1.0))
		host.Rect(x, y, w, h, r, g, b, a)
		return 0
	}))
	L.SetField(draw, "circle", L.NewFunction(func(L *lua.LState) int {
		x := float64(L.CheckNumber(1))
		y := float64(L.CheckNumber(2))
		radius := float64(L.CheckNumber(3))
		r := float64(L.CheckNumber(4))
		g := float64(L.CheckNumber(5))
		b := float64(L.CheckNumber(6))
		a := float64(L.OptNumber(7, 1.0))
		host.Circle(x, y, radius, r, g, b, a)
		return 0
	}))
	L.SetField(draw, "line", L.NewFunction(func(L *lua.LState) int {
		x1 := float64(L.CheckNumber(1))
		y1 := float64(L.CheckNumber(2))
		x2 := float64(L.CheckNumber(3))
		y2 := float64(L.CheckNumber(4))
		r := float64(L.CheckNumber(5))
		g := float64(L.CheckNumber(6))
		b := float64(L.CheckNumber(7))
		a := float64(L.OptNumber(8, 1.0))
		host.Line(x1, y1, x2, y2, r, g, b, a)
		return 0
	}))
	L.SetField(draw, "text", L.NewFunction(func(L *lua.LState) int {
		s := L.CheckString(1)
		x := float64(L.CheckNumber(2))
		y := float64(L.CheckNumber(3))
		host.Text(s, x, y)
		return 0
	}))
	L.SetGlobal("draw", draw)

	keyboard := L.NewTable()
	L.SetField(keyboard, "isDown", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(host.KeyDown(L.CheckString(1))))
		return 1
	}))
	L.SetGlobal("keyboard", keyboard)

	// x and y query the cursor independently; two calls in the same
	// tick can observe movement between them.
	mouse := L.NewTable()
	L.SetField(mouse, "x", L.NewFunction(func(L *lua.LState) int {
		x, _ := host.CursorPos()
		L.Push(lua.LNumber(x))
		return 1
	}))
	L.SetField(mouse, "y", L.NewFunction(func(L *lua.LState) int {
		_, y := host.CursorPos()
		L.Push(lua.LNumber(y))
		return 1
	}))
	L.SetGlobal("mouse", mouse)

	graphics := L.NewTable()
	L.SetField(graphics, "setClearColor", L.NewFunction(func(L *lua.LState) int {
		r := float64(L.CheckNumber(1))
		g := float64(L.CheckNumber(2))
		b := float64(L.CheckNumber(3))
		host.SetClearColor(r, g, b)
		return 0
	}))
	L.SetField(graphics, "getClearColor", L.NewFunction(func(L *lua.LState) int {
		r, g, b := host.ClearColor()
		t := L.NewTable()
		L.SetField(t, "r", lua.LNumber(r))
		L.SetField(t, "g", lua.LNumber(g))
		L.SetField(t, "b", lua.LNumber(b))
		L.Push(t)
		return 1
	}))
	L.SetField(graphics, "getWindowSize", L.NewFunction(func(L *lua.LState) int {
		w, h := host.WindowSize()
		t := L.NewTable()
		L.SetField(t, "width", lua.LNumber(w))
		L.SetField(t, "height", lua.LNumber(h))
		L.Push(t)
		return 1
	}))
	L.SetGlobal("graphics", graphics)
}
