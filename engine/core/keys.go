package core

// Key is the engine's platform-independent key identifier. The
// platform layer translates it to whatever the windowing library uses.
type Key int

const (
	KeySpace Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape
)

// keyNames maps the symbolic names scripts pass to keyboard.isDown.
var keyNames = map[string]Key{
	"space":  KeySpace,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"a":      KeyA,
	"d":      KeyD,
	"w":      KeyW,
	"s":      KeyS,
	"escape": KeyEscape,
}

// LookupKey resolves a symbolic key name. Unknown names resolve to
// KeySpace with ok=false; the binding surface ignores ok, so scripts
// that misspell a key silently poll the space bar.
func LookupKey(name string) (Key, bool) {
	k, ok := keyNames[name]
	if !ok {
		return KeySpace, false
	}
	return k, true
}
