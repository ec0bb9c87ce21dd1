package core

import "testing"

func TestLookupKey_KnownNames(t *testing.T) {
	want := map[string]Key{
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
	for name, wk := range want {
		k, ok := LookupKey(name)
		if !ok {
			t.Errorf("LookupKey(%q): not found", name)
		}
		if k != wk {
			t.Errorf("LookupKey(%q) = %d, want %d", name, k, wk)
		}
	}
}

func TestLookupKey_UnknownAliasesToSpace(t *testing.T) {
	k, ok := LookupKey("nonexistent-key")
	if ok {
		t.Error("unknown name reported as found")
	}
	if k != KeySpace {
		t.Errorf("unknown name resolved to %d, want KeySpace", k)
	}
}
