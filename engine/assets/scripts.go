package assets

import (
	"fmt"
	"os"
)

// LoadScript reads a Lua game script from disk. The default payload is
// compiled into the binary; this is the override path.
func LoadScript(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load script %q: %w", path, err)
	}
	return string(b), nil
}
