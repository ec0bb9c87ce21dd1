package immediate

import "github.com/go-gl/mathgl/mgl32"

// Projection maps logical pixel coordinates (origin top-left, y down)
// to clip space. Column-major, depth fixed to [-1, 1]. It is rebuilt
// from the current logical size on every draw call, so a window resize
// takes effect on the next primitive with no invalidation step.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}
