// Package immediate builds the vertex data and projection for one-shot
// draw calls. Every primitive is fully specified by its own vertices;
// nothing is retained between calls. Keeping this apart from the GL
// backend keeps the geometry testable without a context.
package immediate

import (
	"math"

	"github.com/hubastard/ember/engine/colors"
)

const (
	// Stride is the float count per vertex: pos2 + color4.
	Stride = 6
	// CircleSegments is the fixed circle tessellation.
	CircleSegments = 32
)

// RectVertices returns the four corners of an axis-aligned rectangle
// in fan order: top-left, top-right, bottom-right, bottom-left. Drawn
// as a triangle fan they exactly cover the quad.
func RectVertices(x, y, w, h float32, c colors.Color) []float32 {
	return []float32{
		x, y, c[0], c[1], c[2], c[3],
		x + w, y, c[0], c[1], c[2], c[3],
		x + w, y + h, c[0], c[1], c[2], c[3],
		x, y + h, c[0], c[1], c[2], c[3],
	}
}

// CircleVertices returns a triangle-fan tessellation: the center,
// then CircleSegments+1 perimeter points. The last perimeter point
// repeats the first angle to close the fan.
func CircleVertices(x, y, radius float32, c colors.Color) []float32 {
	verts := make([]float32, 0, (CircleSegments+2)*Stride)
	verts = append(verts, x, y, c[0], c[1], c[2], c[3])
	for i := 0; i <= CircleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / CircleSegments
		vx := x + radius*float32(math.Cos(angle))
		vy := y + radius*float32(math.Sin(angle))
		verts = append(verts, vx, vy, c[0], c[1], c[2], c[3])
	}
	return verts
}

// LineVertices returns the two endpoints of a segment.
func LineVertices(x1, y1, x2, y2 float32, c colors.Color) []float32 {
	return []float32{
		x1, y1, c[0], c[1], c[2], c[3],
		x2, y2, c[0], c[1], c[2], c[3],
	}
}
