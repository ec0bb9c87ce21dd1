package immediate

import (
	"math"
	"testing"

	"github.com/hubastard/ember/engine/colors"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestRectVertices_CornerOrder(t *testing.T) {
	c := colors.Color{1, 0, 0, 1}
	verts := RectVertices(10, 20, 50, 30, c)

	if len(verts) != 4*Stride {
		t.Fatalf("expected %d floats, got %d", 4*Stride, len(verts))
	}

	// Fan order: top-left, top-right, bottom-right, bottom-left.
	want := [4][2]float32{
		{10, 20},
		{60, 20},
		{60, 50},
		{10, 50},
	}
	for i, w := range want {
		x, y := verts[i*Stride], verts[i*Stride+1]
		if x != w[0] || y != w[1] {
			t.Errorf("vertex %d: got (%g, %g), want (%g, %g)", i, x, y, w[0], w[1])
		}
	}
}

func TestRectVertices_ColorFillsEveryVertex(t *testing.T) {
	c := colors.Color{0.1, 0.2, 0.3, 0.4}
	verts := RectVertices(0, 0, 1, 1, c)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got := verts[i*Stride+2+j]; got != c[j] {
				t.Errorf("vertex %d color[%d]: got %g, want %g", i, j, got, c[j])
			}
		}
	}
}

func TestCircleVertices_Tessellation(t *testing.T) {
	const cx, cy, radius = 100, 200, 40
	verts := CircleVertices(cx, cy, radius, colors.White)

	// Center plus segments+1 perimeter points.
	wantCount := (CircleSegments + 2) * Stride
	if len(verts) != wantCount {
		t.Fatalf("expected %d floats (%d vertices), got %d", wantCount, CircleSegments+2, len(verts)/Stride)
	}

	if verts[0] != cx || verts[1] != cy {
		t.Errorf("vertex 0: got (%g, %g), want center (%g, %g)", verts[0], verts[1], float32(cx), float32(cy))
	}

	for i := 1; i <= CircleSegments+1; i++ {
		angle := 2 * math.Pi * float64(i-1) / CircleSegments
		wantX := cx + radius*float32(math.Cos(angle))
		wantY := cy + radius*float32(math.Sin(angle))
		x, y := verts[i*Stride], verts[i*Stride+1]
		if !approx(x, wantX) || !approx(y, wantY) {
			t.Errorf("vertex %d: got (%g, %g), want (%g, %g)", i, x, y, wantX, wantY)
		}
	}
}

func TestCircleVertices_FanCloses(t *testing.T) {
	verts := CircleVertices(0, 0, 10, colors.White)
	first := CircleSegments + 1
	fx, fy := verts[1*Stride], verts[1*Stride+1]
	lx, ly := verts[(first)*Stride], verts[(first)*Stride+1]
	if !approx(fx, lx) || !approx(fy, ly) {
		t.Errorf("fan not closed: first perimeter (%g, %g) vs last (%g, %g)", fx, fy, lx, ly)
	}
}

func TestLineVertices_Endpoints(t *testing.T) {
	c := colors.Color{0, 1, 0, 1}
	verts := LineVertices(1, 2, 3, 4, c)
	if len(verts) != 2*Stride {
		t.Fatalf("expected %d floats, got %d", 2*Stride, len(verts))
	}
	if verts[0] != 1 || verts[1] != 2 || verts[Stride] != 3 || verts[Stride+1] != 4 {
		t.Errorf("endpoints wrong: %v", verts)
	}
}
