package engine

import (
	"math"
	"testing"
)

func squareEdges() []Xyz {
	return []Xyz{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(3)
	c.SetOffset(Xyz{5, 5, 0})

	tests := []struct {
		name   string
		p      Xyz
		expect bool
	}{
		{"center", Xyz{5, 5, 0}, true},
		{"on radius", Xyz{8, 5, 0}, true},
		{"just outside", Xyz{8 + 1e-9, 5, 0}, false},
		{"diagonal inside", Xyz{7, 7, 0}, true},
		{"far away", Xyz{20, 20, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	c := NewCircle(3)
	c.SetOffset(Xyz{5, 5, 0})

	b, ok := c.Bounds()
	if !ok {
		t.Fatal("circle must have bounds")
	}
	if !xyzEq(b.Min, Xyz{2, 2, 0}) || !xyzEq(b.Max, Xyz{8, 8, 0}) {
		t.Errorf("bounds = %+v", b)
	}
}

func TestCircleResizeClamp(t *testing.T) {
	c := NewCircle(5)
	c.SetOffset(Xyz{0, 0, 0})

	// Handle on the east edge dragged to just half a unit from the center.
	h := NewHandle(HandleEast, Xyz{5, 0, 0})
	c.Resize(h, Xyz{-4.5, 0, 0})

	if c.Radius != minCircleRadius {
		t.Errorf("radius = %v, want clamp at %v", c.Radius, minCircleRadius)
	}

	// Growing works from the handle's new world position.
	c.Resize(NewHandle(HandleEast, Xyz{1, 0, 0}), Xyz{7, 0, 0})
	if !approxEq(c.Radius, 8) {
		t.Errorf("radius = %v, want 8", c.Radius)
	}
}

func TestCircleResizeEventFiresAfterMutation(t *testing.T) {
	c := NewCircle(5)
	var seen float64
	c.Resized.Subscribe(func(struct{}) { seen = c.Radius })

	c.Resize(NewHandle(HandleEast, Xyz{5, 0, 0}), Xyz{5, 0, 0})
	if !approxEq(seen, 10) {
		t.Errorf("resize event observed radius %v, want the post-mutation 10", seen)
	}
}

func TestPolygonContains(t *testing.T) {
	p := NewPolygon(squareEdges())

	tests := []struct {
		name   string
		p      Xyz
		expect bool
	}{
		{"inside", Xyz{5, 5, 0}, true},
		{"outside right", Xyz{11, 5, 0}, false},
		{"outside above", Xyz{5, -1, 0}, false},
		{"near corner inside", Xyz{1, 1, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestPolygonContainsStableUnderRetraversal(t *testing.T) {
	p := NewPolygon(squareEdges())
	for i := 0; i < 3; i++ {
		if !p.Contains(Xyz{5, 5, 0}) {
			t.Fatalf("traversal %d lost (5,5)", i)
		}
		if p.Contains(Xyz{11, 5, 0}) {
			t.Fatalf("traversal %d gained (11,5)", i)
		}
	}
}

func TestPolygonContainsFollowsOffset(t *testing.T) {
	p := NewPolygon(squareEdges())
	p.Move(Xyz{100, 0, 0})

	if p.Contains(Xyz{5, 5, 0}) {
		t.Error("moved polygon must not contain its old interior")
	}
	if !p.Contains(Xyz{105, 5, 0}) {
		t.Error("moved polygon must contain its shifted interior")
	}
}

func TestPolygonResizeEast(t *testing.T) {
	p := NewPolygon(squareEdges())

	// Dragging the east handle +5 widens a 10-wide square by factor 1.5.
	p.Resize(NewHandle(HandleEast, Xyz{10, 5, 0}), Xyz{5, 0, 0})

	b, _ := p.Bounds()
	if !approxEq(b.Width(), 15) {
		t.Errorf("width = %v, want 15", b.Width())
	}
	if !approxEq(b.Height(), 10) {
		t.Errorf("height = %v, want unchanged 10", b.Height())
	}
}

func TestPolygonResizeScaleClamp(t *testing.T) {
	p := NewPolygon(squareEdges())

	// Far past the opposite edge: the scale factor clamps at 0.1 instead of
	// inverting the polygon.
	p.Resize(NewHandle(HandleEast, Xyz{10, 5, 0}), Xyz{-1000, 0, 0})

	b, _ := p.Bounds()
	if !approxEq(b.Width(), 1) {
		t.Errorf("width = %v, want 10 * 0.1 = 1", b.Width())
	}
	if b.Width() <= 0 {
		t.Error("polygon must never invert")
	}
}

func TestPolygonResizeDegenerateBounds(t *testing.T) {
	// Zero-width polygon: the denominator guard must keep factors finite.
	p := NewPolygon([]Xyz{{5, 0, 0}, {5, 5, 0}, {5, 10, 0}})
	p.Resize(NewHandle(HandleEast, Xyz{5, 5, 0}), Xyz{2, 0, 0})

	for _, e := range p.Edges {
		if math.IsNaN(e.X) || math.IsInf(e.X, 0) {
			t.Fatalf("edge became non-finite: %v", e)
		}
	}
}

func TestImageOverlayResize(t *testing.T) {
	tests := []struct {
		name  string
		kind  HandleKind
		delta Xyz
		wantW float64
		wantH float64
	}{
		{"east grows width", HandleEast, Xyz{20, 0, 0}, 120, 80},
		{"west shrinks width", HandleWest, Xyz{30, 0, 0}, 70, 80},
		{"south grows height", HandleSouth, Xyz{0, 15, 0}, 100, 95},
		{"north drag up grows height", HandleNorth, Xyz{0, -15, 0}, 100, 95},
		{"south-east corner", HandleSouthEast, Xyz{10, 10, 0}, 110, 90},
		{"clamped at minimum", HandleEast, Xyz{-1000, 0, 0}, 10, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageOverlay("/assets/a.png", 100, 80)
			s.Resize(NewHandle(tt.kind, Xyz{}), tt.delta)
			if !approxEq(s.Width, tt.wantW) || !approxEq(s.Height, tt.wantH) {
				t.Errorf("size = %vx%v, want %vx%v", s.Width, s.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPolylineNotInteractive(t *testing.T) {
	l := NewPolyline([]Xyz{{0, 0, 0}, {10, 0, 0}})
	if l.Selectable || l.Resizable || l.Movable {
		t.Error("polyline must default to non-interactive")
	}
	if l.Contains(Xyz{5, 0, 0}) {
		t.Error("polyline must not hit-test")
	}
	if _, ok := l.Bounds(); ok {
		t.Error("polyline must report no bounds")
	}

	before := append([]Xyz(nil), l.Edges...)
	l.Resize(NewHandle(HandleEast, Xyz{}), Xyz{5, 0, 0})
	for i := range before {
		if l.Edges[i] != before[i] {
			t.Fatal("polyline resize must be a no-op")
		}
	}
}

func TestTextInheritsPolygonBehavior(t *testing.T) {
	s := NewText("Tank A", "top", squareEdges())
	if !s.Contains(Xyz{5, 5, 0}) {
		t.Error("text must hit-test like its polygon")
	}
	s.Resize(NewHandle(HandleEast, Xyz{10, 5, 0}), Xyz{5, 0, 0})
	b, _ := s.Bounds()
	if !approxEq(b.Width(), 15) {
		t.Errorf("width = %v, want 15", b.Width())
	}
}

func TestDivClickOnly(t *testing.T) {
	d := NewDiv("<b>x</b>", "", false)
	if d.Resizable {
		t.Error("div must not be resizable")
	}
	if d.Contains(Xyz{0, 0, 0}) {
		t.Error("div has no positional hit test")
	}
	if _, ok := d.Bounds(); ok {
		t.Error("div must report no bounds")
	}
}
