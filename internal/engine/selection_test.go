package engine

import "testing"

func TestHandleApplyDispatch(t *testing.T) {
	c := NewCircle(5)
	c.SetOffset(Xyz{0, 0, 0})

	moved, resized := 0, 0
	c.Moved.Subscribe(func(struct{}) { moved++ })
	c.Resized.Subscribe(func(struct{}) { resized++ })

	NewHandle(HandleMove, Xyz{}).Apply(c, Xyz{3, 0, 0})
	if moved != 1 || resized != 0 {
		t.Errorf("move handle: moved=%d resized=%d", moved, resized)
	}
	if c.Offset() != (Xyz{3, 0, 0}) {
		t.Errorf("offset = %v", c.Offset())
	}

	NewHandle(HandleEast, Xyz{8, 0, 0}).Apply(c, Xyz{2, 0, 0})
	if resized != 1 {
		t.Errorf("resize handle: resized=%d", resized)
	}
}

func TestSelectionHandleCounts(t *testing.T) {
	sb := NewSelectionBox()
	a := NewCircle(5)
	b := NewPolygon(squareEdges())

	if got := sb.Handles(); len(got) != 0 {
		t.Errorf("empty selection handles = %d, want 0", len(got))
	}

	sb.Select(a)
	if got := sb.Handles(); len(got) != 9 {
		t.Errorf("single selection handles = %d, want 9", len(got))
	}

	sb.Select(b)
	got := sb.Handles()
	if len(got) != 1 {
		t.Fatalf("multi selection handles = %d, want 1", len(got))
	}
	if got[0].Kind != HandleMove {
		t.Errorf("multi selection handle = %v, want move", got[0].Kind)
	}
}

func TestSelectionIdempotent(t *testing.T) {
	sb := NewSelectionBox()
	a := NewCircle(5)

	sb.Select(a)
	sb.Select(a)
	if len(sb.Targets()) != 1 {
		t.Errorf("targets = %d, want 1", len(sb.Targets()))
	}
	if !a.Selected() {
		t.Error("target must be marked selected")
	}

	sb.Deselect(a)
	sb.Deselect(a)
	if len(sb.Targets()) != 0 {
		t.Errorf("targets = %d, want 0", len(sb.Targets()))
	}
	if a.Selected() {
		t.Error("deselected target must be unmarked")
	}
}

func TestSelectionHandlePositions(t *testing.T) {
	sb := NewSelectionBox()
	p := NewPolygon(squareEdges()) // bounds (0,0)-(10,10)
	sb.Select(p)

	pos := make(map[HandleKind]Xyz)
	for _, h := range sb.Handles() {
		pos[h.Kind] = h.Position
	}

	tests := []struct {
		kind HandleKind
		want Xyz
	}{
		{HandleNorthWest, Xyz{0, 0, 0}},
		{HandleNorth, Xyz{5, 0, 0}},
		{HandleNorthEast, Xyz{10, 0, 0}},
		{HandleEast, Xyz{10, 5, 0}},
		{HandleSouthEast, Xyz{10, 10, 0}},
		{HandleSouth, Xyz{5, 10, 0}},
		{HandleSouthWest, Xyz{0, 10, 0}},
		{HandleWest, Xyz{0, 5, 0}},
		{HandleMove, Xyz{5, 5, 0}},
	}
	for _, tt := range tests {
		if got := pos[tt.kind]; !xyzEq(got, tt.want) {
			t.Errorf("%v handle at %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSelectionBoundsUnion(t *testing.T) {
	sb := NewSelectionBox()
	a := NewCircle(5)
	a.SetOffset(Xyz{0, 0, 0}) // bounds (-5,-5)-(5,5)
	b := NewPolygon([]Xyz{{20, 0, 0}, {30, 0, 0}, {30, 10, 0}, {20, 10, 0}})
	sb.Select(a)
	sb.Select(b)

	u, ok := sb.SelectionBounds()
	if !ok {
		t.Fatal("two targets must yield bounds")
	}
	if !xyzEq(u.Min, Xyz{-5, -5, 0}) || !xyzEq(u.Max, Xyz{30, 10, 0}) {
		t.Errorf("union = %+v", u)
	}

	sb.ClearTargets()
	if _, ok := sb.SelectionBounds(); ok {
		t.Error("empty selection must have no bounds")
	}
}

func TestSelectionDrawRecreatesMarkers(t *testing.T) {
	f := NewFrame(1)
	sb := NewSelectionBox()
	sb.Select(NewCircle(5))

	sb.Draw(f)
	if len(f.Objects()) != 9 {
		t.Fatalf("markers = %d, want 9", len(f.Objects()))
	}

	sb.Draw(f)
	if len(f.Objects()) != 9 {
		t.Errorf("markers after redraw = %d, want 9", len(f.Objects()))
	}

	sb.Erase()
	if len(f.Objects()) != 0 {
		t.Error("erase must remove every marker")
	}
}

func TestMarkerCursorWiring(t *testing.T) {
	f := NewFrame(1)
	sb := NewSelectionBox()
	sb.Select(NewCircle(5))
	sb.Draw(f)

	var east *RenderObject
	for _, o := range f.Objects() {
		if o.Cursor == "ew-resize" {
			east = o
			break
		}
	}
	if east == nil {
		t.Fatal("no east/west marker found")
	}

	east.OnMouseOver()
	if f.Cursor() != "ew-resize" {
		t.Errorf("cursor = %q, want ew-resize", f.Cursor())
	}
	east.OnMouseOut()
	if f.Cursor() != "" {
		t.Errorf("cursor after out = %q, want reset", f.Cursor())
	}
}

// Dragging a marker applies the handle on every pointer sample, so the
// geometry tracks the pointer continuously instead of drifting until release.
func TestMarkerDragAppliesContinuously(t *testing.T) {
	f := NewFrame(1)
	sb := NewSelectionBox()
	a := NewCircle(5)
	a.SetOffset(Xyz{0, 0, 0})
	b := NewCircle(5)
	b.SetOffset(Xyz{100, 0, 0})
	sb.Select(a)
	sb.Select(b)
	sb.Draw(f)

	if len(f.Objects()) != 1 {
		t.Fatalf("markers = %d, want 1 move marker", len(f.Objects()))
	}
	move := f.Objects()[0]

	move.OnDrag(Xyz{2, 0, 0})
	move.OnDrag(Xyz{3, 0, 0})

	if a.Offset() != (Xyz{5, 0, 0}) {
		t.Errorf("a offset = %v, want accumulated (5,0,0)", a.Offset())
	}
	if b.Offset() != (Xyz{105, 0, 0}) {
		t.Errorf("b offset = %v, want accumulated (105,0,0)", b.Offset())
	}
}
