package engine

import "testing"

// Builds grandparent -> parent -> child and verifies that Location composes
// pivot -> scale -> rotate -> translate through the full ancestor chain.
func TestLocationCompositionDepth3(t *testing.T) {
	grand := NewModel()
	grand.SetOffset(Xyz{100, 0, 0})
	grand.SetScale(Xyz{2, 2, 1})
	grand.SetRotation(90)

	parent := NewModel()
	parent.SetOffset(Xyz{10, 10, 0})
	parent.SetScale(Xyz{1, 3, 1})

	child := NewDrawable()
	child.SetOffset(Xyz{1, 2, 0})
	child.SetPivot(Xyz{5, 0, 0})
	child.SetRotation(-90)
	child.SetScale(Xyz{2, 1, 1})

	if err := grand.AddSubmodel(parent); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddSubmodel(child); err != nil {
		t.Fatal(err)
	}

	wantScale := Xyz{2 * 1 * 2, 2 * 3 * 1, 1}
	if got := child.AbsoluteScale(); !xyzEq(got, wantScale) {
		t.Errorf("AbsoluteScale = %v, want %v", got, wantScale)
	}
	if got := child.AbsoluteRotation(); !approxEq(got, 0) {
		t.Errorf("AbsoluteRotation = %v, want 0", got)
	}
	wantOffset := Xyz{111, 12, 0}
	if got := child.AbsoluteOffset(); !xyzEq(got, wantOffset) {
		t.Errorf("AbsoluteOffset = %v, want %v", got, wantOffset)
	}

	// pivot (5,0) * absScale (4,6) = (20,0); rotated by 0 stays; + absOffset.
	want := child.Pivot().Scale(wantScale.X, wantScale.Y).
		Rotate(child.AbsoluteRotation()).
		Add(wantOffset)
	if got := child.Location(); !xyzEq(got, want) {
		t.Errorf("Location = %v, want %v", got, want)
	}
}

func TestLocationRotationAppliesToPivot(t *testing.T) {
	d := NewDrawable()
	d.SetOffset(Xyz{10, 10, 0})
	d.SetPivot(Xyz{1, 0, 0})
	d.SetRotation(90)

	got := d.Location()
	want := Xyz{10, 11, 0}
	if !xyzEq(got, want) {
		t.Errorf("Location = %v, want %v", got, want)
	}
}

func TestMoveGatedByMovable(t *testing.T) {
	d := NewDrawable()
	moves := 0
	d.Moved.Subscribe(func(struct{}) { moves++ })

	d.Move(Xyz{5, 5, 0})
	if d.Offset() != (Xyz{}) || moves != 0 {
		t.Fatal("non-movable node must ignore Move silently")
	}

	d.Movable = true
	d.Move(Xyz{5, 5, 0})
	if d.Offset() != (Xyz{5, 5, 0}) {
		t.Errorf("offset = %v", d.Offset())
	}
	if moves != 1 {
		t.Errorf("move events = %d, want 1", moves)
	}
}

func TestResizeGatedByResizable(t *testing.T) {
	d := NewDrawable()
	resizes := 0
	d.Resized.Subscribe(func(struct{}) { resizes++ })

	d.Resize(NewHandle(HandleEast, Xyz{}), Xyz{1, 0, 0})
	if resizes != 0 {
		t.Fatal("non-resizable node must not fire resize")
	}

	d.Resizable = true
	d.Resize(NewHandle(HandleEast, Xyz{}), Xyz{1, 0, 0})
	if resizes != 1 {
		t.Errorf("resize events = %d, want 1", resizes)
	}
}

func TestDestroyFiresAndDetaches(t *testing.T) {
	m := NewModel()
	d := NewDrawable()
	d.SetPane(&Pane{Name: "overlay", ZIndex: 400})
	if err := m.AddSubmodel(d); err != nil {
		t.Fatal(err)
	}

	destroyed := 0
	d.Destroyed.Subscribe(func(struct{}) { destroyed++ })
	clicked := 0
	d.Clicked.Subscribe(func(struct{}) { clicked++ })

	d.Destroy()

	if destroyed != 1 {
		t.Errorf("destroy events = %d, want 1", destroyed)
	}
	if d.Parent() != nil {
		t.Error("parent back-reference must be cleared")
	}
	if d.Pane() != nil {
		t.Error("pane association must be released")
	}

	// All channels are cleared; nothing dangles.
	d.Destroyed.Trigger(struct{}{})
	d.Clicked.Trigger(struct{}{})
	if destroyed != 1 || clicked != 0 {
		t.Error("signals must not fire after Destroy")
	}
}

func TestDefaultContainsAndBounds(t *testing.T) {
	d := NewDrawable()
	if d.Contains(Xyz{0, 0, 0}) {
		t.Error("base node must never contain a point")
	}
	if _, ok := d.Bounds(); ok {
		t.Error("base node must have no bounds")
	}
}

func TestParentCycleRejected(t *testing.T) {
	a := NewModel()
	b := NewModel()
	if err := a.AddSubmodel(b); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSubmodel(a); err != ErrCycle {
		t.Errorf("err = %v, want ErrCycle", err)
	}
	if err := a.AddSubmodel(a); err != ErrCycle {
		t.Errorf("self-attach err = %v, want ErrCycle", err)
	}
}
