package engine

// markerSize is the half-extent of an on-screen handle marker, in scene units.
const markerSize = 4.0

// SelectionBox tracks the working selection set, derives the combined bounds
// and the currently valid handle set, and owns the on-screen handle markers.
// Selected targets live in the main scene tree; the box never owns them.
type SelectionBox struct {
	Model

	targets []Node

	markers    []*RenderObject
	attachedTo Renderer
}

// NewSelectionBox returns an empty selection.
func NewSelectionBox() *SelectionBox {
	return &SelectionBox{Model: *NewModel()}
}

// Targets returns the currently selected nodes.
func (sb *SelectionBox) Targets() []Node { return sb.targets }

// Select adds target to the selection set. Idempotent.
func (sb *SelectionBox) Select(target Node) {
	for _, t := range sb.targets {
		if t == target {
			return
		}
	}
	target.base().SetSelected(true)
	sb.targets = append(sb.targets, target)
}

// Deselect removes target from the selection set. Idempotent.
func (sb *SelectionBox) Deselect(target Node) {
	for i, t := range sb.targets {
		if t == target {
			t.base().SetSelected(false)
			sb.targets = append(sb.targets[:i], sb.targets[i+1:]...)
			return
		}
	}
}

// ClearTargets empties the selection set.
func (sb *SelectionBox) ClearTargets() {
	for _, t := range sb.targets {
		t.base().SetSelected(false)
	}
	sb.targets = nil
}

// SelectionBounds unions the bounds of every selected target. ok is false
// when the set is empty or no target has bounds.
func (sb *SelectionBox) SelectionBounds() (Bounds, bool) {
	var out Bounds
	found := false
	for _, t := range sb.targets {
		b, ok := t.Bounds()
		if !ok {
			continue
		}
		if !found {
			out = b
			found = true
		} else {
			out = out.Union(b)
		}
	}
	return out, found
}

// Handles derives the valid handle set from the current selection: none for
// an empty selection, the eight resize handles plus move for exactly one
// target, and only the move handle for a heterogeneous multi-selection where
// resize would be ambiguous. Handle positions sit on the union bounds'
// corners, edge midpoints and center.
func (sb *SelectionBox) Handles() []Handle {
	b, ok := sb.SelectionBounds()
	if !ok {
		return nil
	}

	center := b.Center()
	if len(sb.targets) > 1 {
		return []Handle{NewHandle(HandleMove, center)}
	}

	minP, maxP := b.Min, b.Max
	return []Handle{
		NewHandle(HandleNorthWest, Xyz{minP.X, minP.Y, 0}),
		NewHandle(HandleNorth, Xyz{center.X, minP.Y, 0}),
		NewHandle(HandleNorthEast, Xyz{maxP.X, minP.Y, 0}),
		NewHandle(HandleEast, Xyz{maxP.X, center.Y, 0}),
		NewHandle(HandleSouthEast, Xyz{maxP.X, maxP.Y, 0}),
		NewHandle(HandleSouth, Xyz{center.X, maxP.Y, 0}),
		NewHandle(HandleSouthWest, Xyz{minP.X, maxP.Y, 0}),
		NewHandle(HandleWest, Xyz{minP.X, center.Y, 0}),
		NewHandle(HandleMove, center),
	}
}

// Draw discards and recreates the marker widgets for the current handle set,
// wiring hover to cursor changes and drag to handle application. Redraw is
// idempotent, matching Shape's erase-then-regenerate pattern.
func (sb *SelectionBox) Draw(r Renderer) {
	sb.Erase()
	sb.Model.Draw(r)

	for _, h := range sb.Handles() {
		marker := sb.newMarker(r, h)
		r.Attach(marker)
		sb.markers = append(sb.markers, marker)
	}
	sb.attachedTo = r
}

// newMarker builds the on-screen widget for one handle. Dragging applies the
// handle to every selected target on each pointer-move sample, so geometry
// tracks the pointer continuously instead of drifting until release.
func (sb *SelectionBox) newMarker(r Renderer, h Handle) *RenderObject {
	p := h.Position
	marker := &RenderObject{
		Kind: "marker",
		Path: []PathCommand{
			{"M", p.X - markerSize, p.Y - markerSize},
			{"L", p.X + markerSize, p.Y - markerSize},
			{"L", p.X + markerSize, p.Y + markerSize},
			{"L", p.X - markerSize, p.Y + markerSize},
			{"Z"},
		},
		Cursor: h.Cursor,
	}
	marker.OnMouseOver = func() { r.SetCursor(h.Cursor) }
	marker.OnMouseOut = func() { r.SetCursor("") }
	marker.OnDrag = func(delta Xyz) {
		for _, t := range sb.targets {
			h.Apply(t, delta)
		}
	}
	return marker
}

// Erase removes the marker widgets, then the composite base.
func (sb *SelectionBox) Erase() {
	if sb.attachedTo != nil {
		for _, m := range sb.markers {
			sb.attachedTo.Detach(m)
		}
	}
	sb.markers = nil
	sb.attachedTo = nil
	sb.Model.Erase()
}

// Destroy clears the selection set and tears down the composite.
func (sb *SelectionBox) Destroy() {
	sb.Erase()
	sb.ClearTargets()
	sb.Model.Destroy()
}
