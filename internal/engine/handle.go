package engine

// HandleKind identifies which control point of a selection a handle is.
type HandleKind int

const (
	HandleNorthWest HandleKind = iota
	HandleNorth
	HandleNorthEast
	HandleEast
	HandleSouthEast
	HandleSouth
	HandleSouthWest
	HandleWest
	HandleMove
)

// String returns the compass name of the handle kind.
func (k HandleKind) String() string {
	switch k {
	case HandleNorthWest:
		return "nw"
	case HandleNorth:
		return "n"
	case HandleNorthEast:
		return "ne"
	case HandleEast:
		return "e"
	case HandleSouthEast:
		return "se"
	case HandleSouth:
		return "s"
	case HandleSouthWest:
		return "sw"
	case HandleWest:
		return "w"
	case HandleMove:
		return "move"
	}
	return "unknown"
}

// Cursor returns the CSS cursor hint for the handle kind.
func (k HandleKind) Cursor() string {
	switch k {
	case HandleNorthWest, HandleSouthEast:
		return "nwse-resize"
	case HandleNorthEast, HandleSouthWest:
		return "nesw-resize"
	case HandleNorth, HandleSouth:
		return "ns-resize"
	case HandleEast, HandleWest:
		return "ew-resize"
	case HandleMove:
		return "move"
	}
	return "default"
}

// Handle is a draggable control point bound to a move or resize operation.
// Handles are stateless values recomputed on every request, never persisted.
type Handle struct {
	Kind     HandleKind
	Position Xyz // world space
	Cursor   string
}

// NewHandle returns a handle of the given kind at the given world position,
// carrying the kind's default cursor hint.
func NewHandle(kind HandleKind, pos Xyz) Handle {
	return Handle{Kind: kind, Position: pos, Cursor: kind.Cursor()}
}

// Apply dispatches the handle's effect onto target: resize handles forward to
// Resize, the move handle forwards to Move. The handle never mutates geometry
// itself.
func (h Handle) Apply(target Node, delta Xyz) {
	if h.Kind == HandleMove {
		target.Move(delta)
		return
	}
	target.Resize(h, delta)
}
