package engine

// Minimum sizes enforced on resize outputs. Clamps apply to the resulting
// dimension, not the input delta, so a handle dragged past the limit holds at
// the minimum instead of inverting the shape.
const (
	minCircleRadius  = 1.0
	minScaleFactor   = 0.1
	minOverlayExtent = 10.0

	// minResizeExtent guards scale-ratio denominators against zero-extent
	// source bounds, which would otherwise propagate NaN or Inf factors.
	minResizeExtent = 1e-6
)

// circleK is the bezier control distance approximating a quarter circle:
// 4 * (sqrt(2) - 1) / 3.
const circleK = 0.5522847498

// worldEdges returns the shape's edge points in world space.
func (s *Shape) worldEdges() []Xyz {
	off := s.AbsoluteOffset()
	out := make([]Xyz, len(s.Edges))
	for i, e := range s.Edges {
		out[i] = e.Add(off)
	}
	return out
}

// generate produces the backend-neutral representation for the shape's
// current geometry and resolved style. One exhaustive switch covers every
// shape kind.
func (s *Shape) generate() []*RenderObject {
	style := s.resolveStyle()

	switch s.kind {
	case KindCircle:
		c := s.Location()
		return []*RenderObject{styled(&RenderObject{
			Kind: "path",
			Path: circlePath(c, s.Radius),
		}, style)}

	case KindPolygon:
		pts := s.worldEdges()
		if len(pts) == 0 {
			return nil
		}
		return []*RenderObject{styled(&RenderObject{
			Kind: "path",
			Path: linePath(pts, true),
		}, style)}

	case KindPolyline:
		pts := s.worldEdges()
		if len(pts) < 2 {
			return nil
		}
		return []*RenderObject{styled(&RenderObject{
			Kind: "path",
			Path: linePath(pts, false),
		}, style)}

	case KindImageOverlay:
		return []*RenderObject{{
			Kind:     "image",
			Position: s.Location(),
			URL:      s.URL,
			Width:    s.Width,
			Height:   s.Height,
		}}

	case KindDiv:
		return []*RenderObject{{
			Kind:          "html",
			Position:      s.Location(),
			HTML:          s.HTML,
			StyleSheet:    s.StyleSheet,
			ScaleWithZoom: s.ScaleWithZoom,
		}}

	case KindText:
		pts := s.worldEdges()
		if len(pts) == 0 {
			return nil
		}
		objs := []*RenderObject{styled(&RenderObject{
			Kind: "path",
			Path: linePath(pts, true),
		}, style)}
		// The label keeps the base style and stays visible regardless of
		// selection state.
		objs = append(objs, &RenderObject{
			Kind:      "label",
			Position:  BoundsAround(pts...).Center(),
			Text:      s.Text,
			Direction: s.Direction,
			Stroke:    s.Style.Color,
		})
		return objs
	}
	return nil
}

func styled(obj *RenderObject, style Style) *RenderObject {
	obj.Stroke = style.Color
	obj.Fill = style.FillColor
	obj.FillOpacity = style.FillOpacity
	obj.Weight = style.Weight
	return obj
}

// circlePath approximates a circle with four bezier segments.
func circlePath(c Xyz, r float64) []PathCommand {
	k := r * circleK
	return []PathCommand{
		{"M", c.X + r, c.Y},
		{"C", c.X + r, c.Y + k, c.X + k, c.Y + r, c.X, c.Y + r},
		{"C", c.X - k, c.Y + r, c.X - r, c.Y + k, c.X - r, c.Y},
		{"C", c.X - r, c.Y - k, c.X - k, c.Y - r, c.X, c.Y - r},
		{"C", c.X + k, c.Y - r, c.X + r, c.Y - k, c.X + r, c.Y},
		{"Z"},
	}
}

// linePath emits M/L commands over the points, closing the path for polygons.
func linePath(pts []Xyz, closed bool) []PathCommand {
	path := make([]PathCommand, 0, len(pts)+1)
	path = append(path, PathCommand{"M", pts[0].X, pts[0].Y})
	for _, p := range pts[1:] {
		path = append(path, PathCommand{"L", p.X, p.Y})
	}
	if closed {
		path = append(path, PathCommand{"Z"})
	}
	return path
}

// Contains reports whether the world-space point hits the shape. Only circle
// and polygon-backed kinds are positionally hit-testable; Div reacts to
// backend click events instead, and Polyline and ImageOverlay are not
// interactive.
func (s *Shape) Contains(p Xyz) bool {
	switch s.kind {
	case KindCircle:
		return p.DistanceTo(s.Location()) <= s.Radius
	case KindPolygon, KindText:
		return pointInPolygon(p, s.worldEdges())
	case KindPolyline, KindImageOverlay, KindDiv:
		return false
	}
	return false
}

// pointInPolygon is an even-odd ray cast against the edge list.
func pointInPolygon(p Xyz, edges []Xyz) bool {
	if len(edges) < 3 {
		return false
	}
	inside := false
	j := len(edges) - 1
	for i := 0; i < len(edges); i++ {
		a, b := edges[i], edges[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the shape's axis-aligned bounding box in world space, and
// whether the kind has one.
func (s *Shape) Bounds() (Bounds, bool) {
	switch s.kind {
	case KindCircle:
		c := s.Location()
		return Bounds{
			Min: Xyz{c.X - s.Radius, c.Y - s.Radius, c.Z},
			Max: Xyz{c.X + s.Radius, c.Y + s.Radius, c.Z},
		}, true
	case KindPolygon, KindText:
		pts := s.worldEdges()
		if len(pts) == 0 {
			return Bounds{}, false
		}
		return BoundsAround(pts...), true
	case KindImageOverlay:
		loc := s.Location()
		return Bounds{
			Min: loc,
			Max: Xyz{loc.X + s.Width, loc.Y + s.Height, loc.Z},
		}, true
	case KindPolyline, KindDiv:
		return Bounds{}, false
	}
	return Bounds{}, false
}

// Resize mutates the shape's geometry for the given handle and drag delta,
// then lets the base node fire the resize event. Non-resizable shapes ignore
// the call entirely.
func (s *Shape) Resize(h Handle, delta Xyz) {
	if !s.Resizable {
		return
	}

	switch s.kind {
	case KindCircle:
		r := s.Location().DistanceTo(h.Position.Add(delta))
		if r < minCircleRadius {
			r = minCircleRadius
		}
		s.Radius = r

	case KindPolygon, KindText:
		s.resizeEdges(h, delta)

	case KindImageOverlay:
		w, ht := s.Width, s.Height
		switch h.Kind {
		case HandleEast:
			w += delta.X
		case HandleWest:
			w -= delta.X
		case HandleNorth:
			ht -= delta.Y
		case HandleSouth:
			ht += delta.Y
		case HandleNorthEast:
			w += delta.X
			ht -= delta.Y
		case HandleNorthWest:
			w -= delta.X
			ht -= delta.Y
		case HandleSouthEast:
			w += delta.X
			ht += delta.Y
		case HandleSouthWest:
			w -= delta.X
			ht += delta.Y
		}
		s.Width = max(w, minOverlayExtent)
		s.Height = max(ht, minOverlayExtent)

	case KindPolyline, KindDiv:
		// not resizable
		return
	}

	s.Drawable.Resize(h, delta)
}

// resizeEdges applies non-uniform anchor scaling: the edge(s) of the current
// bounds opposite the dragged handle stay fixed, and each edge point, taken
// relative to the shape's offset, is multiplied by the extent ratios.
func (s *Shape) resizeEdges(h Handle, delta Xyz) {
	b, ok := s.Bounds()
	if !ok {
		return
	}

	w := max(b.Width(), minResizeExtent)
	ht := max(b.Height(), minResizeExtent)

	sx, sy := 1.0, 1.0
	switch h.Kind {
	case HandleEast:
		sx = (w + delta.X) / w
	case HandleWest:
		sx = (w - delta.X) / w
	case HandleNorth:
		sy = (ht - delta.Y) / ht
	case HandleSouth:
		sy = (ht + delta.Y) / ht
	case HandleNorthEast:
		sx = (w + delta.X) / w
		sy = (ht - delta.Y) / ht
	case HandleNorthWest:
		sx = (w - delta.X) / w
		sy = (ht - delta.Y) / ht
	case HandleSouthEast:
		sx = (w + delta.X) / w
		sy = (ht + delta.Y) / ht
	case HandleSouthWest:
		sx = (w - delta.X) / w
		sy = (ht + delta.Y) / ht
	}

	sx = max(sx, minScaleFactor)
	sy = max(sy, minScaleFactor)

	for i, e := range s.Edges {
		s.Edges[i] = e.Scale(sx, sy)
	}
}
