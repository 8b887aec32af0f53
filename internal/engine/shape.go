package engine

// ShapeKind is the closed set of shape variants. Every operation that depends
// on the variant (geometry generation, hit testing, bounds, resize) is a
// single exhaustive switch over this type.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindPolygon
	KindPolyline
	KindImageOverlay
	KindDiv
	KindText
)

// Style is the visual state of a shape: stroke color, fill color, fill
// opacity and stroke weight.
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      float64 `json:"weight"`
}

// Default styles used when a shape carries no explicit selected/hover style.
var (
	DefaultSelectedStyle = Style{Color: "#2b6cb0", FillColor: "#2b6cb0", FillOpacity: 0.4, Weight: 3}
	DefaultHoverStyle    = Style{Color: "#4a5568", FillColor: "#4a5568", FillOpacity: 0.3, Weight: 2}
)

// Shape is a Drawable that renders concrete visual geometry. The generated
// backend representation is cached between draw and erase and regenerated on
// every draw, so visual state can never desync from logical state.
type Shape struct {
	Drawable

	kind ShapeKind

	Style         Style
	SelectedStyle *Style
	HoverStyle    *Style

	// Circle
	Radius float64

	// Polygon, Polyline, Text
	Edges []Xyz

	// ImageOverlay
	URL    string
	Width  float64
	Height float64

	// Div
	HTML          string
	StyleSheet    string
	ScaleWithZoom bool

	// Text
	Text      string
	Direction string

	Drawn Signal[struct{}]

	cache      []*RenderObject
	attachedTo Renderer
}

func newShape(kind ShapeKind) *Shape {
	s := &Shape{
		Drawable: *NewDrawable(),
		kind:     kind,
		Style:    Style{Color: "#333333", FillColor: "#999999", FillOpacity: 0.2, Weight: 1},
	}
	switch kind {
	case KindCircle, KindPolygon, KindImageOverlay, KindText:
		s.Selectable = true
		s.Hoverable = true
		s.Movable = true
		s.Resizable = true
	case KindDiv:
		s.Selectable = true
		s.Hoverable = true
		s.Movable = true
	case KindPolyline:
		// render-only
	}
	return s
}

// NewCircle returns a circle shape centered on its Location.
func NewCircle(radius float64) *Shape {
	s := newShape(KindCircle)
	s.Radius = radius
	return s
}

// NewPolygon returns a closed polygon over the given edge points.
func NewPolygon(edges []Xyz) *Shape {
	s := newShape(KindPolygon)
	s.Edges = edges
	return s
}

// NewPolyline returns an open, render-only polyline over the given points.
func NewPolyline(edges []Xyz) *Shape {
	s := newShape(KindPolyline)
	s.Edges = edges
	return s
}

// NewImageOverlay returns an image overlay anchored at its Location.
func NewImageOverlay(url string, width, height float64) *Shape {
	s := newShape(KindImageOverlay)
	s.URL = url
	s.Width = width
	s.Height = height
	return s
}

// NewDiv returns a shape embedding arbitrary content anchored at its Location.
func NewDiv(html, styleSheet string, scaleWithZoom bool) *Shape {
	s := newShape(KindDiv)
	s.HTML = html
	s.StyleSheet = styleSheet
	s.ScaleWithZoom = scaleWithZoom
	return s
}

// NewText returns a labeled polygon. The label stays visible in the given
// direction regardless of selection state.
func NewText(text, direction string, edges []Xyz) *Shape {
	s := newShape(KindText)
	s.Text = text
	s.Direction = direction
	s.Edges = edges
	return s
}

// Kind returns the shape's variant tag.
func (s *Shape) Kind() ShapeKind { return s.kind }

// resolveStyle picks the effective style: selected beats hovering beats base.
func (s *Shape) resolveStyle() Style {
	if s.Selected() {
		if s.SelectedStyle != nil {
			return *s.SelectedStyle
		}
		return DefaultSelectedStyle
	}
	if s.Hovering() {
		if s.HoverStyle != nil {
			return *s.HoverStyle
		}
		return DefaultHoverStyle
	}
	return s.Style
}

// Draw erases any previous cached representation and, when the renderer's
// zoom is at or above the shape's minimum-zoom threshold, regenerates the
// geometry, ensures the shape's pane exists and attaches the result. Below
// the threshold the shape simply stays invisible.
func (s *Shape) Draw(r Renderer) {
	s.Erase()

	if r.Zoom() < s.MinZoom() {
		return
	}

	objs := s.generate()
	if len(objs) == 0 {
		return
	}

	pane := s.Pane()
	if pane != nil {
		r.EnsurePane(pane.Name, pane.ZIndex)
	}

	for _, obj := range objs {
		if pane != nil {
			obj.Pane = pane.Name
		}
		s.wire(obj)
		r.Attach(obj)
	}

	s.cache = objs
	s.attachedTo = r
	s.Drawable.Draw(r)
	s.Drawn.Trigger(struct{}{})
}

// wire connects backend interaction hooks to the shape's event channels.
func (s *Shape) wire(obj *RenderObject) {
	if s.Selectable {
		obj.Cursor = "pointer"
		obj.OnClick = func() {
			s.Clicked.Trigger(struct{}{})
		}
	}
	if s.Hoverable {
		obj.OnMouseOver = func() {
			s.SetHovering(true)
			s.MouseOver.Trigger(struct{}{})
		}
		obj.OnMouseOut = func() {
			s.SetHovering(false)
			s.MouseOut.Trigger(struct{}{})
		}
	}
}

// Erase detaches and discards the cached representation. The cache must never
// be read after erase.
func (s *Shape) Erase() {
	if s.attachedTo != nil {
		for _, obj := range s.cache {
			s.attachedTo.Detach(obj)
		}
	}
	s.cache = nil
	s.attachedTo = nil
	s.Drawable.Erase()
}

// Destroy tears down the render cache and the base node.
func (s *Shape) Destroy() {
	s.Erase()
	s.Drawn.Clear()
	s.Drawable.Destroy()
}
