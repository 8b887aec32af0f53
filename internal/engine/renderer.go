package engine

// PathCommand is a single path segment in Canvas2D order:
// ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []any

// RenderObject is the backend-neutral representation a Shape generates on each
// draw. The renderer attaches it to its native surface; the engine never keeps
// one alive past the next erase.
type RenderObject struct {
	Kind string `json:"kind"` // "path", "image", "html", "label", "marker"
	Pane string `json:"pane,omitempty"`

	// Path geometry (Kind "path", "marker")
	Path []PathCommand `json:"path,omitempty"`

	// Resolved style
	Stroke      string  `json:"stroke,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
	Weight      float64 `json:"weight,omitempty"`

	// Image overlays (Kind "image")
	URL      string  `json:"url,omitempty"`
	Position Xyz     `json:"position,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`

	// Embedded content (Kind "html")
	HTML          string `json:"html,omitempty"`
	StyleSheet    string `json:"styleSheet,omitempty"`
	ScaleWithZoom bool   `json:"scaleWithZoom,omitempty"`

	// Labels (Kind "label")
	Text      string `json:"text,omitempty"`
	Direction string `json:"direction,omitempty"`

	// Cursor hint the backend should show while the pointer is over the object.
	Cursor string `json:"cursor,omitempty"`

	// Interaction hooks invoked by the backend. A nil hook means the object
	// does not participate in that interaction.
	OnClick     func()          `json:"-"`
	OnMouseOver func()          `json:"-"`
	OnMouseOut  func()          `json:"-"`
	OnDrag      func(delta Xyz) `json:"-"`
}

// PointerEvent carries the scene-space position of a pointer interaction.
type PointerEvent struct {
	Position Xyz
}

// PointerEvents groups the event streams a renderer backend feeds into the
// engine's caller. The caller converts these into Move/Resize calls.
type PointerEvents struct {
	Move        Signal[PointerEvent]
	Click       Signal[PointerEvent]
	DoubleClick Signal[PointerEvent]
	ContextMenu Signal[PointerEvent]
	ZoomChange  Signal[float64]
}

// Renderer is the backend adapter the engine is handed on every draw. It owns
// the native surface, the pane registry and the current zoom level; the engine
// never owns a renderer.
type Renderer interface {
	// Zoom returns the current zoom level.
	Zoom() float64

	// ViewBounds returns the currently visible region of the surface.
	ViewBounds() Bounds

	// EnsurePane creates the named z-ordered layer if it does not exist yet,
	// setting its z-index. Existing panes are left untouched.
	EnsurePane(name string, zIndex int)

	// Attach adds a generated object to the native surface.
	Attach(obj *RenderObject)

	// Detach removes a previously attached object. Detaching an object that
	// was never attached is a no-op.
	Detach(obj *RenderObject)

	// SetCursor changes the pointer cursor shown over the surface.
	SetCursor(cursor string)

	// Events returns the pointer and zoom event streams.
	Events() *PointerEvents
}

// Frame is an in-memory Renderer that retains attached objects in attach
// order. It backs the wasm bridge (the browser shell drains it as JSON) and
// the package tests.
type Frame struct {
	zoom    float64
	bounds  Bounds
	cursor  string
	panes   map[string]int
	objects []*RenderObject
	events  PointerEvents
}

// NewFrame returns an empty Frame at the given zoom level.
func NewFrame(zoom float64) *Frame {
	return &Frame{
		zoom:  zoom,
		panes: make(map[string]int),
	}
}

func (f *Frame) Zoom() float64 { return f.zoom }

// SetZoom updates the zoom level and fires the zoom-change event.
func (f *Frame) SetZoom(zoom float64) {
	f.zoom = zoom
	f.events.ZoomChange.Trigger(zoom)
}

func (f *Frame) ViewBounds() Bounds { return f.bounds }

// SetViewBounds updates the visible region reported by ViewBounds.
func (f *Frame) SetViewBounds(b Bounds) { f.bounds = b }

func (f *Frame) EnsurePane(name string, zIndex int) {
	if _, ok := f.panes[name]; ok {
		return
	}
	f.panes[name] = zIndex
}

// PaneZIndex returns the z-index of a pane and whether it exists.
func (f *Frame) PaneZIndex(name string) (int, bool) {
	z, ok := f.panes[name]
	return z, ok
}

func (f *Frame) Attach(obj *RenderObject) {
	f.objects = append(f.objects, obj)
}

func (f *Frame) Detach(obj *RenderObject) {
	for i, o := range f.objects {
		if o == obj {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return
		}
	}
}

func (f *Frame) SetCursor(cursor string) { f.cursor = cursor }

// Cursor returns the cursor last set via SetCursor.
func (f *Frame) Cursor() string { return f.cursor }

func (f *Frame) Events() *PointerEvents { return &f.events }

// Objects returns the currently attached objects in attach order.
func (f *Frame) Objects() []*RenderObject { return f.objects }
