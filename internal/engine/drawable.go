package engine

// Pane names a z-ordered rendering layer on the backend surface.
type Pane struct {
	Name   string `json:"name"`
	ZIndex int    `json:"zIndex"`
}

// Node is a member of the scene tree. *Drawable provides the base behavior;
// *Shape, *Model and *SelectionBox specialize it.
type Node interface {
	Draw(r Renderer)
	Erase()
	Destroy()
	Contains(p Xyz) bool
	Bounds() (Bounds, bool)
	Resize(h Handle, delta Xyz)
	Move(delta Xyz)

	base() *Drawable
}

// Drawable is the base scene-graph node: a local transform, interaction
// flags, transient interaction state and the node's event channels. The
// parent back-reference exists purely for transform lookup; the parent Model
// owns the child via its submodel list.
type Drawable struct {
	Name string

	visible  bool
	offset   Xyz
	pivot    Xyz
	rotation float64 // degrees
	scale    Xyz
	pane     *Pane
	minZoom  float64

	parent *Drawable
	owner  *Model

	Selectable bool
	Hoverable  bool
	Movable    bool
	Resizable  bool

	selected bool
	hovering bool

	Clicked   Signal[struct{}]
	MouseOver Signal[struct{}]
	MouseOut  Signal[struct{}]
	Destroyed Signal[struct{}]
	Moved     Signal[struct{}]
	Resized   Signal[struct{}]
}

// NewDrawable returns a detached Drawable with identity transform.
func NewDrawable() *Drawable {
	return &Drawable{scale: Xyz{1, 1, 1}}
}

func (d *Drawable) base() *Drawable { return d }

// Visible reports whether the node is currently drawn.
func (d *Drawable) Visible() bool { return d.visible }

func (d *Drawable) Offset() Xyz             { return d.offset }
func (d *Drawable) SetOffset(v Xyz)         { d.offset = v }
func (d *Drawable) Pivot() Xyz              { return d.pivot }
func (d *Drawable) SetPivot(v Xyz)          { d.pivot = v }
func (d *Drawable) Rotation() float64       { return d.rotation }
func (d *Drawable) SetRotation(deg float64) { d.rotation = deg }
func (d *Drawable) Scale() Xyz              { return d.scale }
func (d *Drawable) SetScale(v Xyz)          { d.scale = v }
func (d *Drawable) Pane() *Pane             { return d.pane }
func (d *Drawable) SetPane(p *Pane)         { d.pane = p }
func (d *Drawable) MinZoom() float64        { return d.minZoom }
func (d *Drawable) SetMinZoom(z float64)    { d.minZoom = z }

// Parent returns the owning Model's Drawable, or nil when detached.
func (d *Drawable) Parent() *Drawable { return d.parent }

func (d *Drawable) Selected() bool     { return d.selected }
func (d *Drawable) SetSelected(v bool) { d.selected = v }
func (d *Drawable) Hovering() bool     { return d.hovering }
func (d *Drawable) SetHovering(v bool) { d.hovering = v }

// AbsoluteOffset is the vector sum of the local offset and every ancestor's
// offset.
func (d *Drawable) AbsoluteOffset() Xyz {
	if d.parent == nil {
		return d.offset
	}
	return d.parent.AbsoluteOffset().Add(d.offset)
}

// AbsoluteScale is the component-wise product of the local scale and every
// ancestor's scale.
func (d *Drawable) AbsoluteScale() Xyz {
	if d.parent == nil {
		return d.scale
	}
	return d.parent.AbsoluteScale().Mul(d.scale)
}

// AbsoluteRotation is the scalar sum of the local rotation and every
// ancestor's rotation, in degrees.
func (d *Drawable) AbsoluteRotation() float64 {
	if d.parent == nil {
		return d.rotation
	}
	return d.parent.AbsoluteRotation() + d.rotation
}

// Location is the node's world position: the pivot scaled by the absolute
// scale, rotated by the absolute rotation, then translated by the absolute
// offset. The composition order is fixed; nested positioning depends on it.
func (d *Drawable) Location() Xyz {
	s := d.AbsoluteScale()
	p := d.pivot.Scale(s.X, s.Y)
	p = p.Rotate(d.AbsoluteRotation())
	return p.Add(d.AbsoluteOffset())
}

// Draw marks the node visible. Specializations add rendering on top.
func (d *Drawable) Draw(r Renderer) {
	d.visible = true
}

// Erase marks the node invisible.
func (d *Drawable) Erase() {
	d.visible = false
}

// Destroy fires and clears the destroy channel, detaches the node from its
// parent and releases the pane association. Every signal is cleared so no
// subscription outlives the node.
func (d *Drawable) Destroy() {
	d.Destroyed.Trigger(struct{}{})
	d.Destroyed.Clear()
	d.Clicked.Clear()
	d.MouseOver.Clear()
	d.MouseOut.Clear()
	d.Moved.Clear()
	d.Resized.Clear()
	d.parent = nil
	d.owner = nil
	d.pane = nil
}

// Contains reports whether p hits the node. The base node is never hit;
// interactive shapes override this.
func (d *Drawable) Contains(p Xyz) bool {
	return false
}

// Bounds returns the node's bounding box. The base node has none.
func (d *Drawable) Bounds() (Bounds, bool) {
	return Bounds{}, false
}

// Resize fires the resize event when the node is resizable. Shapes mutate
// their geometry first and then call this, so the event always fires last.
func (d *Drawable) Resize(h Handle, delta Xyz) {
	if !d.Resizable {
		return
	}
	d.Resized.Trigger(struct{}{})
}

// Move adds delta to the local offset and fires the move event. A no-op when
// the node is not movable.
func (d *Drawable) Move(delta Xyz) {
	if !d.Movable {
		return
	}
	d.offset = d.offset.Add(delta)
	d.Moved.Trigger(struct{}{})
}
