package engine

import "errors"

// ErrCycle is returned when attaching a submodel would make a node its own
// ancestor.
var ErrCycle = errors.New("engine: submodel would create a parent cycle")

// Model is a composite Drawable owning an ordered list of child nodes and
// fanning lifecycle calls out to them. Children are owned through the
// submodel list; their parent back-reference is maintained here and exists
// only for transform lookup.
type Model struct {
	Drawable

	submodels []Node
}

// NewModel returns an empty composite node.
func NewModel() *Model {
	return &Model{Drawable: *NewDrawable()}
}

// Submodels returns the child list in order. Callers must not mutate it.
func (m *Model) Submodels() []Node { return m.submodels }

// AddSubmodel appends child and points its parent back-reference at m. A
// child attached elsewhere is detached from its previous owner first, so a
// node lives in at most one submodel list. The parent chain is checked
// centrally here so a node can never become its own ancestor.
func (m *Model) AddSubmodel(child Node) error {
	cb := child.base()
	for a := &m.Drawable; a != nil; a = a.parent {
		if a == cb {
			return ErrCycle
		}
	}
	if cb.owner != nil {
		cb.owner.RemoveSubmodel(child)
	}
	cb.parent = &m.Drawable
	cb.owner = m
	m.submodels = append(m.submodels, child)
	return nil
}

// RemoveSubmodel removes child from the list and clears its back-reference.
// Unknown children are ignored.
func (m *Model) RemoveSubmodel(child Node) {
	for i, c := range m.submodels {
		if c == child {
			m.submodels = append(m.submodels[:i], m.submodels[i+1:]...)
			child.base().parent = nil
			child.base().owner = nil
			return
		}
	}
}

// SetSubmodels replaces the whole child list, re-pointing every new child's
// back-reference and clearing it for children no longer listed.
func (m *Model) SetSubmodels(children []Node) error {
	kept := make(map[*Drawable]bool, len(children))
	for _, c := range children {
		kept[c.base()] = true
	}
	for _, old := range m.submodels {
		if !kept[old.base()] {
			old.base().parent = nil
			old.base().owner = nil
		}
	}

	m.submodels = nil
	for _, c := range children {
		if err := m.AddSubmodel(c); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws the container first, then every child in list order, so a child
// is never drawn before its container exists.
func (m *Model) Draw(r Renderer) {
	m.Drawable.Draw(r)
	for _, c := range m.submodels {
		c.Draw(r)
	}
}

// Erase erases every child in list order, then the container itself.
func (m *Model) Erase() {
	for _, c := range m.submodels {
		c.Erase()
	}
	m.Drawable.Erase()
}

// Destroy destroys the container first, then every child, and leaves the
// child list empty.
func (m *Model) Destroy() {
	children := m.submodels
	m.submodels = nil
	m.Drawable.Destroy()
	for _, c := range children {
		c.Destroy()
	}
}
