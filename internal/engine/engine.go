package engine

import (
	"encoding/json"
	"fmt"

	"github.com/topoboard/topoboard/backend-go/internal/document"
)

// Engine owns the live scene tree, the registry that builds it and the
// working selection. It is single-threaded and purely synchronous: every
// operation runs to completion on the calling goroutine.
type Engine struct {
	registry  *Registry
	doc       *document.SceneDocument
	sceneID   string
	root      Node
	nodes     map[string]Node // named nodes, by config name
	selection *SelectionBox
}

// NewEngine returns an engine with the built-in registry and an empty scene.
func NewEngine() *Engine {
	return &Engine{
		registry:  NewRegistry(),
		nodes:     make(map[string]Node),
		selection: NewSelectionBox(),
	}
}

// Registry exposes the factory registry so hosts can install custom types
// before loading a document.
func (e *Engine) Registry() *Registry { return e.registry }

// Selection exposes the working selection box.
func (e *Engine) Selection() *SelectionBox { return e.selection }

// Root returns the root node of the current scene, or nil before a load.
func (e *Engine) Root() Node { return e.root }

// LoadDocument parses a SceneDocument from JSON and instantiates its first
// scene.
func (e *Engine) LoadDocument(jsonData string) error {
	var doc document.SceneDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return e.SetDocument(&doc)
}

// SetDocument installs a parsed document and instantiates its first scene.
func (e *Engine) SetDocument(doc *document.SceneDocument) error {
	e.doc = doc
	e.sceneID = ""
	if len(doc.Project.Scenes) > 0 {
		e.sceneID = doc.Project.Scenes[0]
	}
	return e.buildScene()
}

// LoadSampleDocument loads the built-in demo board.
func (e *Engine) LoadSampleDocument(projectID string) {
	// The sample is well formed; a build failure here is a bug.
	_ = e.SetDocument(document.NewSampleDocument(projectID))
}

// SetScene switches to another scene of the loaded document and rebuilds.
func (e *Engine) SetScene(sceneID string) error {
	if e.doc == nil {
		return fmt.Errorf("no document loaded")
	}
	if _, ok := e.doc.Scenes[sceneID]; !ok {
		return fmt.Errorf("unknown scene %q", sceneID)
	}
	e.sceneID = sceneID
	return e.buildScene()
}

func (e *Engine) buildScene() error {
	if e.root != nil {
		e.root.Destroy()
	}
	e.selection.ClearTargets()
	e.nodes = make(map[string]Node)
	e.root = nil

	scene, ok := e.doc.Scenes[e.sceneID]
	if !ok {
		return fmt.Errorf("document has no scene %q", e.sceneID)
	}

	e.root = e.registry.Build(scene.Root)
	if e.root == nil {
		return fmt.Errorf("root config type %q is not registered", scene.Root.Type)
	}
	e.indexNode(e.root)
	return nil
}

func (e *Engine) indexNode(n Node) {
	if name := n.base().Name; name != "" {
		e.nodes[name] = n
	}
	if m, ok := n.(interface{ Submodels() []Node }); ok {
		for _, c := range m.Submodels() {
			e.indexNode(c)
		}
	}
}

// Node returns the named node, or nil.
func (e *Engine) Node(name string) Node {
	return e.nodes[name]
}

// Draw renders the scene tree and the selection markers onto the renderer.
func (e *Engine) Draw(r Renderer) {
	if e.root != nil {
		e.root.Draw(r)
	}
	e.selection.Draw(r)
}

// Erase removes everything previously drawn.
func (e *Engine) Erase() {
	e.selection.Erase()
	if e.root != nil {
		e.root.Erase()
	}
}

// HitTest returns the name of the topmost named node containing the point,
// or "". Later siblings sit on top, so children are tested in reverse order.
func (e *Engine) HitTest(p Xyz) string {
	if e.root == nil {
		return ""
	}
	hit := hitTestNode(e.root, p)
	if hit == nil {
		return ""
	}
	return hit.base().Name
}

func hitTestNode(n Node, p Xyz) Node {
	if m, ok := n.(interface{ Submodels() []Node }); ok {
		subs := m.Submodels()
		for i := len(subs) - 1; i >= 0; i-- {
			if hit := hitTestNode(subs[i], p); hit != nil {
				return hit
			}
		}
	}
	if n.base().Selectable && n.Contains(p) {
		return n
	}
	return nil
}

// Select adds the named node to the selection; unknown or non-selectable
// names are ignored.
func (e *Engine) Select(name string) {
	n := e.nodes[name]
	if n == nil || !n.base().Selectable {
		return
	}
	e.selection.Select(n)
}

// Deselect removes the named node from the selection.
func (e *Engine) Deselect(name string) {
	if n := e.nodes[name]; n != nil {
		e.selection.Deselect(n)
	}
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() {
	e.selection.ClearTargets()
}

// SelectionBounds returns the union bounds of the selection.
func (e *Engine) SelectionBounds() (Bounds, bool) {
	return e.selection.SelectionBounds()
}

// Handles returns the handle set valid for the current selection.
func (e *Engine) Handles() []Handle {
	return e.selection.Handles()
}

// ApplyHandle applies the handle of the given kind to every selected node.
// Unknown kinds for the current selection are ignored.
func (e *Engine) ApplyHandle(kind HandleKind, delta Xyz) {
	for _, h := range e.selection.Handles() {
		if h.Kind == kind {
			for _, t := range e.selection.Targets() {
				h.Apply(t, delta)
			}
			return
		}
	}
}

// MoveSelection translates every selected node by delta.
func (e *Engine) MoveSelection(delta Xyz) {
	for _, t := range e.selection.Targets() {
		t.Move(delta)
	}
}

// SceneMeta returns the current scene's metadata, for hosts that size their
// surface from it.
func (e *Engine) SceneMeta() (document.Scene, bool) {
	if e.doc == nil {
		return document.Scene{}, false
	}
	s, ok := e.doc.Scenes[e.sceneID]
	return s, ok
}

// SelectionNames returns the names of the selected nodes in selection order.
func (e *Engine) SelectionNames() []string {
	targets := e.selection.Targets()
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		if n := t.base().Name; n != "" {
			names = append(names, n)
		}
	}
	return names
}
