//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/topoboard/topoboard/backend-go/internal/engine"
)

var (
	eng   *engine.Engine
	frame *engine.Frame
)

func main() {
	eng = engine.NewEngine()
	frame = engine.NewFrame(1)

	// Create the engine API object
	topoboardEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	topoboardEngine.Set("loadDocument", js.FuncOf(loadDocument))
	topoboardEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	topoboardEngine.Set("setScene", js.FuncOf(setScene))
	topoboardEngine.Set("setZoom", js.FuncOf(setZoom))
	topoboardEngine.Set("draw", js.FuncOf(draw))
	topoboardEngine.Set("selectNode", js.FuncOf(selectNode))
	topoboardEngine.Set("deselectNode", js.FuncOf(deselectNode))
	topoboardEngine.Set("clearSelection", js.FuncOf(clearSelection))
	topoboardEngine.Set("applyHandle", js.FuncOf(applyHandle))
	topoboardEngine.Set("moveSelection", js.FuncOf(moveSelection))

	// --- Queries (frontend ← backend) ---
	topoboardEngine.Set("render", js.FuncOf(render))
	topoboardEngine.Set("hitTest", js.FuncOf(hitTest))
	topoboardEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	topoboardEngine.Set("getSelection", js.FuncOf(getSelection))
	topoboardEngine.Set("getHandles", js.FuncOf(getHandles))
	topoboardEngine.Set("getScene", js.FuncOf(getScene))
	topoboardEngine.Set("getCursor", js.FuncOf(getCursor))

	// Register on global scope
	js.Global().Set("topoboardEngine", topoboardEngine)

	// Signal that WASM is ready
	js.Global().Set("topoboardWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	jsonData := args[0].String()
	if err := eng.LoadDocument(jsonData); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	eng.Draw(frame)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	boardID := "board_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		boardID = args[0].String()
	}

	eng.LoadSampleDocument(boardID)
	eng.Draw(frame)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if err := eng.SetScene(args[0].String()); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	eng.Draw(frame)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	frame.SetZoom(args[0].Float())
	eng.Draw(frame)
	return nil
}

func draw(this js.Value, args []js.Value) interface{} {
	eng.Draw(frame)
	return nil
}

func selectNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.Select(args[0].String())
	eng.Draw(frame)
	return nil
}

func deselectNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.Deselect(args[0].String())
	eng.Draw(frame)
	return nil
}

func clearSelection(this js.Value, args []js.Value) interface{} {
	eng.ClearSelection()
	eng.Draw(frame)
	return nil
}

func applyHandle(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	name := args[0].String()
	delta := engine.Xyz{X: args[1].Float(), Y: args[2].Float()}

	for _, h := range eng.Handles() {
		if h.Kind.String() == name {
			eng.ApplyHandle(h.Kind, delta)
			break
		}
	}
	eng.Draw(frame)
	return nil
}

func moveSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.MoveSelection(engine.Xyz{X: args[0].Float(), Y: args[1].Float()})
	eng.Draw(frame)
	return nil
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(frame.Objects())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	p := engine.Xyz{X: args[0].Float(), Y: args[1].Float()}
	return js.ValueOf(eng.HitTest(p))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	b, ok := eng.SelectionBounds()
	if !ok {
		return js.ValueOf("null")
	}
	data, err := json.Marshal(map[string]float64{
		"minX": b.Min.X,
		"minY": b.Min.Y,
		"maxX": b.Max.X,
		"maxY": b.Max.Y,
	})
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.SelectionNames())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func getHandles(this js.Value, args []js.Value) interface{} {
	type handleInfo struct {
		Kind   string  `json:"kind"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Cursor string  `json:"cursor"`
	}

	handles := eng.Handles()
	infos := make([]handleInfo, len(handles))
	for i, h := range handles {
		infos[i] = handleInfo{
			Kind:   h.Kind.String(),
			X:      h.Position.X,
			Y:      h.Position.Y,
			Cursor: h.Cursor,
		}
	}

	data, err := json.Marshal(infos)
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func getScene(this js.Value, args []js.Value) interface{} {
	scene, ok := eng.SceneMeta()
	if !ok {
		return js.ValueOf("null")
	}
	data, err := json.Marshal(scene)
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}

func getCursor(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(frame.Cursor())
}
