package document

func ptr[T any](v T) *T { return &v }

// NewSampleDocument builds the built-in demo board: a small pumping-station
// topology exercising every shape type. Used by the playground and by the
// wasm shell before a real board is loaded.
func NewSampleDocument(projectID string) *SceneDocument {
	root := ModelConfig{
		Type: "model",
		Name: "station",
		Submodels: []ModelConfig{
			{
				Type:      "polygon",
				Name:      "tank-a",
				Edges:     []Vec{{X: 40, Y: 40}, {X: 160, Y: 40}, {X: 160, Y: 140}, {X: 40, Y: 140}},
				Color:     ptr("#2d3748"),
				FillColor: ptr("#90cdf4"),
				Weight:    ptr(2.0),
			},
			{
				Type:   "circle",
				Name:   "pump-1",
				Offset: &Vec{X: 240, Y: 90},
				Radius: ptr(22.0),
				Color:  ptr("#2d3748"),
			},
			{
				Type:  "polyline",
				Name:  "pipe-main",
				Edges: []Vec{{X: 160, Y: 90}, {X: 218, Y: 90}},
				Color: ptr("#4a5568"),
			},
			{
				Type:      "text",
				Name:      "tank-a-label",
				Text:      ptr("Tank A"),
				Direction: ptr("top"),
				Edges:     []Vec{{X: 40, Y: 20}, {X: 160, Y: 20}, {X: 160, Y: 36}, {X: 40, Y: 36}},
			},
			{
				Type:   "image",
				Name:   "site-photo",
				Offset: &Vec{X: 320, Y: 40},
				URL:    ptr("/assets/site.png"),
				Width:  ptr(120.0),
				Height: ptr(90.0),
				Pane:   &PaneConfig{Name: "underlay", ZIndex: 100},
			},
			{
				Type:    "div",
				Name:    "pump-1-badge",
				Offset:  &Vec{X: 240, Y: 120},
				HTML:    ptr(`<span class="badge">P-1</span>`),
				MinZoom: ptr(2.0),
			},
		},
	}

	return &SceneDocument{
		Project: Project{
			ID:      projectID,
			Name:    "Sample Station",
			Version: 1,
			Scenes:  []string{"scene-1"},
		},
		Scenes: map[string]Scene{
			"scene-1": {
				ID:         "scene-1",
				Name:       "Overview",
				Width:      1280,
				Height:     720,
				Background: "#f4f4f0",
				Root:       root,
			},
		},
	}
}
