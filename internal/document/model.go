package document

// SceneDocument is the serialized description of a board: project metadata
// plus named scenes, each rooted in a ModelConfig tree. It carries no
// behavior; the engine registry instantiates it into a live node tree.
type SceneDocument struct {
	Project Project          `json:"project"`
	Scenes  map[string]Scene `json:"scenes"`
}

type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   int      `json:"version"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Scenes    []string `json:"scenes"`
}

type Scene struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background string      `json:"background"`
	Root       ModelConfig `json:"root"`
}

// Vec mirrors the engine's three-component vector for serialization.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PaneConfig assigns a node to a named z-ordered layer.
type PaneConfig struct {
	Name   string `json:"name"`
	ZIndex int    `json:"zIndex"`
}

// ModelConfig describes one node of the scene tree. Type must match a
// registered factory; every other field is optional and leaves the node's
// default untouched when absent. Pointer fields distinguish "absent" from the
// zero value.
type ModelConfig struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	// Transform
	Offset   *Vec        `json:"offset,omitempty"`
	Scale    *Vec        `json:"scale,omitempty"`
	Pivot    *Vec        `json:"pivot,omitempty"`
	Rotation *float64    `json:"rotation,omitempty"` // degrees
	Pane     *PaneConfig `json:"pane,omitempty"`
	MinZoom  *float64    `json:"minZoom,omitempty"`

	// Interaction flags
	Selectable *bool `json:"selectable,omitempty"`
	Hoverable  *bool `json:"hoverable,omitempty"`
	Movable    *bool `json:"movable,omitempty"`
	Resizable  *bool `json:"resizable,omitempty"`

	// Style
	Color       *string  `json:"color,omitempty"`
	FillColor   *string  `json:"fillColor,omitempty"`
	FillOpacity *float64 `json:"fillOpacity,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`

	// Shape-specific
	Radius    *float64 `json:"radius,omitempty"`    // circle
	Edges     []Vec    `json:"edges,omitempty"`     // polygon, polyline, text
	Text      *string  `json:"text,omitempty"`      // text
	Direction *string  `json:"direction,omitempty"` // text
	URL       *string  `json:"url,omitempty"`       // image
	Width     *float64 `json:"width,omitempty"`     // image
	Height    *float64 `json:"height,omitempty"`    // image

	HTML          *string `json:"html,omitempty"`          // div
	StyleSheet    *string `json:"styleSheet,omitempty"`    // div
	ScaleWithZoom *bool   `json:"scaleWithZoom,omitempty"` // div

	Submodels []ModelConfig `json:"submodels,omitempty"`
}

// NewEmptyDocument creates a blank single-scene document for a new board.
func NewEmptyDocument(projectID, projectName, sceneID string) *SceneDocument {
	return &SceneDocument{
		Project: Project{
			ID:      projectID,
			Name:    projectName,
			Version: 1,
			Scenes:  []string{sceneID},
		},
		Scenes: map[string]Scene{
			sceneID: {
				ID:         sceneID,
				Name:       "Scene 1",
				Width:      1280,
				Height:     720,
				Background: "#f4f4f0",
				Root:       ModelConfig{Type: "model"},
			},
		},
	}
}
