package engine

import (
	"log/slog"

	"github.com/topoboard/topoboard/backend-go/internal/document"
)

// Factory builds a node from a ModelConfig. The registry applies the common
// transform, flag and style fields afterwards; factories only consume the
// shape-specific ones.
type Factory func(cfg document.ModelConfig) Node

// Registry maps a config type tag to a constructor, letting a serialized
// scene tree be instantiated into a live node tree.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry pre-loaded with the built-in node types:
// model, circle, polygon, polyline, image, div and text.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("model", func(cfg document.ModelConfig) Node {
		return NewModel()
	})
	r.Register("circle", func(cfg document.ModelConfig) Node {
		radius := 10.0
		if cfg.Radius != nil {
			radius = *cfg.Radius
		}
		return NewCircle(radius)
	})
	r.Register("polygon", func(cfg document.ModelConfig) Node {
		return NewPolygon(vecs(cfg.Edges))
	})
	r.Register("polyline", func(cfg document.ModelConfig) Node {
		return NewPolyline(vecs(cfg.Edges))
	})
	r.Register("image", func(cfg document.ModelConfig) Node {
		s := NewImageOverlay(strOr(cfg.URL, ""), floatOr(cfg.Width, 0), floatOr(cfg.Height, 0))
		return s
	})
	r.Register("div", func(cfg document.ModelConfig) Node {
		return NewDiv(strOr(cfg.HTML, ""), strOr(cfg.StyleSheet, ""), cfg.ScaleWithZoom != nil && *cfg.ScaleWithZoom)
	})
	r.Register("text", func(cfg document.ModelConfig) Node {
		return NewText(strOr(cfg.Text, ""), strOr(cfg.Direction, "center"), vecs(cfg.Edges))
	})
	return r
}

// Register installs a factory under the type tag. A duplicate registration
// logs a warning and the newer factory wins.
func (r *Registry) Register(typeTag string, f Factory) {
	if _, ok := r.factories[typeTag]; ok {
		slog.Warn("overwriting registered model factory", "type", typeTag)
	}
	r.factories[typeTag] = f
}

// Get returns the factory for the type tag, or nil when unregistered.
func (r *Registry) Get(typeTag string) Factory {
	return r.factories[typeTag]
}

// Build instantiates a config tree into a live node tree. An unregistered
// type logs a warning and yields nil; unregistered nested submodels are
// skipped the same way while their siblings still build.
func (r *Registry) Build(cfg document.ModelConfig) Node {
	f := r.Get(cfg.Type)
	if f == nil {
		slog.Warn("skipping unregistered model type", "type", cfg.Type)
		return nil
	}

	node := f(cfg)
	if node == nil {
		return nil
	}
	applyCommon(node.base(), cfg)
	if s, ok := node.(*Shape); ok {
		applyStyle(s, cfg)
	}

	if len(cfg.Submodels) > 0 {
		container, ok := node.(interface{ AddSubmodel(Node) error })
		if !ok {
			slog.Warn("submodels on non-container node", "type", cfg.Type)
			return node
		}
		for _, sub := range cfg.Submodels {
			child := r.Build(sub)
			if child == nil {
				continue
			}
			if err := container.AddSubmodel(child); err != nil {
				slog.Warn("attach submodel", "type", sub.Type, "error", err)
			}
		}
	}

	return node
}

// applyCommon copies the generic transform and flag fields onto the node,
// leaving defaults untouched for absent fields.
func applyCommon(d *Drawable, cfg document.ModelConfig) {
	d.Name = cfg.Name
	if cfg.Offset != nil {
		d.SetOffset(vec(*cfg.Offset))
	}
	if cfg.Scale != nil {
		d.SetScale(vec(*cfg.Scale))
	}
	if cfg.Pivot != nil {
		d.SetPivot(vec(*cfg.Pivot))
	}
	if cfg.Rotation != nil {
		d.SetRotation(*cfg.Rotation)
	}
	if cfg.Pane != nil {
		d.SetPane(&Pane{Name: cfg.Pane.Name, ZIndex: cfg.Pane.ZIndex})
	}
	if cfg.MinZoom != nil {
		d.SetMinZoom(*cfg.MinZoom)
	}
	if cfg.Selectable != nil {
		d.Selectable = *cfg.Selectable
	}
	if cfg.Hoverable != nil {
		d.Hoverable = *cfg.Hoverable
	}
	if cfg.Movable != nil {
		d.Movable = *cfg.Movable
	}
	if cfg.Resizable != nil {
		d.Resizable = *cfg.Resizable
	}
}

// applyStyle copies the optional style fields onto the shape's base style.
func applyStyle(s *Shape, cfg document.ModelConfig) {
	if cfg.Color != nil {
		s.Style.Color = *cfg.Color
	}
	if cfg.FillColor != nil {
		s.Style.FillColor = *cfg.FillColor
	}
	if cfg.FillOpacity != nil {
		s.Style.FillOpacity = *cfg.FillOpacity
	}
	if cfg.Weight != nil {
		s.Style.Weight = *cfg.Weight
	}
}

func vec(v document.Vec) Xyz {
	return Xyz{X: v.X, Y: v.Y, Z: v.Z}
}

func vecs(vs []document.Vec) []Xyz {
	out := make([]Xyz, len(vs))
	for i, v := range vs {
		out[i] = vec(v)
	}
	return out
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}
