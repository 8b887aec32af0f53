package export

import (
	"strings"
	"testing"

	"github.com/topoboard/topoboard/backend-go/internal/document"
)

func TestRenderSVGSampleScene(t *testing.T) {
	doc := document.NewSampleDocument("board_sample")

	svg, err := RenderSVG(doc, "scene-1", 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(svg)

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element:\n%s", out[:min(len(out), 120)])
	}
	if !strings.Contains(out, `width="1280" height="720"`) {
		t.Error("scene dimensions not carried into svg root")
	}
	if !strings.Contains(out, `fill="#f4f4f0"`) {
		t.Error("background rect missing")
	}
	// tank-a polygon and pump-1 circle both render as paths
	if strings.Count(out, "<path ") < 2 {
		t.Errorf("path count = %d, want at least 2", strings.Count(out, "<path "))
	}
	if !strings.Contains(out, `<image href="/assets/site.png"`) {
		t.Error("image overlay missing")
	}
	// The underlay pane (z 100) must be emitted before the default layer
	if img, path := strings.Index(out, "<image "), strings.Index(out, "<path "); img > path {
		t.Error("underlay image emitted above shape paths")
	}
	if !strings.Contains(out, ">Tank A</text>") {
		t.Error("text label missing")
	}
}

func TestRenderSVGZoomGating(t *testing.T) {
	doc := document.NewSampleDocument("board_sample")

	// pump-1-badge has minZoom 2; at zoom 1 it must not be emitted
	low, err := RenderSVG(doc, "scene-1", 1)
	if err != nil {
		t.Fatalf("render at zoom 1: %v", err)
	}
	if strings.Contains(string(low), "foreignObject") {
		t.Error("badge emitted below its minimum zoom")
	}

	high, err := RenderSVG(doc, "scene-1", 3)
	if err != nil {
		t.Fatalf("render at zoom 3: %v", err)
	}
	if !strings.Contains(string(high), "foreignObject") {
		t.Error("badge missing above its minimum zoom")
	}
}

func TestRenderSVGUnknownScene(t *testing.T) {
	doc := document.NewSampleDocument("board_sample")

	if _, err := RenderSVG(doc, "no-such-scene", 1); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}
