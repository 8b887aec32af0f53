package export

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/topoboard/topoboard/backend-go/internal/document"
	"github.com/topoboard/topoboard/backend-go/internal/engine"
)

// RenderSVG builds the named scene from the document and renders it to a
// standalone SVG. Objects are emitted pane by pane in z order, so the
// stacking matches what an interactive viewer shows.
func RenderSVG(doc *document.SceneDocument, sceneID string, zoom float64) ([]byte, error) {
	eng := engine.NewEngine()
	if err := eng.SetDocument(doc); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := eng.SetScene(sceneID); err != nil {
		return nil, fmt.Errorf("set scene: %w", err)
	}

	frame := engine.NewFrame(zoom)
	eng.Draw(frame)

	scene, _ := eng.SceneMeta()
	width := scene.Width
	height := scene.Height
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 768
	}

	// Objects with no pane sit on the default overlay layer.
	const defaultPaneZ = 400
	zOf := func(obj *engine.RenderObject) int {
		if z, ok := frame.PaneZIndex(obj.Pane); ok {
			return z
		}
		return defaultPaneZ
	}

	objects := make([]*engine.RenderObject, len(frame.Objects()))
	copy(objects, frame.Objects())
	sort.SliceStable(objects, func(i, j int) bool {
		return zOf(objects[i]) < zOf(objects[j])
	})

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	b.WriteByte('\n')

	if scene.Background != "" {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill=%q/>`, width, height, scene.Background)
		b.WriteByte('\n')
	}

	for _, obj := range objects {
		writeObject(&b, obj)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

func writeObject(b *strings.Builder, obj *engine.RenderObject) {
	switch obj.Kind {
	case "path", "marker":
		d := pathData(obj.Path)
		if d == "" {
			return
		}
		fill := "none"
		opacity := ""
		if obj.Fill != "" {
			fill = obj.Fill
			opacity = fmt.Sprintf(` fill-opacity="%s"`, num(obj.FillOpacity))
		}
		fmt.Fprintf(b, `<path d=%q stroke=%q stroke-width="%s" fill=%q%s/>`,
			d, obj.Stroke, num(obj.Weight), fill, opacity)
	case "image":
		fmt.Fprintf(b, `<image href=%q x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="none"/>`,
			obj.URL, num(obj.Position.X), num(obj.Position.Y), num(obj.Width), num(obj.Height))
	case "label":
		fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill=%q>%s</text>`,
			num(obj.Position.X), num(obj.Position.Y), obj.Stroke, html.EscapeString(obj.Text))
	case "html":
		fmt.Fprintf(b, `<foreignObject x="%s" y="%s" width="%s" height="%s"><div xmlns="http://www.w3.org/1999/xhtml">%s</div></foreignObject>`,
			num(obj.Position.X), num(obj.Position.Y), num(obj.Width), num(obj.Height), obj.HTML)
	}
	b.WriteByte('\n')
}

// pathData joins Canvas2D-order path commands into an SVG path d attribute.
func pathData(path []engine.PathCommand) string {
	var parts []string
	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		op, ok := cmd[0].(string)
		if !ok {
			continue
		}
		seg := []string{op}
		for _, v := range cmd[1:] {
			if f, ok := v.(float64); ok {
				seg = append(seg, num(f))
			}
		}
		parts = append(parts, strings.Join(seg, " "))
	}
	return strings.Join(parts, " ")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
