package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/topoboard/topoboard/backend-go/internal/document"
)

const maxDocumentSize = 8 << 20

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type exportRequest struct {
	Document document.SceneDocument `json:"document"`
	SceneID  string                 `json:"sceneId"`
	Zoom     float64                `json:"zoom"`
	Name     string                 `json:"name"`
}

// ExportSVG handles POST /export/svg: renders a scene from the posted
// document into a downloadable SVG.
func (h *Handler) ExportSVG(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sceneID := req.SceneID
	if sceneID == "" && len(req.Document.Project.Scenes) > 0 {
		sceneID = req.Document.Project.Scenes[0]
	}

	zoom := req.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	name := req.Name
	if name == "" {
		name = "board"
	}
	// Sanitize filename
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)

	svg, err := RenderSVG(&req.Document, sceneID, zoom)
	if err != nil {
		slog.Warn("svg export failed", "error", err, "scene", sceneID)
		http.Error(w, "export failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".svg"))
	w.Header().Set("Content-Length", strconv.Itoa(len(svg)))
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}
