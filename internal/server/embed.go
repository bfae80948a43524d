package server

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed ui
var uiFS embed.FS

// startedAt stamps embedded files, which carry no modification time.
var startedAt = time.Now()

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// handleStatic serves the embedded form. Unknown paths without a file
// extension fall back to index.html.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "unknown endpoint")
		return
	}

	subFS, err := fs.Sub(uiFS, "ui")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load UI files")
		return
	}

	fsPath := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if fsPath == "" {
		fsPath = "index.html"
	}

	data, err := fs.ReadFile(subFS, fsPath)
	if err != nil {
		if path.Ext(fsPath) != "" {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		fsPath = "index.html"
		if data, err = fs.ReadFile(subFS, fsPath); err != nil {
			writeError(w, http.StatusNotFound, "UI not available")
			return
		}
	}

	contentType, ok := contentTypes[path.Ext(fsPath)]
	if !ok {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	http.ServeContent(w, r, fsPath, startedAt, bytes.NewReader(data))
}
