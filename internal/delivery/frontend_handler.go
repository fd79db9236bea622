package delivery

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
)

const fallbackHTML = `<!DOCTYPE html>
<html>
<head><title>Voice Agents</title></head>
<body>
    <h1>Voice Agents Backend Running!</h1>
    <p>Frontend files not found. Please create the frontend directory.</p>
    <p>Service status: <a href="/health">/health</a></p>
</body>
</html>
`

type FrontendHandler struct {
	staticDir string
	log       *logger.ZapLogger
}

func NewFrontendHandler(staticDir string, log *logger.ZapLogger) *FrontendHandler {
	return &FrontendHandler{
		staticDir: staticDir,
		log:       log,
	}
}

// HasStatic reports whether the static directory exists.
func (h *FrontendHandler) HasStatic() bool {
	info, err := os.Stat(h.staticDir)
	return err == nil && info.IsDir()
}

// GET /
func (h *FrontendHandler) Index(w http.ResponseWriter, _ *http.Request) {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "index.html"))
	if errors.Is(err, fs.ErrNotExist) {
		page, err = []byte(fallbackHTML), nil
	}
	if err != nil {
		writeError(w, h.log, "frontend", http.StatusInternalServerError, "Error loading frontend: "+err.Error(), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// GET /static/*
func (h *FrontendHandler) Static() http.Handler {
	return http.StripPrefix("/static", http.FileServer(http.Dir(h.staticDir)))
}
