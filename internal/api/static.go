package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// fallback handles every unrouted request. API-prefixed paths get the JSON
// 404; everything else is treated as a static asset, falling back to the
// single-page entry document so client-side routes resolve after a reload.
func (s *Server) fallback(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		respondError(c, http.StatusNotFound, "Endpoint not found")
		return
	}

	if s.staticDir == "" {
		c.Status(http.StatusNotFound)
		return
	}

	// Clean relative to root so ".." cannot escape the static directory.
	rel := filepath.Clean("/" + strings.TrimPrefix(p, "/"))
	full := filepath.Join(s.staticDir, rel)
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		c.File(full)
		return
	}

	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(index)
}
