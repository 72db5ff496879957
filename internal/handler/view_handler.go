package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	viewsDir string
}

func NewViewHandler(viewsDir string) *ViewHandler {
	return &ViewHandler{viewsDir: viewsDir}
}

// Render serves a static HTML view file.
func (h *ViewHandler) Render(fileName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := os.ReadFile(filepath.Join(h.viewsDir, fileName))
		if err != nil {
			c.String(http.StatusNotFound, "404 not found")
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}
