package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/realestate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaticDir holds openapi.html and openapi.json, relative to the working directory.
const StaticDir = "static"

// OpenAPIHandler serves the API docs UI. The page loads its renderer from a
// CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	uiPath string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		uiPath:  filepath.Join(StaticDir, "openapi.html"),
	}
}

// ServeOpenAPIUI is read from disk on every request so edited docs show up
// without a restart.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.uiPath)
	if err != nil {
		return errors.Wrap(err, "read OpenAPI UI template")
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
