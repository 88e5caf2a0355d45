package apiHandlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/miocluster/geocluster/interfaces"

	"github.com/pocketbase/pocketbase/core"
)

// TileHandler serves spec §4.5's get_tile query: the features intersecting
// a single z/x/y tile, rendered in tile-pixel coordinates.
type TileHandler struct {
	index interfaces.ClusterIndex
}

// NewTileHandler creates a new tile query handler.
func NewTileHandler(index interfaces.ClusterIndex) *TileHandler {
	return &TileHandler{index: index}
}

// SetupRoutes registers the tile endpoint using the same wildcard path
// pattern the teacher's MVT handler uses, since PocketBase's router has no
// multi-segment named parameters.
func (h *TileHandler) SetupRoutes(e *core.ServeEvent) {
	e.Router.OPTIONS("/api/tiles/{path...}", func(re *core.RequestEvent) error {
		setCORSHeaders(re)
		re.Response.WriteHeader(http.StatusOK)
		return nil
	})
	e.Router.GET("/api/tiles/{path...}", func(re *core.RequestEvent) error {
		return h.handleGetTile(re)
	})
}

// handleGetTile answers GET /api/tiles/{z}/{x}/{y}.json.
func (h *TileHandler) handleGetTile(re *core.RequestEvent) error {
	setCORSHeaders(re)

	pathParam := strings.TrimSuffix(re.Request.PathValue("path"), ".json")
	parts := strings.Split(pathParam, "/")
	if len(parts) != 3 {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "expected path /api/tiles/{z}/{x}/{y}.json"})
	}

	z, errZ := strconv.Atoi(parts[0])
	x, errX := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errZ != nil || errX != nil || errY != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "z/x/y must be integers"})
	}

	features, cerr := h.index.GetTile(z, x, y)
	if cerr != nil {
		return re.JSON(statusForClusterError(cerr), map[string]string{"error": cerr.Error()})
	}

	re.Response.Header().Set("Cache-Control", "public, max-age=86400")
	return re.JSON(http.StatusOK, toDTOs(features))
}
