package apiHandlers

import (
	"net/http"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/interfaces"

	"github.com/pocketbase/pocketbase/core"
)

// MetaHandler serves health and index-metadata endpoints, the way the
// teacher's MetaHandler serves lightweight informational routes alongside
// the heavier tile/query handlers.
type MetaHandler struct {
	index  interfaces.ClusterIndex
	config config.IndexConfig
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(index interfaces.ClusterIndex, cfg config.IndexConfig) *MetaHandler {
	return &MetaHandler{index: index, config: cfg}
}

// SetupRoutes registers the health and metadata endpoints.
func (h *MetaHandler) SetupRoutes(e *core.ServeEvent) {
	e.Router.GET("/api/health", func(re *core.RequestEvent) error {
		setCORSHeaders(re)
		return re.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.Router.GET("/api/meta", func(re *core.RequestEvent) error {
		return h.handleMeta(re)
	})
}

// handleMeta reports the index's configured zoom range and a worldwide
// top-level cluster count, so clients can size an initial viewport.
func (h *MetaHandler) handleMeta(re *core.RequestEvent) error {
	setCORSHeaders(re)

	world := entities.BoundingBox{West: -180, South: -90, East: 180, North: 90}
	clusterCount := 0
	if features, err := h.index.GetClusters(world, h.config.MinZoom); err == nil {
		clusterCount = len(features)
	}

	return re.JSON(http.StatusOK, map[string]interface{}{
		"min_zoom":          h.config.MinZoom,
		"max_zoom":          h.config.MaxZoom,
		"extent":            h.config.Extent,
		"radius":            h.config.Radius,
		"coordinate_system": h.config.CoordinateSystem,
		"top_level_count":   clusterCount,
	})
}
