package apiHandlers

import (
	"net/http"
	"strconv"

	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/interfaces"

	"github.com/pocketbase/pocketbase/core"
)

// ClusterHandler serves the bbox and cluster-navigation query surface
// (spec §4.5) over HTTP.
type ClusterHandler struct {
	index interfaces.ClusterIndex
}

// NewClusterHandler creates a new cluster query handler.
func NewClusterHandler(index interfaces.ClusterIndex) *ClusterHandler {
	return &ClusterHandler{index: index}
}

// SetupRoutes registers the bbox/children/leaves/expansion-zoom endpoints.
func (h *ClusterHandler) SetupRoutes(e *core.ServeEvent) {
	e.Router.GET("/api/clusters", func(re *core.RequestEvent) error {
		return h.handleGetClusters(re)
	})
	e.Router.GET("/api/clusters/{id}/children", func(re *core.RequestEvent) error {
		return h.handleGetChildren(re)
	})
	e.Router.GET("/api/clusters/{id}/leaves", func(re *core.RequestEvent) error {
		return h.handleGetLeaves(re)
	})
	e.Router.GET("/api/clusters/{id}/expansion-zoom", func(re *core.RequestEvent) error {
		return h.handleGetExpansionZoom(re)
	})
}

// handleGetClusters answers GET /api/clusters?bbox=w,s,e,n&zoom=z.
func (h *ClusterHandler) handleGetClusters(re *core.RequestEvent) error {
	setCORSHeaders(re)

	bbox, err := parseBBox(re.Request.URL.Query().Get("bbox"))
	if err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	zoom, err := strconv.Atoi(re.Request.URL.Query().Get("zoom"))
	if err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid or missing zoom parameter"})
	}

	features, cerr := h.index.GetClusters(bbox, zoom)
	if cerr != nil {
		return re.JSON(statusForClusterError(cerr), map[string]string{"error": cerr.Error()})
	}
	return re.JSON(http.StatusOK, toDTOs(features))
}

// handleGetChildren answers GET /api/clusters/{id}/children.
func (h *ClusterHandler) handleGetChildren(re *core.RequestEvent) error {
	setCORSHeaders(re)

	clusterID, err := strconv.Atoi(re.Request.PathValue("id"))
	if err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cluster id"})
	}

	children, cerr := h.index.GetChildren(clusterID)
	if cerr != nil {
		return re.JSON(statusForClusterError(cerr), map[string]string{"error": cerr.Error()})
	}
	return re.JSON(http.StatusOK, toDTOs(children))
}

// handleGetLeaves answers GET /api/clusters/{id}/leaves?limit=&offset=.
func (h *ClusterHandler) handleGetLeaves(re *core.RequestEvent) error {
	setCORSHeaders(re)

	clusterID, err := strconv.Atoi(re.Request.PathValue("id"))
	if err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cluster id"})
	}
	limit := 10
	if v := re.Request.URL.Query().Get("limit"); v != "" {
		if parsed, perr := strconv.Atoi(v); perr == nil {
			limit = parsed
		}
	}
	offset := 0
	if v := re.Request.URL.Query().Get("offset"); v != "" {
		if parsed, perr := strconv.Atoi(v); perr == nil {
			offset = parsed
		}
	}

	leaves := h.index.GetLeaves(clusterID, limit, offset)
	return re.JSON(http.StatusOK, toDTOs(leaves))
}

// handleGetExpansionZoom answers GET /api/clusters/{id}/expansion-zoom.
func (h *ClusterHandler) handleGetExpansionZoom(re *core.RequestEvent) error {
	setCORSHeaders(re)

	clusterID, err := strconv.Atoi(re.Request.PathValue("id"))
	if err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cluster id"})
	}

	zoom := h.index.GetClusterExpansionZoom(clusterID)
	return re.JSON(http.StatusOK, map[string]int{"expansion_zoom": zoom})
}

// statusForClusterError maps spec §7's three error kinds onto HTTP status
// codes: a bad zoom is a client error, a vanished cluster/tile is a 404.
func statusForClusterError(err *entities.ClusterError) int {
	switch err.Kind {
	case entities.TreeNotFound:
		return http.StatusBadRequest
	case entities.ClusterNotFound, entities.TileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func setCORSHeaders(re *core.RequestEvent) {
	re.Response.Header().Set("Access-Control-Allow-Origin", "*")
	re.Response.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	re.Response.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
