package services

import (
	"context"
	"fmt"
	"log"

	"github.com/miocluster/geocluster/apiHandlers"
	"github.com/miocluster/geocluster/cluster"
	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/events"
	"github.com/miocluster/geocluster/interfaces"
	"github.com/miocluster/geocluster/repositories"

	"github.com/pocketbase/pocketbase/core"
)

// AppService coordinates all application services with proper dependency
// injection, the way the teacher's AppService wires auth/collection/sync
// services and their handlers in one composition root.
type AppService struct {
	config *config.Config

	index           *cluster.Index
	eventDispatcher *events.Dispatcher
	eventRegistry   *events.EventRegistry
	pointSource     interfaces.PointSource
	reloadService   *ReloadService

	clusterHandler *apiHandlers.ClusterHandler
	tileHandler    *apiHandlers.TileHandler
	metaHandler    *apiHandlers.MetaHandler

	tileCacheVersion int
}

// NewAppService creates a new application service with the cluster index,
// event plumbing, and handlers wired. Initialization that requires a live
// PocketBase app (the point source) happens in InitializeForPocketBase.
func NewAppService(cfg *config.Config) (*AppService, error) {
	a := &AppService{config: cfg}

	a.index = cluster.New(cluster.FromConfig(cfg.Index))

	a.eventRegistry = events.NewEventRegistry(&a.tileCacheVersion)
	a.eventDispatcher = a.eventRegistry.GetDispatcher()

	a.clusterHandler = apiHandlers.NewClusterHandler(a.index)
	a.tileHandler = apiHandlers.NewTileHandler(a.index)
	a.metaHandler = apiHandlers.NewMetaHandler(a.index, cfg.Index)

	return a, nil
}

// InitializeForPocketBase completes initialization once a live PocketBase
// app is available, the way the teacher's AppService defers repository
// construction until PocketBase has started.
func (a *AppService) InitializeForPocketBase(app core.App) error {
	source, err := a.buildPointSource(app)
	if err != nil {
		return fmt.Errorf("failed to build point source %q: %w", a.config.PointSource.Kind, err)
	}
	a.pointSource = source
	a.reloadService = NewReloadService(a.pointSource, a.index, a.eventDispatcher)
	return nil
}

func (a *AppService) buildPointSource(app core.App) (interfaces.PointSource, error) {
	switch a.config.PointSource.Kind {
	case config.PointSourcePostGIS:
		return NewPostGISPointSource(a.config.Database)
	case config.PointSourceGPX:
		if a.config.PointSource.GPXPath == "" {
			return nil, fmt.Errorf("POINT_SOURCE_GPX_PATH must be set when POINT_SOURCE=gpx")
		}
		return NewGPXPointSource(a.config.PointSource.GPXPath), nil
	case config.PointSourcePlaces, "":
		return repositories.NewPlacesRepository(app), nil
	default:
		return nil, fmt.Errorf("unknown point source kind %q", a.config.PointSource.Kind)
	}
}

// LoadInitial builds the cluster index from the configured point source at
// startup. A failure is logged, not fatal: the index stays unloaded, and
// its queries return TreeNotFound errors until a later reload succeeds.
func (a *AppService) LoadInitial(ctx context.Context) {
	if a.reloadService == nil {
		log.Printf("AppService.LoadInitial called before InitializeForPocketBase; skipping")
		return
	}
	if err := a.reloadService.Reload(ctx); err != nil {
		log.Printf("⚠️  Initial cluster index load failed: %v", err)
	}
}

// Reload re-fetches the point source and rebuilds the index. Exposed for
// callers that want to trigger a rebuild outside the startup path (e.g. an
// admin endpoint or a hook on the underlying collection).
func (a *AppService) Reload(ctx context.Context) error {
	if a.reloadService == nil {
		return fmt.Errorf("AppService not initialized for PocketBase")
	}
	return a.reloadService.Reload(ctx)
}

// SetupRoutes registers every HTTP route this service owns.
func (a *AppService) SetupRoutes(e *core.ServeEvent) {
	a.clusterHandler.SetupRoutes(e)
	a.tileHandler.SetupRoutes(e)
	a.metaHandler.SetupRoutes(e)
}

// Close releases resources held by the active point source (e.g. a
// PostGIS connection pool).
func (a *AppService) Close() error {
	if closer, ok := a.pointSource.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
