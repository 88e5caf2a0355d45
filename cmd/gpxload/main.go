// Command gpxload builds a cluster index from a GPX file and prints a
// summary, the ambient CLI counterpart to the teacher's gpx_importer
// command-line tool (which bulk-loaded GPX tracks into PostGIS).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/miocluster/geocluster/cluster"
	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/services"
)

func main() {
	path := flag.String("file", "", "path to a GPX file")
	zoom := flag.Int("zoom", 0, "zoom level to report the top-level cluster count at")
	flag.Parse()

	if *path == "" {
		log.Fatal("missing required -file flag")
	}

	source := services.NewGPXPointSource(*path)
	points, err := source.LoadPoints(context.Background())
	if err != nil {
		log.Fatalf("failed to load GPX points: %v", err)
	}

	cfg := config.Load()
	idx := cluster.New(cluster.FromConfig(cfg.Index))
	idx.Load(points)

	world := entities.BoundingBox{West: -180, South: -90, East: 180, North: 90}
	features, cerr := idx.GetClusters(world, *zoom)
	if cerr != nil {
		log.Fatalf("failed to query clusters: %v", cerr)
	}

	fmt.Printf("loaded %d points from %s\n", len(points), *path)
	fmt.Printf("zoom %d: %d top-level features\n", *zoom, len(features))
}
