package services

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/interfaces"
)

// PostGISPointSource streams the rows of a configured PostGIS/Postgres
// table in as the clustering engine's input point set. Adapted from the
// teacher's PostGISService connection and query handling.
type PostGISPointSource struct {
	db    *sql.DB
	table string
}

// NewPostGISPointSource opens a connection to the configured Postgres
// database and returns a point source reading from cfg.Table.
func NewPostGISPointSource(cfg config.DatabaseConfig) (*PostGISPointSource, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(30)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostGISPointSource{db: db, table: cfg.Table}, nil
}

// LoadPoints reads every row of the configured table as a clustering
// input point: (lon, lat, id). Rows with a null geometry are skipped.
func (p *PostGISPointSource) LoadPoints(ctx context.Context) ([]entities.Point, error) {
	query := fmt.Sprintf(`
		SELECT id, ST_X(geom) AS lon, ST_Y(geom) AS lat
		FROM %s
		WHERE geom IS NOT NULL`, p.table)

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query points from %s: %w", p.table, err)
	}
	defer rows.Close()

	var points []entities.Point
	for rows.Next() {
		var id uint32
		var lon, lat float64
		if err := rows.Scan(&id, &lon, &lat); err != nil {
			return nil, fmt.Errorf("failed to scan point row: %w", err)
		}
		points = append(points, entities.Point{X: lon, Y: lat, ID: &id})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading point rows: %w", err)
	}

	return points, nil
}

// Close closes the underlying database connection.
func (p *PostGISPointSource) Close() error {
	return p.db.Close()
}

var _ interfaces.PointSource = (*PostGISPointSource)(nil)
