package persistence

import (
	"context"
	"fmt"

	"github.com/geotrail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// PostgisElevationSampler reads terrain elevation from a DEM raster table.
// The raster is expected in the projected SRID, tiled, with a GiST index on
// ST_ConvexHull(rast).
type PostgisElevationSampler struct {
	db    *gorm.DB
	table string
	srid  int
}

// NewPostgisElevationSampler creates a sampler over the given raster table.
// An empty table name falls back to "dem".
func NewPostgisElevationSampler(db *gorm.DB, table string) *PostgisElevationSampler {
	if table == "" {
		table = "dem"
	}
	return &PostgisElevationSampler{db: db, table: table, srid: shared.SRIDLambert93}
}

// SampleElevation returns the DEM value under the coordinate, or zero when
// the point falls outside raster coverage.
func (s *PostgisElevationSampler) SampleElevation(ctx context.Context, coord shared.Coordinate) (float64, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(ST_Value(rast, ST_SetSRID(ST_MakePoint(?, ?), ?)), 0)
		 FROM %s
		 WHERE ST_Intersects(rast, ST_SetSRID(ST_MakePoint(?, ?), ?))
		 LIMIT 1`, s.table)

	var elevation float64
	err := s.db.WithContext(ctx).
		Raw(query, coord.X, coord.Y, s.srid, coord.X, coord.Y, s.srid).
		Scan(&elevation).Error
	if err != nil {
		return 0, fmt.Errorf("sample elevation at (%f, %f): %w", coord.X, coord.Y, err)
	}
	return elevation, nil
}
