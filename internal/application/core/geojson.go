package core

import (
	"context"
	"encoding/json"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
)

type pathFeature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id"`
	Geometry   json.RawMessage        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type pathFeatureCollection struct {
	Type     string        `json:"type"`
	Features []pathFeature `json:"features"`
}

type pathGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// GeoJSONLayer renders the whole path network as a GeoJSON feature
// collection in WGS84.
func (s *PathService) GeoJSONLayer(ctx context.Context) ([]byte, error) {
	paths, err := s.pathRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return buildPathLayer(paths)
}

func buildPathLayer(paths []core.Path) ([]byte, error) {
	fc := pathFeatureCollection{Type: "FeatureCollection", Features: make([]pathFeature, 0, len(paths))}
	for _, path := range paths {
		geom := path.Geometry.ToWGS84()
		coords := make([][]float64, len(geom.Coordinates))
		for i, c := range geom.Coordinates {
			coords[i] = []float64{c.X, c.Y}
		}
		raw, err := json.Marshal(pathGeometry{Type: "LineString", Coordinates: coords})
		if err != nil {
			return nil, err
		}
		props := map[string]interface{}{
			"name":      path.Name,
			"departure": path.Departure,
			"arrival":   path.Arrival,
			"length":    path.Length,
			"ascent":    path.Ascent,
			"descent":   path.Descent,
		}
		if path.StakeID != nil {
			props["stake_id"] = path.StakeID.String()
		}
		fc.Features = append(fc.Features, pathFeature{
			Type:       "Feature",
			ID:         path.ID.String(),
			Geometry:   raw,
			Properties: props,
		})
	}
	return json.Marshal(fc)
}
