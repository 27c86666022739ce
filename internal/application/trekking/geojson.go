package trekking

import (
	"encoding/json"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
)

// GeoJSON layer names used as cache keys
const (
	LayerTreks = "treks:published"
	LayerPOIs  = "pois:published"
)

// Feature is a GeoJSON feature
type Feature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id"`
	Geometry   json.RawMessage        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type geoJSONGeometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// EncodeGeometry converts a geometry to its GeoJSON representation.
// Projected geometries are reprojected to WGS84 first, as GeoJSON requires.
func EncodeGeometry(g shared.Geometry) (json.RawMessage, error) {
	if g.IsZero() {
		return json.RawMessage("null"), nil
	}
	g = g.ToWGS84()
	var geo geoJSONGeometry
	switch g.Type {
	case shared.GeometryPoint:
		c := g.Point()
		geo = geoJSONGeometry{Type: "Point", Coordinates: []float64{c.X, c.Y}}
	case shared.GeometryLineString:
		geo = geoJSONGeometry{Type: "LineString", Coordinates: coordPairs(g.Coordinates)}
	case shared.GeometryMultiPoint:
		geo = geoJSONGeometry{Type: "MultiPoint", Coordinates: coordPairs(g.Coordinates)}
	default:
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "unsupported geometry type")
	}
	return json.Marshal(geo)
}

func coordPairs(coords []shared.Coordinate) [][]float64 {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.X, c.Y}
	}
	return pairs
}

// BuildTrekLayer renders published treks as a GeoJSON feature collection
func BuildTrekLayer(treks []trekking.Trek) ([]byte, error) {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(treks))}
	for _, trek := range treks {
		geom, err := EncodeGeometry(trek.Geometry)
		if err != nil {
			return nil, err
		}
		props := map[string]interface{}{
			"name":      trek.Name,
			"departure": trek.Departure,
			"arrival":   trek.Arrival,
			"length":    trek.Altimetry.Length,
			"ascent":    trek.Altimetry.Ascent,
		}
		if trek.DurationHours != nil {
			props["duration"] = *trek.DurationHours
		}
		if trek.DifficultyID != nil {
			props["difficulty_id"] = trek.DifficultyID.String()
		}
		if trek.PracticeID != nil {
			props["practice_id"] = trek.PracticeID.String()
		}
		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			ID:         trek.ID.String(),
			Geometry:   geom,
			Properties: props,
		})
	}
	return json.Marshal(fc)
}

// BuildPOILayer renders published POIs as a GeoJSON feature collection
func BuildPOILayer(pois []trekking.POI) ([]byte, error) {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(pois))}
	for _, poi := range pois {
		if !poi.Published {
			continue
		}
		geom, err := EncodeGeometry(poi.Geometry)
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			ID:       poi.ID.String(),
			Geometry: geom,
			Properties: map[string]interface{}{
				"name":      poi.Name,
				"type_id":   poi.TypeID.String(),
				"elevation": poi.Elevation,
			},
		})
	}
	return json.Marshal(fc)
}
