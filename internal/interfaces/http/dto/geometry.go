package dto

import "github.com/geotrail/backend/internal/domain/shared"

// GeometryInput carries a geometry in API requests. Coordinates are
// [x, y] pairs; a single pair for points, two or more for linestrings.
// @Description Geometry payload with coordinates and SRID
type GeometryInput struct {
	Type        string      `json:"type" binding:"required,oneof=Point LineString MultiPoint" example:"Point"`
	Coordinates [][]float64 `json:"coordinates" binding:"required,min=1,dive,len=2"`
	SRID        int         `json:"srid" binding:"omitempty,srid" example:"2154"`
}

// ToGeometry converts the payload to a domain geometry
func (g GeometryInput) ToGeometry() (shared.Geometry, error) {
	srid := g.SRID
	if srid == 0 {
		srid = shared.SRIDLambert93
	}

	coords := make([]shared.Coordinate, len(g.Coordinates))
	for i, pair := range g.Coordinates {
		if len(pair) != 2 {
			return shared.Geometry{}, shared.NewDomainError(shared.ErrInvalidGeometry.Code,
				"coordinates must be [x, y] pairs")
		}
		coords[i] = shared.Coordinate{X: pair[0], Y: pair[1]}
	}

	switch g.Type {
	case "Point":
		if len(coords) != 1 {
			return shared.Geometry{}, shared.NewDomainError(shared.ErrInvalidGeometry.Code,
				"a point takes exactly one coordinate pair")
		}
		return shared.NewPoint(coords[0].X, coords[0].Y, srid), nil
	case "LineString":
		return shared.NewLineString(coords, srid)
	case "MultiPoint":
		return shared.NewMultiPoint(coords, srid)
	default:
		return shared.Geometry{}, shared.NewDomainError(shared.ErrInvalidGeometry.Code,
			"unsupported geometry type")
	}
}

// GeometryResponse renders a geometry in API responses
// @Description Geometry with coordinates and SRID
type GeometryResponse struct {
	Type        string      `json:"type" example:"Point"`
	Coordinates [][]float64 `json:"coordinates"`
	SRID        int         `json:"srid" example:"2154"`
}

// NewGeometryResponse converts a domain geometry for API output.
// Zero geometries render as nil so they are omitted from JSON.
func NewGeometryResponse(g shared.Geometry) *GeometryResponse {
	if g.IsZero() {
		return nil
	}
	coords := make([][]float64, len(g.Coordinates))
	for i, c := range g.Coordinates {
		coords[i] = []float64{c.X, c.Y}
	}
	var typ string
	switch g.Type {
	case shared.GeometryPoint:
		typ = "Point"
	case shared.GeometryLineString:
		typ = "LineString"
	case shared.GeometryMultiPoint:
		typ = "MultiPoint"
	}
	return &GeometryResponse{Type: typ, Coordinates: coords, SRID: g.SRID}
}
