package core

import (
	"context"
	"math"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
)

// ElevationSampler returns the terrain elevation at a coordinate.
// The production implementation reads the DEM raster loaded in PostGIS;
// without a DEM every sample is zero and profiles stay flat.
type ElevationSampler interface {
	SampleElevation(ctx context.Context, coord shared.Coordinate) (float64, error)
}

// ZeroSampler is the fallback when no DEM raster is available
type ZeroSampler struct{}

// SampleElevation always reports sea level
func (ZeroSampler) SampleElevation(_ context.Context, _ shared.Coordinate) (float64, error) {
	return 0, nil
}

// ComputeAltimetry drapes a 2D linestring over the terrain and derives the
// elevation figures stored alongside the geometry: 3D length, cumulated
// ascent and descent, elevation bounds and average slope.
func ComputeAltimetry(ctx context.Context, geom shared.Geometry, sampler ElevationSampler) (core.Altimetry, error) {
	if geom.Type != shared.GeometryLineString || len(geom.Coordinates) < 2 {
		return core.Altimetry{}, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "altimetry requires a linestring")
	}

	coords3D := make([]shared.Coordinate, len(geom.Coordinates))
	for i, c := range geom.Coordinates {
		z, err := sampler.SampleElevation(ctx, c)
		if err != nil {
			return core.Altimetry{}, err
		}
		coords3D[i] = shared.Coordinate{X: c.X, Y: c.Y, Z: z}
	}

	a := core.Altimetry{
		MinElevation: int(math.Round(coords3D[0].Z)),
		MaxElevation: int(math.Round(coords3D[0].Z)),
	}

	var ascent, descent float64
	for i := 1; i < len(coords3D); i++ {
		dx := coords3D[i].X - coords3D[i-1].X
		dy := coords3D[i].Y - coords3D[i-1].Y
		dz := coords3D[i].Z - coords3D[i-1].Z
		a.Length += math.Sqrt(dx*dx + dy*dy + dz*dz)
		if dz > 0 {
			ascent += dz
		} else {
			descent -= dz
		}
		z := int(math.Round(coords3D[i].Z))
		if z < a.MinElevation {
			a.MinElevation = z
		}
		if z > a.MaxElevation {
			a.MaxElevation = z
		}
	}
	a.Ascent = int(math.Round(ascent))
	a.Descent = int(math.Round(descent))

	planar := geom.Length2D()
	if planar > 0 {
		a.Slope = (ascent - descent) / planar
	}

	geom3D := shared.Geometry{
		Type:        shared.GeometryLineString,
		SRID:        geom.SRID,
		Coordinates: coords3D,
		Is3D:        true,
	}
	a.Geom3D = geom3D
	return a, nil
}

// BuildProfile resamples a 3D linestring into evenly spaced profile points.
// maxPoints caps the number of samples; shorter lines keep their vertices.
func BuildProfile(geom3D shared.Geometry, maxPoints int) []ProfilePoint {
	if geom3D.Type != shared.GeometryLineString || len(geom3D.Coordinates) < 2 {
		return nil
	}
	if maxPoints < 2 {
		maxPoints = 2
	}

	coords := geom3D.Coordinates
	points := make([]ProfilePoint, 0, len(coords))
	var dist float64
	points = append(points, ProfilePoint{Distance: 0, Elevation: coords[0].Z})
	for i := 1; i < len(coords); i++ {
		dx := coords[i].X - coords[i-1].X
		dy := coords[i].Y - coords[i-1].Y
		dist += math.Sqrt(dx*dx + dy*dy)
		points = append(points, ProfilePoint{Distance: dist, Elevation: coords[i].Z})
	}

	if len(points) <= maxPoints {
		return points
	}

	// Linear resample along the accumulated distance
	total := points[len(points)-1].Distance
	step := total / float64(maxPoints-1)
	resampled := make([]ProfilePoint, 0, maxPoints)
	idx := 0
	for i := 0; i < maxPoints; i++ {
		target := float64(i) * step
		for idx < len(points)-1 && points[idx+1].Distance < target {
			idx++
		}
		if idx >= len(points)-1 {
			resampled = append(resampled, points[len(points)-1])
			continue
		}
		a, b := points[idx], points[idx+1]
		span := b.Distance - a.Distance
		frac := 0.0
		if span > 0 {
			frac = (target - a.Distance) / span
		}
		resampled = append(resampled, ProfilePoint{
			Distance:  target,
			Elevation: a.Elevation + frac*(b.Elevation-a.Elevation),
		})
	}
	return resampled
}
