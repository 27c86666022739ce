package core

import (
	"context"
	"strings"
	"testing"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rampSampler struct {
	// elevation climbs by step per vertex
	step float64
	seen int
}

func (s *rampSampler) SampleElevation(_ context.Context, _ shared.Coordinate) (float64, error) {
	z := float64(s.seen) * s.step
	s.seen++
	return z, nil
}

func testLine(t *testing.T, coords ...shared.Coordinate) shared.Geometry {
	t.Helper()
	geom, err := shared.NewLineString(coords, shared.SRIDLambert93)
	require.NoError(t, err)
	return geom
}

func TestComputeAltimetry(t *testing.T) {
	t.Run("flat terrain yields zero ascent", func(t *testing.T) {
		geom := testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 700100, Y: 6600000},
		)

		a, err := ComputeAltimetry(context.Background(), geom, ZeroSampler{})
		require.NoError(t, err)
		assert.Equal(t, 0, a.Ascent)
		assert.Equal(t, 0, a.Descent)
		assert.InDelta(t, 100, a.Length, 0.01)
		assert.True(t, a.Geom3D.Is3D)
	})

	t.Run("climbing terrain accumulates ascent", func(t *testing.T) {
		geom := testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 700100, Y: 6600000},
			shared.Coordinate{X: 700200, Y: 6600000},
		)

		a, err := ComputeAltimetry(context.Background(), geom, &rampSampler{step: 50})
		require.NoError(t, err)
		assert.Equal(t, 100, a.Ascent)
		assert.Equal(t, 0, a.Descent)
		assert.Equal(t, 0, a.MinElevation)
		assert.Equal(t, 100, a.MaxElevation)
		assert.Greater(t, a.Length, 200.0)
		assert.InDelta(t, 0.5, a.Slope, 0.01)
	})

	t.Run("rejects point geometry", func(t *testing.T) {
		geom := shared.NewPoint(700000, 6600000, shared.SRIDLambert93)

		_, err := ComputeAltimetry(context.Background(), geom, ZeroSampler{})
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrInvalidGeometry.Code, derr.Code)
	})
}

func TestBuildProfile(t *testing.T) {
	t.Run("keeps vertices under the cap", func(t *testing.T) {
		geom3D := shared.Geometry{
			Type: shared.GeometryLineString,
			SRID: shared.SRIDLambert93,
			Is3D: true,
			Coordinates: []shared.Coordinate{
				{X: 0, Y: 0, Z: 100},
				{X: 100, Y: 0, Z: 150},
				{X: 200, Y: 0, Z: 120},
			},
		}

		points := BuildProfile(geom3D, 100)
		require.Len(t, points, 3)
		assert.Equal(t, 0.0, points[0].Distance)
		assert.Equal(t, 100.0, points[0].Elevation)
		assert.Equal(t, 200.0, points[2].Distance)
		assert.Equal(t, 120.0, points[2].Elevation)
	})

	t.Run("resamples dense lines evenly", func(t *testing.T) {
		coords := make([]shared.Coordinate, 500)
		for i := range coords {
			coords[i] = shared.Coordinate{X: float64(i), Y: 0, Z: float64(i)}
		}
		geom3D := shared.Geometry{
			Type:        shared.GeometryLineString,
			SRID:        shared.SRIDLambert93,
			Is3D:        true,
			Coordinates: coords,
		}

		points := BuildProfile(geom3D, 100)
		require.Len(t, points, 100)
		assert.Equal(t, 0.0, points[0].Distance)
		assert.InDelta(t, 499.0, points[99].Distance, 0.01)
		// Elevation tracks the distance on this synthetic ramp
		assert.InDelta(t, points[50].Distance, points[50].Elevation, 0.01)
	})

	t.Run("returns nil for non-linestrings", func(t *testing.T) {
		assert.Nil(t, BuildProfile(shared.Geometry{}, 100))
	})
}

func TestRenderProfileSVG(t *testing.T) {
	points := []ProfilePoint{
		{Distance: 0, Elevation: 100},
		{Distance: 500, Elevation: 180},
		{Distance: 1000, Elevation: 140},
	}

	svg := RenderProfileSVG(points)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "180 m")
	assert.Contains(t, svg, "100 m")
	assert.Contains(t, svg, "1.0 km")
}
