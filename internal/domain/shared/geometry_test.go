package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEWKT(t *testing.T) {
	t.Run("parses point with SRID prefix", func(t *testing.T) {
		g, err := ParseEWKT("SRID=2154;POINT(700000 6600000)")
		require.NoError(t, err)
		assert.Equal(t, GeometryPoint, g.Type)
		assert.Equal(t, 2154, g.SRID)
		assert.Equal(t, 700000.0, g.Point().X)
		assert.Equal(t, 6600000.0, g.Point().Y)
		assert.False(t, g.Is3D)
	})

	t.Run("parses 3D linestring", func(t *testing.T) {
		g, err := ParseEWKT("SRID=2154;LINESTRING Z(0 0 100,100 0 150,200 0 120)")
		require.NoError(t, err)
		assert.Equal(t, GeometryLineString, g.Type)
		assert.True(t, g.Is3D)
		require.Len(t, g.Coordinates, 3)
		assert.Equal(t, 150.0, g.Coordinates[1].Z)
	})

	t.Run("parses multipoint with nested parens", func(t *testing.T) {
		g, err := ParseEWKT("MULTIPOINT((1 2),(3 4))")
		require.NoError(t, err)
		assert.Equal(t, GeometryMultiPoint, g.Type)
		require.Len(t, g.Coordinates, 2)
		assert.Equal(t, 3.0, g.Coordinates[1].X)
	})

	t.Run("rejects single point linestring", func(t *testing.T) {
		_, err := ParseEWKT("LINESTRING(1 2)")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least two points")
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		_, err := ParseEWKT("POLYGON((0 0,1 0,1 1,0 0))")
		require.Error(t, err)
	})

	t.Run("rejects malformed SRID prefix", func(t *testing.T) {
		_, err := ParseEWKT("SRID=abc;POINT(1 2)")
		require.Error(t, err)
	})
}

func TestGeometryEWKT(t *testing.T) {
	t.Run("round trips a point", func(t *testing.T) {
		g := NewPoint(6.15, 44.2, SRIDWGS84)
		assert.Equal(t, "SRID=4326;POINT(6.15 44.2)", g.EWKT())

		parsed, err := ParseEWKT(g.EWKT())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	})

	t.Run("renders 3D coordinates", func(t *testing.T) {
		g, err := NewLineString([]Coordinate{{X: 0, Y: 0, Z: 10}, {X: 1, Y: 1, Z: 20}}, SRIDLambert93)
		require.NoError(t, err)
		g.Is3D = true
		assert.Equal(t, "SRID=2154;LINESTRING Z(0 0 10,1 1 20)", g.EWKT())
	})

	t.Run("zero geometry renders empty", func(t *testing.T) {
		var g Geometry
		assert.True(t, g.IsZero())
		assert.Equal(t, "", g.EWKT())
	})
}

func TestGeometryScan(t *testing.T) {
	t.Run("scans EWKT text", func(t *testing.T) {
		var g Geometry
		err := g.Scan("SRID=4326;POINT(1.5 2.5)")
		require.NoError(t, err)
		assert.Equal(t, 4326, g.SRID)
		assert.Equal(t, 1.5, g.Point().X)
	})

	t.Run("scans hex EWKB point", func(t *testing.T) {
		// SRID=4326;POINT(1 2), little endian
		var g Geometry
		err := g.Scan("0101000020E6100000000000000000F03F0000000000000040")
		require.NoError(t, err)
		assert.Equal(t, GeometryPoint, g.Type)
		assert.Equal(t, 4326, g.SRID)
		assert.Equal(t, 1.0, g.Point().X)
		assert.Equal(t, 2.0, g.Point().Y)
	})

	t.Run("nil resets the value", func(t *testing.T) {
		g := NewPoint(1, 2, 4326)
		require.NoError(t, g.Scan(nil))
		assert.True(t, g.IsZero())
	})
}

func TestGeometryMeasures(t *testing.T) {
	t.Run("planar length", func(t *testing.T) {
		g, err := NewLineString([]Coordinate{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 14}}, SRIDLambert93)
		require.NoError(t, err)
		assert.Equal(t, 15.0, g.Length2D())
	})

	t.Run("extent", func(t *testing.T) {
		g, err := NewLineString([]Coordinate{{X: -1, Y: 5}, {X: 3, Y: -2}}, SRIDLambert93)
		require.NoError(t, err)
		minX, minY, maxX, maxY := g.Extent()
		assert.Equal(t, -1.0, minX)
		assert.Equal(t, -2.0, minY)
		assert.Equal(t, 3.0, maxX)
		assert.Equal(t, 5.0, maxY)
	})
}
