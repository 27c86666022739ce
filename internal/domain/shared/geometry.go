package shared

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Spatial reference identifiers used by the service. Storage uses a
// projected SRID so lengths and distances are in meters; the API always
// speaks WGS84.
const (
	SRIDWGS84     = 4326
	SRIDLambert93 = 2154
)

// GeometryType enumerates the geometry kinds the service stores
type GeometryType string

const (
	GeometryPoint      GeometryType = "POINT"
	GeometryLineString GeometryType = "LINESTRING"
	GeometryMultiPoint GeometryType = "MULTIPOINT"
)

// Coordinate is a single position. Z is only meaningful for 3D geometries.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Geometry is an EWKT-backed geometry value stored in a PostGIS column.
// It scans both EWKT text and the hex EWKB PostGIS returns on plain selects.
type Geometry struct {
	Type        GeometryType
	SRID        int
	Coordinates []Coordinate
	Is3D        bool
}

// NewPoint builds a 2D point geometry
func NewPoint(x, y float64, srid int) Geometry {
	return Geometry{
		Type:        GeometryPoint,
		SRID:        srid,
		Coordinates: []Coordinate{{X: x, Y: y}},
	}
}

// NewLineString builds a linestring geometry from ordered coordinates
func NewLineString(coords []Coordinate, srid int) (Geometry, error) {
	if len(coords) < 2 {
		return Geometry{}, NewDomainError(ErrInvalidGeometry.Code, "linestring requires at least two points")
	}
	return Geometry{
		Type:        GeometryLineString,
		SRID:        srid,
		Coordinates: coords,
	}, nil
}

// NewMultiPoint builds a multipoint geometry
func NewMultiPoint(coords []Coordinate, srid int) (Geometry, error) {
	if len(coords) == 0 {
		return Geometry{}, NewDomainError(ErrInvalidGeometry.Code, "multipoint requires at least one point")
	}
	return Geometry{
		Type:        GeometryMultiPoint,
		SRID:        srid,
		Coordinates: coords,
	}, nil
}

// IsZero reports whether the geometry is unset
func (g Geometry) IsZero() bool {
	return g.Type == "" || len(g.Coordinates) == 0
}

// Point returns the first coordinate. Only meaningful for point geometries.
func (g Geometry) Point() Coordinate {
	if len(g.Coordinates) == 0 {
		return Coordinate{}
	}
	return g.Coordinates[0]
}

// Length2D returns the planar length of a linestring in SRID units
func (g Geometry) Length2D() float64 {
	if g.Type != GeometryLineString {
		return 0
	}
	var total float64
	for i := 1; i < len(g.Coordinates); i++ {
		dx := g.Coordinates[i].X - g.Coordinates[i-1].X
		dy := g.Coordinates[i].Y - g.Coordinates[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// Extent returns the bounding box as (minX, minY, maxX, maxY)
func (g Geometry) Extent() (float64, float64, float64, float64) {
	if len(g.Coordinates) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := g.Coordinates[0].X, g.Coordinates[0].Y
	maxX, maxY := minX, minY
	for _, c := range g.Coordinates[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// EWKT renders the geometry as extended well-known text
func (g Geometry) EWKT() string {
	if g.IsZero() {
		return ""
	}
	var b strings.Builder
	if g.SRID != 0 {
		fmt.Fprintf(&b, "SRID=%d;", g.SRID)
	}
	b.WriteString(string(g.Type))
	if g.Is3D {
		b.WriteString(" Z")
	}
	b.WriteByte('(')
	for i, c := range g.Coordinates {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(c.X))
		b.WriteByte(' ')
		b.WriteString(formatFloat(c.Y))
		if g.Is3D {
			b.WriteByte(' ')
			b.WriteString(formatFloat(c.Z))
		}
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Value implements driver.Valuer. PostGIS casts EWKT text to geometry.
func (g Geometry) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	return g.EWKT(), nil
}

// Scan implements sql.Scanner for EWKT text and hex EWKB
func (g *Geometry) Scan(value interface{}) error {
	if value == nil {
		*g = Geometry{}
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported geometry scan type %T", value)
	}
	if s == "" {
		*g = Geometry{}
		return nil
	}
	if isHex(s) {
		parsed, err := parseHexEWKB(s)
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	}
	parsed, err := ParseEWKT(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func isHex(s string) bool {
	if len(s) < 18 {
		return false
	}
	for _, r := range s[:8] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	// EWKT starts with "SRID=" or a geometry keyword, neither is pure hex
	return true
}

// ParseEWKT parses extended well-known text for the supported geometry types
func ParseEWKT(s string) (Geometry, error) {
	g := Geometry{}
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "SRID="); ok {
		idx := strings.IndexByte(rest, ';')
		if idx < 0 {
			return g, NewDomainError(ErrInvalidGeometry.Code, "missing ';' after SRID prefix")
		}
		srid, err := strconv.Atoi(rest[:idx])
		if err != nil {
			return g, NewDomainError(ErrInvalidGeometry.Code, "invalid SRID value")
		}
		g.SRID = srid
		s = strings.TrimSpace(rest[idx+1:])
	}
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return g, NewDomainError(ErrInvalidGeometry.Code, "malformed WKT body")
	}
	head := strings.ToUpper(strings.TrimSpace(s[:open]))
	if rest, ok := strings.CutSuffix(head, "Z"); ok && rest != head {
		g.Is3D = true
		head = strings.TrimSpace(rest)
	}
	switch GeometryType(head) {
	case GeometryPoint, GeometryLineString, GeometryMultiPoint:
		g.Type = GeometryType(head)
	default:
		return g, NewDomainError(ErrInvalidGeometry.Code, "unsupported geometry type "+head)
	}
	body := s[open+1 : len(s)-1]
	// Multipoint coordinates may be individually parenthesized
	body = strings.ReplaceAll(body, "(", "")
	body = strings.ReplaceAll(body, ")", "")
	for _, part := range strings.Split(body, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 {
			return g, NewDomainError(ErrInvalidGeometry.Code, "coordinate requires at least x and y")
		}
		var c Coordinate
		var err error
		if c.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return g, NewDomainError(ErrInvalidGeometry.Code, "invalid x coordinate")
		}
		if c.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return g, NewDomainError(ErrInvalidGeometry.Code, "invalid y coordinate")
		}
		if len(fields) > 2 {
			if c.Z, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return g, NewDomainError(ErrInvalidGeometry.Code, "invalid z coordinate")
			}
			g.Is3D = true
		}
		g.Coordinates = append(g.Coordinates, c)
	}
	if g.Type == GeometryLineString && len(g.Coordinates) < 2 {
		return g, NewDomainError(ErrInvalidGeometry.Code, "linestring requires at least two points")
	}
	return g, nil
}

// EWKB geometry type codes and flags
const (
	ewkbPoint      = 1
	ewkbLineString = 2
	ewkbMultiPoint = 4
	ewkbZFlag      = 0x80000000
	ewkbSRIDFlag   = 0x20000000
)

func parseHexEWKB(s string) (Geometry, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Geometry{}, NewDomainError(ErrInvalidGeometry.Code, "invalid hex EWKB")
	}
	g, _, err := decodeEWKB(raw)
	return g, err
}

func decodeEWKB(raw []byte) (Geometry, []byte, error) {
	g := Geometry{}
	if len(raw) < 5 {
		return g, nil, NewDomainError(ErrInvalidGeometry.Code, "EWKB too short")
	}
	var order binary.ByteOrder = binary.BigEndian
	if raw[0] == 1 {
		order = binary.LittleEndian
	}
	typeWord := order.Uint32(raw[1:5])
	raw = raw[5:]
	g.Is3D = typeWord&ewkbZFlag != 0
	hasSRID := typeWord&ewkbSRIDFlag != 0
	if hasSRID {
		if len(raw) < 4 {
			return g, nil, NewDomainError(ErrInvalidGeometry.Code, "EWKB truncated at SRID")
		}
		g.SRID = int(order.Uint32(raw[:4]))
		raw = raw[4:]
	}
	dims := 2
	if g.Is3D {
		dims = 3
	}
	readCoord := func(buf []byte) (Coordinate, []byte, error) {
		need := dims * 8
		if len(buf) < need {
			return Coordinate{}, nil, NewDomainError(ErrInvalidGeometry.Code, "EWKB truncated at coordinate")
		}
		c := Coordinate{
			X: math.Float64frombits(order.Uint64(buf[0:8])),
			Y: math.Float64frombits(order.Uint64(buf[8:16])),
		}
		if g.Is3D {
			c.Z = math.Float64frombits(order.Uint64(buf[16:24]))
		}
		return c, buf[need:], nil
	}
	switch typeWord &^ (ewkbZFlag | ewkbSRIDFlag) {
	case ewkbPoint:
		g.Type = GeometryPoint
		c, rest, err := readCoord(raw)
		if err != nil {
			return g, nil, err
		}
		g.Coordinates = []Coordinate{c}
		raw = rest
	case ewkbLineString:
		g.Type = GeometryLineString
		if len(raw) < 4 {
			return g, nil, NewDomainError(ErrInvalidGeometry.Code, "EWKB truncated at count")
		}
		n := int(order.Uint32(raw[:4]))
		raw = raw[4:]
		for i := 0; i < n; i++ {
			c, rest, err := readCoord(raw)
			if err != nil {
				return g, nil, err
			}
			g.Coordinates = append(g.Coordinates, c)
			raw = rest
		}
	case ewkbMultiPoint:
		g.Type = GeometryMultiPoint
		if len(raw) < 4 {
			return g, nil, NewDomainError(ErrInvalidGeometry.Code, "EWKB truncated at count")
		}
		n := int(order.Uint32(raw[:4]))
		raw = raw[4:]
		for i := 0; i < n; i++ {
			sub, rest, err := decodeEWKB(raw)
			if err != nil {
				return g, nil, err
			}
			if len(sub.Coordinates) > 0 {
				g.Coordinates = append(g.Coordinates, sub.Coordinates[0])
			}
			raw = rest
		}
	default:
		return g, nil, NewDomainError(ErrInvalidGeometry.Code, "unsupported EWKB geometry type")
	}
	return g, raw, nil
}
