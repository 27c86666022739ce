package shared

import "math"

// Lambert-93 is a Lambert conformal conic projection on the GRS80
// ellipsoid (EPSG 2154). The constants below are the official IGN
// parameters; the inverse formulas follow the two-parallel conic
// method so stored geometries can be served in WGS84 without a
// database round-trip.
const (
	grs80A = 6378137.0
	grs80F = 1.0 / 298.257222101

	lambert93Lat0 = 46.5 // latitude of origin, degrees
	lambert93Lon0 = 3.0  // central meridian, degrees
	lambert93Lat1 = 44.0 // first standard parallel, degrees
	lambert93Lat2 = 49.0 // second standard parallel, degrees
	lambert93X0   = 700000.0
	lambert93Y0   = 6600000.0
)

type lambertConic struct {
	e    float64 // ellipsoid eccentricity
	n    float64 // cone constant
	aF   float64 // a * F
	rho0 float64 // radius at the origin latitude
	lon0 float64 // central meridian, radians
	x0   float64
	y0   float64
}

var lambert93 = newLambertConic()

func newLambertConic() lambertConic {
	e := math.Sqrt(2*grs80F - grs80F*grs80F)
	lat0 := lambert93Lat0 * math.Pi / 180
	lat1 := lambert93Lat1 * math.Pi / 180
	lat2 := lambert93Lat2 * math.Pi / 180

	m1 := conicM(lat1, e)
	m2 := conicM(lat2, e)
	t0 := conicT(lat0, e)
	t1 := conicT(lat1, e)
	t2 := conicT(lat2, e)

	n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	f := m1 / (n * math.Pow(t1, n))
	aF := grs80A * f

	return lambertConic{
		e:    e,
		n:    n,
		aF:   aF,
		rho0: aF * math.Pow(t0, n),
		lon0: lambert93Lon0 * math.Pi / 180,
		x0:   lambert93X0,
		y0:   lambert93Y0,
	}
}

func conicM(lat, e float64) float64 {
	s := math.Sin(lat)
	return math.Cos(lat) / math.Sqrt(1-e*e*s*s)
}

func conicT(lat, e float64) float64 {
	s := math.Sin(lat)
	return math.Tan(math.Pi/4-lat/2) / math.Pow((1-e*s)/(1+e*s), e/2)
}

// inverse converts projected easting/northing to lon/lat in degrees.
func (p lambertConic) inverse(x, y float64) (lon, lat float64) {
	dx := x - p.x0
	dy := p.rho0 - (y - p.y0)

	rho := math.Sqrt(dx*dx + dy*dy)
	if p.n < 0 {
		rho = -rho
	}
	t := math.Pow(rho/p.aF, 1/p.n)
	theta := math.Atan2(dx, dy)

	lonRad := theta/p.n + p.lon0

	// Iterate the isometric latitude, converges in a few rounds.
	latRad := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 8; i++ {
		s := math.Sin(latRad)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-p.e*s)/(1+p.e*s), p.e/2))
		if math.Abs(next-latRad) < 1e-12 {
			latRad = next
			break
		}
		latRad = next
	}

	return lonRad * 180 / math.Pi, latRad * 180 / math.Pi
}

// ToWGS84 returns the geometry reprojected to SRID 4326. Geometries
// already in WGS84 and zero geometries pass through unchanged.
func (g Geometry) ToWGS84() Geometry {
	if g.IsZero() || g.SRID == SRIDWGS84 {
		return g
	}
	if g.SRID != SRIDLambert93 {
		return g
	}

	coords := make([]Coordinate, len(g.Coordinates))
	for i, c := range g.Coordinates {
		lon, lat := lambert93.inverse(c.X, c.Y)
		coords[i] = Coordinate{X: lon, Y: lat, Z: c.Z}
	}
	out := g
	out.SRID = SRIDWGS84
	out.Coordinates = coords
	return out
}
