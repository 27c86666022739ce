package trekking

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
)

// KML document structures for trek exports
type kmlDocument struct {
	XMLName   xml.Name       `xml:"kml"`
	Namespace string         `xml:"xmlns,attr"`
	Document  kmlDocumentTag `xml:"Document"`
}

type kmlDocumentTag struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description,omitempty"`
	Placemarks  []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string         `xml:"name"`
	LineString *kmlLineString `xml:"LineString,omitempty"`
	Point      *kmlPoint      `xml:"Point,omitempty"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

// ExportTrekKML renders a trek, its parking and reference points as KML.
func ExportTrekKML(trek *trekking.Trek) ([]byte, error) {
	if trek.Geometry.IsZero() {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trek has no geometry to export")
	}

	doc := kmlDocument{
		Namespace: "http://www.opengis.net/kml/2.2",
		Document: kmlDocumentTag{
			Name:        trek.Name,
			Description: trek.DescriptionTeaser,
			Placemarks: []kmlPlacemark{
				{
					Name:       trek.Name,
					LineString: &kmlLineString{Coordinates: kmlCoordinates(trek.Geometry)},
				},
			},
		},
	}

	if !trek.ParkingLocation.IsZero() {
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			Name:  "Parking",
			Point: &kmlPoint{Coordinates: kmlCoordinates(trek.ParkingLocation)},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// kmlCoordinates renders "lon,lat[,alt]" tuples separated by spaces.
// KML only accepts WGS84 positions.
func kmlCoordinates(g shared.Geometry) string {
	g = g.ToWGS84()
	parts := make([]string, len(g.Coordinates))
	for i, c := range g.Coordinates {
		if g.Is3D {
			parts[i] = fmt.Sprintf("%g,%g,%g", c.X, c.Y, c.Z)
		} else {
			parts[i] = fmt.Sprintf("%g,%g", c.X, c.Y)
		}
	}
	return strings.Join(parts, " ")
}
