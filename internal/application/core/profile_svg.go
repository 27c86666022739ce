package core

import (
	"fmt"
	"math"
	"strings"
)

const (
	profileWidth  = 800
	profileHeight = 400
	profileMargin = 40
)

// RenderProfileSVG draws an elevation profile as a standalone SVG chart.
// The result can be rasterized to PNG by the capture service.
func RenderProfileSVG(points []ProfilePoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		profileWidth, profileHeight, profileWidth, profileHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)

	if len(points) >= 2 {
		maxDist := points[len(points)-1].Distance
		minElev, maxElev := points[0].Elevation, points[0].Elevation
		for _, p := range points[1:] {
			minElev = math.Min(minElev, p.Elevation)
			maxElev = math.Max(maxElev, p.Elevation)
		}
		// Flat profiles still get a visible band
		if maxElev-minElev < 10 {
			maxElev = minElev + 10
		}

		plotW := float64(profileWidth - 2*profileMargin)
		plotH := float64(profileHeight - 2*profileMargin)

		toX := func(d float64) float64 {
			if maxDist == 0 {
				return profileMargin
			}
			return profileMargin + d/maxDist*plotW
		}
		toY := func(e float64) float64 {
			return profileMargin + (1-(e-minElev)/(maxElev-minElev))*plotH
		}

		var area strings.Builder
		fmt.Fprintf(&area, "M %.1f %.1f", toX(0), float64(profileHeight-profileMargin))
		for _, p := range points {
			fmt.Fprintf(&area, " L %.1f %.1f", toX(p.Distance), toY(p.Elevation))
		}
		fmt.Fprintf(&area, " L %.1f %.1f Z", toX(maxDist), float64(profileHeight-profileMargin))
		fmt.Fprintf(&b, `<path d="%s" fill="#c8e6c9" stroke="none"/>`, area.String())

		var line strings.Builder
		for i, p := range points {
			if i == 0 {
				fmt.Fprintf(&line, "M %.1f %.1f", toX(p.Distance), toY(p.Elevation))
			} else {
				fmt.Fprintf(&line, " L %.1f %.1f", toX(p.Distance), toY(p.Elevation))
			}
		}
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#2e7d32" stroke-width="2"/>`, line.String())

		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" fill="#555">%.0f m</text>`,
			profileMargin, profileMargin-8, maxElev)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" fill="#555">%.0f m</text>`,
			profileMargin, profileHeight-profileMargin+16, minElev)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" fill="#555" text-anchor="end">%.1f km</text>`,
			profileWidth-profileMargin, profileHeight-profileMargin+16, maxDist/1000)
	}

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999" stroke-width="1"/>`,
		profileMargin, profileMargin, profileMargin, profileHeight-profileMargin)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999" stroke-width="1"/>`,
		profileMargin, profileHeight-profileMargin, profileWidth-profileMargin, profileHeight-profileMargin)

	b.WriteString(`</svg>`)
	return b.String()
}
