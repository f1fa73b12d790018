package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"

	"github.com/geoinsight-service/internal/pkg/errors"
)

// normEpsilon keeps NormClip defined when lo == hi.
const normEpsilon = 1e-9

// AOIPolygon builds the axis-aligned rectangle for a bounding box given as
// (minLon, minLat, maxLon, maxLat). A box where min > max on either axis is
// rejected; min == max is a valid degenerate box with zero area.
func AOIPolygon(minLon, minLat, maxLon, maxLat float64) (orb.Polygon, error) {
	for _, v := range []float64{minLon, minLat, maxLon, maxLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.ErrInvalidGeometry
		}
	}
	if minLon > maxLon || minLat > maxLat {
		return nil, errors.ErrInvalidGeometry
	}

	ring := orb.Ring{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}
	return orb.Polygon{ring}, nil
}

// ProjectAreaKm2 reprojects a WGS84 polygon to Web Mercator and returns its
// planar area in km². The Mercator distortion is accepted as a coarse
// approximation.
func ProjectAreaKm2(poly orb.Polygon) float64 {
	if len(poly) == 0 {
		return 0
	}
	projected := project.Polygon(poly.Clone(), project.WGS84.ToMercator)
	return math.Abs(planar.Area(projected)) / 1e6
}

// TotalLengthKm reprojects each line to Web Mercator, sums the planar lengths
// and converts to kilometres. Returns 0 for an empty collection.
func TotalLengthKm(lines []orb.LineString) float64 {
	var meters float64
	for _, ls := range lines {
		if len(ls) < 2 {
			continue
		}
		projected := project.LineString(ls.Clone(), project.WGS84.ToMercator)
		meters += planar.Length(projected)
	}
	return meters / 1000.0
}

// NormClip normalizes x into [0, 1] over the range [lo, hi], saturating at
// both ends instead of extrapolating.
func NormClip(x, lo, hi float64) float64 {
	v := (x - lo) / (hi - lo + normEpsilon)
	return math.Max(0.0, math.Min(1.0, v))
}
