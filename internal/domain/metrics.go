package domain

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"

	"github.com/geoinsight-service/internal/pkg/geo"
)

// Index normalization ranges and blend weights for the composite score.
const (
	roadDensityCap         = 10.0  // km/km²
	intersectionDensityCap = 200.0 // junctions/km²
	hospitalDensityCap     = 5.0   // hospitals/km²
	schoolDensityCap       = 8.0   // schools/km²

	infraWeight    = 0.35
	accessWeight   = 0.35
	activityWeight = 0.20
	greenWeight    = 0.10
)

// InfrastructureMetrics is the immutable result of one AOI pipeline run.
// Densities are always >= 0; indices live in [0, 1] and the composite score
// in [0, 100].
type InfrastructureMetrics struct {
	AreaKm2             float64
	RoadKm              float64
	RoadKmPerKm2        float64
	BuildingCount       int
	BuildingsPerKm2     float64
	IntersectionsPerKm2 float64
	HospitalsPerKm2     float64
	SchoolsPerKm2       float64
	InfraIndex          float64
	AccessIndex         float64
	ActivityIndex       float64
	GreenIndex          float64
	SocioEconScore      float64
}

// ComputeMetrics derives density metrics and the composite score from the
// clipped feature collections. It is a pure function: identical inputs always
// produce identical output, and empty collections yield all-zero densities
// rather than an error.
func ComputeMetrics(roads, buildings, amenities FeatureCollection, areaKm2 float64) InfrastructureMetrics {
	roadKm := geo.TotalLengthKm(roads.LineStrings())

	m := InfrastructureMetrics{
		AreaKm2:       areaKm2,
		RoadKm:        roadKm,
		BuildingCount: buildings.Len(),
	}

	if areaKm2 > 0 {
		m.RoadKmPerKm2 = roadKm / areaKm2
		m.BuildingsPerKm2 = float64(m.BuildingCount) / areaKm2
		m.IntersectionsPerKm2 = intersectionDensityPerKm2(roads, areaKm2)
		m.HospitalsPerKm2 = float64(amenities.CountTag("amenity", "hospital")) / areaKm2
		m.SchoolsPerKm2 = float64(amenities.CountTag("amenity", "school")) / areaKm2
	}

	m.InfraIndex = 0.5*geo.NormClip(m.RoadKmPerKm2, 0, roadDensityCap) +
		0.5*geo.NormClip(m.IntersectionsPerKm2, 0, intersectionDensityCap)
	m.AccessIndex = 0.5*geo.NormClip(m.HospitalsPerKm2, 0, hospitalDensityCap) +
		0.5*geo.NormClip(m.SchoolsPerKm2, 0, schoolDensityCap)

	// Activity and green signals wait on nightlight / vegetation sources.
	m.ActivityIndex = 0.0
	m.GreenIndex = 0.0

	m.SocioEconScore = 100.0 * (infraWeight*m.InfraIndex +
		accessWeight*m.AccessIndex +
		activityWeight*m.ActivityIndex +
		greenWeight*m.GreenIndex)

	return m
}

type planarVertex struct {
	x, y float64
}

// intersectionDensityPerKm2 counts junction vertices per km². Roads are
// projected to planar coordinates and every vertex is snapped to a 2-decimal
// (~1 cm) grid so near-duplicate endpoints of adjoining segments merge; a
// vertex shared by 3 or more segment points counts as one junction. The
// heuristic trades topological exactness for a single O(n) pass.
func intersectionDensityPerKm2(roads FeatureCollection, areaKm2 float64) float64 {
	if roads.Len() == 0 || areaKm2 == 0 {
		return 0.0
	}

	counts := make(map[planarVertex]int)
	for _, f := range roads.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			projected := project.LineString(g.Clone(), project.WGS84.ToMercator)
			for _, p := range projected {
				counts[snapVertex(p)]++
			}
		case orb.Polygon:
			// A closed way can surface as a polygon; use its exterior ring.
			if len(g) == 0 {
				continue
			}
			exterior := project.Ring(g[0].Clone(), project.WGS84.ToMercator)
			for _, p := range exterior {
				counts[snapVertex(p)]++
			}
		}
	}

	junctions := 0
	for _, n := range counts {
		if n >= 3 {
			junctions++
		}
	}

	return float64(junctions) / areaKm2
}

func snapVertex(p orb.Point) planarVertex {
	return planarVertex{
		x: math.Round(p[0]*100) / 100,
		y: math.Round(p[1]*100) / 100,
	}
}
