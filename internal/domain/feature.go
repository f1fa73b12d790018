package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

// ElementKind is the raw feature-query element type.
type ElementKind string

const (
	ElementNode ElementKind = "node"
	ElementWay  ElementKind = "way"
)

// Element is one raw element from the feature-query service. Nodes carry
// Lat/Lon, ways carry the ordered Geometry list. Any other kind (relations,
// areas) is ignored during ingestion.
type Element struct {
	Kind     ElementKind       `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat,omitempty"`
	Lon      float64           `json:"lon,omitempty"`
	Geometry []LatLon          `json:"geometry,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
}

// Feature is a typed geometry (Point or LineString) with its tag map.
type Feature struct {
	ID       int64
	Geometry orb.Geometry
	Tags     map[string]string
}

// FeatureCollection groups the features of one category (roads, buildings or
// amenities) for a single pipeline run.
type FeatureCollection struct {
	Features []Feature
}

// BuildCollection converts raw elements into typed geometries. Nodes become
// Points, ways become LineStrings; unsupported kinds and ways with fewer than
// two coordinates are skipped without error. Composite and area features are
// not needed by any metric, so dropping them is deliberate.
func BuildCollection(elements []Element) FeatureCollection {
	features := make([]Feature, 0, len(elements))

	for _, el := range elements {
		switch el.Kind {
		case ElementNode:
			features = append(features, Feature{
				ID:       el.ID,
				Geometry: orb.Point{el.Lon, el.Lat},
				Tags:     el.Tags,
			})
		case ElementWay:
			if len(el.Geometry) < 2 {
				continue
			}
			line := make(orb.LineString, 0, len(el.Geometry))
			for _, c := range el.Geometry {
				line = append(line, orb.Point{c.Lon, c.Lat})
			}
			features = append(features, Feature{
				ID:       el.ID,
				Geometry: line,
				Tags:     el.Tags,
			})
		default:
			continue
		}
	}

	return FeatureCollection{Features: features}
}

// Clip intersects every geometry with the AOI bound. Features fully outside
// are silently dropped; lines crossing the edge are cut to the inside parts.
// An empty collection short-circuits. Clipping never fails: malformed
// geometries are skipped per-feature.
func (fc FeatureCollection) Clip(bound orb.Bound) FeatureCollection {
	if len(fc.Features) == 0 {
		return fc
	}

	clipped := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			if bound.Contains(g) {
				clipped = append(clipped, f)
			}
		case orb.LineString:
			if len(g) < 2 {
				continue
			}
			result := clip.Geometry(bound, g)
			if result == nil {
				continue
			}
			switch cut := result.(type) {
			case orb.LineString:
				if len(cut) >= 2 {
					clipped = append(clipped, Feature{ID: f.ID, Geometry: cut, Tags: f.Tags})
				}
			case orb.MultiLineString:
				for _, part := range cut {
					if len(part) >= 2 {
						clipped = append(clipped, Feature{ID: f.ID, Geometry: part, Tags: f.Tags})
					}
				}
			}
		default:
			if result := clip.Geometry(bound, f.Geometry); result != nil {
				clipped = append(clipped, Feature{ID: f.ID, Geometry: result, Tags: f.Tags})
			}
		}
	}

	return FeatureCollection{Features: clipped}
}

// Len returns the number of features in the collection.
func (fc FeatureCollection) Len() int {
	return len(fc.Features)
}

// CountTag counts features whose tag map has key == value.
func (fc FeatureCollection) CountTag(key, value string) int {
	n := 0
	for _, f := range fc.Features {
		if f.Tags[key] == value {
			n++
		}
	}
	return n
}

// LineStrings extracts every LineString geometry in the collection.
func (fc FeatureCollection) LineStrings() []orb.LineString {
	lines := make([]orb.LineString, 0, len(fc.Features))
	for _, f := range fc.Features {
		if ls, ok := f.Geometry.(orb.LineString); ok {
			lines = append(lines, ls)
		}
	}
	return lines
}
