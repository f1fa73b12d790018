package domain_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoinsight-service/internal/domain"
)

func TestBuildCollection(t *testing.T) {
	elements := []domain.Element{
		{
			Kind: domain.ElementNode,
			ID:   1,
			Lat:  28.6,
			Lon:  77.2,
			Tags: map[string]string{"amenity": "hospital"},
		},
		{
			Kind: domain.ElementWay,
			ID:   2,
			Geometry: []domain.LatLon{
				{Lat: 28.60, Lon: 77.20},
				{Lat: 28.61, Lon: 77.21},
			},
			Tags: map[string]string{"highway": "residential"},
		},
		{
			// Single-coordinate way cannot form a line.
			Kind:     domain.ElementWay,
			ID:       3,
			Geometry: []domain.LatLon{{Lat: 28.60, Lon: 77.20}},
		},
		{
			// Relations are not ingested.
			Kind: domain.ElementKind("relation"),
			ID:   4,
		},
	}

	fc := domain.BuildCollection(elements)
	require.Equal(t, 2, fc.Len())

	point, ok := fc.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, orb.Point{77.2, 28.6}, point, "points are lon-lat ordered")

	line, ok := fc.Features[1].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.Point{77.20, 28.60}, line[0])
	assert.Equal(t, "residential", fc.Features[1].Tags["highway"])
}

func TestFeatureCollectionClip(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

	t.Run("points are kept or dropped whole", func(t *testing.T) {
		fc := domain.FeatureCollection{Features: []domain.Feature{
			{ID: 1, Geometry: orb.Point{0.5, 0.5}},
			{ID: 2, Geometry: orb.Point{2.0, 0.5}},
		}}

		clipped := fc.Clip(bound)
		require.Equal(t, 1, clipped.Len())
		assert.Equal(t, int64(1), clipped.Features[0].ID)
	})

	t.Run("crossing line is cut at the edge", func(t *testing.T) {
		fc := domain.FeatureCollection{Features: []domain.Feature{
			{ID: 1, Geometry: orb.LineString{{-0.5, 0.5}, {0.5, 0.5}}},
		}}

		clipped := fc.Clip(bound)
		require.Equal(t, 1, clipped.Len())

		line, ok := clipped.Features[0].Geometry.(orb.LineString)
		require.True(t, ok)
		for _, p := range line {
			assert.GreaterOrEqual(t, p[0], 0.0)
			assert.LessOrEqual(t, p[0], 1.0)
		}
	})

	t.Run("line leaving and re-entering splits into parts", func(t *testing.T) {
		fc := domain.FeatureCollection{Features: []domain.Feature{
			{ID: 7, Geometry: orb.LineString{
				{0.2, 0.3}, {1.5, 0.3}, {1.5, 0.7}, {0.2, 0.7},
			}, Tags: map[string]string{"highway": "primary"}},
		}}

		clipped := fc.Clip(bound)
		require.Equal(t, 2, clipped.Len())
		for _, f := range clipped.Features {
			assert.Equal(t, int64(7), f.ID)
			assert.Equal(t, "primary", f.Tags["highway"])
			_, ok := f.Geometry.(orb.LineString)
			assert.True(t, ok, "parts must stay plain line strings")
		}
	})

	t.Run("fully outside line is dropped", func(t *testing.T) {
		fc := domain.FeatureCollection{Features: []domain.Feature{
			{ID: 1, Geometry: orb.LineString{{2.0, 2.0}, {3.0, 3.0}}},
		}}

		assert.Equal(t, 0, fc.Clip(bound).Len())
	})

	t.Run("empty collection short-circuits", func(t *testing.T) {
		fc := domain.FeatureCollection{}
		assert.Equal(t, 0, fc.Clip(bound).Len())
	})
}

func TestFeatureCollectionAccessors(t *testing.T) {
	fc := domain.FeatureCollection{Features: []domain.Feature{
		{ID: 1, Geometry: orb.Point{77.2, 28.6}, Tags: map[string]string{"amenity": "hospital"}},
		{ID: 2, Geometry: orb.Point{77.3, 28.7}, Tags: map[string]string{"amenity": "school"}},
		{ID: 3, Geometry: orb.LineString{{77.2, 28.6}, {77.3, 28.7}}, Tags: map[string]string{"highway": "primary"}},
		{ID: 4, Geometry: orb.Point{77.4, 28.8}, Tags: map[string]string{"amenity": "hospital"}},
	}}

	assert.Equal(t, 4, fc.Len())
	assert.Equal(t, 2, fc.CountTag("amenity", "hospital"))
	assert.Equal(t, 1, fc.CountTag("amenity", "school"))
	assert.Equal(t, 0, fc.CountTag("amenity", "clinic"))
	assert.Len(t, fc.LineStrings(), 1)
}
