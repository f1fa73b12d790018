package domain_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoinsight-service/internal/domain"
)

func road(id int64, points ...orb.Point) domain.Feature {
	return domain.Feature{
		ID:       id,
		Geometry: orb.LineString(points),
		Tags:     map[string]string{"highway": "residential"},
	}
}

func amenity(id int64, kind string) domain.Feature {
	return domain.Feature{
		ID:       id,
		Geometry: orb.Point{77.2, 28.6},
		Tags:     map[string]string{"amenity": kind},
	}
}

func TestComputeMetricsEmptyArea(t *testing.T) {
	m := domain.ComputeMetrics(
		domain.FeatureCollection{},
		domain.FeatureCollection{},
		domain.FeatureCollection{},
		25.0,
	)

	assert.Equal(t, 25.0, m.AreaKm2)
	assert.Equal(t, 0.0, m.RoadKm)
	assert.Equal(t, 0.0, m.RoadKmPerKm2)
	assert.Equal(t, 0, m.BuildingCount)
	assert.Equal(t, 0.0, m.IntersectionsPerKm2)
	assert.Equal(t, 0.0, m.HospitalsPerKm2)
	assert.Equal(t, 0.0, m.SchoolsPerKm2)
	assert.Equal(t, 0.0, m.InfraIndex)
	assert.Equal(t, 0.0, m.AccessIndex)
	assert.Equal(t, 0.0, m.SocioEconScore)
}

func TestComputeMetricsZeroAreaKeepsDensitiesZero(t *testing.T) {
	roads := domain.FeatureCollection{Features: []domain.Feature{
		road(1, orb.Point{77.20, 28.60}, orb.Point{77.21, 28.60}),
	}}

	m := domain.ComputeMetrics(roads, domain.FeatureCollection{}, domain.FeatureCollection{}, 0)

	assert.Greater(t, m.RoadKm, 0.0, "absolute length is still reported")
	assert.Equal(t, 0.0, m.RoadKmPerKm2)
	assert.Equal(t, 0.0, m.IntersectionsPerKm2)
}

func TestComputeMetricsDensities(t *testing.T) {
	roads := domain.FeatureCollection{Features: []domain.Feature{
		road(1, orb.Point{77.20, 28.60}, orb.Point{77.21, 28.60}),
	}}
	buildings := domain.FeatureCollection{Features: []domain.Feature{
		{ID: 10, Geometry: orb.Point{77.20, 28.60}},
		{ID: 11, Geometry: orb.Point{77.21, 28.61}},
		{ID: 12, Geometry: orb.Point{77.22, 28.62}},
	}}
	amenities := domain.FeatureCollection{Features: []domain.Feature{
		amenity(20, "hospital"),
		amenity(21, "hospital"),
		amenity(22, "school"),
		amenity(23, "clinic"),
	}}

	m := domain.ComputeMetrics(roads, buildings, amenities, 2.0)

	assert.Equal(t, 3, m.BuildingCount)
	assert.InDelta(t, 1.5, m.BuildingsPerKm2, 1e-9)
	assert.InDelta(t, 1.0, m.HospitalsPerKm2, 1e-9)
	assert.InDelta(t, 0.5, m.SchoolsPerKm2, 1e-9)
	assert.InDelta(t, m.RoadKm/2.0, m.RoadKmPerKm2, 1e-9)
}

func TestComputeMetricsJunctions(t *testing.T) {
	// Three segments meeting at the exact same coordinate form one junction.
	shared := orb.Point{77.20, 28.60}
	roads := domain.FeatureCollection{Features: []domain.Feature{
		road(1, shared, orb.Point{77.21, 28.60}),
		road(2, shared, orb.Point{77.20, 28.61}),
		road(3, shared, orb.Point{77.19, 28.60}),
	}}

	m := domain.ComputeMetrics(roads, domain.FeatureCollection{}, domain.FeatureCollection{}, 2.0)
	assert.InDelta(t, 0.5, m.IntersectionsPerKm2, 1e-9, "one junction over 2 km²")

	// Two segments sharing an endpoint are a continuation, not a junction.
	roads = domain.FeatureCollection{Features: []domain.Feature{
		road(1, shared, orb.Point{77.21, 28.60}),
		road(2, shared, orb.Point{77.20, 28.61}),
	}}

	m = domain.ComputeMetrics(roads, domain.FeatureCollection{}, domain.FeatureCollection{}, 2.0)
	assert.Equal(t, 0.0, m.IntersectionsPerKm2)
}

func TestComputeMetricsScore(t *testing.T) {
	roads := domain.FeatureCollection{Features: []domain.Feature{
		road(1, orb.Point{77.20, 28.60}, orb.Point{77.25, 28.60}),
	}}
	amenities := domain.FeatureCollection{Features: []domain.Feature{
		amenity(20, "hospital"),
		amenity(21, "school"),
	}}

	sparse := domain.ComputeMetrics(domain.FeatureCollection{}, domain.FeatureCollection{}, domain.FeatureCollection{}, 2.0)
	dense := domain.ComputeMetrics(roads, domain.FeatureCollection{}, amenities, 2.0)

	assert.Greater(t, dense.SocioEconScore, sparse.SocioEconScore)

	// Activity and green contributions are fixed at zero, so the score caps
	// at the infrastructure and access weights.
	assert.LessOrEqual(t, dense.SocioEconScore, 70.0)
	assert.GreaterOrEqual(t, dense.SocioEconScore, 0.0)

	require.GreaterOrEqual(t, dense.InfraIndex, 0.0)
	require.LessOrEqual(t, dense.InfraIndex, 1.0)
	require.GreaterOrEqual(t, dense.AccessIndex, 0.0)
	require.LessOrEqual(t, dense.AccessIndex, 1.0)
}

func TestComputeMetricsIndexSaturation(t *testing.T) {
	// Pack enough hospitals and schools into a tiny area to saturate the
	// access index at 1.0.
	features := make([]domain.Feature, 0, 40)
	for i := 0; i < 20; i++ {
		features = append(features, amenity(int64(i), "hospital"))
		features = append(features, amenity(int64(100+i), "school"))
	}
	amenities := domain.FeatureCollection{Features: features}

	m := domain.ComputeMetrics(domain.FeatureCollection{}, domain.FeatureCollection{}, amenities, 1.0)

	assert.InDelta(t, 1.0, m.AccessIndex, 1e-6)
	assert.InDelta(t, 35.0, m.SocioEconScore, 0.01, "access alone is worth 35 points")
}
