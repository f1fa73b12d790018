package dto

import (
	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/pkg/utils"
)

// MetricsResponse is the presentation form of one metrics record. Values are
// rounded here only; the domain record stays unrounded.
type MetricsResponse struct {
	AreaKm2             float64 `json:"area_km2"`
	RoadKm              float64 `json:"road_km"`
	RoadKmPerKm2        float64 `json:"road_km_per_km2"`
	BuildingCount       int     `json:"building_count"`
	BuildingsPerKm2     float64 `json:"buildings_per_km2"`
	IntersectionsPerKm2 float64 `json:"intersections_per_km2"`
	HospitalsPerKm2     float64 `json:"hospitals_per_km2"`
	SchoolsPerKm2       float64 `json:"schools_per_km2"`
	InfraIndex          float64 `json:"infra_index"`
	AccessIndex         float64 `json:"access_index"`
	ActivityIndex       float64 `json:"activity_index"`
	GreenIndex          float64 `json:"green_index"`
	SocioEconScore      float64 `json:"socio_econ_score"`
}

// ConvertMetrics rounds a metrics record for presentation: 3 decimals for
// areas, lengths and densities, 4 for the sub-unit amenity rates, 1 for the
// composite score.
func ConvertMetrics(m *domain.InfrastructureMetrics) MetricsResponse {
	return MetricsResponse{
		AreaKm2:             utils.Round(m.AreaKm2, 3),
		RoadKm:              utils.Round(m.RoadKm, 3),
		RoadKmPerKm2:        utils.Round(m.RoadKmPerKm2, 3),
		BuildingCount:       m.BuildingCount,
		BuildingsPerKm2:     utils.Round(m.BuildingsPerKm2, 3),
		IntersectionsPerKm2: utils.Round(m.IntersectionsPerKm2, 3),
		HospitalsPerKm2:     utils.Round(m.HospitalsPerKm2, 4),
		SchoolsPerKm2:       utils.Round(m.SchoolsPerKm2, 4),
		InfraIndex:          utils.Round(m.InfraIndex, 3),
		AccessIndex:         utils.Round(m.AccessIndex, 3),
		ActivityIndex:       m.ActivityIndex,
		GreenIndex:          m.GreenIndex,
		SocioEconScore:      utils.Round(m.SocioEconScore, 1),
	}
}

// ResolveResponse is the outcome of one resolution query. MatchedName and
// Sublocation are null when unresolved, mirroring the "value not error"
// contract.
type ResolveResponse struct {
	MatchedName *string `json:"matched_name"`
	Confidence  float64 `json:"confidence"`
	Sublocation *string `json:"sublocation"`
}

func ConvertResolved(r domain.ResolvedLocation) ResolveResponse {
	resp := ResolveResponse{Confidence: r.Confidence}
	if r.Resolved() {
		name := r.MatchedName
		resp.MatchedName = &name
	}
	if r.Sublocation != "" {
		sub := r.Sublocation
		resp.Sublocation = &sub
	}
	return resp
}

// QueryResponse is the full analysis chain result for one free-text query.
type QueryResponse struct {
	Query           string                      `json:"query"`
	Location        ResolveResponse             `json:"location"`
	Classification  *domain.QueryClassification `json:"classification,omitempty"`
	Recommendations []string                    `json:"recommendations,omitempty"`
	BBox            *domain.BoundingBox         `json:"bbox,omitempty"`
	Metrics         *MetricsResponse            `json:"metrics,omitempty"`
	Insights        *domain.Insights            `json:"insights,omitempty"`
}

// UploadResponse confirms one stored scene.
type UploadResponse struct {
	ID          int64  `json:"id"`
	Location    string `json:"location"`
	Sublocation string `json:"sublocation,omitempty"`
	Path        string `json:"path"`
}

// RegistryResponse lists the known locations.
type RegistryResponse struct {
	Locations []domain.RegistryEntry `json:"locations"`
	Total     int                    `json:"total"`
}

// SceneListResponse lists stored scenes for a location.
type SceneListResponse struct {
	Scenes []domain.SceneImage `json:"scenes"`
	Total  int                 `json:"total"`
}

// StatsResponse aggregates stored scene counts.
type StatsResponse struct {
	Locations   []domain.LocationStat `json:"locations"`
	TotalScenes int                   `json:"total_scenes"`
}
