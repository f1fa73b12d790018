package usecase

import (
	"context"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/pkg/geo"
)

// Analyzer runs the AOI pipeline for one bounding box.
type Analyzer interface {
	Analyze(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error)
}

// AnalysisUseCase is the AOI pipeline: one bounding box in, one immutable
// metrics record out. The pipeline itself holds no mutable state and never
// caches: every invocation re-queries the feature service. The response
// cache sits in front of it (CachedAnalysis), never inside it.
type AnalysisUseCase struct {
	featureRepo repository.FeatureRepository
	logger      *zap.Logger
}

func NewAnalysisUseCase(
	featureRepo repository.FeatureRepository,
	logger *zap.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		featureRepo: featureRepo,
		logger:      logger,
	}
}

// Analyze validates the box, issues the three feature queries, ingests and
// clips the results and computes the metrics record. Empty categories are
// valid and yield zero densities; a feature-service failure propagates.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error) {
	poly, err := geo.AOIPolygon(bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat)
	if err != nil {
		return nil, err
	}

	areaKm2 := geo.ProjectAreaKm2(poly)
	bound := poly.Bound()

	roads, err := uc.queryCollection(ctx, bbox, repository.FilterRoads, bound)
	if err != nil {
		return nil, err
	}
	buildings, err := uc.queryCollection(ctx, bbox, repository.FilterBuildings, bound)
	if err != nil {
		return nil, err
	}
	amenities, err := uc.queryCollection(ctx, bbox, repository.FilterAmenities, bound)
	if err != nil {
		return nil, err
	}

	metrics := domain.ComputeMetrics(roads, buildings, amenities, areaKm2)

	uc.logger.Info("AOI analyzed",
		zap.Float64("area_km2", metrics.AreaKm2),
		zap.Float64("road_km", metrics.RoadKm),
		zap.Int("buildings", metrics.BuildingCount),
		zap.Float64("score", metrics.SocioEconScore))

	return &metrics, nil
}

func (uc *AnalysisUseCase) queryCollection(
	ctx context.Context,
	bbox domain.BoundingBox,
	filter repository.FeatureFilter,
	bound orb.Bound,
) (domain.FeatureCollection, error) {
	elements, err := uc.featureRepo.QueryFeatures(ctx, bbox, filter)
	if err != nil {
		uc.logger.Error("Feature query failed",
			zap.String("filter", string(filter)),
			zap.Error(err))
		return domain.FeatureCollection{}, err
	}

	return domain.BuildCollection(elements).Clip(bound), nil
}
