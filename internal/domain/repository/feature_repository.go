package repository

import (
	"context"

	"github.com/geoinsight-service/internal/domain"
)

// FeatureFilter selects one feature category on the feature-query service.
type FeatureFilter string

const (
	FilterRoads     FeatureFilter = "roads"
	FilterBuildings FeatureFilter = "buildings"
	FilterAmenities FeatureFilter = "amenities"
)

// FeatureRepository queries raw map elements for a bounding box. A successful
// empty result is valid; a hard failure (after the client's single retry)
// surfaces as ErrServiceUnavailable.
type FeatureRepository interface {
	QueryFeatures(ctx context.Context, bbox domain.BoundingBox, filter FeatureFilter) ([]domain.Element, error)
}
