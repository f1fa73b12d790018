package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/config"
	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	retryPause time.Duration
	logger     *zap.Logger
}

// NewOverpassClient creates a client for the Overpass API endpoint.
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.FeatureRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.URL,
		retryPause: cfg.RetryPause,
		logger:     logger,
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat"`
	Lon      float64           `json:"lon"`
	Tags     map[string]string `json:"tags"`
	Geometry []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"geometry"`
}

// QueryFeatures runs one category query against Overpass. A failed request
// is retried once after a pause; a second failure maps to
// ErrServiceUnavailable so callers can distinguish "no data" from "no
// answer".
func (c *client) QueryFeatures(
	ctx context.Context,
	bbox domain.BoundingBox,
	filter repository.FeatureFilter,
) ([]domain.Element, error) {
	query, err := buildQuery(bbox, filter)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Calling Overpass API",
		zap.String("filter", string(filter)),
		zap.Float64("min_lon", bbox.MinLon),
		zap.Float64("min_lat", bbox.MinLat),
		zap.Float64("max_lon", bbox.MaxLon),
		zap.Float64("max_lat", bbox.MaxLat))

	resp, err := c.post(ctx, query)
	if err != nil {
		c.logger.Warn("Overpass request failed, retrying once",
			zap.String("filter", string(filter)),
			zap.Error(err))

		select {
		case <-time.After(c.retryPause):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = c.post(ctx, query)
		if err != nil {
			c.logger.Error("Overpass request failed after retry",
				zap.String("filter", string(filter)),
				zap.Error(err))
			return nil, errors.ErrServiceUnavailable.WithDetails(err.Error())
		}
	}

	elements := make([]domain.Element, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		e := domain.Element{
			ID:   el.ID,
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags,
		}
		switch el.Type {
		case "node":
			e.Kind = domain.ElementNode
		case "way":
			e.Kind = domain.ElementWay
			e.Geometry = make([]domain.LatLon, 0, len(el.Geometry))
			for _, g := range el.Geometry {
				e.Geometry = append(e.Geometry, domain.LatLon{Lat: g.Lat, Lon: g.Lon})
			}
		default:
			continue
		}
		elements = append(elements, e)
	}

	c.logger.Debug("Overpass query complete",
		zap.String("filter", string(filter)),
		zap.Int("elements", len(elements)))

	return elements, nil
}

func (c *client) post(ctx context.Context, query string) (*overpassResponse, error) {
	form := url.Values{"data": []string{query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("overpass API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &parsed, nil
}

// amenityClauses select the point amenities and public-transport nodes
// counted by the metrics engine.
var amenityClauses = []string{
	`node["amenity"="hospital"]`,
	`node["amenity"="clinic"]`,
	`node["amenity"="school"]`,
	`node["amenity"="university"]`,
	`node["public_transport"="station"]`,
	`node["highway"="bus_stop"]`,
}

// buildQuery renders an Overpass QL query. Overpass bbox order is
// (south, west, north, east).
func buildQuery(bbox domain.BoundingBox, filter repository.FeatureFilter) (string, error) {
	area := fmt.Sprintf("(%f,%f,%f,%f)", bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)

	var b strings.Builder
	b.WriteString("[out:json][timeout:60];\n(\n")
	switch filter {
	case repository.FilterRoads:
		b.WriteString(fmt.Sprintf("  way[\"highway\"]%s;\n", area))
	case repository.FilterBuildings:
		b.WriteString(fmt.Sprintf("  way[\"building\"]%s;\n", area))
	case repository.FilterAmenities:
		for _, clause := range amenityClauses {
			b.WriteString(fmt.Sprintf("  %s%s;\n", clause, area))
		}
	default:
		return "", errors.ErrInvalidRequest.WithDetails(fmt.Sprintf("unknown feature filter: %s", filter))
	}
	b.WriteString(");\nout geom;\n")

	return b.String(), nil
}
