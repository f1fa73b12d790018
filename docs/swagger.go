// Package docs GeoInsight Service API.
//
// Geospatial analysis service built on OpenStreetMap data.
// Computes infrastructure and socio-economic metrics for arbitrary
// bounding boxes, resolves free-text queries to known locations and
// manages uploaded satellite scenes.
//
// Main capabilities:
// - Infrastructure metrics for an area of interest (road, building and amenity densities)
// - Composite socio-economic score derived from the density metrics
// - Free-text location resolution with fuzzy matching and directional sub-areas
// - Query classification and model-backed insight generation
// - Satellite scene upload, listing and per-location statistics
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
