package domain

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox is the immutable area-of-interest rectangle. Coordinates are
// WGS84 degrees with min <= max on each axis; min == max is a valid
// degenerate box with zero area.
type BoundingBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Degenerate reports whether the box has zero width or height.
func (b BoundingBox) Degenerate() bool {
	return b.MinLon == b.MaxLon || b.MinLat == b.MaxLat
}

// AroundPoint builds the default city-sized box (±0.1°) around a coordinate.
func AroundPoint(c LatLon) BoundingBox {
	return BoundingBox{
		MinLon: c.Lon - 0.1,
		MinLat: c.Lat - 0.1,
		MaxLon: c.Lon + 0.1,
		MaxLat: c.Lat + 0.1,
	}
}
