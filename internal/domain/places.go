package domain

// DefaultAliases maps informal or historical names (lowercase, single-spaced)
// to canonical city names. Merged into the registry at build time.
var DefaultAliases = map[string]string{
	"delhi":     "New Delhi",
	"bombay":    "Mumbai",
	"madras":    "Chennai",
	"calcutta":  "Kolkata",
	"poona":     "Pune",
	"bengaluru": "Bangalore",
	"baroda":    "Vadodara",
	"benares":   "Varanasi",
}

// CityCoordinates seeds the gazetteer used to derive a default bounding box
// for a resolved city.
var CityCoordinates = map[string]LatLon{
	"New Delhi": {Lat: 28.6139, Lon: 77.2090},
	"Mumbai":    {Lat: 19.0760, Lon: 72.8777},
	"Bangalore": {Lat: 12.9716, Lon: 77.5946},
	"Chennai":   {Lat: 13.0827, Lon: 80.2707},
	"Kolkata":   {Lat: 22.5726, Lon: 88.3639},
	"Hyderabad": {Lat: 17.3850, Lon: 78.4867},
	"Pune":      {Lat: 18.5204, Lon: 73.8567},
	"Ahmedabad": {Lat: 23.0225, Lon: 72.5714},
	"Jaipur":    {Lat: 26.9124, Lon: 75.7873},
	"Lucknow":   {Lat: 26.8467, Lon: 80.9462},
}

// Directions maps direction tokens (and single-letter abbreviations) to the
// canonical capitalized form used in sublocation hints.
var Directions = map[string]string{
	"n":     "North",
	"s":     "South",
	"e":     "East",
	"w":     "West",
	"north": "North",
	"south": "South",
	"east":  "East",
	"west":  "West",
}
