package model

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a geocoded place returned by search, autocomplete resolution or
// reverse geocoding.
type Place struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// PlaceSuggestion is one autocomplete suggestion. It carries no
// coordinates; the client resolves a selected suggestion via geocode.
type PlaceSuggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RouteResult is a computed road route between two points.
type RouteResult struct {
	Polyline    string  `json:"polyline"`
	DistanceKm  float64 `json:"distanceKm"`
	DurationMin int     `json:"durationMin"`
}

// Isoline is the polygon of points reachable within a travel-time budget
// from an origin.
type Isoline struct {
	Polygon  []LatLng `json:"polygon"`
	RangeSec int      `json:"rangeSec"`
}

// SnappedPoints is a raw GPS trace aligned to road geometry.
type SnappedPoints struct {
	Points []LatLng `json:"points"`
}

// DevicePosition is the last reported position of a tracked device.
type DevicePosition struct {
	DeviceID  string  `json:"deviceId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Heading   float64 `json:"heading"`
	Timestamp string  `json:"timestamp"`
}

// MapConfig is the map rendering configuration served by the backend
// (tile style URL, API key, initial viewport).
type MapConfig struct {
	StyleURL  string  `json:"styleUrl"`
	APIKey    string  `json:"apiKey"`
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	Zoom      int     `json:"zoom"`
}
