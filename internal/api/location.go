package api

import (
	"context"
	"fmt"
	"net/url"

	"parcel/internal/model"
)

// LocationClient wraps the map and geo endpoints.
type LocationClient struct {
	c *Client
}

// NewLocationClient creates a LocationClient.
func NewLocationClient(c *Client) *LocationClient {
	return &LocationClient{c: c}
}

// SearchPlaces searches places by free text.
func (l *LocationClient) SearchPlaces(ctx context.Context, query string) ([]model.Place, error) {
	raw, err := l.c.get(ctx, "/location/search-places", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Place](raw, EmptyOnNull, "Search failed")
}

// Autocomplete returns typing suggestions for a partial query.
func (l *LocationClient) Autocomplete(ctx context.Context, query string) ([]model.PlaceSuggestion, error) {
	raw, err := l.c.get(ctx, "/location/autocomplete", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.PlaceSuggestion](raw, EmptyOnNull, "Search failed")
}

// ReverseGeocode resolves coordinates to the nearest place.
func (l *LocationClient) ReverseGeocode(ctx context.Context, lat, lng float64) (model.Place, error) {
	raw, err := l.c.get(ctx, "/location/reverse-geocode", url.Values{
		"lat": {fmt.Sprintf("%f", lat)},
		"lng": {fmt.Sprintf("%f", lng)},
	})
	if err != nil {
		return model.Place{}, err
	}
	return unwrap[model.Place](raw, ErrorOnNull, "Location not found")
}

// Geocode resolves a free-text address to coordinates.
func (l *LocationClient) Geocode(ctx context.Context, address string) (model.Place, error) {
	raw, err := l.c.post(ctx, "/location/geocode", map[string]string{"address": address})
	if err != nil {
		return model.Place{}, err
	}
	return unwrap[model.Place](raw, ErrorOnNull, "Location not found")
}

// Nearby returns points of interest around a coordinate.
func (l *LocationClient) Nearby(ctx context.Context, lat, lng float64) ([]model.Place, error) {
	raw, err := l.c.get(ctx, "/location/nearby", url.Values{
		"lat": {fmt.Sprintf("%f", lat)},
		"lng": {fmt.Sprintf("%f", lng)},
	})
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Place](raw, EmptyOnNull, "Search failed")
}

// CalculateRoute computes a road route between two points.
func (l *LocationClient) CalculateRoute(ctx context.Context, from, to model.LatLng) (model.RouteResult, error) {
	raw, err := l.c.post(ctx, "/location/calculate-route", map[string]model.LatLng{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return model.RouteResult{}, err
	}
	return unwrap[model.RouteResult](raw, ErrorOnNull, "Failed to calculate route")
}

// SnapToRoads aligns a raw GPS trace to road geometry. Needs at least two
// points to be meaningful; the server rejects shorter traces.
func (l *LocationClient) SnapToRoads(ctx context.Context, points []model.LatLng) (model.SnappedPoints, error) {
	raw, err := l.c.post(ctx, "/location/snap-to-roads", map[string][]model.LatLng{"points": points})
	if err != nil {
		return model.SnappedPoints{}, err
	}
	return unwrap[model.SnappedPoints](raw, EmptyOnNull, "Failed to snap points")
}

// Isoline computes the reachable polygon from an origin within rangeSec
// seconds of travel.
func (l *LocationClient) Isoline(ctx context.Context, origin model.LatLng, rangeSec int) (model.Isoline, error) {
	raw, err := l.c.post(ctx, "/location/isoline", map[string]any{
		"origin":   origin,
		"rangeSec": rangeSec,
	})
	if err != nil {
		return model.Isoline{}, err
	}
	return unwrap[model.Isoline](raw, EmptyOnNull, "Failed to calculate isoline")
}

// StaticMapURL builds the URL of a rendered map image. No request is
// issued; the image widget loads the URL directly.
func (l *LocationClient) StaticMapURL(center model.LatLng, zoom, width, height int) string {
	query := url.Values{
		"lat":    {fmt.Sprintf("%f", center.Lat)},
		"lng":    {fmt.Sprintf("%f", center.Lng)},
		"zoom":   {fmt.Sprintf("%d", zoom)},
		"width":  {fmt.Sprintf("%d", width)},
		"height": {fmt.Sprintf("%d", height)},
	}
	return l.c.BaseURL() + "/location/static-map?" + query.Encode()
}

// GetPosition fetches the last reported position of a device.
func (l *LocationClient) GetPosition(ctx context.Context, deviceID string) (model.DevicePosition, error) {
	raw, err := l.c.get(ctx, "/location/get-position/"+deviceID, nil)
	if err != nil {
		return model.DevicePosition{}, err
	}
	return unwrap[model.DevicePosition](raw, ErrorOnNull, "Position not available")
}

// UpdatePosition reports this device's position.
func (l *LocationClient) UpdatePosition(ctx context.Context, pos model.DevicePosition) error {
	raw, err := l.c.post(ctx, "/location/update-position", pos)
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Failed to update position")
}

// MapConfig fetches the map rendering configuration.
func (l *LocationClient) MapConfig(ctx context.Context) (model.MapConfig, error) {
	raw, err := l.c.get(ctx, "/map-config", nil)
	if err != nil {
		return model.MapConfig{}, err
	}
	return unwrap[model.MapConfig](raw, ErrorOnNull, "Failed to load map config")
}
