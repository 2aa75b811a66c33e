package devserver

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"parcel/internal/model"
)

// A handful of Bengaluru places so search and autocomplete return
// something recognizable.
var stubPlaces = []model.Place{
	{ID: "pl-1", Name: "Koramangala", Address: "Koramangala, Bengaluru", Lat: 12.9352, Lng: 77.6245},
	{ID: "pl-2", Name: "Indiranagar", Address: "Indiranagar, Bengaluru", Lat: 12.9719, Lng: 77.6412},
	{ID: "pl-3", Name: "Whitefield", Address: "Whitefield, Bengaluru", Lat: 12.9698, Lng: 77.7500},
	{ID: "pl-4", Name: "MG Road", Address: "MG Road, Bengaluru", Lat: 12.9757, Lng: 77.6067},
	{ID: "pl-5", Name: "HSR Layout", Address: "HSR Layout, Bengaluru", Lat: 12.9121, Lng: 77.6446},
}

func (s *Server) searchPlaces(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	out := make([]model.Place, 0)
	for _, p := range stubPlaces {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	respond(c, out)
}

func (s *Server) autocomplete(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	out := make([]model.PlaceSuggestion, 0)
	for _, p := range stubPlaces {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, model.PlaceSuggestion{ID: p.ID, Title: p.Name, Description: p.Address})
		}
	}
	respond(c, out)
}

func (s *Server) reverseGeocode(c *gin.Context) {
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)

	best := stubPlaces[0]
	bestDist := math.Inf(1)
	for _, p := range stubPlaces {
		if d := haversineKm(lat, lng, p.Lat, p.Lng); d < bestDist {
			best, bestDist = p, d
		}
	}
	respond(c, best)
}

func (s *Server) geocode(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		respondError(c, http.StatusBadRequest, "Address is required")
		return
	}
	q := strings.ToLower(req.Address)
	for _, p := range stubPlaces {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(q, strings.ToLower(p.Name)) {
			respond(c, p)
			return
		}
	}
	respondError(c, http.StatusNotFound, "Address not found")
}

func (s *Server) nearby(c *gin.Context) {
	respond(c, stubPlaces)
}

func (s *Server) calculateRoute(c *gin.Context) {
	var req struct {
		From model.LatLng `json:"from"`
		To   model.LatLng `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	km := haversineKm(req.From.Lat, req.From.Lng, req.To.Lat, req.To.Lng)
	respond(c, model.RouteResult{
		Polyline:    fmt.Sprintf("stub-%f,%f-%f,%f", req.From.Lat, req.From.Lng, req.To.Lat, req.To.Lng),
		DistanceKm:  math.Round(km*100) / 100,
		DurationMin: int(math.Ceil(km * 3)),
	})
}

func (s *Server) snapToRoads(c *gin.Context) {
	var req struct {
		Points []model.LatLng `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Points) < 2 {
		respondError(c, http.StatusBadRequest, "At least two points are required")
		return
	}
	// The stub "snaps" by rounding to a coarse grid.
	out := make([]model.LatLng, len(req.Points))
	for i, p := range req.Points {
		out[i] = model.LatLng{
			Lat: math.Round(p.Lat*1e4) / 1e4,
			Lng: math.Round(p.Lng*1e4) / 1e4,
		}
	}
	respond(c, model.SnappedPoints{Points: out})
}

func (s *Server) isoline(c *gin.Context) {
	var req struct {
		Origin   model.LatLng `json:"origin"`
		RangeSec int          `json:"rangeSec"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RangeSec <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	// Octagon around the origin sized by the range.
	radius := float64(req.RangeSec) / 3600 * 0.25
	polygon := make([]model.LatLng, 0, 8)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		polygon = append(polygon, model.LatLng{
			Lat: req.Origin.Lat + radius*math.Cos(angle),
			Lng: req.Origin.Lng + radius*math.Sin(angle),
		})
	}
	respond(c, model.Isoline{Polygon: polygon, RangeSec: req.RangeSec})
}

func (s *Server) staticMap(c *gin.Context) {
	// A 1x1 PNG; enough for an image widget to load successfully.
	c.Data(http.StatusOK, "image/png", []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	})
}

func (s *Server) getPosition(c *gin.Context) {
	deviceID := c.Param("deviceId")

	s.store.mu.Lock()
	pos, ok := s.store.positions[deviceID]
	s.store.mu.Unlock()

	if !ok {
		// Synthesize a position drifting along a line so tracking has
		// movement to follow.
		t := float64(time.Now().Unix()%600) / 600
		pos = model.DevicePosition{
			DeviceID:  deviceID,
			Lat:       12.9352 + t*0.03,
			Lng:       77.6245 + t*0.02,
			Heading:   34,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
	}
	respond(c, pos)
}

func (s *Server) updatePosition(c *gin.Context) {
	var pos model.DevicePosition
	if err := c.ShouldBindJSON(&pos); err != nil || pos.DeviceID == "" {
		respondError(c, http.StatusBadRequest, "Device ID is required")
		return
	}
	pos.Timestamp = time.Now().UTC().Format(time.RFC3339)

	s.store.mu.Lock()
	s.store.positions[pos.DeviceID] = pos
	s.store.mu.Unlock()

	respondNull(c)
}

func (s *Server) mapConfig(c *gin.Context) {
	respond(c, model.MapConfig{
		StyleURL:  "https://tiles.devserver.local/style.json",
		APIKey:    "dev-key",
		CenterLat: 12.9716,
		CenterLng: 77.5946,
		Zoom:      12,
	})
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
