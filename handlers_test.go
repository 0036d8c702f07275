package stationdir

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/railkit/stationdir/config"
	"github.com/railkit/stationdir/internal/testutil"
)

func newHandlerFinder(t *testing.T) *Finder {
	t.Helper()
	return NewFinder(testutil.LoadTestIndex(t), config.Default())
}

func TestHandleStation(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/station?city=Paris", nil)
	w := httptest.NewRecorder()

	f.handleStation(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var resp stationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Station.ID != "4924" {
		t.Errorf("expected main station 4924, got %s", resp.Station.ID)
	}
	if resp.Station.City != "Paris" {
		t.Errorf("expected city Paris, got %q", resp.Station.City)
	}
	if !resp.Station.IsMainStation {
		t.Error("expected the main station flag to be set")
	}
	if resp.Station.Latitude == nil || resp.Station.Longitude == nil {
		t.Error("expected coordinates to be present")
	}
	if resp.GeneratedAt == "" {
		t.Error("expected a generatedAt timestamp")
	}
}

func TestHandleStationUnknownCity(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/station?city=Zzzzqq", nil)
	w := httptest.NewRecorder()

	f.handleStation(w, r)

	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error payload: %v", err)
	}
	if !strings.Contains(resp.Error, "Zzzzqq") {
		t.Errorf("expected the query in the error message, got %q", resp.Error)
	}
}

func TestHandleStationMissingCity(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/station", nil)
	w := httptest.NewRecorder()

	f.handleStation(w, r)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error payload: %v", err)
	}
	if !strings.Contains(resp.Error, "city") {
		t.Errorf("expected the parameter name in the error message, got %q", resp.Error)
	}
}

func TestHandleNearest(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/nearest?lat=48.844&lon=2.373&count=2", nil)
	w := httptest.NewRecorder()

	f.handleNearest(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp nearestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(resp.Hits))
	}
	if resp.Hits[0].Station.ID != "4924" {
		t.Errorf("expected 4924 nearest, got %s", resp.Hits[0].Station.ID)
	}
	if resp.Hits[0].DistanceKM <= 0 || resp.Hits[0].DistanceKM > 0.2 {
		t.Errorf("expected a distance of roughly 100 m, got %v km", resp.Hits[0].DistanceKM)
	}
	if !strings.HasSuffix(resp.Hits[0].Distance, " m") {
		t.Errorf("expected a sub-kilometer presentable distance, got %q", resp.Hits[0].Distance)
	}
	if resp.Hits[1].Station.ID != "4916" {
		t.Errorf("expected 4916 second, got %s", resp.Hits[1].Station.ID)
	}
	if resp.Excluded != 1 {
		t.Errorf("expected 1 excluded record, got %d", resp.Excluded)
	}
}

func TestHandleNearestRejectsBadCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "latitude out of range", query: "lat=91&lon=0"},
		{name: "longitude out of range", query: "lat=48&lon=181"},
		{name: "not a number", query: "lat=abc&lon=2.373"},
		{name: "missing longitude", query: "lat=48.844"},
	}

	f := newHandlerFinder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/nearest?"+tt.query, nil)
			w := httptest.NewRecorder()

			f.handleNearest(w, r)

			if w.Code != 400 {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode error payload: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestHandleSearch(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/search?q=Marseille", nil)
	w := httptest.NewRecorder()

	f.handleSearch(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].ID != "2476" || resp.Results[0].Score != 1 {
		t.Errorf("expected exact hit 2476 first, got %s score %v",
			resp.Results[0].ID, resp.Results[0].Score)
	}
}

func TestHandleSearchMissingQuery(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/search", nil)
	w := httptest.NewRecorder()

	f.handleSearch(w, r)

	if w.Code != 400 {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleCities(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/cities", nil)
	w := httptest.NewRecorder()

	f.handleCities(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp citiesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 7 || len(resp.Cities) != 7 {
		t.Fatalf("expected 7 cities, got count %d over %d names", resp.Count, len(resp.Cities))
	}
	if resp.Cities[0] != "Berlin" {
		t.Errorf("expected Berlin first in sorted order, got %q", resp.Cities[0])
	}
}

func TestHandleCityStations(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/city-stations?city=Lyon", nil)
	w := httptest.NewRecorder()

	f.handleCityStations(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp cityStationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.City != "Lyon" {
		t.Errorf("expected Lyon, got %q", resp.City)
	}
	ids := make([]string, 0, len(resp.Stations))
	for _, s := range resp.Stations {
		ids = append(ids, s.ID)
	}
	if len(ids) != 3 || ids[0] != "1354" || ids[1] != "1362" || ids[2] != "1360" {
		t.Errorf("expected [1354 1362 1360] in serving order, got %v", ids)
	}
}

func TestHandleJourney(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/journey?from=Paris&to=Lyon", nil)
	w := httptest.NewRecorder()

	f.handleJourney(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp journeyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.From.ID != "4924" {
		t.Errorf("expected departure 4924, got %s", resp.From.ID)
	}
	if resp.To.ID != "1362" {
		t.Errorf("expected arrival 1362, got %s", resp.To.ID)
	}
}

func TestHandleJourneyMissingEnd(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/journey?from=Paris", nil)
	w := httptest.NewRecorder()

	f.handleJourney(w, r)

	if w.Code != 400 {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	f := newHandlerFinder(t)
	r := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	f.handleHealth(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Stations != 14 || resp.Cities != 7 {
		t.Errorf("expected 14 stations across 7 cities, got %d/%d", resp.Stations, resp.Cities)
	}
	if resp.MissingCoords != 1 {
		t.Errorf("expected 1 station without coordinates, got %d", resp.MissingCoords)
	}
	if resp.Load.Rows != 14 {
		t.Errorf("expected 14 rows in the load report, got %d", resp.Load.Rows)
	}
}
