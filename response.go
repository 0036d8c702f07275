package stationdir

import (
	"encoding/json"
	"time"

	"github.com/railkit/stationdir/geo"
	"github.com/railkit/stationdir/stations"
)

func iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type errorResponse struct {
	Error       string `json:"error"`
	GeneratedAt string `json:"generatedAt"`
}

func errorPayload(err error) []byte {
	b, _ := json.Marshal(errorResponse{Error: err.Error(), GeneratedAt: iso8601Now()})
	return b
}

// stationPayload is the wire form of a station. Coordinates are pointers
// so stations the dataset has no position for render as null rather than
// a fake (0, 0).
type stationPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Country       string   `json:"country,omitempty"`
	IsCity        bool     `json:"isCity"`
	IsMainStation bool     `json:"isMainStation"`
	Score         float64  `json:"score,omitempty"`
}

func stationFromRecord(rec *stations.Record, city string, score float64) stationPayload {
	p := stationPayload{
		ID:            rec.ID,
		Name:          rec.Name,
		City:          city,
		Country:       rec.Country,
		IsCity:        rec.IsCity,
		IsMainStation: rec.IsMainStation,
		Score:         score,
	}
	if rec.HasCoordinates {
		lat, lon := rec.Latitude, rec.Longitude
		p.Latitude, p.Longitude = &lat, &lon
	}
	return p
}

type stationResponse struct {
	Station     stationPayload `json:"station"`
	GeneratedAt string         `json:"generatedAt"`
}

type nearestHit struct {
	Station    stationPayload `json:"station"`
	DistanceKM float64        `json:"distanceKm"`
	Distance   string         `json:"distance"`
}

type nearestResponse struct {
	Hits        []nearestHit `json:"hits"`
	Excluded    int          `json:"excludedNoCoordinates"`
	GeneratedAt string       `json:"generatedAt"`
}

type searchResponse struct {
	Results     []stationPayload `json:"results"`
	GeneratedAt string           `json:"generatedAt"`
}

type citiesResponse struct {
	Cities      []string `json:"cities"`
	Count       int      `json:"count"`
	GeneratedAt string   `json:"generatedAt"`
}

type cityStationsResponse struct {
	City        string           `json:"city"`
	Score       float64          `json:"score"`
	Stations    []stationPayload `json:"stations"`
	GeneratedAt string           `json:"generatedAt"`
}

type journeyResponse struct {
	From        stationPayload `json:"from"`
	To          stationPayload `json:"to"`
	GeneratedAt string         `json:"generatedAt"`
}

// The *Response builders return the exact payload bytes the HTTP handlers
// serve, so the one-shot CLI prints byte-identical output.

// StationResponse resolves a station by name and returns the payload
// served on /api/station.
func (f *Finder) StationResponse(city, stationName string) ([]byte, error) {
	m, err := f.FindStationByName(city, stationName)
	if err != nil {
		return nil, err
	}
	return json.Marshal(stationResponse{
		Station:     stationFromRecord(m.Record, f.idx.CityDisplayName(m.CityKey), m.Score),
		GeneratedAt: iso8601Now(),
	})
}

// NearestResponse runs a coordinate query and returns the payload served
// on /api/nearest.
func (f *Finder) NearestResponse(lat, lon float64, count int) ([]byte, error) {
	res, err := f.FindStationByCoordinates(lat, lon, count)
	if err != nil {
		return nil, err
	}
	resp := nearestResponse{
		Hits:        make([]nearestHit, 0, len(res.Hits)),
		Excluded:    res.Excluded,
		GeneratedAt: iso8601Now(),
	}
	for _, h := range res.Hits {
		resp.Hits = append(resp.Hits, nearestHit{
			Station:    stationFromRecord(h.Record, f.idx.CityDisplayName(h.Record.CityKey()), 0),
			DistanceKM: h.KM,
			Distance:   geo.Presentable(h.KM),
		})
	}
	return json.Marshal(resp)
}

// SearchResponse runs a name search and returns the payload served on
// /api/search.
func (f *Finder) SearchResponse(query string, limit int) ([]byte, error) {
	matches, err := f.SearchStations(query, limit)
	if err != nil {
		return nil, err
	}
	resp := searchResponse{Results: make([]stationPayload, 0, len(matches)), GeneratedAt: iso8601Now()}
	for _, m := range matches {
		resp.Results = append(resp.Results, stationFromRecord(m.Record, f.idx.CityDisplayName(m.CityKey), m.Score))
	}
	return json.Marshal(resp)
}

// CitiesResponse returns the payload served on /api/cities.
func (f *Finder) CitiesResponse() ([]byte, error) {
	cities := f.ListCities()
	return json.Marshal(citiesResponse{Cities: cities, Count: len(cities), GeneratedAt: iso8601Now()})
}

// CityStationsResponse resolves a city and returns the payload served on
// /api/city-stations.
func (f *Finder) CityStationsResponse(city string) ([]byte, error) {
	cm, err := f.StationsInCity(city)
	if err != nil {
		return nil, err
	}
	resp := cityStationsResponse{
		City:        cm.City.DisplayName,
		Score:       cm.City.Score,
		Stations:    make([]stationPayload, 0, len(cm.Stations)),
		GeneratedAt: iso8601Now(),
	}
	for _, rec := range cm.Stations {
		resp.Stations = append(resp.Stations, stationFromRecord(rec, cm.City.DisplayName, 0))
	}
	return json.Marshal(resp)
}

// JourneyResponse resolves both ends of a trip and returns the payload
// served on /api/journey.
func (f *Finder) JourneyResponse(fromCity, toCity string) ([]byte, error) {
	j, err := f.ResolveJourney(fromCity, toCity)
	if err != nil {
		return nil, err
	}
	return json.Marshal(journeyResponse{
		From:        stationFromRecord(j.From.Record, f.idx.CityDisplayName(j.From.CityKey), j.From.Score),
		To:          stationFromRecord(j.To.Record, f.idx.CityDisplayName(j.To.CityKey), j.To.Score),
		GeneratedAt: iso8601Now(),
	})
}
