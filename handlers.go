package stationdir

import (
	"errors"
	"net/http"

	"github.com/railkit/stationdir/match"
	"github.com/railkit/stationdir/stations"
)

// statusFor maps lookup failures onto HTTP statuses: an unresolved name is
// 404, rejected input is 400, anything else is a server fault.
func statusFor(err error) int {
	var invalid *stations.InvalidInputError
	switch {
	case errors.Is(err, match.ErrNotFound):
		return 404
	case errors.As(err, &invalid):
		return 400
	default:
		return 500
	}
}

func (f *Finder) handleStation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := queryParams(r)
	city, err := requiredParam(params, "city")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	buf, err := f.StationResponse(city, params["station"])
	if err != nil {
		w.WriteHeader(statusFor(err))
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}

func (f *Finder) handleNearest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := queryParams(r)
	lat, err := parseCoordinate(params, "lat", 90)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	lon, err := parseCoordinate(params, "lon", 180)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	count, err := parseCount(params, "count")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	buf, err := f.NearestResponse(lat, lon, count)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}

func (f *Finder) handleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := queryParams(r)
	q, err := requiredParam(params, "q")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	limit, err := parseCount(params, "limit")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	buf, err := f.SearchResponse(q, limit)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}

func (f *Finder) handleCities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	buf, err := f.CitiesResponse()
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}

func (f *Finder) handleCityStations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := queryParams(r)
	city, err := requiredParam(params, "city")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	buf, err := f.CityStationsResponse(city)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}

func (f *Finder) handleJourney(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	params := queryParams(r)
	from, err := requiredParam(params, "from")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	to, err := requiredParam(params, "to")
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(errorPayload(err))
		return
	}
	buf, err := f.JourneyResponse(from, to)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_, _ = w.Write(errorPayload(err))
		return
	}
	_, _ = w.Write(buf)
}
