package stationdir

import (
	"time"

	"github.com/railkit/stationdir/cache"
	"github.com/railkit/stationdir/config"
	"github.com/railkit/stationdir/geo"
	"github.com/railkit/stationdir/match"
	"github.com/railkit/stationdir/stations"
)

// defaultSearchLimit caps search results when the caller does not ask for
// a specific limit.
const defaultSearchLimit = 10

// Finder is the directory's query surface. It owns the station index, the
// name matcher and the result cache; every lookup goes through it, so every
// lookup is memoized with a key that embeds the active thresholds.
type Finder struct {
	idx       *stations.Index
	matcher   *match.Matcher
	cache     *cache.Cache
	opts      match.Options
	startedAt time.Time
}

// NewFinder builds the query surface over a loaded index, taking thresholds
// and cache sizing from cfg.
func NewFinder(idx *stations.Index, cfg config.AppConfig) *Finder {
	opts := match.OptionsFromConfig(cfg.Matcher)
	return &Finder{
		idx:       idx,
		matcher:   match.NewMatcher(idx, opts),
		cache:     cache.New(cfg.Cache.Capacity, time.Duration(cfg.Cache.TTLMinutes)*time.Minute),
		opts:      opts,
		startedAt: time.Now(),
	}
}

// Index exposes the underlying station index for read-only use.
func (f *Finder) Index() *stations.Index { return f.idx }

// FindStationByName resolves a city and optionally a station name inside
// it. An empty stationName picks the city's boarding default: main station,
// else the city record, else the first station loaded.
func (f *Finder) FindStationByName(city, stationName string) (match.Match, error) {
	key := cache.NameKey(match.Normalize(city), match.Normalize(stationName),
		f.opts.CityThreshold, f.opts.StationThreshold)
	v, _, err := f.cache.GetOrCompute(key, func() (any, error) {
		return f.matcher.FindStation(city, stationName)
	})
	if err != nil {
		return match.Match{}, err
	}
	return v.(match.Match), nil
}

// FindStationByCoordinates returns the count stations nearest to (lat, lon)
// with their distances, plus the number of records excluded for having no
// coordinates. A count <= 0 falls back to geo.DefaultCount.
func (f *Finder) FindStationByCoordinates(lat, lon float64, count int) (geo.Result, error) {
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		return geo.Result{}, err
	}
	if count <= 0 {
		count = geo.DefaultCount
	}
	v, _, err := f.cache.GetOrCompute(cache.NearestKey(lat, lon, count), func() (any, error) {
		return geo.Nearest(f.idx, lat, lon, count)
	})
	if err != nil {
		return geo.Result{}, err
	}
	return v.(geo.Result), nil
}

// ListCities returns every city display name, sorted.
func (f *Finder) ListCities() []string {
	v, _, _ := f.cache.GetOrCompute(cache.CitiesKey(), func() (any, error) {
		return f.idx.CityNames(), nil
	})
	return v.([]string)
}

// StationsInCity resolves a city and returns its station group in serving
// order: the city record first, then main stations, then the rest.
func (f *Finder) StationsInCity(city string) (match.CityMatch, error) {
	key := cache.CityStationsKey(match.Normalize(city), f.opts.CityThreshold)
	v, _, err := f.cache.GetOrCompute(key, func() (any, error) {
		return f.matcher.StationsInCity(city)
	})
	if err != nil {
		return match.CityMatch{}, err
	}
	return v.(match.CityMatch), nil
}

// SearchStations scores every station against the query and returns the
// best hits in descending score order. A limit <= 0 falls back to
// defaultSearchLimit.
func (f *Finder) SearchStations(query string, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	key := cache.SearchKey(match.Normalize(query), limit,
		f.opts.SearchThreshold, f.opts.SubstringBonus)
	v, _, err := f.cache.GetOrCompute(key, func() (any, error) {
		return f.matcher.Search(query, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]match.Match), nil
}

// Journey is a city-to-city resolution: the boarding station picked for
// each end.
type Journey struct {
	From match.Match
	To   match.Match
}

// ResolveJourney resolves both ends of a trip to boarding stations. Each
// leg is an ordinary name lookup, so legs are memoized individually.
func (f *Finder) ResolveJourney(fromCity, toCity string) (Journey, error) {
	from, err := f.FindStationByName(fromCity, "")
	if err != nil {
		return Journey{}, err
	}
	to, err := f.FindStationByName(toCity, "")
	if err != nil {
		return Journey{}, err
	}
	return Journey{From: from, To: to}, nil
}

// FinderStats is a point-in-time operational snapshot.
type FinderStats struct {
	Stations      int
	Cities        int
	MissingCoords int
	Load          stations.LoadReport
	Cache         cache.Stats
	UptimeSeconds int64
}

// Stats reports dataset and cache health for monitoring.
func (f *Finder) Stats() FinderStats {
	return FinderStats{
		Stations:      f.idx.Len(),
		Cities:        f.idx.CityCount(),
		MissingCoords: f.idx.MissingCoords(),
		Load:          f.idx.Report(),
		Cache:         f.cache.Stats(),
		UptimeSeconds: int64(time.Since(f.startedAt).Seconds()),
	}
}
