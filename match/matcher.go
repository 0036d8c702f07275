package match

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/railkit/stationdir/config"
	"github.com/railkit/stationdir/stations"
)

// ErrNotFound reports a query that did not resolve above the configured
// threshold. It is a normal result value, never fatal; callers test for it
// with errors.Is.
var ErrNotFound = errors.New("no match above threshold")

// Options holds the matching thresholds. They are configuration values,
// not hidden constants, so tests can pin behavior.
type Options struct {
	CityThreshold    float64 // fuzzy floor for city resolution
	StationThreshold float64 // fuzzy floor for station resolution inside a city
	SearchThreshold  float64 // fuzzy floor for global search
	SubstringBonus   float64 // added to search scores on substring containment
}

// DefaultOptions returns the thresholds used when no configuration is in play.
func DefaultOptions() Options {
	return Options{CityThreshold: 0.6, StationThreshold: 0.6, SearchThreshold: 0.5, SubstringBonus: 0.2}
}

// OptionsFromConfig maps the matcher section of the app configuration
// onto matcher options.
func OptionsFromConfig(cfg config.MatcherConfig) Options {
	return Options{
		CityThreshold:    cfg.CityThreshold,
		StationThreshold: cfg.StationThreshold,
		SearchThreshold:  cfg.SearchThreshold,
		SubstringBonus:   cfg.SubstringBonus,
	}
}

// Match is a resolved station with the similarity score that selected it,
// so callers can judge low-confidence hits.
type Match struct {
	Record  *stations.Record
	Score   float64
	CityKey string
}

// CityResolution is a resolved city group.
type CityResolution struct {
	Key         string // normalized city key
	DisplayName string
	Score       float64
}

// CityMatch is a resolved city with its full ordered station group.
type CityMatch struct {
	City     CityResolution
	Stations []*stations.Record
}

type nameHit struct {
	rec     *stations.Record
	score   float64
	cityKey string
}

// Matcher answers fuzzy name queries over a station index. Resolution is
// tiered: an exact normalized match wins outright, substring containment
// beats any fuzzy score, and only then does edit-distance similarity
// against the threshold decide. Successful (city, station) resolutions are
// memoized in a lazily built name index.
type Matcher struct {
	idx  *stations.Index
	opts Options

	mu    sync.RWMutex
	names map[string]nameHit // normalized "city|station" -> resolution
}

// NewMatcher builds a matcher over idx with the given thresholds.
func NewMatcher(idx *stations.Index, opts Options) *Matcher {
	return &Matcher{idx: idx, opts: opts, names: map[string]nameHit{}}
}

// ResolveCity resolves a city query against the city index.
func (m *Matcher) ResolveCity(city string) (CityResolution, error) {
	q := Normalize(city)
	if q == "" {
		return CityResolution{}, &stations.InvalidInputError{Field: "city", Reason: "must not be blank"}
	}
	res, err := m.resolveKey(q)
	if err != nil {
		return CityResolution{}, fmt.Errorf("city %q: %w", city, err)
	}
	return res, nil
}

func (m *Matcher) resolveKey(q string) (CityResolution, error) {
	if grp := m.idx.StationsInCity(q); len(grp) > 0 {
		return CityResolution{Key: q, DisplayName: m.idx.CityDisplayName(q), Score: 1}, nil
	}

	const (
		tierFuzzy     = 1
		tierSubstring = 2
	)
	var best CityResolution
	bestTier := 0
	for _, key := range m.idx.CityKeys() {
		score := Similarity(q, key)
		tier := 0
		switch {
		case strings.Contains(key, q) || strings.Contains(q, key):
			tier = tierSubstring
		case score >= m.opts.CityThreshold:
			tier = tierFuzzy
		}
		if tier == 0 {
			continue
		}
		if m.beats(tier, score, key, bestTier, best) {
			best = CityResolution{Key: key, DisplayName: m.idx.CityDisplayName(key), Score: score}
			bestTier = tier
		}
	}
	if bestTier == 0 {
		return CityResolution{}, ErrNotFound
	}
	return best, nil
}

// beats orders city candidates: higher tier, then higher score, then the
// city with more stations, then the lexicographically smaller key.
func (m *Matcher) beats(tier int, score float64, key string, bestTier int, best CityResolution) bool {
	if best.Key == "" {
		return true
	}
	if tier != bestTier {
		return tier > bestTier
	}
	if score != best.Score {
		return score > best.Score
	}
	n := len(m.idx.StationsInCity(key))
	b := len(m.idx.StationsInCity(best.Key))
	if n != b {
		return n > b
	}
	return key < best.Key
}

// FindStation resolves a city and optionally a station name inside it.
// An empty stationName yields the city's main station if one exists, else
// the city record itself, else the first station in insertion order.
func (m *Matcher) FindStation(city, stationName string) (Match, error) {
	cityNorm := Normalize(city)
	if cityNorm == "" {
		return Match{}, &stations.InvalidInputError{Field: "city", Reason: "must not be blank"}
	}
	stationNorm := Normalize(stationName)
	if stationName != "" && stationNorm == "" {
		return Match{}, &stations.InvalidInputError{Field: "station", Reason: "must not be blank"}
	}

	nameKey := cityNorm + "|" + stationNorm
	m.mu.RLock()
	hit, ok := m.names[nameKey]
	m.mu.RUnlock()
	if ok {
		return Match{Record: hit.rec, Score: hit.score, CityKey: hit.cityKey}, nil
	}

	res, err := m.resolveKey(cityNorm)
	if err != nil {
		return Match{}, fmt.Errorf("city %q: %w", city, err)
	}

	var out Match
	if stationNorm == "" {
		out = Match{Record: m.idx.DefaultStation(res.Key), Score: res.Score, CityKey: res.Key}
	} else {
		out, err = m.findInGroup(res, stationName, stationNorm)
		if err != nil {
			return Match{}, err
		}
	}

	m.mu.Lock()
	m.names[nameKey] = nameHit{rec: out.Record, score: out.Score, cityKey: out.CityKey}
	m.mu.Unlock()
	return out, nil
}

// findInGroup runs the tiered resolution restricted to a resolved city's
// station group, with station display names as candidates.
func (m *Matcher) findInGroup(city CityResolution, stationName, q string) (Match, error) {
	const (
		tierFuzzy     = 1
		tierSubstring = 2
	)
	var best *stations.Record
	bestTier := 0
	bestScore := 0.0
	for _, rec := range m.idx.StationsInCity(city.Key) {
		name := rec.NormName()
		if name == q {
			return Match{Record: rec, Score: 1, CityKey: city.Key}, nil
		}
		score := Similarity(q, name)
		tier := 0
		switch {
		case strings.Contains(name, q) || strings.Contains(q, name):
			tier = tierSubstring
		case score >= m.opts.StationThreshold:
			tier = tierFuzzy
		}
		if tier == 0 {
			continue
		}
		// Group order breaks ties: city record first, then main stations.
		if tier > bestTier || (tier == bestTier && score > bestScore) {
			best, bestTier, bestScore = rec, tier, score
		}
	}
	if best == nil {
		return Match{}, fmt.Errorf("station %q in %s: %w", stationName, city.DisplayName, ErrNotFound)
	}
	return Match{Record: best, Score: bestScore, CityKey: city.Key}, nil
}

// StationsInCity resolves a city and returns its full ordered station group.
func (m *Matcher) StationsInCity(city string) (CityMatch, error) {
	res, err := m.ResolveCity(city)
	if err != nil {
		return CityMatch{}, err
	}
	return CityMatch{City: res, Stations: m.idx.StationsInCity(res.Key)}, nil
}

// Search scores every station display name against the query. Substring
// containment earns the configured bonus (capped at 1); hits below the
// search threshold are dropped. Results come back ordered by descending
// score, insertion order on ties, truncated to limit when limit > 0.
func (m *Matcher) Search(query string, limit int) ([]Match, error) {
	q := Normalize(query)
	if q == "" {
		return nil, &stations.InvalidInputError{Field: "query", Reason: "must not be blank"}
	}
	var out []Match
	for _, rec := range m.idx.Records() {
		score := Similarity(q, rec.NormName())
		if strings.Contains(rec.NormName(), q) {
			score += m.opts.SubstringBonus
			if score > 1 {
				score = 1
			}
		}
		if score < m.opts.SearchThreshold {
			continue
		}
		out = append(out, Match{Record: rec, Score: score, CityKey: rec.CityKey()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
