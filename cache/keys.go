package cache

import (
	"bytes"
	"strconv"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// geohashLen is the key precision for coordinate queries. Nine characters
// is a cell of a few meters, so only near-identical query points share an
// entry.
const geohashLen = 9

// NameKey fingerprints a city+station lookup. The thresholds are part of
// the key so a configuration change never serves stale resolutions.
func NameKey(cityNorm, stationNorm string, cityThr, stationThr float64) string {
	return joinKey("station", cityNorm, stationNorm, formatFloat(cityThr), formatFloat(stationThr))
}

// CityStationsKey fingerprints a city station-listing lookup.
func CityStationsKey(cityNorm string, cityThr float64) string {
	return joinKey("city-stations", cityNorm, formatFloat(cityThr))
}

// SearchKey fingerprints a global name search.
func SearchKey(queryNorm string, limit int, thr, bonus float64) string {
	return joinKey("search", queryNorm, strconv.Itoa(limit), formatFloat(thr), formatFloat(bonus))
}

// NearestKey fingerprints a coordinate query by geohash cell, so jittery
// repeats of the same position hit the same entry.
func NearestKey(lat, lon float64, count int) string {
	gh := geohash.Encode(lat, lon)
	if len(gh) > geohashLen {
		gh = gh[:geohashLen]
	}
	return joinKey("nearest", gh, strconv.Itoa(count))
}

// CitiesKey fingerprints the city listing, which has no parameters.
func CitiesKey() string {
	return "cities"
}

func joinKey(parts ...string) string {
	var b bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(p)
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
