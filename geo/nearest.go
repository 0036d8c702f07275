package geo

import (
	"math"
	"sort"

	"github.com/railkit/stationdir/stations"
)

// DefaultCount is the number of hits returned when the caller does not ask
// for a specific count.
const DefaultCount = 5

// Hit is one station with its distance from the query point.
type Hit struct {
	Record *stations.Record
	KM     float64
}

// Result is an ordered nearest-stations answer. Excluded counts the records
// that were skipped because the dataset carries no coordinates for them.
type Result struct {
	Hits     []Hit
	Excluded int
}

// Nearest returns the count stations closest to (lat, lon), ordered by
// ascending distance. Equidistant stations keep dataset insertion order.
// Records without coordinates never match; they are tallied in Excluded so
// callers can tell a sparse dataset from an empty one. A count <= 0 falls
// back to DefaultCount.
func Nearest(idx *stations.Index, lat, lon float64, count int) (Result, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return Result{}, err
	}
	if count <= 0 {
		count = DefaultCount
	}

	res := Result{}
	for _, rec := range idx.Records() {
		if !rec.HasCoordinates {
			res.Excluded++
			continue
		}
		res.Hits = append(res.Hits, Hit{Record: rec, KM: HaversineKM(lat, lon, rec.Latitude, rec.Longitude)})
	}
	sort.SliceStable(res.Hits, func(i, j int) bool { return res.Hits[i].KM < res.Hits[j].KM })
	if len(res.Hits) > count {
		res.Hits = res.Hits[:count]
	}
	return res, nil
}

// ValidateCoordinates rejects non-finite and out-of-range WGS84 positions
// with an InvalidInputError naming the offending field.
func ValidateCoordinates(lat, lon float64) error {
	switch {
	case math.IsNaN(lat) || math.IsInf(lat, 0):
		return &stations.InvalidInputError{Field: "lat", Reason: "must be a finite number"}
	case math.IsNaN(lon) || math.IsInf(lon, 0):
		return &stations.InvalidInputError{Field: "lon", Reason: "must be a finite number"}
	case lat < -90 || lat > 90:
		return &stations.InvalidInputError{Field: "lat", Reason: "must be within [-90, 90]"}
	case lon < -180 || lon > 180:
		return &stations.InvalidInputError{Field: "lon", Reason: "must be within [-180, 180]"}
	}
	return nil
}
