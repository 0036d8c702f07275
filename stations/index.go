package stations

import (
	"log"
	"sort"
	"strings"
)

// Index holds the loaded station records and the city lookup structures.
// It is built once after load and read-only afterwards, so it may be read
// concurrently without locking.
type Index struct {
	records []Record
	ptrs    []*Record // insertion order, for deterministic scans and ties

	byID     map[string]*Record
	groups   map[string][]*Record // normalized city key -> ordered station group
	displays map[string]string    // normalized city key -> original display name
	cityKeys []string             // first-seen order

	norm          func(string) string
	missingCoords int
	report        LoadReport
}

// NewIndex builds the station index over records. norm is the canonical
// name normalizer; the same function must be used to normalize queries
// against this index.
func NewIndex(records []Record, norm func(string) string) *Index {
	ix := &Index{
		records:  records,
		byID:     make(map[string]*Record, len(records)),
		groups:   map[string][]*Record{},
		displays: map[string]string{},
		norm:     norm,
	}
	ix.ptrs = make([]*Record, len(ix.records))
	for i := range ix.records {
		r := &ix.records[i]
		r.normName = norm(r.Name)
		ix.ptrs[i] = r
		ix.byID[r.ID] = r
		if !r.HasCoordinates {
			ix.missingCoords++
		}
	}
	ix.report = LoadReport{Rows: len(records), Loaded: len(records), MissingCoords: ix.missingCoords}

	// City groups can only be assigned once every parent is resolvable.
	for _, r := range ix.ptrs {
		display := ix.cityDisplayFor(r)
		key := norm(display)
		if key == "" {
			key = r.normName
		}
		if _, ok := ix.displays[key]; !ok {
			ix.displays[key] = display
			ix.cityKeys = append(ix.cityKeys, key)
		}
		ix.groups[key] = append(ix.groups[key], r)
		r.cityKey = key
	}
	for key, grp := range ix.groups {
		ix.groups[key] = orderGroup(grp)
	}
	return ix
}

// cityDisplayFor derives the display name of the city a record belongs to:
// the parent city record's name when the parent is a city, the record's own
// name when it is itself a city, else a name-pattern fallback where
// "Name (City)" yields the parenthesized city and "City - Name" the prefix.
func (ix *Index) cityDisplayFor(r *Record) string {
	if r.IsCity {
		return r.Name
	}
	if r.ParentStationID != "" {
		if p, ok := ix.byID[r.ParentStationID]; ok {
			if p.IsCity {
				return p.Name
			}
			if r.IsMainStation {
				log.Printf("stations: main station %s (%s) parent %s is not a city record", r.ID, r.Name, p.ID)
			}
		} else {
			log.Printf("stations: %s (%s) references unknown parent %s", r.ID, r.Name, r.ParentStationID)
		}
	} else if r.IsMainStation {
		log.Printf("stations: main station %s (%s) has no parent city", r.ID, r.Name)
	}
	if i := strings.LastIndex(r.Name, " ("); i > 0 && strings.HasSuffix(r.Name, ")") {
		return r.Name[i+2 : len(r.Name)-1]
	}
	if i := strings.Index(r.Name, " - "); i > 0 {
		return r.Name[:i]
	}
	return r.Name
}

// orderGroup puts the city record first, then main stations, then the
// rest, keeping insertion order inside each tier.
func orderGroup(grp []*Record) []*Record {
	out := make([]*Record, 0, len(grp))
	for _, r := range grp {
		if r.IsCity {
			out = append(out, r)
		}
	}
	for _, r := range grp {
		if !r.IsCity && r.IsMainStation {
			out = append(out, r)
		}
	}
	for _, r := range grp {
		if !r.IsCity && !r.IsMainStation {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of loaded records.
func (ix *Index) Len() int { return len(ix.records) }

// CityCount returns the number of distinct city groups.
func (ix *Index) CityCount() int { return len(ix.cityKeys) }

// CityKeys returns the normalized city keys in first-seen order.
func (ix *Index) CityKeys() []string { return ix.cityKeys }

// CityDisplayName returns the original display name for a normalized city key.
func (ix *Index) CityDisplayName(key string) string { return ix.displays[key] }

// CityNames returns every city's original display name, sorted.
func (ix *Index) CityNames() []string {
	names := make([]string, 0, len(ix.cityKeys))
	for _, key := range ix.cityKeys {
		names = append(names, ix.displays[key])
	}
	sort.Strings(names)
	return names
}

// StationsInCity returns the ordered station group for a normalized city
// key: city record first, then main stations, then the rest. Nil when the
// key is unknown.
func (ix *Index) StationsInCity(key string) []*Record { return ix.groups[key] }

// DefaultStation picks the record a bare city query resolves to: the main
// station if one exists, else the city record itself, else the first
// station in insertion order. Deterministic, never random.
func (ix *Index) DefaultStation(key string) *Record {
	grp := ix.groups[key]
	if len(grp) == 0 {
		return nil
	}
	for _, r := range grp {
		if r.IsMainStation && !r.IsCity {
			return r
		}
	}
	for _, r := range grp {
		if r.IsCity {
			return r
		}
	}
	return grp[0]
}

// ByID returns the record with the given id.
func (ix *Index) ByID(id string) (*Record, bool) {
	r, ok := ix.byID[id]
	return r, ok
}

// Records returns all records in insertion order.
func (ix *Index) Records() []*Record { return ix.ptrs }

// MissingCoords returns how many kept records lack usable coordinates.
func (ix *Index) MissingCoords() int { return ix.missingCoords }

// Report returns the load report for the index.
func (ix *Index) Report() LoadReport { return ix.report }
