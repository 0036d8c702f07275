package stations

// Record is a single station entry loaded from the source file.
// Records are created once by the loader and never mutated afterwards;
// the Index owns them for the lifetime of the process.
type Record struct {
	ID              string
	Name            string
	Latitude        float64
	Longitude       float64
	HasCoordinates  bool
	Country         string
	IsCity          bool
	IsMainStation   bool
	ParentStationID string // empty when the source had "NA" or no value

	normName string // canonical name, set when the Index is built
	cityKey  string // normalized key of the city group, set when the Index is built
}

// NormName returns the canonical comparison form of the record's name.
// Only meaningful once the record is owned by an Index.
func (r *Record) NormName() string { return r.normName }

// CityKey returns the normalized key of the city group this record belongs to.
func (r *Record) CityKey() string { return r.cityKey }
