package stations

import "fmt"

// LoadError reports a failed station load: missing or unreadable source,
// a corrupt file, or a duplicate-id collision. It is fatal to startup;
// no partial index is ever served.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return "stations: load: " + e.Err.Error()
	}
	return fmt.Sprintf("stations: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvalidInputError rejects a query before any matching begins: an empty
// or blank query string, or malformed/out-of-range coordinates.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
