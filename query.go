package stationdir

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/railkit/stationdir/stations"
)

// queryParams flattens the URL query the way handlers consume it: first
// value wins.
func queryParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

func requiredParam(params map[string]string, name string) (string, error) {
	v := strings.TrimSpace(params[name])
	if v == "" {
		return "", &stations.InvalidInputError{Field: name, Reason: "parameter is required"}
	}
	return v, nil
}

func parseCoordinate(params map[string]string, name string, limit float64) (float64, error) {
	raw := strings.TrimSpace(params[name])
	if raw == "" {
		return 0, &stations.InvalidInputError{Field: name, Reason: "parameter is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &stations.InvalidInputError{Field: name, Reason: "must be a finite number"}
	}
	if v < -limit || v > limit {
		return 0, &stations.InvalidInputError{Field: name, Reason: fmt.Sprintf("must be within [%g, %g]", -limit, limit)}
	}
	return v, nil
}

// parseCount reads an optional integer parameter. Absent means zero; the
// finder substitutes its default.
func parseCount(params map[string]string, name string) (int, error) {
	raw := strings.TrimSpace(params[name])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &stations.InvalidInputError{Field: name, Reason: "must be an integer"}
	}
	return v, nil
}
