package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/railkit/stationdir/match"
	"github.com/railkit/stationdir/stations"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// LoadTestIndex loads the station fixture from testdata/stations.csv with
// no country filtering, so tests see every row.
func LoadTestIndex(t *testing.T) *stations.Index {
	t.Helper()
	path := filepath.Join(GetTestDataPath(), "stations.csv")
	idx, _, err := stations.LoadIndex(path, stations.LoaderOptions{}, match.Normalize)
	if err != nil {
		t.Fatalf("Failed to load stations fixture: %v", err)
	}
	return idx
}

// ParseCSV builds an index from inline CSV content.
func ParseCSV(t *testing.T, content string, opts stations.LoaderOptions) (*stations.Index, stations.LoadReport, error) {
	t.Helper()
	return stations.ParseIndex(strings.NewReader(content), "inline", opts, match.Normalize)
}

// MustParseCSV builds an index from inline CSV content and fails the test
// on any load error.
func MustParseCSV(t *testing.T, content string) *stations.Index {
	t.Helper()
	idx, _, err := ParseCSV(t, content, stations.LoaderOptions{})
	if err != nil {
		t.Fatalf("Failed to parse inline fixture: %v", err)
	}
	return idx
}
