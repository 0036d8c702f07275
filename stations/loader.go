package stations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/railkit/stationdir/config"
)

// LoaderOptions controls how the source file is parsed.
type LoaderOptions struct {
	Delimiter rune     // field separator, ';' when zero
	Encoding  string   // "utf8" (default), "latin1" or "windows1252"
	Countries []string // ISO country allow-list; empty disables filtering
	IDPrefix  string   // prepended to ids that do not already carry it
}

// LoadReport summarizes one load for logging, health reporting and tests.
type LoadReport struct {
	Rows          int `json:"rows"`                // data rows seen (header excluded)
	Loaded        int `json:"loaded"`              // records kept
	Skipped       int `json:"skipped"`             // malformed rows dropped with a warning
	Filtered      int `json:"filtered"`            // rows removed by the country allow-list
	MissingCoords int `json:"missing_coordinates"` // kept records without usable coordinates
}

// OptionsFromConfig maps the stations section of the app configuration
// onto loader options.
func OptionsFromConfig(cfg config.StationsConfig) LoaderOptions {
	opts := LoaderOptions{
		Encoding:  cfg.Encoding,
		Countries: cfg.Countries,
		IDPrefix:  cfg.IDPrefix,
	}
	if cfg.Delimiter != "" {
		opts.Delimiter = []rune(cfg.Delimiter)[0]
	}
	return opts
}

// LoadIndex reads the source file at path and builds the station index.
// Any failure is returned as a *LoadError; the index is only returned on
// a fully successful load.
func LoadIndex(path string, opts LoaderOptions, norm func(string) string) (*Index, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return ParseIndex(f, path, opts, norm)
}

// ParseIndex parses station records from r and builds the index. source is
// used only for error reporting (a path or URL).
func ParseIndex(r io.Reader, source string, opts LoaderOptions, norm func(string) string) (*Index, LoadReport, error) {
	records, rep, err := ParseRecords(r, opts)
	if err != nil {
		return nil, rep, &LoadError{Source: source, Err: err}
	}
	idx := NewIndex(records, norm)
	idx.report = rep
	return idx, rep, nil
}

// ParseRecords parses the delimited station file into a flat record slice.
// Malformed rows are skipped with a warning; duplicate ids reject the whole
// load. Secondary indices are not built here, so loading stays fast for
// files with tens of thousands of rows.
func ParseRecords(r io.Reader, opts LoaderOptions) ([]Record, LoadReport, error) {
	var rep LoadReport

	switch strings.ToLower(opts.Encoding) {
	case "", "utf8", "utf-8":
	case "latin1", "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, rep, fmt.Errorf("unsupported encoding %q", opts.Encoding)
	}

	csvr := csv.NewReader(r)
	csvr.Comma = opts.Delimiter
	if csvr.Comma == 0 {
		csvr.Comma = ';'
	}
	csvr.FieldsPerRecord = -1

	rows, err := csvr.ReadAll()
	if err != nil {
		return nil, rep, err
	}
	if len(rows) == 0 {
		return nil, rep, errors.New("empty file")
	}

	head := rows[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cID := idx("id")
	cName := idx("name")
	cLat := idx("latitude")
	cLon := idx("longitude")
	cCountry := idx("country")
	cIsCity := idx("is_city")
	cIsMain := idx("is_main_station")
	cParent := idx("parent_station_id")
	if cID < 0 || cName < 0 || cLat < 0 || cLon < 0 {
		return nil, rep, errors.New("missing required columns (id, name, latitude, longitude)")
	}

	allow := map[string]bool{}
	for _, c := range opts.Countries {
		allow[strings.ToUpper(strings.TrimSpace(c))] = true
	}

	records := make([]Record, 0, len(rows)-1)
	seen := make(map[string]int, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		rep.Rows++
		get := func(j int) string {
			if j >= 0 && j < len(row) {
				return strings.TrimSpace(row[j])
			}
			return ""
		}

		id := get(cID)
		name := get(cName)
		if id == "" || name == "" {
			rep.Skipped++
			log.Printf("stations: row %d: missing id or name, skipped", rowNum)
			continue
		}

		country := strings.ToUpper(get(cCountry))
		if len(allow) > 0 && !allow[country] {
			rep.Filtered++
			continue
		}

		latS, lonS := get(cLat), get(cLon)
		hasCoords := latS != "" && lonS != ""
		var lat, lon float64
		if hasCoords {
			var errLat, errLon error
			lat, errLat = strconv.ParseFloat(latS, 64)
			lon, errLon = strconv.ParseFloat(lonS, 64)
			if errLat != nil || errLon != nil {
				rep.Skipped++
				log.Printf("stations: row %d (%s): non-numeric coordinates, skipped", rowNum, name)
				continue
			}
		} else {
			rep.MissingCoords++
		}

		if opts.IDPrefix != "" && !strings.HasPrefix(id, opts.IDPrefix) {
			id = opts.IDPrefix + id
		}
		if prev, dup := seen[id]; dup {
			return nil, rep, fmt.Errorf("duplicate station id %q (rows %d and %d)", id, prev, rowNum)
		}
		seen[id] = rowNum

		parent := get(cParent)
		if parent == "NA" {
			parent = ""
		}
		if parent != "" && opts.IDPrefix != "" && !strings.HasPrefix(parent, opts.IDPrefix) {
			parent = opts.IDPrefix + parent
		}

		records = append(records, Record{
			ID:              id,
			Name:            name,
			Latitude:        lat,
			Longitude:       lon,
			HasCoordinates:  hasCoords,
			Country:         country,
			IsCity:          parseFlag(get(cIsCity)),
			IsMainStation:   parseFlag(get(cIsMain)),
			ParentStationID: parent,
		})
		rep.Loaded++
	}
	return records, rep, nil
}

func parseFlag(s string) bool { return strings.EqualFold(s, "true") }
