package match_test

import (
	"errors"
	"testing"

	"github.com/railkit/stationdir/internal/testutil"
	"github.com/railkit/stationdir/match"
	"github.com/railkit/stationdir/stations"
)

func newTestMatcher(t *testing.T) *match.Matcher {
	t.Helper()
	return match.NewMatcher(testutil.LoadTestIndex(t), match.DefaultOptions())
}

// A bare city query must resolve to the designated main station, not an
// arbitrary child.
func TestFindStationBareCityPicksMainStation(t *testing.T) {
	m := newTestMatcher(t)

	got, err := m.FindStation("Paris", "")
	if err != nil {
		t.Fatalf("FindStation failed: %v", err)
	}
	if got.Record.ID != "4924" {
		t.Errorf("expected main station 4924 (Gare de Lyon), got %s (%s)", got.Record.ID, got.Record.Name)
	}
	if got.Score != 1 {
		t.Errorf("exact city hit should carry score 1, got %v", got.Score)
	}
	if got.CityKey != "paris" {
		t.Errorf("expected city key %q, got %q", "paris", got.CityKey)
	}
}

func TestFindStationTypoStillResolves(t *testing.T) {
	m := newTestMatcher(t)

	got, err := m.FindStation("Pariss", "")
	if err != nil {
		t.Fatalf("FindStation failed: %v", err)
	}
	if got.Record.ID != "4924" {
		t.Errorf("expected 4924, got %s", got.Record.ID)
	}
	if got.Score >= 1 || got.Score < 0.8 {
		t.Errorf("one-character typo should score just below 1, got %v", got.Score)
	}
}

func TestFindStationUnknownCity(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.FindStation("Zzzzqq", "")
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindStationInsideCity(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name       string
		city       string
		station    string
		expectedID string
	}{
		{
			name:       "substring of display name",
			city:       "Paris",
			station:    "Montparnasse",
			expectedID: "4920",
		},
		{
			name:       "multi-word substring",
			city:       "paris",
			station:    "gare du nord",
			expectedID: "4918",
		},
		{
			name:       "exact normalized name",
			city:       "Lyon",
			station:    "Lyon Part-Dieu",
			expectedID: "1362",
		},
		{
			name:       "accented query",
			city:       "Orléans",
			station:    "Les Aubrais",
			expectedID: "3831",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.FindStation(tt.city, tt.station)
			if err != nil {
				t.Fatalf("FindStation failed: %v", err)
			}
			if got.Record.ID != tt.expectedID {
				t.Errorf("expected %s, got %s (%s)", tt.expectedID, got.Record.ID, got.Record.Name)
			}
		})
	}
}

func TestFindStationUnknownStationInKnownCity(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.FindStation("Paris", "Zzzzqq")
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindStationBlankInputRejected(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name    string
		city    string
		station string
	}{
		{name: "empty city", city: "", station: "Montparnasse"},
		{name: "punctuation-only city", city: "?!", station: ""},
		{name: "punctuation-only station", city: "Paris", station: "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.FindStation(tt.city, tt.station)
			var invalid *stations.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
		})
	}
}

// Substring containment must win over a higher fuzzy score: "mars" is
// contained in "marseille" (similarity 0.44) while "maes" scores 0.75 on
// edit distance alone.
func TestSubstringBeatsHigherFuzzyScore(t *testing.T) {
	idx := testutil.MustParseCSV(t, `id;name;latitude;longitude;country;is_city;is_main_station;parent_station_id
1;Marseille;43.29;5.36;FR;TRUE;FALSE;NA
2;Maes;47.00;1.00;FR;TRUE;FALSE;NA
`)
	m := match.NewMatcher(idx, match.DefaultOptions())

	got, err := m.FindStation("mars", "")
	if err != nil {
		t.Fatalf("FindStation failed: %v", err)
	}
	if got.Record.ID != "1" {
		t.Errorf("substring hit should beat fuzzy score, got %s (%s)", got.Record.ID, got.Record.Name)
	}
}

func TestCityTieBreakPrefersMoreStations(t *testing.T) {
	idx := testutil.MustParseCSV(t, `id;name;latitude;longitude;country;is_city;is_main_station;parent_station_id
1;Neuville A;47.00;1.00;FR;TRUE;FALSE;NA
2;Neuville B;47.10;1.10;FR;TRUE;FALSE;NA
3;Neuville B Sud;47.20;1.20;FR;FALSE;FALSE;2
`)
	m := match.NewMatcher(idx, match.DefaultOptions())

	// Both city keys score identically against "Neuville"; B has two
	// stations to A's one.
	got, err := m.ResolveCity("Neuville")
	if err != nil {
		t.Fatalf("ResolveCity failed: %v", err)
	}
	if got.Key != "neuville b" {
		t.Errorf("expected richer city to win the tie, got %q", got.Key)
	}
}

func TestCityTieBreakLexicographic(t *testing.T) {
	idx := testutil.MustParseCSV(t, `id;name;latitude;longitude;country;is_city;is_main_station;parent_station_id
1;Neuville A;47.00;1.00;FR;TRUE;FALSE;NA
2;Neuville B;47.10;1.10;FR;TRUE;FALSE;NA
`)
	m := match.NewMatcher(idx, match.DefaultOptions())

	got, err := m.ResolveCity("Neuville")
	if err != nil {
		t.Fatalf("ResolveCity failed: %v", err)
	}
	if got.Key != "neuville a" {
		t.Errorf("expected lexicographically smaller key on full tie, got %q", got.Key)
	}
}

func TestStationsInCity(t *testing.T) {
	m := newTestMatcher(t)

	got, err := m.StationsInCity("marseile") // one letter dropped
	if err != nil {
		t.Fatalf("StationsInCity failed: %v", err)
	}
	if got.City.DisplayName != "Marseille" {
		t.Errorf("expected Marseille, got %q", got.City.DisplayName)
	}
	if len(got.Stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(got.Stations))
	}
	if got.Stations[0].ID != "2476" || got.Stations[1].ID != "2478" {
		t.Errorf("expected city record then main station, got %s then %s",
			got.Stations[0].ID, got.Stations[1].ID)
	}
}

func TestStationsInCityUnknown(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.StationsInCity("Zzzzqq")
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search("Part Dieu", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Should have at least one result")
	}
	if results[0].Record.ID != "1362" {
		t.Errorf("expected Part-Dieu first, got %s (%s)", results[0].Record.ID, results[0].Record.Name)
	}
	if results[0].Score <= 0.8 {
		t.Errorf("substring hit should score above 0.8, got %v", results[0].Score)
	}
}

func TestSearchOrdersByScore(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search("marseille", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Record.ID != "2476" || results[1].Record.ID != "2478" {
		t.Errorf("expected exact hit before partial, got %s then %s",
			results[0].Record.ID, results[1].Record.ID)
	}
	if results[0].Score != 1 {
		t.Errorf("exact name should score 1, got %v", results[0].Score)
	}
}

func TestSearchLimitKeepsInsertionOrderOnTies(t *testing.T) {
	// Equal-length names so every candidate scores identically.
	idx := testutil.MustParseCSV(t, `id;name;latitude;longitude;country;is_city;is_main_station;parent_station_id
1;Villeneuve AA;47.00;1.00;FR;FALSE;FALSE;NA
2;Villeneuve BB;47.10;1.10;FR;FALSE;FALSE;NA
3;Villeneuve CC;47.20;1.20;FR;FALSE;FALSE;NA
`)
	m := match.NewMatcher(idx, match.DefaultOptions())

	results, err := m.Search("villeneuve", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected limit to truncate to 2, got %d", len(results))
	}
	if results[0].Record.ID != "1" || results[1].Record.ID != "2" {
		t.Errorf("equal scores should keep insertion order, got %s then %s",
			results[0].Record.ID, results[1].Record.ID)
	}
}

func TestSearchNoHitsIsNotAnError(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search("zzzzqq", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchBlankRejected(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.Search("  ", 5)
	var invalid *stations.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}
