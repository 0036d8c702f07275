package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	stationdir "github.com/railkit/stationdir"
	"github.com/railkit/stationdir/config"
	"github.com/railkit/stationdir/match"
	"github.com/railkit/stationdir/stations"
)

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", envOr("STATIONDIR_CONFIG", "config.yml"), "configuration file")
	source := flag.String("stations", "", "stations CSV path or URL (overrides config)")
	builtin := flag.Bool("builtin", false, "use the built-in station table instead of a dataset")
	port := flag.Int("port", 0, "listen port (overrides config)")
	city := flag.String("city", "", "oneshot: city to resolve")
	station := flag.String("station", "", "oneshot: station name inside -city")
	near := flag.String("near", "", "oneshot: \"lat,lon\" coordinate query")
	count := flag.Int("count", 0, "oneshot: number of -near results")
	query := flag.String("query", "", "oneshot: free-form station search")
	limit := flag.Int("limit", 0, "oneshot: number of -query results")
	from := flag.String("from", "", "oneshot: journey origin city")
	to := flag.String("to", "", "oneshot: journey destination city")
	flag.Parse()

	stationdir.InitLogging()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		// a missing file just means defaults; anything else is fatal
		if !os.IsNotExist(err) {
			panic(err)
		}
		cfg = config.Default()
	}
	if *source != "" {
		cfg.Stations.Source = *source
	}
	if *port != 0 {
		cfg.Server.Port = *port
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}

	idx, err := loadIndex(cfg, *builtin)
	if err != nil {
		log.Fatalf("stations: %v", err)
	}
	rep := idx.Report()
	log.Printf("loaded %d stations in %d cities (%d rows: %d skipped, %d filtered, %d without coordinates)",
		idx.Len(), idx.CityCount(), rep.Rows, rep.Skipped, rep.Filtered, rep.MissingCoords)

	finder := stationdir.NewFinder(idx, cfg)

	switch *mode {
	case "serve":
		stationdir.StartServer(cfg.Server, finder)
		stationdir.HandleGracefulShutdown()
	case "oneshot":
		var buf []byte
		var err error
		switch {
		case *near != "":
			var lat, lon float64
			lat, lon, err = parseNear(*near)
			if err == nil {
				buf, err = finder.NearestResponse(lat, lon, *count)
			}
		case *query != "":
			buf, err = finder.SearchResponse(*query, *limit)
		case *from != "" || *to != "":
			buf, err = finder.JourneyResponse(*from, *to)
		case *city != "":
			buf, err = finder.StationResponse(*city, *station)
		default:
			panic("oneshot mode needs -city, -near, -query or -from/-to")
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadIndex(cfg config.AppConfig, builtin bool) (*stations.Index, error) {
	if builtin {
		return stations.Builtin(match.Normalize), nil
	}
	src := cfg.Stations.Source
	if src == "" {
		return nil, fmt.Errorf("no source configured: set stations.source, -stations or -builtin")
	}
	body, err := newFetcher().open(src)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	idx, _, err := stations.ParseIndex(body, src, stations.OptionsFromConfig(cfg.Stations), match.Normalize)
	return idx, err
}

func parseNear(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-near must be \"lat,lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("-near latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("-near longitude: %w", err)
	}
	return lat, lon, nil
}
