package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is given: serve on
// :8080, parse semicolon-separated UTF-8, keep FR records, standard
// thresholds, a 4096-entry cache expiring after a day.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads the application configuration from a YAML file.
// Missing values take their defaults before validation, so a file only
// has to state what it changes.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Stations.Delimiter == "" {
		cfg.Stations.Delimiter = ";"
	}
	if cfg.Stations.Encoding == "" {
		cfg.Stations.Encoding = "utf8"
	}
	// nil means unset; an explicit empty list disables country filtering.
	if cfg.Stations.Countries == nil {
		cfg.Stations.Countries = []string{"FR"}
	}
	if cfg.Matcher.CityThreshold == 0 {
		cfg.Matcher.CityThreshold = 0.6
	}
	if cfg.Matcher.StationThreshold == 0 {
		cfg.Matcher.StationThreshold = 0.6
	}
	if cfg.Matcher.SearchThreshold == 0 {
		cfg.Matcher.SearchThreshold = 0.5
	}
	if cfg.Matcher.SubstringBonus == 0 {
		cfg.Matcher.SubstringBonus = 0.2
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = 4096
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 1440
	}
}
