package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gt=0,lte=65535"`
}

// StationsConfig contains station dataset configuration
type StationsConfig struct {
	Source    string   `yaml:"source"`
	Delimiter string   `yaml:"delimiter" validate:"omitempty,len=1"`
	Encoding  string   `yaml:"encoding" validate:"omitempty,oneof=utf8 latin1 windows1252"`
	Countries []string `yaml:"countries"`
	IDPrefix  string   `yaml:"idPrefix"`
}

// MatcherConfig contains name-matching thresholds
type MatcherConfig struct {
	CityThreshold    float64 `yaml:"cityThreshold" validate:"gt=0,lte=1"`
	StationThreshold float64 `yaml:"stationThreshold" validate:"gt=0,lte=1"`
	SearchThreshold  float64 `yaml:"searchThreshold" validate:"gt=0,lte=1"`
	SubstringBonus   float64 `yaml:"substringBonus" validate:"gte=0,lt=1"`
}

// CacheConfig contains query cache sizing
type CacheConfig struct {
	Capacity   int `yaml:"capacity" validate:"min=1"`
	TTLMinutes int `yaml:"ttlMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Stations StationsConfig `yaml:"stations"`
	Matcher  MatcherConfig  `yaml:"matcher"`
	Cache    CacheConfig    `yaml:"cache"`
}
