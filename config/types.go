package config

// DataConfig describes where trip files live and how they are parsed
type DataConfig struct {
	Dir         string   `yaml:"dir"`
	Strict      bool     `yaml:"strict"`
	TimeLayouts []string `yaml:"timeLayouts" validate:"omitempty,dive,required"`
}

// CityConfig maps a city name to its trip file
type CityConfig struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// OutputConfig controls report export
type OutputConfig struct {
	Format      string `yaml:"format" validate:"omitempty,oneof=text json xml pdf"`
	Path        string `yaml:"path"`
	MetricsFile string `yaml:"metricsFile"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Cities  []CityConfig  `yaml:"cities" validate:"omitempty,dive"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultTimeLayouts are tried in order when parsing trip start times.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
}

// DefaultCities is the stock dataset registry.
func DefaultCities() []CityConfig {
	return []CityConfig{
		{Name: "chicago", File: "chicago.csv"},
		{Name: "new york city", File: "new_york_city.csv"},
		{Name: "washington", File: "washington.csv"},
	}
}

// Default returns the configuration used when no config.yml is present
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "."
	}
	if len(cfg.Data.TimeLayouts) == 0 {
		cfg.Data.TimeLayouts = append([]string(nil), DefaultTimeLayouts...)
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = DefaultCities()
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
}
