package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backend names.
const (
	StorageSQLite = "sqlite"
	StorageFiles  = "files"
)

type Config struct {
	// Local storage
	DataDir string `env:"VOYAGEE_DATA_DIR"`
	Storage string `env:"VOYAGEE_STORAGE"`

	// Capability endpoints
	RatesURL    string `env:"VOYAGEE_RATES_URL"`
	GeocoderURL string `env:"VOYAGEE_GEOCODER_URL"`
	WeatherURL  string `env:"VOYAGEE_WEATHER_URL"`
	PlacesURL   string `env:"VOYAGEE_PLACES_URL"`

	// Outbound HTTP behaviour
	HTTPTimeoutSeconds int `env:"VOYAGEE_HTTP_TIMEOUT"`
	HTTPRetries        int `env:"VOYAGEE_HTTP_RETRIES"`

	Version bool `env:"-"` // show version and exit (flag only)
}

// NewConfig loads .env, then environment variables, then flags. Flags only
// override what the environment left unset.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for local data")
	flag.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: sqlite or files")
	flag.StringVar(&cfg.RatesURL, "rates-url", cfg.RatesURL, "exchange-rate API base URL")
	flag.StringVar(&cfg.GeocoderURL, "geocoder-url", cfg.GeocoderURL, "geocoding API base URL")
	flag.StringVar(&cfg.WeatherURL, "weather-url", cfg.WeatherURL, "weather API base URL")
	flag.StringVar(&cfg.PlacesURL, "places-url", cfg.PlacesURL, "nearby-places API base URL")
	flag.IntVar(&cfg.HTTPTimeoutSeconds, "http-timeout", cfg.HTTPTimeoutSeconds, "outbound HTTP timeout, seconds")
	flag.IntVar(&cfg.HTTPRetries, "http-retries", cfg.HTTPRetries, "outbound HTTP retry budget")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		c.DataDir = filepath.Join(dir, "Voyagee")
	}
	if c.Storage != StorageFiles {
		c.Storage = StorageSQLite
	}
	if c.RatesURL == "" {
		c.RatesURL = "https://open.er-api.com/v6/latest"
	}
	if c.GeocoderURL == "" {
		c.GeocoderURL = "https://nominatim.openstreetmap.org"
	}
	if c.WeatherURL == "" {
		c.WeatherURL = "https://api.open-meteo.com"
	}
	if c.HTTPTimeoutSeconds <= 0 {
		c.HTTPTimeoutSeconds = 10
	}
	if c.HTTPRetries <= 0 {
		c.HTTPRetries = 3
	}
}

// HTTPTimeout returns the outbound timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
