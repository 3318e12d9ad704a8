package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultAllowedOrigins mirrors the origins the hosted frontends call
// from.
var defaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
	"http://127.0.0.1:8080",
	"https://zoological-stillness-production.up.railway.app",
	"http://127.0.0.1:5500",
	"http://localhost:5500",
	"https://www.tvstream.run.place",
	".onrender.com",
	"http://localhost:3000",
}

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Admin authentication
	Admin struct {
		Token string `yaml:"token"`
	} `yaml:"admin"`

	// Embedded store settings
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`

	// Cache TTLs per concern
	Cache struct {
		PlaylistTTL  time.Duration `yaml:"playlist_ttl"`
		LiveScoreTTL time.Duration `yaml:"livescore_ttl"`
		FixturesTTL  time.Duration `yaml:"fixtures_ttl"`
		OddsTTL      time.Duration `yaml:"odds_ttl"`
	} `yaml:"cache"`

	// Playlist fetching
	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`

	// Football upstream settings
	Football struct {
		AllFootballBaseURL string `yaml:"allfootball_base_url"`
		AllFootballAPIKey  string `yaml:"allfootball_api_key"`
		FootballDataURL    string `yaml:"football_data_url"`
		FootballDataAPIKey string `yaml:"football_data_api_key"`
		APIFootballURL     string `yaml:"api_football_url"`
		RapidAPIKey        string `yaml:"rapidapi_key"`
	} `yaml:"football"`

	// Betting odds upstream settings
	Odds struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"odds"`

	// OpenAI prediction settings
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`

	// CORS settings
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	// Logging settings
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.Address == "" {
		errors = append(errors, "HTTP address is required")
	}
	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	}

	if c.Admin.Token == "" {
		errors = append(errors, "Admin token is required")
	}

	if c.Store.Path == "" {
		errors = append(errors, "Store path is required")
	}

	if c.Cache.PlaylistTTL <= 0 {
		errors = append(errors, "Playlist cache TTL must be positive")
	}
	if c.Cache.LiveScoreTTL <= 0 {
		errors = append(errors, "Live-score cache TTL must be positive")
	}
	if c.Cache.FixturesTTL <= 0 {
		errors = append(errors, "Fixtures cache TTL must be positive")
	}
	if c.Cache.OddsTTL <= 0 {
		errors = append(errors, "Odds cache TTL must be positive")
	}

	if c.Fetch.Timeout <= 0 {
		errors = append(errors, "Fetch timeout must be positive")
	}

	if c.Football.AllFootballBaseURL == "" {
		errors = append(errors, "AllFootball base URL is required")
	}
	if c.Football.FootballDataURL == "" {
		errors = append(errors, "football-data.org base URL is required")
	}
	if c.Football.APIFootballURL == "" {
		errors = append(errors, "API-Football base URL is required")
	}
	if c.Odds.BaseURL == "" {
		errors = append(errors, "Odds base URL is required")
	}

	if c.OpenAI.Model == "" {
		errors = append(errors, "OpenAI model is required")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		errors = append(errors, "At least one allowed origin is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("Invalid log level %q (expected debug, info, warn or error)", c.Log.Level))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "0.0.0.0"
	cfg.HTTP.Port = "3000"

	cfg.Admin.Token = "techboy1234"

	cfg.Store.Path = "tvstream.db"

	cfg.Cache.PlaylistTTL = time.Hour
	cfg.Cache.LiveScoreTTL = 30 * time.Second
	cfg.Cache.FixturesTTL = 60 * time.Second
	cfg.Cache.OddsTTL = 60 * time.Second

	cfg.Fetch.Timeout = 10 * time.Second

	cfg.Football.AllFootballBaseURL = "https://api.allfootball.com"
	cfg.Football.FootballDataURL = "https://api.football-data.org"
	cfg.Football.FootballDataAPIKey = "demo"
	cfg.Football.APIFootballURL = "https://api-football-v1.p.rapidapi.com"
	cfg.Football.RapidAPIKey = "demo"

	cfg.Odds.BaseURL = "https://api.the-odds-api.com/v4"

	cfg.OpenAI.Model = "gpt-4o-mini"

	cfg.CORS.AllowedOrigins = append([]string{}, defaultAllowedOrigins...)

	cfg.Log.Level = "info"

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies
// environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Port = val
	}
	if val := os.Getenv("ADMIN_TOKEN"); val != "" {
		cfg.Admin.Token = val
	}
	if val := os.Getenv("DB_PATH"); val != "" {
		cfg.Store.Path = val
	}
	if val := os.Getenv("PLAYLIST_CACHE_TTL"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid PLAYLIST_CACHE_TTL format (expected duration like '1h', '30m'): %w", err)
		}
		cfg.Cache.PlaylistTTL = duration
	}
	if val := os.Getenv("FETCH_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		cfg.Fetch.Timeout = duration
	}
	if val := os.Getenv("ALLFOOTBALL_API_KEY"); val != "" {
		cfg.Football.AllFootballAPIKey = val
	}
	if val := os.Getenv("FOOTBALL_DATA_API_KEY"); val != "" {
		cfg.Football.FootballDataAPIKey = val
	}
	if val := os.Getenv("RAPIDAPI_KEY"); val != "" {
		cfg.Football.RapidAPIKey = val
	}
	if val := os.Getenv("ODDS_API_KEY"); val != "" {
		cfg.Odds.APIKey = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.OpenAI.APIKey = val
	}
	if val := os.Getenv("OPENAI_MODEL"); val != "" {
		cfg.OpenAI.Model = val
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		var origins []string
		for _, origin := range strings.Split(val, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}

	return nil
}
