package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Crop selection keys
const SELECTED_CROP_KEY = "selectedCrop"
const SELECTED_CROP_CHANNEL = "selectedCrop:changed"

// Data sources
const WEATHER_CSV_RESOURCE = "weather_clean_daily.csv"
const ANALYZED_CSV_RESOURCE = "weather_clean_daily_analyzed.csv"
const DATA_BASE_URL = ""

// Dashboard refresher config
const DASHBOARD_REFRESH_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"

const HTTP_ADDR = ":8080"
const HTTP_CLIENT_TIMEOUT_SECONDS = 10
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Config holds the runtime settings. Every field has a default above and
// can be overridden from the environment or a .env file.
type Config struct {
	Env             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DataBaseURL     string
	ResourcesDir    string
	WeatherCSV      string
	AnalyzedCSV     string
	HTTPAddr        string
	HTTPTimeout     time.Duration
	RefreshInterval time.Duration
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and the environment on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file loaded: %v", err)
	}

	redisDB, err := envInt("REDIS_DB", REDIS_DB)
	if err != nil {
		return nil, err
	}
	httpTimeout, err := envDuration("HTTP_CLIENT_TIMEOUT", HTTP_CLIENT_TIMEOUT_SECONDS*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := envDuration("DASHBOARD_REFRESH_INTERVAL", DASHBOARD_REFRESH_SCHEDULE_MINUTES*time.Minute)
	if err != nil {
		return nil, err
	}
	shutdown, err := envDuration("SHUTDOWN_TIMEOUT", SHUTDOWN_TIMEOUT_SECONDS*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:             envOrDefault("APP_ENV", "prod"),
		RedisAddr:       envOrDefault("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:   envOrDefault("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:         redisDB,
		DataBaseURL:     envOrDefault("DATA_BASE_URL", DATA_BASE_URL),
		ResourcesDir:    envOrDefault("RESOURCES_DIR", GetResourcePath("")),
		WeatherCSV:      envOrDefault("WEATHER_CSV", WEATHER_CSV_RESOURCE),
		AnalyzedCSV:     envOrDefault("ANALYZED_CSV", ANALYZED_CSV_RESOURCE),
		HTTPAddr:        envOrDefault("HTTP_ADDR", HTTP_ADDR),
		HTTPTimeout:     httpTimeout,
		RefreshInterval: refresh,
		ShutdownTimeout: shutdown,
	}

	if cfg.WeatherCSV == "" || cfg.AnalyzedCSV == "" {
		return nil, errors.New("WEATHER_CSV and ANALYZED_CSV must not be empty")
	}
	if cfg.RefreshInterval <= 0 {
		return nil, errors.New("invalid DASHBOARD_REFRESH_INTERVAL")
	}
	return cfg, nil
}

// UsesHTTPSource reports whether CSV files are fetched over HTTP rather than
// read from the resources directory.
func (c *Config) UsesHTTPSource() bool {
	return c.DataBaseURL != ""
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath resolves a file under the resources directory; "" gives the directory itself.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}
