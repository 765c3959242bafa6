package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lmoreno/weather-dashboard/internal/store"
	"github.com/lmoreno/weather-dashboard/internal/weather"
	"github.com/lmoreno/weather-dashboard/internal/weather/providers"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// Endpoints for the OpenWeather API.
	Endpoints providers.Endpoints

	// Soft plausibility bounds applied during normalization.
	Bounds weather.Bounds

	// Cities the scheduled sweep ingests every tick.
	Cities []string

	// FetchInterval controls how often the sweep runs.
	FetchInterval time.Duration

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	Database store.Config

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	defaults := providers.DefaultEndpoints()
	cfg.Endpoints = providers.Endpoints{
		Current:  getenvDefault("OPENWEATHER_BASE_URL", defaults.Current),
		Forecast: getenvDefault("OPENWEATHER_FORECAST_URL", defaults.Forecast),
		Reverse:  getenvDefault("OPENWEATHER_REVERSE_URL", defaults.Reverse),
	}

	bounds := weather.DefaultBounds()
	cfg.Bounds = weather.Bounds{
		TempMin:     getenvFloat("TEMP_MIN", bounds.TempMin),
		TempMax:     getenvFloat("TEMP_MAX", bounds.TempMax),
		HumidityMin: getenvFloat("HUMIDITY_MIN", bounds.HumidityMin),
		HumidityMax: getenvFloat("HUMIDITY_MAX", bounds.HumidityMax),
	}

	cfg.Cities = splitList(getenvDefault("CITIES", "Arrecife,Madrid,Barcelona,London"))

	intervalStr := getenvDefault("FETCH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Database = store.Config{
		Driver:     getenvDefault("DB_DRIVER", "sqlite"),
		SQLitePath: getenvDefault("SQLITE_PATH", "weather.db"),
		MySQLDSN:   os.Getenv("MYSQL_DSN"),
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
