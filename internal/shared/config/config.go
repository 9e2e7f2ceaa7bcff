package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv    string
	Port      string
	RedisAddr string
	Session   SessionConfig
	Sheet     SheetConfig
	Dashboard DashboardConfig
}

type SessionConfig struct {
	Secret string
	// TTL 0 berarti session bertahan sampai logout.
	TTL time.Duration
}

type DashboardConfig struct {
	// IdleTTL: state dashboard yang tidak disentuh selama ini dibuang dari memori.
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type SheetConfig struct {
	BaseURL       string
	SheetID       string
	LayoutFile    string
	ClientTimeout time.Duration
}

// Load membaca konfigurasi dari environment. Panggil godotenv.Load() lebih
// dulu di main bila ingin memakai file .env.
func Load() Config {
	return Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "3000"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		Session: SessionConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getEnvDuration("SESSION_TTL", 0),
		},
		Sheet: SheetConfig{
			BaseURL:       getEnv("SHEET_BASE_URL", "https://docs.google.com"),
			SheetID:       getEnv("SHEET_ID", ""),
			LayoutFile:    getEnv("SHEET_LAYOUT_FILE", ""),
			ClientTimeout: getEnvDuration("HTTP_CLIENT_TIMEOUT", 0),
		},
		Dashboard: DashboardConfig{
			IdleTTL:       getEnvDuration("DASHBOARD_IDLE_TTL", 12*time.Hour),
			SweepInterval: getEnvDuration("DASHBOARD_SWEEP_INTERVAL", 10*time.Minute),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// angka polos dibaca sebagai detik
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
