package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBackendTimeout = 2 * time.Second
	defaultCacheTTL       = 5 * time.Minute
	defaultSearchDebounce = 300 * time.Millisecond
	defaultSessionTTL     = 30 * time.Minute
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Backend BackendConfig
	Cache   CacheConfig
	Search  SearchConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

// DBConfig points at the PostgreSQL catalog. An empty Host keeps the
// service on the in-memory seed catalog.
type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
	Seed        bool
}

func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// BackendConfig describes the upstream VitalSync backend. An empty URL means
// every feature is served from the local fallback catalog.
type BackendConfig struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
}

type CacheConfig struct {
	TTL  time.Duration
	Size int
}

type SearchConfig struct {
	Debounce   time.Duration
	SessionTTL time.Duration
	MaxSession int
}

// DefaultEnvFile is read when no other dotenv path is given.
const DefaultEnvFile = ".env"

// Load reads configuration from the given dotenv file, when it exists, and
// from the process environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("BACKEND_RETRY_COUNT", 2)
	v.SetDefault("CACHE_SIZE", 512)
	v.SetDefault("SEARCH_MAX_SESSIONS", 1024)

	v.SetConfigFile(path)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			Seed:        v.GetBool("DB_SEED"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Backend: BackendConfig{
			URL:        v.GetString("BACKEND_URL"),
			Timeout:    durationOr(v, "BACKEND_TIMEOUT", defaultBackendTimeout),
			RetryCount: v.GetInt("BACKEND_RETRY_COUNT"),
		},
		Cache: CacheConfig{
			TTL:  durationOr(v, "CACHE_TTL", defaultCacheTTL),
			Size: v.GetInt("CACHE_SIZE"),
		},
		Search: SearchConfig{
			Debounce:   durationOr(v, "SEARCH_DEBOUNCE", defaultSearchDebounce),
			SessionTTL: durationOr(v, "SESSION_TTL", defaultSessionTTL),
			MaxSession: v.GetInt("SEARCH_MAX_SESSIONS"),
		},
	}

	return config, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
