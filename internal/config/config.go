package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Recommender RecommenderConfig
	Cohere      CohereConfig
	Gemini      GeminiConfig
	Log         LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type RecommenderConfig struct {
	// Providers is the ordered list of external rankers tried before the
	// deterministic matcher.
	Providers    []string
	MaxLogLength int
}

type CohereConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	RatePerMinute int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

var requiredKeys = []string{
	"APP_NAME",
	"APP_ENV",
	"HTTP_PORT",
	"JWT_ACCESS_SECRET",
	"JWT_REFRESH_SECRET",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_POOL_MAX_CONNS", 10)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", 600*time.Second)

	v.SetDefault("JWT_ACCESS_TTL", 15*time.Minute)
	v.SetDefault("JWT_REFRESH_TTL", 7*24*time.Hour)

	v.SetDefault("RECOMMENDER_PROVIDERS", "cohere")
	v.SetDefault("RECOMMENDER_MAX_LOG_LENGTH", 200)

	v.SetDefault("COHERE_BASE_URL", "https://api.cohere.ai/v1")
	v.SetDefault("COHERE_MODEL", "command")
	v.SetDefault("COHERE_MAX_TOKENS", 1024)
	v.SetDefault("COHERE_TEMPERATURE", 0.3)
	v.SetDefault("COHERE_TIMEOUT", 10*time.Second)
	v.SetDefault("COHERE_RATE_PER_MINUTE", 60)

	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TIMEOUT", 10*time.Second)

	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	str := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{
		App: AppConfig{
			AppName:     str("APP_NAME"),
			Environment: str("APP_ENV"),
			HTTPPort:    str("HTTP_PORT"),
		},
		Database: DatabaseConfig{
			DBHost:                str("DB_HOST"),
			DBPort:                str("DB_PORT"),
			DBName:                str("DB_NAME"),
			DBUser:                str("DB_USER"),
			DBPassword:            v.GetString("DB_PASSWORD"),
			DBSSLMode:             str("DB_SSL_MODE"),
			ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
			PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
			PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
			PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
			PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
			PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
		},
		Redis: RedisConfig{
			Addr:     str("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      v.GetDuration("REDIS_TTL"),
		},
		JWT: JWTConfig{
			AccessSecret:  v.GetString("JWT_ACCESS_SECRET"),
			RefreshSecret: v.GetString("JWT_REFRESH_SECRET"),
			AccessTTL:     v.GetDuration("JWT_ACCESS_TTL"),
			RefreshTTL:    v.GetDuration("JWT_REFRESH_TTL"),
		},
		Recommender: RecommenderConfig{
			Providers:    splitList(v.GetString("RECOMMENDER_PROVIDERS")),
			MaxLogLength: v.GetInt("RECOMMENDER_MAX_LOG_LENGTH"),
		},
		Cohere: CohereConfig{
			APIKey:        str("COHERE_API_KEY"),
			BaseURL:       str("COHERE_BASE_URL"),
			Model:         str("COHERE_MODEL"),
			MaxTokens:     v.GetInt("COHERE_MAX_TOKENS"),
			Temperature:   v.GetFloat64("COHERE_TEMPERATURE"),
			Timeout:       v.GetDuration("COHERE_TIMEOUT"),
			RatePerMinute: v.GetInt("COHERE_RATE_PER_MINUTE"),
		},
		Gemini: GeminiConfig{
			APIKey:  str("GEMINI_API_KEY"),
			Model:   str("GEMINI_MODEL"),
			Timeout: v.GetDuration("GEMINI_TIMEOUT"),
		},
		Log: LogConfig{
			JSON:  v.GetBool("LOG_JSON"),
			Debug: v.GetBool("LOG_DEBUG"),
		},
	}

	return cfg, nil
}

// splitList lowercases, trims and dedupes a comma separated list.
func splitList(raw string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
