package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	Env  string
	Port int

	Backend BackendConfig
	Events  EventsConfig
	Forms   FormsConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
}

// BackendConfig points the site at the Thunder backend service.
type BackendConfig struct {
	BaseURL string
	// Timeout of zero leaves resolution to the request context and transport.
	Timeout time.Duration
}

// EventsConfig governs the event feed freshness window.
type EventsConfig struct {
	CacheEnabled bool
	CacheDriver  string
	CacheTTL     time.Duration
	// RevalidateToken guards POST /api/events/revalidate. Empty disables the route.
	RevalidateToken string
}

// FormsConfig tunes per-visitor lead form sessions.
type FormsConfig struct {
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
	MaxSessions  int
}

// RedisConfig locates the shared event cache. KeyPrefix namespaces every key.
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Backend = BackendConfig{
		BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("API_BASE_URL")), "/"),
		Timeout: parseDuration(v.GetString("HTTP_CLIENT_TIMEOUT"), 0),
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultAPIBaseURL
	}

	cfg.Events = EventsConfig{
		CacheEnabled: v.GetBool("ENABLE_EVENTS_CACHE"),
		CacheDriver:  strings.ToLower(v.GetString("CACHE_DRIVER")),
		CacheTTL:     parseDuration(v.GetString("EVENTS_CACHE_TTL"), 60*time.Second),

		RevalidateToken: strings.TrimSpace(v.GetString("EVENTS_REVALIDATE_TOKEN")),
	}

	cfg.Forms = FormsConfig{
		SessionTTL:   parseDuration(v.GetString("FORM_SESSION_TTL"), 30*time.Minute),
		CookieName:   v.GetString("FORM_COOKIE_NAME"),
		CookieSecure: v.GetBool("FORM_COOKIE_SECURE"),
		MaxSessions:  v.GetInt("FORM_MAX_SESSIONS"),
	}

	cfg.Redis = RedisConfig{
		Host:      v.GetString("REDIS_HOST"),
		Port:      v.GetInt("REDIS_PORT"),
		Password:  v.GetString("REDIS_PASSWORD"),
		DB:        v.GetInt("REDIS_DB"),
		KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
	}

	origins, err := parseOrigins(splitAndTrim(v.GetString("ALLOWED_ORIGINS")))
	if err != nil {
		return nil, err
	}
	cfg.CORS = CORSConfig{AllowedOrigins: origins}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

// DefaultAPIBaseURL is the local-development backend address.
const DefaultAPIBaseURL = "http://localhost:8080"

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)

	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "0s")

	v.SetDefault("ENABLE_EVENTS_CACHE", true)
	v.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	v.SetDefault("EVENTS_CACHE_TTL", "60s")
	v.SetDefault("EVENTS_REVALIDATE_TOKEN", "")

	v.SetDefault("FORM_SESSION_TTL", "30m")
	v.SetDefault("FORM_COOKIE_NAME", "thunder_form")
	v.SetDefault("FORM_COOKIE_SECURE", false)
	v.SetDefault("FORM_MAX_SESSIONS", 10000)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "thunder-site:")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// viper reports a missing explicit config file as a plain fs error rather than ConfigFileNotFoundError.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// parseOrigins requires every entry to be "*" or an http(s) scheme plus host.
func parseOrigins(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	origins := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry == "*" {
			origins = append(origins, entry)
			continue
		}
		u, err := url.Parse(entry)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid ALLOWED_ORIGINS entry %q: expected scheme and host, e.g. https://example.com", entry)
		}
		origins = append(origins, u.Scheme+"://"+u.Host)
	}

	return origins, nil
}
