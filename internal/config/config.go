package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig
	Gin      *GinConfig
	Backend  *BackendConfig
	Session  *SessionConfig
	Redis    *RedisConfig
	Geo      *GeoConfig
	Inflight *InflightConfig
}

type APIConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	AllowedCORSDomains []string
}

type GinConfig struct {
	Mode string
}

// BackendConfig points at the remote school API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
}

type SessionConfig struct {
	Secret     string
	Secure     bool
	MaxAgeDays int
}

func (c *SessionConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// RedisConfig is optional. An empty Addr keeps caches in process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GeoConfig struct {
	CacheTTL time.Duration
}

type InflightConfig struct {
	TTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.environment", "development")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.max_age_days", 30)
	v.SetDefault("redis.db", 0)
	v.SetDefault("geo.cache_ttl", 24*time.Hour)
	v.SetDefault("inflight.ttl", 30*time.Second)
}

// Load reads the yaml file at path. Every key can be overridden by an
// environment variable, e.g. BACKEND_BASE_URL for backend.base_url.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		// Settings are read once at startup; a change only takes effect after a restart.
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func fromViper(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{
		API: &APIConfig{
			Port:               v.GetString("api.port"),
			BaseURL:            v.GetString("api.base_url"),
			Environment:        v.GetString("api.environment"),
			AllowedCORSDomains: v.GetStringSlice("api.allowed_cors_domains"),
		},
		Gin: &GinConfig{
			Mode: v.GetString("gin.mode"),
		},
		Backend: &BackendConfig{
			BaseURL: v.GetString("backend.base_url"),
			Timeout: v.GetDuration("backend.timeout"),
			Headers: v.GetStringMapString("backend.headers"),
		},
		Session: &SessionConfig{
			Secret:     v.GetString("session.secret"),
			Secure:     v.GetBool("session.secure"),
			MaxAgeDays: v.GetInt("session.max_age_days"),
		},
		Redis: &RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Geo: &GeoConfig{
			CacheTTL: v.GetDuration("geo.cache_ttl"),
		},
		Inflight: &InflightConfig{
			TTL: v.GetDuration("inflight.ttl"),
		},
	}

	if conf.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}
	if conf.Session.Secret == "" {
		return nil, fmt.Errorf("session.secret is required")
	}

	return conf, nil
}
