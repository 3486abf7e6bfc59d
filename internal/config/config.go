package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	Enrich   EnrichConfig
}

type AppConfig struct {
	Name        string
	Environment string
	HTTPPort    string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type EnrichConfig struct {
	Workers     int
	RateLimit   int
	UseHeadless bool
}

var errMissingRequiredKeys = errors.New("missing required configuration keys")

// Load reads configuration from the environment, with an optional .env file
// for local development. Gemini settings are optional: without an API key the
// scoring oracle stays disabled and matching runs rule-based only.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "venturehive")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "8080")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.connect.timeout", "5s")
	v.SetDefault("db.pool.max.conns", 8)
	v.SetDefault("db.pool.min.conns", 0)
	v.SetDefault("db.pool.max.conn.lifetime", "30m")
	v.SetDefault("db.pool.max.conn.idle.time", "5m")
	v.SetDefault("db.pool.health.check.period", "1m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.ttl", "10m")

	v.SetDefault("jwt.access.expires.in", "15m")
	v.SetDefault("jwt.refresh.expires.in", "168h")

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "5s")

	v.SetDefault("enrich.workers", 4)
	v.SetDefault("enrich.rate.limit", 2)
	v.SetDefault("enrich.use.headless", false)

	cfg := Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			HTTPPort:    v.GetString("http.port"),
			LogJSON:     v.GetBool("log.json"),
			LogDebug:    v.GetBool("log.debug"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			Name:     v.GetString("db.name"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			SSLMode:  v.GetString("db.sslmode"),

			ConnectTimeout:        v.GetDuration("db.connect.timeout"),
			PoolMaxConns:          v.GetInt32("db.pool.max.conns"),
			PoolMinConns:          v.GetInt32("db.pool.min.conns"),
			PoolMaxConnLifetime:   v.GetDuration("db.pool.max.conn.lifetime"),
			PoolMaxConnIdleTime:   v.GetDuration("db.pool.max.conn.idle.time"),
			PoolHealthCheckPeriod: v.GetDuration("db.pool.health.check.period"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		JWT: JWTConfig{
			AccessSecret:     v.GetString("jwt.access.secret"),
			RefreshSecret:    v.GetString("jwt.refresh.secret"),
			AccessExpiresIn:  v.GetDuration("jwt.access.expires.in"),
			RefreshExpiresIn: v.GetDuration("jwt.refresh.expires.in"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("gemini.api.key"),
			Model:   v.GetString("gemini.model"),
			Timeout: v.GetDuration("gemini.timeout"),
		},
		Enrich: EnrichConfig{
			Workers:     v.GetInt("enrich.workers"),
			RateLimit:   v.GetInt("enrich.rate.limit"),
			UseHeadless: v.GetBool("enrich.use.headless"),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	var missing []string
	req := func(key, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, key)
		}
	}

	req("DB_HOST", cfg.Database.Host)
	req("DB_PORT", cfg.Database.Port)
	req("DB_NAME", cfg.Database.Name)
	req("DB_USER", cfg.Database.User)
	req("JWT_ACCESS_SECRET", cfg.JWT.AccessSecret)
	req("JWT_REFRESH_SECRET", cfg.JWT.RefreshSecret)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredKeys, strings.Join(missing, ", "))
	}
	return nil
}

// OracleEnabled reports whether the Gemini scoring oracle can be wired in.
func (c Config) OracleEnabled() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}
