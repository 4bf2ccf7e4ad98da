package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Practice  PracticeConfig  `yaml:"practice"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the settings used to verify bearer tokens minted by the
// identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"artikel"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PracticeConfig bounds and defaults for practice sessions.
type PracticeConfig struct {
	DefaultQuestionCount      int `yaml:"default_question_count"       env:"PRACTICE_DEFAULT_QUESTION_COUNT"       env-default:"10"`
	DefaultSecondsPerQuestion int `yaml:"default_seconds_per_question" env:"PRACTICE_DEFAULT_SECONDS_PER_QUESTION" env-default:"5"`
	MaxQuestionCount          int `yaml:"max_question_count"           env:"PRACTICE_MAX_QUESTION_COUNT"           env-default:"50"`
	MaxSecondsPerQuestion     int `yaml:"max_seconds_per_question"     env:"PRACTICE_MAX_SECONDS_PER_QUESTION"     env-default:"60"`
}

// DashboardConfig holds dashboard aggregation settings.
type DashboardConfig struct {
	DefaultTimezone string `yaml:"default_timezone" env:"DASHBOARD_DEFAULT_TIMEZONE" env-default:"UTC"`
	TrendDays       int    `yaml:"trend_days"       env:"DASHBOARD_TREND_DAYS"       env-default:"30"`
	HeatmapMonths   int    `yaml:"heatmap_months"   env:"DASHBOARD_HEATMAP_MONTHS"   env-default:"3"`
	RecentSessions  int    `yaml:"recent_sessions"  env:"DASHBOARD_RECENT_SESSIONS"  env-default:"5"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"60"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"            env-default:"10m"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}
