package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Admin    AdminConfig    `yaml:"admin"`
	Practice PracticeConfig `yaml:"practice"`
	Import   ImportConfig   `yaml:"import"`
	Search   SearchConfig   `yaml:"search"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AdminConfig controls who may use the /admin endpoints.
//
// The boolean switches default to true, and cleanenv treats a false YAML
// value as unset; turn them off through ADMIN_PERSONAL_MODE and
// ADMIN_LOCALHOST_ONLY.
//
// In personal mode requests are trusted without a token, optionally only
// from loopback peers. A configured password hash enables /admin/login,
// which issues bearer tokens signed with JWTSecret.
type AdminConfig struct {
	PersonalMode    bool          `yaml:"personal_mode"      env:"ADMIN_PERSONAL_MODE"      env-default:"true"`
	LocalhostOnly   bool          `yaml:"localhost_only"     env:"ADMIN_LOCALHOST_ONLY"     env-default:"true"`
	PasswordHash    string        `yaml:"password_hash"      env:"ADMIN_PASSWORD_HASH"`
	JWTSecret       string        `yaml:"jwt_secret"         env:"ADMIN_JWT_SECRET"`
	JWTIssuer       string        `yaml:"jwt_issuer"         env:"ADMIN_JWT_ISSUER"         env-default:"norsk-drill"`
	TokenTTL        time.Duration `yaml:"token_ttl"          env:"ADMIN_TOKEN_TTL"          env-default:"12h"`
	LoginRatePerMin int           `yaml:"login_rate_per_min" env:"ADMIN_LOGIN_RATE_PER_MIN" env-default:"5"`
	LoginRateBurst  int           `yaml:"login_rate_burst"   env:"ADMIN_LOGIN_RATE_BURST"   env-default:"5"`
}

// LoginEnabled reports whether password login is configured.
func (c AdminConfig) LoginEnabled() bool {
	return c.PasswordHash != ""
}

// PracticeConfig holds practice-round limits.
type PracticeConfig struct {
	MaxExcludeIDs int `yaml:"max_exclude_ids" env:"PRACTICE_MAX_EXCLUDE_IDS" env-default:"5000"`
}

// ImportConfig holds bulk import limits.
type ImportConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"IMPORT_MAX_UPLOAD_BYTES" env-default:"5242880"`
	MaxLines       int   `yaml:"max_lines"        env:"IMPORT_MAX_LINES"        env-default:"10000"`
}

// SearchConfig holds search limits.
type SearchConfig struct {
	MaxResultsPerKind int `yaml:"max_results_per_kind" env:"SEARCH_MAX_RESULTS_PER_KIND" env-default:"50"`
}
