package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in 0..max_conns (got %d)", c.Database.MinConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	if c.Practice.MaxExcludeIDs < 0 {
		return fmt.Errorf("practice.max_exclude_ids must be >= 0 (got %d)", c.Practice.MaxExcludeIDs)
	}
	if c.Import.MaxUploadBytes <= 0 {
		return fmt.Errorf("import.max_upload_bytes must be > 0 (got %d)", c.Import.MaxUploadBytes)
	}
	if c.Import.MaxLines <= 0 {
		return fmt.Errorf("import.max_lines must be > 0 (got %d)", c.Import.MaxLines)
	}
	if c.Search.MaxResultsPerKind <= 0 {
		return fmt.Errorf("search.max_results_per_kind must be > 0 (got %d)", c.Search.MaxResultsPerKind)
	}

	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (a AdminConfig) validate() error {
	if !a.PersonalMode && !a.LoginEnabled() {
		return fmt.Errorf("personal_mode is off and no password_hash is set: admin would be unreachable")
	}

	if !a.LoginEnabled() {
		return nil
	}

	if _, err := bcrypt.Cost([]byte(a.PasswordHash)); err != nil {
		return fmt.Errorf("password_hash is not a bcrypt hash: %w", err)
	}
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0 (got %v)", a.TokenTTL)
	}
	if a.LoginRatePerMin <= 0 || a.LoginRateBurst <= 0 {
		return fmt.Errorf("login rate limit must be > 0 (got %d/min, burst %d)", a.LoginRatePerMin, a.LoginRateBurst)
	}
	return nil
}
