package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	SMTP     SMTPConfig
	Supabase SupabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"NODE_ENV" default:"production"`
}

// SMTPConfig holds outbound mail configuration. User and Pass are
// optional: without them submissions are logged instead of mailed.
type SMTPConfig struct {
	Host string `envconfig:"SMTP_HOST" default:"smtp-mail.outlook.com"`
	Port int    `envconfig:"SMTP_PORT" default:"587"`
	User string `envconfig:"SMTP_USER"`
	Pass string `envconfig:"SMTP_PASS"`
	To   string `envconfig:"EMAIL_TO" default:"support@bitemap.fun"`
}

// SupabaseConfig holds data service credentials. AnonKey grants read
// access for the preview handler; ServiceKey is the elevated key used
// only by the backfill job and the subscriber insert.
type SupabaseConfig struct {
	URL        string `envconfig:"SUPABASE_URL" default:"https://lqslpgiibpcvknfehdlr.supabase.co"`
	AnonKey    string `envconfig:"SUPABASE_ANON_KEY"`
	ServiceKey string `envconfig:"SUPABASE_SERVICE_KEY"`
}

// Configured reports whether outbound mail credentials are present.
func (c *SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

// RestURL returns the PostgREST endpoint for the project.
func (c *SupabaseConfig) RestURL() string {
	return strings.TrimRight(c.URL, "/") + "/rest/v1"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	if err := envconfig.Process("", &cfg.SMTP); err != nil {
		return nil, fmt.Errorf("failed to load smtp config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Supabase); err != nil {
		return nil, fmt.Errorf("failed to load supabase config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535")
	}
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	return nil
}

// Development reports whether the server runs in development mode.
// Error details are only echoed back to callers in development.
func (c *ServerConfig) Development() bool {
	return c.Environment == "development"
}
