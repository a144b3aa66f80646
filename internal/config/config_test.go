package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.SMTP.Host != "smtp-mail.outlook.com" {
		t.Errorf("default smtp host = %q", cfg.SMTP.Host)
	}
	if cfg.SMTP.To != "support@bitemap.fun" {
		t.Errorf("default EMAIL_TO = %q", cfg.SMTP.To)
	}
	if cfg.SMTP.Configured() {
		t.Error("SMTP should not be configured without credentials")
	}
	if cfg.Server.Development() {
		t.Error("default environment should not be development")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_USER", "mailer@bitemap.fun")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.SMTP.Configured() {
		t.Error("SMTP should be configured")
	}
	if !cfg.Server.Development() {
		t.Error("NODE_ENV=development should enable development mode")
	}
	if got := cfg.Supabase.RestURL(); got != "https://example.supabase.co/rest/v1" {
		t.Errorf("RestURL() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"bad smtp port", func(c *Config) { c.SMTP.Port = 70000 }, true},
		{"missing supabase url", func(c *Config) { c.Supabase.URL = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
