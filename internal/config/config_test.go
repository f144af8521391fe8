package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServerConfig_Validate(t *testing.T) {
	cfg := DefaultServerConfig()
	if err := cfg.Validate(); err != ErrMissingSessionSecret {
		t.Errorf("Validate() = %v, want ErrMissingSessionSecret", err)
	}

	cfg.SessionSecret = "test-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with secret = %v, want nil", err)
	}
}

func TestServerConfig_FromEnv(t *testing.T) {
	t.Setenv("FOLIO_ADDR", ":9090")
	t.Setenv("FOLIO_SESSION_SECRET", "env-secret")
	t.Setenv("FOLIO_ENV", "production")
	t.Setenv("FOLIO_STATIC_DIR", "/srv/folio/static")

	cfg := DefaultServerConfig()
	cfg.FromEnv()

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.StaticDir != "/srv/folio/static" {
		t.Errorf("StaticDir = %q, want /srv/folio/static", cfg.StaticDir)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Errorf("SessionSecret = %q, want env-secret", cfg.SessionSecret)
	}
	if !cfg.Production() {
		t.Error("expected Production() to be true")
	}
}

func TestServerConfig_FromEnv_EmptyKeepsDefaults(t *testing.T) {
	os.Unsetenv("FOLIO_ADDR")
	cfg := DefaultServerConfig()
	cfg.FromEnv()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
}

func TestLoadSiteConfig_Defaults(t *testing.T) {
	cfg, err := LoadSiteConfig("")
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}
	if len(cfg.Routes.AdminPrefixes) != 1 || cfg.Routes.AdminPrefixes[0] != "/admin" {
		t.Errorf("AdminPrefixes = %v, want [/admin]", cfg.Routes.AdminPrefixes)
	}
	if len(cfg.Routes.ExcludedPrefixes) != 3 {
		t.Errorf("ExcludedPrefixes = %v, want [/api /static /logout]", cfg.Routes.ExcludedPrefixes)
	}
}

func TestLoadSiteConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `
title: Jane Dev
tagline: Building things
routes:
  admin_prefixes: ["/backoffice"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadSiteConfig(path)
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}
	if cfg.Title != "Jane Dev" {
		t.Errorf("Title = %q, want 'Jane Dev'", cfg.Title)
	}
	if len(cfg.Routes.AdminPrefixes) != 1 || cfg.Routes.AdminPrefixes[0] != "/backoffice" {
		t.Errorf("AdminPrefixes = %v, want [/backoffice]", cfg.Routes.AdminPrefixes)
	}
	// Unset sections keep defaults.
	if len(cfg.Routes.AuthPrefixes) != 1 || cfg.Routes.AuthPrefixes[0] != "/auth" {
		t.Errorf("AuthPrefixes = %v, want [/auth]", cfg.Routes.AuthPrefixes)
	}
}

func TestLoadSiteConfig_MissingFile(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
