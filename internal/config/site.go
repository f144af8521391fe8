package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds content-independent site settings loaded from a YAML file.
// Route-class prefixes live here so access rules stay configuration data,
// adjustable without touching the gate's logic.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	OwnerURL string `yaml:"owner_url"`

	Routes RouteConfig `yaml:"routes"`
}

// RouteConfig lists the path prefixes the route access gate classifies on.
type RouteConfig struct {
	// AdminPrefixes mark admin-protected pages (redirect to login without a session).
	AdminPrefixes []string `yaml:"admin_prefixes"`
	// AuthPrefixes mark auth-only pages (redirect away when already logged in).
	AuthPrefixes []string `yaml:"auth_prefixes"`
	// ExcludedPrefixes are never gated: static assets, API routes, and
	// logout, which must stay reachable for signed-in visitors.
	ExcludedPrefixes []string `yaml:"excluded_prefixes"`
}

// DefaultSiteConfig returns the built-in site settings.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:   "Folio",
		Tagline: "Personal portfolio",
		Routes: RouteConfig{
			AdminPrefixes:    []string{"/admin"},
			AuthPrefixes:     []string{"/auth"},
			ExcludedPrefixes: []string{"/api", "/static", "/logout"},
		},
	}
}

// LoadSiteConfig reads a YAML site config, filling unset fields from defaults.
// An empty path returns the defaults unchanged.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := DefaultSiteConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read site config %s: %w", path, err)
	}

	var loaded SiteConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parse site config %s: %w", path, err)
	}

	if loaded.Title != "" {
		cfg.Title = loaded.Title
	}
	if loaded.Tagline != "" {
		cfg.Tagline = loaded.Tagline
	}
	if loaded.OwnerURL != "" {
		cfg.OwnerURL = loaded.OwnerURL
	}
	if len(loaded.Routes.AdminPrefixes) > 0 {
		cfg.Routes.AdminPrefixes = loaded.Routes.AdminPrefixes
	}
	if len(loaded.Routes.AuthPrefixes) > 0 {
		cfg.Routes.AuthPrefixes = loaded.Routes.AuthPrefixes
	}
	if len(loaded.Routes.ExcludedPrefixes) > 0 {
		cfg.Routes.ExcludedPrefixes = loaded.Routes.ExcludedPrefixes
	}

	return cfg, nil
}
