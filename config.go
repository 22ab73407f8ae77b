package blogsite

import "time"

// SiteConfig holds the server settings for a blogsite deployment. The
// displayed content lives in Configuration.
type SiteConfig struct {
	Name   string // Site name (default "Blog")
	URL    string // Canonical URL (default "http://localhost:3000")
	Author string // Author name for JSON-LD
	Addr   string // Listen address (default ":3000")

	ShutdownTimeout time.Duration // Graceful shutdown limit (default 10s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// AppOption configures additional App behavior.
type AppOption func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) AppOption {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) AppOption {
	return func(a *App) {
		a.staticDir = dir
	}
}
