// Package blogsite holds the content configuration of a personal blog
// (social links, navbar links and tagline) and serves it with Echo.
//
// The configuration compiled into the binary is returned by Default. It is
// built once at startup and shared read-only; LoadFile builds an
// alternative from YAML.
package blogsite

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// App serves a Configuration over HTTP: the home page at / and the raw
// value at /api/config/.
type App struct {
	Config SiteConfig
	Site   Configuration
	Echo   *echo.Echo

	logger       *zap.Logger
	etag         string
	customRoutes []func(*App)
	staticDir    string
}

// NewApp creates an App serving site with the given server settings.
func NewApp(cfg SiteConfig, site Configuration, logger *zap.Logger, opts ...AppOption) *App {
	cfg.setDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Site:      site,
		Echo:      e,
		logger:    logger,
		etag:      configETag(site),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	return a
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info("starting server",
		zap.String("addr", a.Config.Addr),
		zap.String("site_url", a.Config.URL),
		zap.Int("social_links", len(a.Site.socialLinks)),
		zap.Int("navbar_links", len(a.Site.navbarLinks)),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("blogsite: start server: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting at most Config.ShutdownTimeout for
// in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("blogsite: shutdown: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)
	e.GET("/api/config/", a.handleConfig)
	e.GET("/", a.handleHome)
}
