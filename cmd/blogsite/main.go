package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rishabkumar7/blogsite"
	"github.com/rishabkumar7/blogsite/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("blogsite", "Personal blog site: navbar, social links and tagline")
	app.UsageWriter(stdout)
	app.Version(version)

	serve := app.Command("serve", "Start the HTTP server")
	serveConfig := serve.Flag("config", "Path to YAML site configuration (defaults to the built-in one)").String()
	addr := serve.Flag("addr", "Listen address").Envar("ADDR").String()
	siteURL := serve.Flag("site-url", "Canonical site URL").Envar("SITE_URL").String()
	siteName := serve.Flag("site-name", "Site name").Envar("SITE_NAME").String()
	siteAuthor := serve.Flag("site-author", "Author name for JSON-LD").Envar("SITE_AUTHOR").String()
	staticDir := serve.Flag("static-dir", "Directory served under /public").Default("public").String()
	logLevel := serve.Flag("log-level", "Log level").Envar("LOG_LEVEL").Default("info").Enum("debug", "info", "warn", "error")

	show := app.Command("show", "Print the site configuration")
	showConfig := show.Flag("config", "Path to YAML site configuration (defaults to the built-in one)").String()
	format := show.Flag("format", "Output format").Short('f').Default("yaml").Enum("yaml", "json")

	validate := app.Command("validate", "Check a YAML site configuration")
	validateConfig := validate.Arg("file", "Path to YAML site configuration").Required().String()

	cmd, err := app.Parse(args)
	if err != nil {
		return err
	}

	switch cmd {
	case serve.FullCommand():
		site, err := loadSite(*serveConfig)
		if err != nil {
			return err
		}
		logger, err := logging.New(*logLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cfg := blogsite.SiteConfig{
			Name:   *siteName,
			URL:    *siteURL,
			Author: *siteAuthor,
			Addr:   *addr,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serveSite(ctx, blogsite.NewApp(cfg, site, logger, blogsite.WithStaticDir(*staticDir)), logger)

	case show.FullCommand():
		site, err := loadSite(*showConfig)
		if err != nil {
			return err
		}
		return printSite(stdout, site, *format)

	case validate.FullCommand():
		site, err := blogsite.LoadFile(*validateConfig)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: ok (%d social links, %d navbar links)\n",
			*validateConfig, len(site.SocialLinks()), len(site.NavbarLinks()))
		return nil
	}
	return nil
}

// loadSite picks the file or the built-in configuration, then applies
// SITE_DESCRIPTION on top.
func loadSite(path string) (blogsite.Configuration, error) {
	site := blogsite.Default()
	if path != "" {
		var err error
		if site, err = blogsite.LoadFile(path); err != nil {
			return blogsite.Configuration{}, err
		}
	}
	if desc := blogsite.EnvOr("SITE_DESCRIPTION", ""); desc != "" {
		site = site.WithBlogDescription(desc)
	}
	return site, nil
}

func printSite(w io.Writer, site blogsite.Configuration, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(site)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(site); err != nil {
			return err
		}
		return enc.Close()
	}
}

// serveSite runs app until ctx is done, then shuts it down gracefully.
func serveSite(ctx context.Context, app *blogsite.App, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
	}
	if err := app.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
