// Package site parses portfolio site flags and launches the service.
package site

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/mvaleri/atrium/internal/content"
	entrypoint "github.com/mvaleri/atrium/internal/platform/cmd"
	server "github.com/mvaleri/atrium/internal/services/site"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string `env:"ATRIUM_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentPath         string `env:"ATRIUM_SITE_CONTENT_PATH"`
	DBPath              string `env:"ATRIUM_SITE_DB_PATH"`
	WatchContent        bool   `env:"ATRIUM_SITE_WATCH_CONTENT"`
	AssetBaseURL        string `env:"ATRIUM_SITE_ASSET_BASE_URL"`
	TrustForwardedProto bool   `env:"ATRIUM_SITE_TRUST_FORWARDED_PROTO"`

	// CheckContent validates the content file and exits instead of serving.
	CheckContent bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "Portfolio content file (embedded document when empty)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite preference database path (in-memory cookies only when empty)")
	fs.BoolVar(&cfg.WatchContent, "watch-content", cfg.WatchContent, "Reload the content file when it changes")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for static assets served elsewhere")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	fs.BoolVar(&cfg.CheckContent, "check", cfg.CheckContent, "Validate the content file and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio site HTTP service.
func Run(ctx context.Context, cfg Config) error {
	if cfg.CheckContent {
		return checkContent(cfg.ContentPath)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(context.Context) error {
		srv, err := server.NewServer(server.Config{
			HTTPAddr:            cfg.HTTPAddr,
			ContentPath:         cfg.ContentPath,
			DBPath:              cfg.DBPath,
			WatchContent:        cfg.WatchContent,
			AssetBaseURL:        cfg.AssetBaseURL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

func checkContent(path string) error {
	if path == "" {
		return errors.New("content path is required for -check")
	}
	doc, err := content.Load(path)
	if err != nil {
		return fmt.Errorf("check content: %w", err)
	}
	log.Printf("content OK: %s (%d entries, %d skills)", path, len(doc.Entries()), len(doc.Skills))
	return nil
}
