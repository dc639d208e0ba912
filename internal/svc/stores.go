package svc

import (
	"fmt"
	"os"
	"time"

	"github.com/joeblew999/plat-googlefonts/internal/config"
	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/joeblew999/plat-googlefonts/pkg/fetch"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// NewSelectionStore builds the settings store named by c.Settings.Driver.
// conn is only used by the sqlite driver.
func NewSelectionStore(c config.Config, conn sqlx.SqlConn) (settings.Store, error) {
	switch c.Settings.Driver {
	case config.DriverSQLite, "":
		if conn == nil {
			return nil, fmt.Errorf("sqlite settings driver requires a database")
		}
		return model.NewSelectionStore(model.NewPluginSettingsModel(conn)), nil
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
		return settings.NewRedisStore(client, c.Redis.Prefix), nil
	case config.DriverFile:
		return settings.NewFileStore(c.Settings.FilePath), nil
	case config.DriverMemory:
		return settings.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown settings driver %q", c.Settings.Driver)
	}
}

// NewPlugin creates the font plugin reading the bundle at c.Fonts.BundleDir.
func NewPlugin(c config.Config, store font.SelectionStore) (*font.Plugin, error) {
	ttl, err := parseDuration(c.Fonts.CacheTTL, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid Fonts.CacheTTL: %w", err)
	}
	return font.NewPlugin(os.DirFS(c.Fonts.BundleDir), store,
		font.WithBaseURL(c.Fonts.BaseURL),
		font.WithCache(ttl),
	)
}

// FetchConfig converts the fetch settings for the fetch engine. Font files
// are downloaded into the site's public font directory below Fonts.PublicRoot.
func FetchConfig(c config.Config) (fetch.Config, error) {
	cfg := fetch.DefaultConfig()
	cfg.BundleDir = c.Fonts.BundleDir
	cfg.PublicDir = font.PublicFontDir(c.Fonts.PublicRoot, font.ContextIDNone)
	if c.Fetch.MaxRetries > 0 {
		cfg.MaxRetries = c.Fetch.MaxRetries
	}
	if c.Fetch.RateLimit > 0 {
		cfg.RateLimit = c.Fetch.RateLimit
	}

	var err error
	if cfg.RetryBackoff, err = parseDuration(c.Fetch.RetryBackoff, cfg.RetryBackoff); err != nil {
		return fetch.Config{}, fmt.Errorf("invalid Fetch.RetryBackoff: %w", err)
	}
	if cfg.MaxBackoff, err = parseDuration(c.Fetch.MaxBackoff, cfg.MaxBackoff); err != nil {
		return fetch.Config{}, fmt.Errorf("invalid Fetch.MaxBackoff: %w", err)
	}
	return cfg, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def, err
	}
	return d, nil
}
