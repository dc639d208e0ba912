// Package font resolves the Google Fonts enabled for a site or journal and
// builds the @font-face CSS that is injected into rendered pages.
//
// Font metadata and per-font embed rules are static JSON files bundled with
// the plugin. The only mutable state, the list of enabled font ids, lives in a
// SelectionStore owned by the host.
package font

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeblew999/plat-googlefonts/pkg/log"
	"github.com/zeromicro/go-zero/core/collection"
)

// ErrReadOnlyStore is returned by SaveEnabledFonts when the store cannot be written.
var ErrReadOnlyStore = errors.New("selection store is read-only")

// SelectionStore returns the ordered font ids enabled for a context.
// An unset selection is reported as an empty slice and a nil error.
type SelectionStore interface {
	EnabledFonts(ctx context.Context, contextID int64) ([]string, error)
}

// SelectionWriter persists the ordered font ids enabled for a context.
type SelectionWriter interface {
	SaveEnabledFonts(ctx context.Context, contextID int64, ids []string) error
}

// Plugin is the entry point used by presentation adapters: it lists the
// catalog, resolves the enabled fonts of a context and builds their CSS.
type Plugin struct {
	assets  fs.FS
	store   SelectionStore
	options *Options
	cache   *collection.Cache
}

// Options configures a Plugin.
type Options struct {
	BaseURL     string        // Prefix of public asset URLs, e.g. "https://example.org"
	CatalogPath string        // Bundle-relative catalog path
	CacheTTL    time.Duration // Lifetime of cached CSS; zero disables the cache
}

// Option configures a Plugin.
type Option func(*Options)

// WithBaseURL sets the URL prefix of public font files.
func WithBaseURL(url string) Option {
	return func(opts *Options) {
		opts.BaseURL = url
	}
}

// WithCatalogPath overrides the bundle-relative catalog path.
func WithCatalogPath(path string) Option {
	return func(opts *Options) {
		opts.CatalogPath = path
	}
}

// WithCache enables a read-through cache of built CSS. Entries are keyed by
// context, enabled ids, base path and the catalog's modification time and
// size. Embed files are not part of the key: a re-fetched or deleted
// embed.json is only noticed once its entry expires after ttl, or when the
// catalog changes.
func WithCache(ttl time.Duration) Option {
	return func(opts *Options) {
		opts.CacheTTL = ttl
	}
}

// NewPlugin creates a Plugin reading bundle files from assets and enabled
// font ids from store.
func NewPlugin(assets fs.FS, store SelectionStore, opts ...Option) (*Plugin, error) {
	options := &Options{
		CatalogPath: CatalogFile,
	}
	for _, opt := range opts {
		opt(options)
	}

	p := &Plugin{
		assets:  assets,
		store:   store,
		options: options,
	}

	if options.CacheTTL > 0 {
		c, err := collection.NewCache(options.CacheTTL, collection.WithName("googlefonts-css"))
		if err != nil {
			return nil, fmt.Errorf("create css cache: %w", err)
		}
		p.cache = c
	}

	return p, nil
}

// ListFonts returns every font in the catalog.
func (p *Plugin) ListFonts() ([]CatalogEntry, error) {
	return LoadCatalog(p.assets, p.options.CatalogPath)
}

// ResolveEnabledFonts returns the catalog entries enabled for contextID in
// the order they were selected. Store and catalog failures degrade to an
// empty result.
func (p *Plugin) ResolveEnabledFonts(ctx context.Context, contextID int64) []CatalogEntry {
	return p.resolve(p.enabledIDs(ctx, contextID))
}

// BuildFontFaceCSS returns the @font-face CSS for the fonts enabled in
// contextID. An embed file failure for any enabled font is returned as an
// error; callers rendering public pages should treat it as "no font CSS".
func (p *Plugin) BuildFontFaceCSS(ctx context.Context, contextID int64) (string, error) {
	start := time.Now()

	ids := p.enabledIDs(ctx, contextID)
	if len(ids) == 0 {
		return "", nil
	}

	basePath := p.PublicAssetBasePath(contextID)
	key := p.cacheKey(contextID, ids, basePath)
	label := contextScope(contextID)
	if key != "" {
		if v, ok := p.cache.Get(key); ok {
			cssCacheHits.Inc(label)
			cssBuildDuration.ObserveFloat(time.Since(start).Seconds(), "true")
			return v.(string), nil
		}
		cssCacheMisses.Inc(label)
	}

	css, err := BuildCSS(p.assets, p.resolve(ids), basePath)
	if err != nil {
		cssBuilds.Inc(failureLabel(err))
		return "", err
	}

	if key != "" {
		p.cache.Set(key, css)
	}
	cssBuilds.Inc("ok")
	cssBuildDuration.ObserveFloat(time.Since(start).Seconds(), "false")
	return css, nil
}

// SaveEnabledFonts replaces the enabled fonts of contextID. Every id must
// exist in the catalog.
func (p *Plugin) SaveEnabledFonts(ctx context.Context, contextID int64, ids []string) error {
	w, ok := p.store.(SelectionWriter)
	if !ok {
		return ErrReadOnlyStore
	}

	catalog, err := p.ListFonts()
	if err != nil {
		return err
	}
	if unknown := Unknown(ids, catalog); len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFont, strings.Join(unknown, ", "))
	}

	ordered := make([]string, 0, len(ids))
	for _, e := range Resolve(ids, catalog) {
		ordered = append(ordered, e.ID)
	}
	if err := w.SaveEnabledFonts(ctx, contextID, ordered); err != nil {
		return fmt.Errorf("save enabled fonts: %w", err)
	}

	log.Info("Enabled fonts saved", "context", contextID, "fonts", ordered)
	return nil
}

// PublicAssetBasePath returns the URL prefix that replaces ./fonts in embed
// rules: <base url>/<context files path>/google-fonts.
func (p *Plugin) PublicAssetBasePath(contextID int64) string {
	return strings.Join([]string{
		strings.TrimRight(p.options.BaseURL, "/"),
		ContextFilesPath(contextID),
		PublicFileDir,
	}, "/")
}

func (p *Plugin) enabledIDs(ctx context.Context, contextID int64) []string {
	if p.store == nil {
		return nil
	}
	ids, err := p.store.EnabledFonts(ctx, contextID)
	if err != nil {
		log.Warn("Failed to read enabled fonts", "context", contextID, "error", err)
		return nil
	}
	return ids
}

func (p *Plugin) resolve(ids []string) []CatalogEntry {
	if len(ids) == 0 {
		return []CatalogEntry{}
	}
	catalog, err := p.ListFonts()
	if err != nil {
		log.Error("Failed to load font catalog", "path", p.options.CatalogPath, "error", err)
		return []CatalogEntry{}
	}
	return Resolve(ids, catalog)
}

// cacheKey returns "" when caching is disabled or the catalog version is unknown.
func (p *Plugin) cacheKey(contextID int64, ids []string, basePath string) string {
	if p.cache == nil {
		return ""
	}
	version, err := CatalogVersion(p.assets, p.options.CatalogPath)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d|%s|%s|%s", contextID, version, strings.Join(ids, ","), basePath)
}
