package font

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joeblew999/plat-googlefonts/pkg/log"
)

var (
	// subsetBlockRe matches a "/* subset */" comment followed by its @font-face block.
	subsetBlockRe = regexp.MustCompile(`/\*\s*([\w\[\]-]+)\s*\*/\s*(@font-face\s*\{[^}]*\})`)

	// fontURLRe matches absolute font file URLs, normally on fonts.gstatic.com.
	fontURLRe = regexp.MustCompile(`url\((https?://[^)]+)\)`)
)

// GoogleClient fetches catalog metadata and font files from Google Fonts so
// they can be bundled with the plugin.
type GoogleClient struct {
	http        *http.Client
	apiKey      string
	webfontsURL string
	cssURL      string
}

// GoogleOption configures a GoogleClient.
type GoogleOption func(*GoogleClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *GoogleClient) {
		g.http = c
	}
}

// WithEndpoints overrides the Developer API and CSS API URLs.
func WithEndpoints(webfontsURL, cssURL string) GoogleOption {
	return func(g *GoogleClient) {
		g.webfontsURL = webfontsURL
		g.cssURL = cssURL
	}
}

// NewGoogleClient creates a client. apiKey is required by FetchCatalog only.
func NewGoogleClient(apiKey string, opts ...GoogleOption) *GoogleClient {
	g := &GoogleClient{
		http:        &http.Client{Timeout: 30 * time.Second},
		apiKey:      apiKey,
		webfontsURL: GoogleWebfontsAPI,
		cssURL:      GoogleFontsAPI,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// webfontsResponse is the Google Fonts Developer API response.
type webfontsResponse struct {
	Items []webfontsItem `json:"items"`
}

type webfontsItem struct {
	Family       string   `json:"family"`
	Category     string   `json:"category"`
	Subsets      []string `json:"subsets"`
	Variants     []string `json:"variants"`
	Version      string   `json:"version"`
	LastModified Date     `json:"lastModified"`
}

// FetchCatalog lists every family known to Google Fonts as catalog entries.
func (g *GoogleClient) FetchCatalog(ctx context.Context) ([]CatalogEntry, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google fonts api key is required")
	}

	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("sort", "popularity")

	body, err := g.get(ctx, g.webfontsURL+"?"+q.Encode(), "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google Fonts list: %w", err)
	}

	var resp webfontsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse Google Fonts response: %w", err)
	}

	entries := make([]CatalogEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		entries = append(entries, CatalogEntry{
			ID:           FontID(item.Family),
			Family:       item.Family,
			Category:     item.Category,
			Subsets:      item.Subsets,
			Variants:     item.Variants,
			Version:      item.Version,
			LastModified: item.LastModified,
		})
	}
	return entries, nil
}

// FetchFont downloads every file of entry into publicDir/<id>/ and writes
// the embed rules to bundleDir/fonts/<id>/embed.json. The rules reference
// the files through the ./fonts placeholder.
func (g *GoogleClient) FetchFont(ctx context.Context, entry CatalogEntry, bundleDir, publicDir string) ([]EmbedRule, error) {
	cssURL := buildGoogleFontsURL(g.cssURL, entry)
	css, err := g.get(ctx, cssURL, ModernUserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetch css for %s: %w", entry.ID, err)
	}

	fontDir := filepath.Join(publicDir, entry.ID)
	if err := os.MkdirAll(fontDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create font directory: %w", err)
	}

	rules, err := g.extractEmbedRules(ctx, string(css), entry.ID, fontDir)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no @font-face rules found for %s", entry.ID)
	}

	if err := WriteEmbedRules(bundleDir, entry.ID, rules); err != nil {
		return nil, err
	}

	log.Info("Font fetched", "font", entry.ID, "rules", len(rules), "dir", fontDir)
	return rules, nil
}

// extractEmbedRules splits the CSS API response into per-subset rules,
// downloading each referenced file and rewriting its URL to the placeholder.
func (g *GoogleClient) extractEmbedRules(ctx context.Context, css, id, fontDir string) ([]EmbedRule, error) {
	var rules []EmbedRule
	for _, m := range subsetBlockRe.FindAllStringSubmatch(css, -1) {
		subset, block := m[1], m[2]

		var dlErr error
		rewritten := fontURLRe.ReplaceAllStringFunc(block, func(match string) string {
			src := fontURLRe.FindStringSubmatch(match)[1]
			name := path.Base(src)
			if dlErr == nil {
				dlErr = g.downloadFontFile(ctx, src, filepath.Join(fontDir, name))
			}
			return fmt.Sprintf("url(%s/%s/%s)", PlaceholderPrefix, id, name)
		})
		if dlErr != nil {
			return nil, dlErr
		}

		rules = append(rules, EmbedRule{Subset: subset, Font: rewritten})
	}
	return rules, nil
}

// downloadFontFile downloads a font file unless it is already present.
func (g *GoogleClient) downloadFontFile(ctx context.Context, src, dst string) error {
	if info, err := os.Stat(dst); err == nil && info.Size() > 0 {
		return nil
	}

	data, err := g.get(ctx, src, ModernUserAgent)
	if err != nil {
		return fmt.Errorf("failed to download font: %w", err)
	}
	return os.WriteFile(dst, data, 0644)
}

func (g *GoogleClient) get(ctx context.Context, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// StatusError reports a non-200 response from Google Fonts.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Permanent reports whether retrying the request cannot help.
func (e *StatusError) Permanent() bool {
	return e.Code >= 400 && e.Code < 500 && e.Code != http.StatusTooManyRequests
}

// variantAxis is one ital,wght tuple of the CSS2 API.
type variantAxis struct {
	italic int
	weight int
}

// parseVariant converts a catalog variant ("regular", "italic", "700",
// "700italic") to its CSS2 axis tuple.
func parseVariant(v string) (variantAxis, bool) {
	switch v {
	case "regular":
		return variantAxis{0, 400}, true
	case "italic":
		return variantAxis{1, 400}, true
	}
	italic := 0
	if strings.HasSuffix(v, "italic") {
		italic = 1
		v = strings.TrimSuffix(v, "italic")
	}
	w, err := strconv.Atoi(v)
	if err != nil || w < 1 || w > 1000 {
		return variantAxis{}, false
	}
	return variantAxis{italic, w}, true
}

// buildGoogleFontsURL creates the CSS2 URL requesting every variant of entry.
// Example: https://fonts.googleapis.com/css2?family=Open+Sans:ital,wght@0,400;1,700&display=swap
func buildGoogleFontsURL(base string, entry CatalogEntry) string {
	var axes []variantAxis
	for _, v := range entry.Variants {
		if a, ok := parseVariant(v); ok {
			axes = append(axes, a)
		}
	}
	sort.Slice(axes, func(i, j int) bool {
		if axes[i].italic != axes[j].italic {
			return axes[i].italic < axes[j].italic
		}
		return axes[i].weight < axes[j].weight
	})

	family := strings.ReplaceAll(entry.Family, " ", "+")
	if len(axes) == 0 {
		return fmt.Sprintf("%s?family=%s&display=swap", base, family)
	}

	tuples := make([]string, 0, len(axes))
	for _, a := range axes {
		tuples = append(tuples, fmt.Sprintf("%d,%d", a.italic, a.weight))
	}
	return fmt.Sprintf("%s?family=%s:ital,wght@%s&display=swap", base, family, strings.Join(tuples, ";"))
}

// WriteCatalog writes entries to bundleDir/fonts/fonts.json.
func WriteCatalog(bundleDir string, entries []CatalogEntry) error {
	return writeJSON(filepath.Join(bundleDir, filepath.FromSlash(CatalogFile)), entries)
}

// WriteEmbedRules writes rules to bundleDir/fonts/<id>/embed.json.
func WriteEmbedRules(bundleDir, id string, rules []EmbedRule) error {
	return writeJSON(filepath.Join(bundleDir, filepath.FromSlash(EmbedFilePath(id))), rules)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}
