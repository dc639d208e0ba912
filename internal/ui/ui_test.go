package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"
	"github.com/zeromicro/go-zero/rest/router"
)

const testCatalog = `[
  {"id":"roboto","family":"Roboto","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v30","lastModified":"2022-09-22"},
  {"id":"lora","family":"Lora","category":"serif","subsets":["latin"],"variants":["regular"],"version":"v32","lastModified":"2023-02-01"},
  {"id":"broken","family":"Broken","category":"display","subsets":["latin"],"variants":["regular"],"version":"v1","lastModified":"2023-02-01"}
]`

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"fonts/fonts.json":        {Data: []byte(testCatalog)},
		"fonts/roboto/embed.json": {Data: []byte(`[{"subset":"latin","font":"@font-face{src:url(./fonts/roboto.woff2)}"}]`)},
		"fonts/lora/embed.json":   {Data: []byte(`[{"subset":"latin","font":"@font-face{src:url(./fonts/lora.woff2)}"}]`)},
		"fonts/broken/embed.json": {Data: []byte(`{not json`)},
	}
}

func newTestHandlers(t *testing.T, assets fstest.MapFS) (*Handlers, *settings.MemoryStore) {
	t.Helper()
	store := settings.NewMemoryStore()
	plugin, err := font.NewPlugin(assets, store)
	require.NoError(t, err)
	return NewHandlers(plugin, nil, nil), store
}

func withContext(r *http.Request, contextID string) *http.Request {
	return pathvar.WithVars(r, map[string]string{"contextId": contextID})
}

func TestFrontendInjectsFontCSS(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())
	require.NoError(t, store.SaveEnabledFonts(context.Background(), 1, []string{"roboto"}))

	w := httptest.NewRecorder()
	h.handleJournal(w, withContext(httptest.NewRequest(http.MethodGet, "/journals/1", nil), "1"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="google-fonts"`)
	assert.Contains(t, body, "@font-face{src:url(/public/journals/1/google-fonts/roboto.woff2)}")
	assert.Contains(t, body, "font-family: &#39;Roboto&#39;, sans-serif;")
}

func TestFrontendWithoutFonts(t *testing.T) {
	h, _ := newTestHandlers(t, testBundle())

	w := httptest.NewRecorder()
	h.handleSite(w, httptest.NewRequest(http.MethodGet, "/site", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="google-fonts"`)
	assert.Contains(t, w.Body.String(), "No Google Fonts are enabled.")
}

func TestFrontendBrokenEmbedFile(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())
	require.NoError(t, store.SaveEnabledFonts(context.Background(), font.ContextIDNone, []string{"roboto", "broken"}))

	w := httptest.NewRecorder()
	h.handleSite(w, httptest.NewRequest(http.MethodGet, "/site", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="google-fonts"`)
}

func TestGalleyInjectsFontCSS(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())
	require.NoError(t, store.SaveEnabledFonts(context.Background(), 2, []string{"lora"}))

	r := pathvar.WithVars(httptest.NewRequest(http.MethodGet, "/journals/2/article/download/7", nil),
		map[string]string{"contextId": "2", "galleyId": "7"})
	w := httptest.NewRecorder()
	h.handleGalley(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "url(/public/journals/2/google-fonts/lora.woff2)")
	assert.Contains(t, body, "Article galley 7")
}

func TestInvalidContextID(t *testing.T) {
	h, _ := newTestHandlers(t, testBundle())

	for _, id := range []string{"abc", "0", "-4", ""} {
		w := httptest.NewRecorder()
		h.handleJournal(w, withContext(httptest.NewRequest(http.MethodGet, "/journals/x", nil), id))
		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}

func TestSettingsTab(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())
	require.NoError(t, store.SaveEnabledFonts(context.Background(), 3, []string{"lora"}))

	w := httptest.NewRecorder()
	h.handleJournalSettings(w, withContext(httptest.NewRequest(http.MethodGet, "/journals/3/management/settings/appearance", nil), "3"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, SettingsStylesheet)
	assert.Contains(t, body, `value="roboto"`)
	assert.Contains(t, body, `value="lora"`)
	assert.Contains(t, body, "@post(&#39;/api/google-font/save&#39;)")
	assert.Contains(t, body, "&#34;selected&#34;:[&#34;lora&#34;]")
	assert.NotContains(t, body, "A technical error occurred")
}

func TestSettingsTabCatalogFailure(t *testing.T) {
	h, _ := newTestHandlers(t, fstest.MapFS{})

	w := httptest.NewRecorder()
	h.handleSiteSettings(w, httptest.NewRequest(http.MethodGet, "/admin/settings/appearance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A technical error occurred: Unable to load the `fonts/fonts.json` file")
}

func TestSave(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())

	body := strings.NewReader(`{"contextId":4,"selected":["lora","roboto","lora"]}`)
	r := httptest.NewRequest(http.MethodPost, "/api/google-font/save", body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.handleSave(w, r)

	assert.Contains(t, w.Body.String(), "Settings saved.")
	got, err := store.EnabledFonts(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"lora", "roboto"}, got)
}

func TestSaveUnknownFont(t *testing.T) {
	h, store := newTestHandlers(t, testBundle())

	body := strings.NewReader(`{"contextId":4,"selected":["comic-sans"]}`)
	r := httptest.NewRequest(http.MethodPost, "/api/google-font/save", body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.handleSave(w, r)

	assert.Contains(t, w.Body.String(), "Error: unknown font: comic-sans")
	got, err := store.EnabledFonts(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSettingsStylesheet(t *testing.T) {
	h, _ := newTestHandlers(t, testBundle())

	w := httptest.NewRecorder()
	h.handleSettingsCSS(w, httptest.NewRequest(http.MethodGet, SettingsStylesheet, nil))

	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), ".google-fonts-settings")
}

func TestStatsWithoutQueue(t *testing.T) {
	h, _ := newTestHandlers(t, testBundle())

	w := httptest.NewRecorder()
	h.handleStats(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Contains(t, w.Body.String(), `"fonts":3`)
}

func TestRenderJobItemsEmpty(t *testing.T) {
	assert.Contains(t, renderJobItems(nil), "No fetch jobs")
}

func TestInjectedFontURLsAreServed(t *testing.T) {
	assets := testBundle()
	assets["fonts/roboto/embed.json"] = &fstest.MapFile{
		Data: []byte(`[{"subset":"latin","font":"@font-face{src:url(./fonts/roboto/latin.woff2) format('woff2')}"}]`),
	}
	assets["fonts/lora/embed.json"] = &fstest.MapFile{
		Data: []byte(`[{"subset":"latin","font":"@font-face{src:url(./fonts/lora/latin.woff2) format('woff2')}"}]`),
	}
	public := fstest.MapFS{
		"public/journals/1/google-fonts/roboto/latin.woff2": {Data: []byte("wOF2-journal")},
		"public/site/google-fonts/roboto/latin.woff2":       {Data: []byte("wOF2-site")},
		"public/site/google-fonts/lora/latin.woff2":         {Data: []byte("wOF2-lora")},
	}

	store := settings.NewMemoryStore()
	plugin, err := font.NewPlugin(assets, store)
	require.NoError(t, err)
	h := NewHandlers(plugin, nil, public)

	rt := router.NewRouter()
	for _, route := range h.Routes() {
		require.NoError(t, rt.Handle(route.Method, route.Path, route.Handler))
	}

	ctx := context.Background()
	require.NoError(t, store.SaveEnabledFonts(ctx, 1, []string{"roboto", "lora"}))
	require.NoError(t, store.SaveEnabledFonts(ctx, font.ContextIDNone, []string{"lora"}))

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}
	fontURLs := func(page string) []string {
		var urls []string
		for _, m := range regexp.MustCompile(`url\(([^)]+)\)`).FindAllStringSubmatch(get(page).Body.String(), -1) {
			urls = append(urls, m[1])
		}
		return urls
	}

	journal := fontURLs("/journals/1")
	require.Equal(t, []string{
		"/public/journals/1/google-fonts/roboto/latin.woff2",
		"/public/journals/1/google-fonts/lora/latin.woff2",
	}, journal)

	w := get(journal[0])
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wOF2-journal", w.Body.String())

	// lora was never published to journal 1 and is served from the site directory.
	w = get(journal[1])
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wOF2-lora", w.Body.String())

	site := fontURLs("/site")
	require.Equal(t, []string{"/public/site/google-fonts/lora/latin.woff2"}, site)
	w = get(site[0])
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wOF2-lora", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get("/public/site/google-fonts/lato/latin.woff2").Code)
	assert.Equal(t, http.StatusNotFound, get("/public/journals/0/google-fonts/lora/latin.woff2").Code)
}
