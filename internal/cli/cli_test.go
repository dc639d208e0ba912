package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/joeblew999/plat-googlefonts/pkg/db"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"id":"roboto","family":"Roboto","category":"sans-serif","subsets":["latin"],"variants":["regular","700"],"version":"v30","lastModified":"2022-09-22"},
  {"id":"lora","family":"Lora","category":"serif","subsets":["latin"],"variants":["regular"],"version":"v32","lastModified":"2023-02-01"}
]`

type testEnv struct {
	dir        string
	bundleDir  string
	publicRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		bundleDir:  filepath.Join(dir, "bundle"),
		publicRoot: filepath.Join(dir, "www"),
	}

	files := map[string]string{
		"fonts/fonts.json":        testCatalog,
		"fonts/roboto/embed.json": `[{"subset":"latin","font":"@font-face{src:url(./fonts/roboto.woff2)}"}]`,
		"fonts/lora/embed.json":   `[{"subset":"latin","font":"@font-face{src:url(./fonts/lora.woff2)}"}]`,
	}
	for name, content := range files {
		path := filepath.Join(env.bundleDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return env
}

// run executes the CLI with the environment's paths and returns its output.
func (e *testEnv) run(t *testing.T, setup func(*CLI), args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, log.InfoLevel)
	c.Logger = newLogger(&bytes.Buffer{}, log.InfoLevel)
	if setup != nil {
		setup(c)
	}

	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--bundle", e.bundleDir,
		"--public", e.publicRoot,
		"--settings", "file",
		"--settings-file", filepath.Join(e.dir, "settings.json"),
		"--db", filepath.Join(e.dir, "fonts.db"),
	}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2 fonts")
	assert.Contains(t, out, "roboto")
	assert.Contains(t, out, "Lora")
	assert.Contains(t, out, "regular,700")

	out, err = env.run(t, nil, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id":"roboto"`)
	assert.Contains(t, out, `"lastModified":"2022-09-22"`)
}

func TestListMissingCatalog(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Remove(filepath.Join(env.bundleDir, "fonts", "fonts.json")))

	_, err := env.run(t, nil, "list")
	assert.ErrorIs(t, err, font.ErrCatalogUnavailable)
}

func TestEnableAndCSS(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, nil, "enabled", "--context", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No fonts enabled for journal 1")

	out, err = env.run(t, nil, "enable", "--context", "1", "lora", "roboto", "lora")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled 2 fonts for journal 1")

	out, err = env.run(t, nil, "enabled", "--context", "1", "--json")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, `"id":"lora"`), strings.Index(out, `"id":"roboto"`))

	out, err = env.run(t, nil, "--base-url", "https://example.org", "css", "--context", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"/* latin */\n"+
			"@font-face{src:url(https://example.org/public/journals/1/google-fonts/lora.woff2)}\n"+
			"/* latin */\n"+
			"@font-face{src:url(https://example.org/public/journals/1/google-fonts/roboto.woff2)}\n",
		out)

	out, err = env.run(t, nil, "enabled")
	require.NoError(t, err)
	assert.Contains(t, out, "No fonts enabled for the site")

	_, err = env.run(t, nil, "enable", "--context", "1")
	require.NoError(t, err)
	out, err = env.run(t, nil, "css", "--context", "1")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEnableUnknownFont(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, nil, "enable", "comic-sans")
	assert.ErrorIs(t, err, font.ErrUnknownFont)
}

func TestSQLiteSettings(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, nil, "--settings", "sqlite", "enable", "--context", "5", "roboto")
	require.NoError(t, err)

	out, err := env.run(t, nil, "--settings", "sqlite", "enabled", "--context", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "1 fonts enabled for journal 5")

	out, err = env.run(t, nil, "enabled", "--context", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No fonts enabled")
}

func googleServer(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/webfonts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "secret" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"items":[
			{"family":"Roboto","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v30","lastModified":"2022-09-22"},
			{"family":"Open Sans","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v35","lastModified":"2023-04-27"},
			{"family":"Lora","category":"serif","subsets":["latin"],"variants":["regular"],"version":"v32","lastModified":"2023-02-01"}
		]}`)
	})
	mux.HandleFunc("/css2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "/* latin */\n@font-face {\n  font-family: 'Roboto';\n  src: url(%s/s/roboto/v30/latin.woff2) format('woff2');\n}\n", srv.URL)
	})
	mux.HandleFunc("/s/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("wOF2"))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCatalog(t *testing.T) {
	env := newTestEnv(t)
	srv := googleServer(t)
	endpoints := func(c *CLI) {
		c.googleOpts = []font.GoogleOption{font.WithEndpoints(srv.URL+"/webfonts", srv.URL+"/css2")}
	}

	_, err := env.run(t, endpoints, "fetch-catalog", "--api-key", "")
	assert.Error(t, err)

	out, err := env.run(t, endpoints, "fetch-catalog", "--api-key", "secret", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 fonts")

	catalog, err := font.LoadCatalog(os.DirFS(env.bundleDir), font.CatalogFile)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "roboto", catalog[0].ID)
	assert.Equal(t, "open-sans", catalog[1].ID)

	_, err = env.run(t, endpoints, "fetch-catalog", "--api-key", "secret", "--family", "Lora")
	require.NoError(t, err)
	catalog, err = font.LoadCatalog(os.DirFS(env.bundleDir), font.CatalogFile)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "lora", catalog[0].ID)
}

func TestFetchNow(t *testing.T) {
	env := newTestEnv(t)
	srv := googleServer(t)
	endpoints := func(c *CLI) {
		c.googleOpts = []font.GoogleOption{font.WithEndpoints(srv.URL+"/webfonts", srv.URL+"/css2")}
	}

	out, err := env.run(t, endpoints, "fetch", "roboto")
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched roboto: 1 rules")

	data, err := os.ReadFile(filepath.Join(font.PublicFontDir(env.publicRoot, font.ContextIDNone), "roboto", "latin.woff2"))
	require.NoError(t, err)
	assert.Equal(t, "wOF2", string(data))

	rules, err := font.LoadEmbedRules(os.DirFS(env.bundleDir), "roboto")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Contains(t, rules[0].Font, "url(./fonts/roboto/latin.woff2)")

	_, err = env.run(t, nil, "enable", "--context", "2", "roboto")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(font.PublicFontDir(env.publicRoot, 2), "roboto", "latin.woff2"))

	_, err = env.run(t, endpoints, "fetch", "comic-sans")
	assert.ErrorIs(t, err, font.ErrUnknownFont)
}

func TestFetchQueue(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, nil, "fetch", "--queue", "roboto", "lora")
	require.NoError(t, err)
	assert.Contains(t, out, "Queued roboto")
	assert.Contains(t, out, "Queued lora")

	_, err = env.run(t, nil, "fetch", "--queue", "comic-sans")
	assert.ErrorIs(t, err, font.ErrUnknownFont)

	d, err := db.Open(filepath.Join(env.dir, "fonts.db"))
	require.NoError(t, err)
	defer d.Close()

	q, err := queue.NewQueue(d.DB, d.SqlConn(), fetchQueueName)
	require.NoError(t, err)
	jobs, err := q.List(context.Background(), "pending", 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestFilterCatalog(t *testing.T) {
	entries := func() []font.CatalogEntry {
		return []font.CatalogEntry{{ID: "roboto"}, {ID: "open-sans"}, {ID: "lora"}}
	}

	assert.Len(t, filterCatalog(entries(), nil, 0), 3)
	assert.Len(t, filterCatalog(entries(), nil, 2), 2)

	got := filterCatalog(entries(), []string{"Open Sans", "lora"}, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "open-sans", got[0].ID)
	assert.Equal(t, "lora", got[1].ID)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "") })

	env := newTestEnv(t)
	out, err := env.run(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "googlefonts v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
