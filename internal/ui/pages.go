// Package ui provides the Datastar-based web UI for plat-googlefonts: the
// appearance settings tab, the public pages that carry the injected font CSS
// and the fetch job monitor.
package ui

import (
	"fmt"
	"time"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

// SettingsStylesheet is the path of the settings tab stylesheet.
const SettingsStylesheet = "/plugins/generic/googleFonts/styles/settings.css"

// FontStyleID is the id of the injected <style> element.
const FontStyleID = "google-fonts"

// sampleText is rendered in each enabled font.
const sampleText = "The quick brown fox jumps over the lazy dog"

// Layout wraps content in the base HTML layout. head nodes are appended to <head>.
func Layout(title string, head []g.Node, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
			g.Group(head),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("plat-googlefonts")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Dashboard")),
					h.A(h.Href("/site"), g.Text("Site")),
					h.A(h.Href("/admin/settings/appearance"), g.Text("Appearance")),
					h.A(h.Href("/jobs"), g.Text("Fetch Jobs")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-googlefonts - Google Fonts for sites and journals"),
			),
		),
	)
}

// FontStyle renders the inline font-face CSS. Empty CSS renders nothing.
func FontStyle(css string) g.Node {
	if css == "" {
		return nil
	}
	return h.StyleEl(h.ID(FontStyleID), h.Type("text/css"), g.Raw(css))
}

// FrontendPage renders a public page of a site or journal with its fonts applied.
func FrontendPage(contextID int64, fonts []font.CatalogEntry, css string) g.Node {
	title := contextTitle(contextID)

	var samples []g.Node
	for _, f := range fonts {
		samples = append(samples, h.Div(h.Class("section"),
			h.H2(g.Text(f.Family)),
			h.P(h.Class("sample"), h.StyleAttr(fontFamily(f)), g.Text(sampleText)),
		))
	}

	return Layout(title, []g.Node{FontStyle(css)},
		h.H1(g.Text(title)),
		g.If(len(samples) == 0,
			h.P(h.Class("hint"), g.Text("No Google Fonts are enabled.")),
		),
		g.Group(samples),
	)
}

// GalleyPage renders an article galley with the context's fonts applied.
func GalleyPage(contextID int64, galleyID string, fonts []font.CatalogEntry, css string) g.Node {
	bodyStyle := ""
	if len(fonts) > 0 {
		bodyStyle = fontFamily(fonts[0])
	}

	return Layout(fmt.Sprintf("Galley %s - %s", galleyID, contextTitle(contextID)), []g.Node{FontStyle(css)},
		h.Article(h.Class("article"),
			g.If(bodyStyle != "", h.StyleAttr(bodyStyle)),
			h.H1(g.Text("Article galley "+galleyID)),
			h.P(g.Text(sampleText+".")),
		),
	)
}

// SettingsTab renders the appearance settings tab. errMsg is shown to the
// administrator in place of the font list when the catalog cannot be loaded.
func SettingsTab(contextID int64, catalog, enabled []font.CatalogEntry, errMsg string) g.Node {
	selected := make([]string, 0, len(enabled))
	for _, f := range enabled {
		selected = append(selected, f.ID)
	}

	var options []g.Node
	for _, f := range catalog {
		options = append(options, h.Div(h.Class("form-group"),
			h.Label(
				h.Input(h.Type("checkbox"), h.Name("fonts"), h.Value(f.ID), data.Bind("selected")),
				g.Text(" "+f.Family),
				h.Span(h.Class("hint"), g.Text(" "+f.Category)),
			),
		))
	}

	return Layout("Appearance - "+contextTitle(contextID),
		[]g.Node{h.Link(h.Rel("stylesheet"), h.Href(SettingsStylesheet))},

		data.Signals(map[string]any{
			"contextId": contextID,
			"selected":  selected,
			"saving":    false,
			"result":    "",
		}),

		h.H1(g.Text("Google Fonts")),

		h.Form(h.Class("settings-form google-fonts-settings"),
			data.On("submit", `
				event.preventDefault();
				$saving = true;
				@post('/api/google-font/save')
			`),

			g.If(errMsg != "",
				h.Div(h.Class("result error"), h.Role("alert"), g.Text(errMsg)),
			),

			h.P(h.Class("hint"), g.Text("Select the fonts to load on every page and article galley.")),
			g.Group(options),

			h.Button(h.Type("submit"),
				data.Attr("disabled", "$saving"),
				h.Span(data.Show("!$saving"), g.Text("Save")),
				h.Span(data.Show("$saving"),
					h.Span(h.Class("loading-spinner")),
					g.Text(" Saving..."),
				),
			),

			h.Div(h.Class("result"),
				data.Show("$result"),
				data.Text("$result"),
			),
		),
	)
}

// Dashboard renders the main dashboard page.
func Dashboard() g.Node {
	return Layout("Dashboard - plat-googlefonts", nil,
		data.Signals(map[string]any{
			"stats":   map[string]int{},
			"fonts":   0,
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),
		data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),

		h.H1(g.Text("Google Fonts Dashboard")),

		h.Div(h.Class("stats-grid"),
			h.Div(h.Class("stat-card"),
				h.Div(h.Class("stat-value"), data.Text("$fonts || 0")),
				h.Div(h.Class("stat-label"), g.Text("Catalog fonts")),
			),
			StatCard("pending", "Pending"),
			StatCard("retrying", "Retrying"),
			StatCard("done", "Fetched"),
			StatCard("failed", "Failed"),
		),

		h.Div(h.Class("section"),
			h.H2(g.Text("Quick Actions")),
			h.Div(h.Class("actions"),
				h.A(h.Href("/admin/settings/appearance"), h.Button(g.Text("Site Fonts"))),
				h.A(h.Href("/site"), h.Button(g.Text("View Site"))),
				h.A(h.Href("/jobs"), h.Button(g.Text("Fetch Jobs"))),
			),
		),
	)
}

// StatCard renders a statistics card.
func StatCard(key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$stats."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// JobsPage renders the fetch job monitoring page.
func JobsPage() g.Node {
	filters := []struct{ status, label string }{
		{"all", "All"},
		{"pending", "Pending"},
		{"retrying", "Retrying"},
		{"done", "Fetched"},
		{"failed", "Failed"},
	}

	var buttons []g.Node
	for _, f := range filters {
		query := ""
		if f.status != "all" {
			query = "?status=" + f.status
		}
		buttons = append(buttons, h.Button(
			data.On("click", "$filter = '"+f.status+"'; @get('/api/jobs"+query+"')"),
			data.Class("active", "$filter === '"+f.status+"'"),
			g.Text(f.label),
		))
	}

	return Layout("Fetch Jobs - plat-googlefonts", nil,
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/jobs')"),

		h.H1(g.Text("Font Fetch Jobs")),

		h.Div(h.Class("filter-bar"), g.Group(buttons)),

		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/jobs?status=' + ($filter === 'all' ? '' : $filter))", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		h.Div(h.Class("queue-list"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading jobs..."),
			),
		),
		h.Div(h.ID("job-items"),
			data.Show("!$loading"),
		),
	)
}

func contextTitle(contextID int64) string {
	if contextID == font.ContextIDNone {
		return "Site"
	}
	return fmt.Sprintf("Journal %d", contextID)
}

// fontFamily returns a font-family declaration with a generic fallback.
func fontFamily(f font.CatalogEntry) string {
	generic := "sans-serif"
	switch f.Category {
	case "serif", "monospace":
		generic = f.Category
	case "handwriting":
		generic = "cursive"
	case "display":
		generic = "fantasy"
	}
	return fmt.Sprintf("font-family: '%s', %s;", f.Family, generic)
}

// styles is the shared stylesheet of every page.
const styles = `
:root {
	--accent: #0f766e;
	--accent-strong: #115e59;
	--ok: #15803d;
	--pending: #b45309;
	--danger: #b91c1c;
	--page: #f5f5f4;
	--panel: #ffffff;
	--ink: #1c1917;
	--muted: #78716c;
	--line: #e7e5e4;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
	font-family: system-ui, -apple-system, 'Segoe UI', sans-serif;
	background: var(--page);
	color: var(--ink);
	line-height: 1.5;
}

h1 { font-size: 1.75rem; margin-bottom: 1.25rem; }
h2 { font-size: 1.15rem; margin-bottom: 0.75rem; }

.navbar {
	display: flex;
	align-items: center;
	justify-content: space-between;
	padding: 0.75rem 2rem;
	background: var(--accent);
	color: #fff;
}
.nav-brand { font-weight: 700; letter-spacing: 0.02em; }
.nav-links a { color: #fff; margin-left: 1.25rem; text-decoration: none; opacity: 0.85; }
.nav-links a:hover { opacity: 1; }

.container { max-width: 1100px; margin: 0 auto; padding: 2rem; }
.footer { text-align: center; padding: 1.5rem; color: var(--muted); font-size: 0.8rem; }

.section, .settings-form, .article, .queue-list {
	background: var(--panel);
	border: 1px solid var(--line);
	border-radius: 6px;
	padding: 1.25rem 1.5rem;
	margin-bottom: 1.25rem;
}

.stats-grid {
	display: grid;
	grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
	gap: 1rem;
	margin-bottom: 1.5rem;
}
.stat-card {
	background: var(--panel);
	border: 1px solid var(--line);
	border-radius: 6px;
	padding: 1rem 1.25rem;
}
.stat-value { font-size: 1.75rem; font-weight: 700; color: var(--accent); }
.stat-label { color: var(--muted); font-size: 0.85rem; }

.actions, .filter-bar { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.filter-bar { margin-bottom: 1rem; }
.refresh-bar { color: var(--muted); font-size: 0.8rem; margin-bottom: 0.75rem; }

button {
	background: var(--accent);
	color: #fff;
	border: 0;
	border-radius: 4px;
	padding: 0.5rem 1rem;
	font-size: 0.9rem;
	cursor: pointer;
}
button:hover, button.active { background: var(--accent-strong); }
button:disabled { opacity: 0.5; cursor: not-allowed; }

.hint { color: var(--muted); font-size: 0.85rem; }
.loading { color: var(--muted); text-align: center; padding: 1.5rem; }
.loading-spinner {
	display: inline-block;
	width: 0.9rem;
	height: 0.9rem;
	border: 2px solid var(--line);
	border-top-color: var(--accent);
	border-radius: 50%;
	animation: spin 0.8s linear infinite;
	vertical-align: middle;
}
@keyframes spin { to { transform: rotate(360deg); } }

.form-group { margin-bottom: 0.6rem; }
.result { margin-top: 1rem; padding: 0.75rem 1rem; border-radius: 4px; background: #ecfdf5; }

.sample { font-size: 1.5rem; }
.article { font-size: 1.1rem; line-height: 1.7; }

.job-table { width: 100%; border-collapse: collapse; }
.job-table th {
	text-align: left;
	padding: 0.6rem 0.75rem;
	border-bottom: 2px solid var(--line);
	color: var(--muted);
	font-size: 0.8rem;
}
.job-table td { padding: 0.6rem 0.75rem; border-bottom: 1px solid var(--line); font-size: 0.85rem; }

@media (max-width: 768px) {
	.navbar { flex-direction: column; gap: 0.5rem; }
	.container { padding: 1rem; }
}
`
