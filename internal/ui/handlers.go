package ui

import (
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"
	g "maragu.dev/gomponents"
)

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	plugin *font.Plugin
	queue  *queue.Queue
	public fs.FS
}

// NewHandlers creates new UI handlers. q may be nil when fetching is
// disabled. public is the public files root serving the font files; nil
// disables the font file routes.
func NewHandlers(plugin *font.Plugin, q *queue.Queue, public fs.FS) *Handlers {
	return &Handlers{
		plugin: plugin,
		queue:  q,
		public: public,
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleDashboard},
		{Method: http.MethodGet, Path: "/site", Handler: h.handleSite},
		{Method: http.MethodGet, Path: "/journals/:contextId", Handler: h.handleJournal},
		{Method: http.MethodGet, Path: "/journals/:contextId/article/download/:galleyId", Handler: h.handleGalley},
		{Method: http.MethodGet, Path: "/journals/:contextId/management/settings/appearance", Handler: h.handleJournalSettings},
		{Method: http.MethodGet, Path: "/admin/settings/appearance", Handler: h.handleSiteSettings},
		{Method: http.MethodGet, Path: "/jobs", Handler: h.handleJobs},
		{Method: http.MethodGet, Path: SettingsStylesheet, Handler: h.handleSettingsCSS},
		{Method: http.MethodGet, Path: "/public/site/google-fonts/:fontId/:file", Handler: h.handleSiteFontFile},
		{Method: http.MethodGet, Path: "/public/journals/:contextId/google-fonts/:fontId/:file", Handler: h.handleJournalFontFile},
		{Method: http.MethodPost, Path: "/api/google-font/save", Handler: h.handleSave},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/jobs", Handler: h.handleJobsAPI},
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, Dashboard())
}

func (h *Handlers) handleJobs(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, JobsPage())
}

func (h *Handlers) handleSite(w http.ResponseWriter, r *http.Request) {
	h.renderFrontend(w, r, font.ContextIDNone)
}

func (h *Handlers) handleJournal(w http.ResponseWriter, r *http.Request) {
	contextID, ok := contextIDFromPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.renderFrontend(w, r, contextID)
}

func (h *Handlers) handleGalley(w http.ResponseWriter, r *http.Request) {
	contextID, ok := contextIDFromPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	galleyID := pathvar.Vars(r)["galleyId"]
	fonts := h.plugin.ResolveEnabledFonts(r.Context(), contextID)
	h.render(w, r, GalleyPage(contextID, galleyID, fonts, h.fontCSS(r, contextID)))
}

func (h *Handlers) handleSiteSettings(w http.ResponseWriter, r *http.Request) {
	h.renderSettings(w, r, font.ContextIDNone)
}

func (h *Handlers) handleJournalSettings(w http.ResponseWriter, r *http.Request) {
	contextID, ok := contextIDFromPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.renderSettings(w, r, contextID)
}

func (h *Handlers) handleSettingsCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := w.Write([]byte(settingsCSS)); err != nil {
		logx.WithContext(r.Context()).Errorf("write settings stylesheet: %v", err)
	}
}

func (h *Handlers) handleSiteFontFile(w http.ResponseWriter, r *http.Request) {
	h.serveFontFile(w, r, font.ContextIDNone)
}

func (h *Handlers) handleJournalFontFile(w http.ResponseWriter, r *http.Request) {
	contextID, ok := contextIDFromPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.serveFontFile(w, r, contextID)
}

// serveFontFile serves a file referenced by the injected font CSS. A journal
// falls back to the site font directory for fonts fetched after it saved
// its selection.
func (h *Handlers) serveFontFile(w http.ResponseWriter, r *http.Request, contextID int64) {
	vars := pathvar.Vars(r)
	rel := vars["fontId"] + "/" + vars["file"]
	if h.public == nil || !fs.ValidPath(rel) {
		http.NotFound(w, r)
		return
	}

	name := path.Join(font.ContextFilesPath(contextID), font.PublicFileDir, rel)
	if _, err := fs.Stat(h.public, name); err != nil && contextID != font.ContextIDNone {
		name = path.Join(font.ContextFilesPath(font.ContextIDNone), font.PublicFileDir, rel)
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFileFS(w, r, h.public, name)
}

func (h *Handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContextID int64    `json:"contextId"`
		Selected  []string `json:"selected"`
	}

	if err := datastar.ReadSignals(r, &req); err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"saving": false,
			"result": "Error: Invalid request",
		})
		return
	}

	if err := h.plugin.SaveEnabledFonts(r.Context(), req.ContextID, req.Selected); err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"saving": false,
			"result": "Error: " + err.Error(),
		})
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"saving": false,
		"result": "Settings saved.",
	})
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	signals := map[string]any{
		"stats":   map[string]int{},
		"loading": false,
	}

	if catalog, err := h.plugin.ListFonts(); err == nil {
		signals["fonts"] = len(catalog)
	}

	if h.queue != nil {
		stats, err := h.queue.Stats(r.Context())
		if err != nil {
			h.sendDatastarError(w, r, err)
			return
		}
		signals["stats"] = stats
	}

	h.sendDatastarSignals(w, r, signals)
}

func (h *Handlers) handleJobsAPI(w http.ResponseWriter, r *http.Request) {
	var jobs []*model.FontFetchJobs
	if h.queue != nil {
		var err error
		jobs, err = h.queue.List(r.Context(), r.URL.Query().Get("status"), 50)
		if err != nil {
			h.sendDatastarError(w, r, err)
			return
		}
	}

	sse := datastar.NewSSE(w, r)

	if err := sse.PatchElementf(`<div id="job-items">%s</div>`, renderJobItems(jobs)); err != nil {
		logx.WithContext(r.Context()).Errorf("datastar patch job items: %v", err)
	}

	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.WithContext(r.Context()).Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) renderFrontend(w http.ResponseWriter, r *http.Request, contextID int64) {
	fonts := h.plugin.ResolveEnabledFonts(r.Context(), contextID)
	h.render(w, r, FrontendPage(contextID, fonts, h.fontCSS(r, contextID)))
}

func (h *Handlers) renderSettings(w http.ResponseWriter, r *http.Request, contextID int64) {
	var errMsg string
	catalog, err := h.plugin.ListFonts()
	if err != nil {
		errMsg = "A technical error occurred: " + err.Error()
		catalog = nil
	}
	enabled := h.plugin.ResolveEnabledFonts(r.Context(), contextID)
	h.render(w, r, SettingsTab(contextID, catalog, enabled, errMsg))
}

// fontCSS builds the font CSS of a public page. A broken bundle is logged and
// the page renders without font CSS.
func (h *Handlers) fontCSS(r *http.Request, contextID int64) string {
	css, err := h.plugin.BuildFontFaceCSS(r.Context(), contextID)
	if err != nil {
		logx.WithContext(r.Context()).Errorf("build font css for context %d: %v", contextID, err)
		return ""
	}
	return css
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logx.WithContext(r.Context()).Errorf("render page %s: %v", r.URL.Path, err)
	}
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.WithContext(r.Context()).Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading": false,
		"error":   msg,
	})
}

func contextIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(pathvar.Vars(r)["contextId"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func renderJobItems(jobs []*model.FontFetchJobs) string {
	if len(jobs) == 0 {
		return `<p class="hint" style="padding:2rem;text-align:center;">No fetch jobs</p>`
	}

	var b strings.Builder
	b.WriteString(`<table class="job-table">`)
	b.WriteString(`<thead><tr><th>Font</th><th>Status</th><th>Attempts</th><th>Rules</th><th>Error</th><th>Created</th></tr></thead><tbody>`)

	for _, job := range jobs {
		statusColor := "var(--muted)"
		switch job.Status {
		case model.JobStatusDone:
			statusColor = "var(--ok)"
		case model.JobStatusFailed:
			statusColor = "var(--danger)"
		case model.JobStatusPending:
			statusColor = "var(--pending)"
		case model.JobStatusRetrying:
			statusColor = "var(--accent)"
		}

		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td style="font-weight:500;">%s</td>`, html.EscapeString(job.FontId))
		fmt.Fprintf(&b, `<td><span style="color:%s;font-weight:600;">%s</span></td>`, statusColor, html.EscapeString(job.Status))
		fmt.Fprintf(&b, `<td>%d/%d</td>`, job.Attempts, job.MaxAttempts)
		fmt.Fprintf(&b, `<td>%d</td>`, job.Rules)
		fmt.Fprintf(&b, `<td class="hint">%s</td>`, html.EscapeString(model.NullStringValue(job.Error)))
		fmt.Fprintf(&b, `<td class="hint">%s</td>`, job.CreatedAt.Format("Jan 2 15:04"))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}
