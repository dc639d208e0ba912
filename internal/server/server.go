// Package server wires the font plugin, the fetch engine and the UI, API and
// MCP servers into one service group.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joeblew999/plat-googlefonts/internal/config"
	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/handler"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/ui"
	"github.com/joeblew999/plat-googlefonts/pkg/db"
	"github.com/joeblew999/plat-googlefonts/pkg/fetch"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	fontlog "github.com/joeblew999/plat-googlefonts/pkg/log"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// FetchQueueName is the goqite queue holding font fetch jobs.
const FetchQueueName = "font-fetch"

// Server wraps the MCP server and the font plugin services.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	// Route the font library's logs through logx
	fontlog.SetHandler(fontlog.NewLogxHandler(slog.LevelInfo))

	mcpServer := mcp.NewMcpServer(c.McpConf)

	// Catalog validation and database opening are independent
	var database *db.DB
	var catalogSize int

	err := mr.Finish(
		func() error {
			probe, err := svc.NewPlugin(c, nil)
			if err != nil {
				return err
			}
			catalog, err := probe.ListFonts()
			if err != nil {
				// An unreadable catalog is reported on the settings tab.
				logx.Errorf("Font catalog unavailable: %v", err)
				return nil
			}
			catalogSize = len(catalog)
			return nil
		},
		func() error {
			var e error
			database, e = db.Open(c.Database.Path)
			return e
		},
	)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	conn := database.SqlConn()

	store, err := svc.NewSelectionStore(c, conn)
	if err != nil {
		database.Close()
		return nil, err
	}

	plugin, err := svc.NewPlugin(c, settings.NewPublishingStore(store, c.Fonts.PublicRoot))
	if err != nil {
		database.Close()
		return nil, err
	}

	fetchQueue, err := queue.NewQueue(database.DB, conn, FetchQueueName)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create fetch queue: %w", err)
	}

	fetchConfig, err := svc.FetchConfig(c)
	if err != nil {
		database.Close()
		return nil, err
	}

	google := font.NewGoogleClient(c.Google.APIKey)
	engine := fetch.NewEngine(fetchQueue, plugin, google, fetchConfig)

	RegisterMCPTools(mcpServer, plugin, fetchQueue)

	// Create UI rest server (Datastar web UI) with CORS
	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(plugin, fetchQueue, os.DirFS(c.Fonts.PublicRoot))
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	// Create API rest server (goctl-generated JSON REST API) with CORS
	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	apiCtx := svc.NewServiceContext(c, plugin, fetchQueue, engine)
	handler.RegisterHandlers(apiServer, apiCtx)

	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})
	if fetchQueue.Events != nil {
		proc.AddShutdownListener(func() {
			logx.Info("Flushing font fetch events")
			fetchQueue.Events.Flush()
		})
	}

	// Build service group: fetch + UI + API + MCP (stopped in reverse order)
	group := service.NewServiceGroup()
	group.Add(newFetchService(engine, c.Fetch.Workers))
	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("plat-googlefonts server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("bundle", c.Fonts.BundleDir),
		logx.Field("public", c.Fonts.PublicRoot),
		logx.Field("fonts", catalogSize),
		logx.Field("settings", c.Settings.Driver),
		logx.Field("database", c.Database.Path),
	)
	logx.Infof("To add to Claude: claude mcp add plat-googlefonts -- npx -y mcp-remote http://localhost:%d/sse", c.Port)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
