package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joeblew999/plat-googlefonts/internal/config"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	pathcfg "github.com/joeblew999/plat-googlefonts/pkg/config"
	"github.com/joeblew999/plat-googlefonts/pkg/db"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	fontlog "github.com/joeblew999/plat-googlefonts/pkg/log"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// appName is the application name used for display.
const appName = "googlefonts"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"  // semantic version
	commit  = "none" // git commit SHA
	date    = ""     // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options are the persistent flags shared by every command.
type options struct {
	bundleDir    string
	publicRoot   string
	baseURL      string
	driver       string
	settingsFile string
	dbPath       string
	redisAddr    string
	apiKey       string
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	opts       options
	googleOpts []font.GoogleOption
}

// New creates a new CLI writing command output to w and logs to stderr.
// The font library logs through the same logger.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(os.Stderr, level)
	fontlog.SetLogger(slog.New(logger))
	return &CLI{
		Logger: logger,
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Manage the Google Fonts of a site and its journals",
		Long:         `googlefonts lists the bundled Google Fonts catalog, enables fonts per site or journal, prints the resulting @font-face CSS and fetches new fonts into the bundle.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.bundleDir, "bundle", pathcfg.GetFontBundlePath(), "directory holding fonts/fonts.json and the embed files")
	flags.StringVar(&c.opts.publicRoot, "public", pathcfg.GetPublicRoot(), "public files root; fonts are downloaded below public/site/google-fonts")
	flags.StringVar(&c.opts.baseURL, "base-url", "", "URL prefix of public font files")
	flags.StringVar(&c.opts.driver, "settings", pathcfg.GetSettingsDriver(), "settings store: file, sqlite, redis or memory")
	flags.StringVar(&c.opts.settingsFile, "settings-file", pathcfg.GetSettingsFilePath(), "JSON file used by the file settings store")
	flags.StringVar(&c.opts.dbPath, "db", pathcfg.GetDatabasePath(), "SQLite database used by the sqlite settings store and the fetch queue")
	flags.StringVar(&c.opts.redisAddr, "redis", pathcfg.GetRedisAddr(), "Redis address used by the redis settings store")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.enabledCommand())
	root.AddCommand(c.enableCommand())
	root.AddCommand(c.cssCommand())
	root.AddCommand(c.fetchCatalogCommand())
	root.AddCommand(c.fetchCommand())

	return root
}

// Execute runs the googlefonts CLI.
func Execute(ctx context.Context) error {
	var verbose bool

	c := New(os.Stdout, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	return root.ExecuteContext(ctx)
}

// config maps the flags onto the server configuration so the CLI builds its
// stores the same way the server does.
func (c *CLI) config() config.Config {
	var cfg config.Config
	cfg.Fonts.BundleDir = c.opts.bundleDir
	cfg.Fonts.PublicRoot = c.opts.publicRoot
	cfg.Fonts.BaseURL = c.opts.baseURL
	cfg.Settings.Driver = c.opts.driver
	cfg.Settings.FilePath = c.opts.settingsFile
	cfg.Database.Path = c.opts.dbPath
	cfg.Redis.Addr = c.opts.redisAddr
	cfg.Redis.Prefix = settings.DefaultRedisPrefix
	cfg.Fetch.MaxRetries = 3
	return cfg
}

// openPlugin creates the plugin over the configured settings store.
// The returned func releases the store.
func (c *CLI) openPlugin() (*font.Plugin, func(), error) {
	cfg := c.config()
	closer := func() {}

	var conn sqlx.SqlConn
	if cfg.Settings.Driver == config.DriverSQLite {
		d, err := db.Open(cfg.Database.Path)
		if err != nil {
			return nil, closer, err
		}
		conn = d.SqlConn()
		closer = func() { d.Close() }
	}

	store, err := svc.NewSelectionStore(cfg, conn)
	if err != nil {
		closer()
		return nil, func() {}, err
	}

	plugin, err := svc.NewPlugin(cfg, settings.NewPublishingStore(store, cfg.Fonts.PublicRoot))
	if err != nil {
		closer()
		return nil, func() {}, err
	}

	c.Logger.Debug("Settings store opened", "driver", cfg.Settings.Driver, "bundle", cfg.Fonts.BundleDir)
	return plugin, closer, nil
}

// newLogger creates a new logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
