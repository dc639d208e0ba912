package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Settings drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI       UIConfig       `json:",optional"`
	API      APIConfig      `json:",optional"`
	Fonts    FontsConfig    `json:",optional"`
	Settings SettingsConfig `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Redis    RedisConfig    `json:",optional"`
	Google   GoogleConfig   `json:",optional"`
	Fetch    FetchConfig    `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// FontsConfig holds the font bundle settings. PublicRoot is the directory
// served at the site root; fetched files land in public/site/google-fonts below it.
type FontsConfig struct {
	BundleDir  string `json:",default=."`
	PublicRoot string `json:",default=./.data"`
	BaseURL    string `json:",optional"`
	CacheTTL   string `json:",default=0s"`
}

// SettingsConfig selects where enabled fonts are stored.
type SettingsConfig struct {
	Driver   string `json:",default=sqlite,options=sqlite|redis|file|memory"`
	FilePath string `json:",default=./.data/settings.json"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/plat-googlefonts.db"`
}

// RedisConfig holds Redis settings for the redis settings driver.
type RedisConfig struct {
	Addr     string `json:",default=127.0.0.1:6379"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
	Prefix   string `json:",default=googlefonts:settings"`
}

// GoogleConfig holds Google Fonts API settings.
type GoogleConfig struct {
	APIKey string `json:",optional,env=GOOGLE_FONTS_API_KEY"`
}

// FetchConfig holds font fetch engine settings.
type FetchConfig struct {
	Workers      int    `json:",default=1"`
	MaxRetries   int    `json:",default=3"`
	RetryBackoff string `json:",default=30s"`
	MaxBackoff   string `json:",default=30m"`
	RateLimit    int    `json:",default=30"`
}
