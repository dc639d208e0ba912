// Package config provides path defaults for the font bundle and its data.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	// Default to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Join(cwd, ".data")
}

// GetFontBundlePath returns the directory holding fonts/fonts.json and the
// per-font embed files.
// It checks for FONT_BUNDLE_PATH environment variable, otherwise uses the working directory.
func GetFontBundlePath() string {
	if path := os.Getenv("FONT_BUNDLE_PATH"); path != "" {
		return path
	}
	return "."
}

// GetPublicRoot returns the directory holding the public files of the site
// and its journals. Font files are downloaded below public/site/google-fonts.
// It checks for PUBLIC_ROOT environment variable, otherwise uses the data directory.
func GetPublicRoot() string {
	if path := os.Getenv("PUBLIC_ROOT"); path != "" {
		return path
	}
	return GetDataPath()
}

// GetDatabasePath returns the SQLite database file path.
func GetDatabasePath() string {
	return filepath.Join(GetDataPath(), "plat-googlefonts.db")
}

// GetSettingsFilePath returns the JSON settings file used by the file store.
func GetSettingsFilePath() string {
	return filepath.Join(GetDataPath(), "settings.json")
}

// GetSettingsDriver returns the store holding enabled fonts for the CLI.
// It checks for SETTINGS_DRIVER environment variable, otherwise uses the JSON file store.
func GetSettingsDriver() string {
	if driver := os.Getenv("SETTINGS_DRIVER"); driver != "" {
		return driver
	}
	return "file"
}

// GetRedisAddr returns the Redis address used by the redis settings driver.
func GetRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "127.0.0.1:6379"
}

// GetGoogleAPIKey returns the Google Fonts Developer API key, if any.
func GetGoogleAPIKey() string {
	return os.Getenv("GOOGLE_FONTS_API_KEY")
}
