package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("DATA_PATH", "/var/lib/fonts")
		t.Setenv("FONT_BUNDLE_PATH", "/opt/bundle")
		t.Setenv("PUBLIC_ROOT", "/srv/www")

		assert.Equal(t, "/var/lib/fonts", GetDataPath())
		assert.Equal(t, "/opt/bundle", GetFontBundlePath())
		assert.Equal(t, "/srv/www", GetPublicRoot())
		assert.Equal(t, "/var/lib/fonts/plat-googlefonts.db", GetDatabasePath())
		assert.Equal(t, "/var/lib/fonts/settings.json", GetSettingsFilePath())
	})

	t.Run("SettingsFromEnvironment", func(t *testing.T) {
		t.Setenv("SETTINGS_DRIVER", "redis")
		t.Setenv("REDIS_ADDR", "cache:6379")
		t.Setenv("GOOGLE_FONTS_API_KEY", "secret")

		assert.Equal(t, "redis", GetSettingsDriver())
		assert.Equal(t, "cache:6379", GetRedisAddr())
		assert.Equal(t, "secret", GetGoogleAPIKey())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATA_PATH", "/data")
		t.Setenv("FONT_BUNDLE_PATH", "")
		t.Setenv("PUBLIC_ROOT", "")

		assert.Equal(t, ".", GetFontBundlePath())
		assert.Equal(t, "/data", GetPublicRoot())
	})

	t.Run("SettingsDefaults", func(t *testing.T) {
		t.Setenv("SETTINGS_DRIVER", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("GOOGLE_FONTS_API_KEY", "")

		assert.Equal(t, "file", GetSettingsDriver())
		assert.Equal(t, "127.0.0.1:6379", GetRedisAddr())
		assert.Empty(t, GetGoogleAPIKey())
	})
}
