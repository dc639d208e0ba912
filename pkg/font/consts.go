package font

const (
	// CatalogFile is the bundle-relative path of the font catalog.
	CatalogFile = "fonts/fonts.json"

	// EmbedFileTemplate is the bundle-relative path of a font's embed rules.
	// The single %s verb is replaced by the font id.
	EmbedFileTemplate = "fonts/%s/embed.json"

	// PublicFileDir is the directory, below a context's public files path,
	// that holds the font files referenced by the embed rules.
	PublicFileDir = "google-fonts"

	// SettingName is the plugin setting under which enabled font ids are stored.
	SettingName = "fonts"

	// PlaceholderPrefix is the relative path prefix used by embed rules.
	PlaceholderPrefix = "./fonts"

	// ContextIDNone identifies the whole site rather than a journal.
	ContextIDNone int64 = 0

	// SiteFilesPath is the public files path of the site.
	SiteFilesPath = "public/site"

	// ContextFilesPathFormat is the public files path of a journal.
	ContextFilesPathFormat = "public/journals/%d"
)

const (
	// GoogleFontsAPI is the base URL for Google Fonts CSS API
	GoogleFontsAPI = "https://fonts.googleapis.com/css2"

	// GoogleWebfontsAPI is the Google Fonts Developer API listing every family.
	GoogleWebfontsAPI = "https://www.googleapis.com/webfonts/v1/webfonts"

	// ModernUserAgent makes the CSS API answer with woff2 sources.
	ModernUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)
