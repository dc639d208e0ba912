// Package cli implements the googlefonts command-line interface.
//
// The commands inspect the bundled catalog, edit the fonts enabled for a site
// or journal, print the @font-face CSS that would be injected into its pages
// and fetch new fonts from Google Fonts into the bundle.
//
// # Commands
//
//   - list: Print the bundled catalog
//   - enabled: Print the fonts enabled for a context
//   - enable: Replace the fonts enabled for a context
//   - css: Print the @font-face CSS of a context
//   - fetch-catalog: Download the catalog from the Google Fonts Developer API
//   - fetch: Download font files and embed rules, or queue them for the server
//
// # Settings
//
// Enabled fonts are read from the same stores as the server, selected with
// --settings (file, sqlite, redis or memory) or SETTINGS_DRIVER.
package cli
