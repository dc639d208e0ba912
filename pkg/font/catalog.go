package font

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/jsonx"
)

// DateLayout is the format of lastModified in the catalog.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// UnmarshalJSON parses a quoted YYYY-MM-DD date. An empty string is the zero date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON writes the date as YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// CatalogEntry describes one font the plugin can offer.
type CatalogEntry struct {
	ID           string   `json:"id"`
	Family       string   `json:"family"`
	Category     string   `json:"category"`
	Subsets      []string `json:"subsets"`
	Variants     []string `json:"variants"`
	Version      string   `json:"version"`
	LastModified Date     `json:"lastModified"`
}

// LoadCatalog reads and decodes the catalog at path inside fsys.
// Either the whole catalog loads or an error matching ErrCatalogUnavailable
// or ErrCatalogMalformed is returned.
func LoadCatalog(fsys fs.FS, path string) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := loadJSONArray(fsys, path, &entries, ErrCatalogUnavailable, ErrCatalogMalformed); err != nil {
		catalogLoads.Inc("error")
		return nil, err
	}

	for i, e := range entries {
		if e.ID == "" {
			catalogLoads.Inc("error")
			return nil, fileError(ErrCatalogMalformed, path, fmt.Errorf("entry %d has no id", i))
		}
	}

	catalogLoads.Inc("ok")
	return entries, nil
}

// CatalogVersion identifies the current content of the catalog file by its
// modification time and size.
func CatalogVersion(fsys fs.FS, path string) (string, error) {
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return "", fileError(ErrCatalogUnavailable, path, err)
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

// FindFont returns the catalog entry with the given id.
func FindFont(catalog []CatalogEntry, id string) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// FontID derives a catalog id from a family name: "Open Sans" becomes "open-sans".
func FontID(family string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(family)), " ", "-")
}

// loadJSONArray reads path and decodes it into v, which must point to a slice.
func loadJSONArray(fsys fs.FS, path string, v any, unavailable, malformed error) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fileError(unavailable, path, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fileError(unavailable, path, errEmptyFile)
	}
	if data[0] != '[' {
		return fileError(malformed, path, errNotArray)
	}
	if !json.Valid(data) {
		return fileError(malformed, path, errInvalidJSON)
	}
	if err := jsonx.Unmarshal(data, v); err != nil {
		return fileError(malformed, path, err)
	}
	return nil
}
