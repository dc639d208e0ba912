package font

import (
	"context"
	"testing/fstest"
	"time"
)

const testCatalog = `[
  {"id":"roboto","family":"Roboto","category":"sans-serif","subsets":["latin","latin-ext"],"variants":["regular","700"],"version":"v30","lastModified":"2022-09-22"},
  {"id":"lato","family":"Lato","category":"sans-serif","subsets":["latin"],"variants":["regular","italic"],"version":"v24","lastModified":"2023-01-10"},
  {"id":"open-sans","family":"Open Sans","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v35","lastModified":"2023-04-27"}
]`

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"fonts/fonts.json": {Data: []byte(testCatalog), ModTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		"fonts/roboto/embed.json": {Data: []byte(`[
  {"subset":"latin","font":"@font-face{src:url(./fonts/roboto.woff2)}"}
]`)},
		"fonts/lato/embed.json": {Data: []byte(`[
  {"subset":"latin-ext","font":"@font-face{font-family:'Lato';src:url(./fonts/lato/lato-ext.woff2) format('woff2')}"},
  {"subset":"latin","font":"@font-face{font-family:'Lato';src:url(./fonts/lato/lato.woff2) format('woff2')}"}
]`)},
	}
}

// memoryStore is a minimal SelectionStore for tests.
type memoryStore struct {
	fonts map[int64][]string
	err   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{fonts: make(map[int64][]string)}
}

func (s *memoryStore) EnabledFonts(_ context.Context, contextID int64) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fonts[contextID], nil
}

func (s *memoryStore) SaveEnabledFonts(_ context.Context, contextID int64, ids []string) error {
	s.fonts[contextID] = ids
	return nil
}

// readOnlyStore has no write path.
type readOnlyStore struct{}

func (readOnlyStore) EnabledFonts(context.Context, int64) ([]string, error) {
	return nil, nil
}

func ids(entries []CatalogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
