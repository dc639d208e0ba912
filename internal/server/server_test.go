package server

import (
	"testing"
	"time"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/stretchr/testify/assert"
)

func TestFontSummaries(t *testing.T) {
	entries := []font.CatalogEntry{{
		ID:           "roboto",
		Family:       "Roboto",
		Category:     "sans-serif",
		Subsets:      []string{"latin"},
		Variants:     []string{"regular", "700"},
		Version:      "v30",
		LastModified: font.Date{Time: time.Date(2022, 9, 22, 0, 0, 0, 0, time.UTC)},
	}}

	got := fontSummaries(entries)
	assert.Len(t, got, 1)
	assert.Equal(t, "roboto", got[0]["id"])
	assert.Equal(t, "2022-09-22", got[0]["lastModified"])
	assert.Equal(t, []string{"regular", "700"}, got[0]["variants"])

	assert.NotNil(t, fontSummaries(nil))
	assert.Empty(t, fontSummaries(nil))
}

func TestNewFetchServiceWorkers(t *testing.T) {
	assert.Equal(t, 1, newFetchService(nil, 0).workers)
	assert.Equal(t, 4, newFetchService(nil, 4).workers)
}
