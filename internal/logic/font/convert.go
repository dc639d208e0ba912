package font

import (
	"github.com/joeblew999/plat-googlefonts/internal/types"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
)

// ToFontItems converts catalog entries to API items, keeping their order.
func ToFontItems(entries []font.CatalogEntry) []types.FontItem {
	items := make([]types.FontItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, types.FontItem{
			Id:           e.ID,
			Family:       e.Family,
			Category:     e.Category,
			Subsets:      e.Subsets,
			Variants:     e.Variants,
			Version:      e.Version,
			LastModified: e.LastModified.String(),
		})
	}
	return items
}
