package font

// Resolve returns the catalog entries named by selection, in selection order.
// Ids missing from the catalog are stale references and are dropped.
// A repeated id resolves once, at its first position.
func Resolve(selection []string, catalog []CatalogEntry) []CatalogEntry {
	if len(selection) == 0 || len(catalog) == 0 {
		return []CatalogEntry{}
	}

	byID := make(map[string]CatalogEntry, len(catalog))
	for _, e := range catalog {
		if _, dup := byID[e.ID]; !dup {
			byID[e.ID] = e
		}
	}

	resolved := make([]CatalogEntry, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if e, ok := byID[id]; ok {
			resolved = append(resolved, e)
		}
	}
	return resolved
}

// Unknown returns the ids of selection that are not in the catalog.
func Unknown(selection []string, catalog []CatalogEntry) []string {
	var unknown []string
	for _, id := range selection {
		if _, ok := FindFont(catalog, id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
