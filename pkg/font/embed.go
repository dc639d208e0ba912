package font

import (
	"fmt"
	"io/fs"
	"strings"
)

// EmbedRule is one subset's @font-face block for a font.
type EmbedRule struct {
	Subset string `json:"subset"`
	Font   string `json:"font"`
}

// EmbedFilePath returns the bundle-relative path of a font's embed rules.
func EmbedFilePath(id string) string {
	return fmt.Sprintf(EmbedFileTemplate, id)
}

// LoadEmbedRules reads the embed rules of the font with the given id.
func LoadEmbedRules(fsys fs.FS, id string) ([]EmbedRule, error) {
	path := EmbedFilePath(id)
	var rules []EmbedRule
	if err := loadJSONArray(fsys, path, &rules, ErrEmbedFileUnavailable, ErrEmbedFileMalformed); err != nil {
		return nil, err
	}
	for i, rule := range rules {
		if rule.Subset == "" || rule.Font == "" {
			return nil, fileError(ErrEmbedFileMalformed, path, fmt.Errorf("rule %d needs a subset and a font", i))
		}
	}
	return rules, nil
}

// BuildCSS concatenates the @font-face rules of fonts, in order, rewriting the
// ./fonts placeholder to basePath. Each rule is preceded by a comment naming
// its subset.
//
// The result is all or nothing: if any font's embed file cannot be loaded the
// error is returned and no CSS is produced for the other fonts.
func BuildCSS(fsys fs.FS, fonts []CatalogEntry, basePath string) (string, error) {
	if len(fonts) == 0 {
		return "", nil
	}

	var lines []string
	for _, f := range fonts {
		rules, err := LoadEmbedRules(fsys, f.ID)
		if err != nil {
			return "", err
		}
		for _, rule := range rules {
			lines = append(lines,
				"/* "+rule.Subset+" */",
				strings.ReplaceAll(rule.Font, PlaceholderPrefix, basePath),
			)
		}
	}
	return strings.Join(lines, "\n"), nil
}
