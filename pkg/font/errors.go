package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for bundle file failures.
var (
	// ErrCatalogUnavailable is returned when the catalog file is missing, unreadable or empty.
	ErrCatalogUnavailable = errors.New("font catalog unavailable")

	// ErrCatalogMalformed is returned when the catalog is not a JSON array of fonts.
	ErrCatalogMalformed = errors.New("font catalog malformed")

	// ErrEmbedFileUnavailable is returned when a font's embed file is missing, unreadable or empty.
	ErrEmbedFileUnavailable = errors.New("embed file unavailable")

	// ErrEmbedFileMalformed is returned when a font's embed file is not a JSON array of rules.
	ErrEmbedFileMalformed = errors.New("embed file malformed")

	// ErrUnknownFont is returned when a selection names a font that is not in the catalog.
	ErrUnknownFont = errors.New("unknown font")
)

// FileError reports a failure to load one of the bundled JSON files.
// errors.Is matches both Kind and the underlying cause.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case ErrCatalogMalformed, ErrEmbedFileMalformed:
		return fmt.Sprintf("Failed to decode `%s`. The file is not valid JSON: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("Unable to load the `%s` file: %v", e.Path, e.Err)
	}
}

// Unwrap returns the error kind and the cause.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fileError(kind error, path string, err error) error {
	return &FileError{Kind: kind, Path: path, Err: err}
}

// errEmptyFile is the cause recorded when a bundle file has no content.
var errEmptyFile = errors.New("file is empty")

// errNotArray is the cause recorded when a bundle file decodes to null.
var errNotArray = errors.New("expected a JSON array")

// errInvalidJSON is the cause recorded when a bundle file holds anything
// other than exactly one JSON value.
var errInvalidJSON = errors.New("invalid JSON")
