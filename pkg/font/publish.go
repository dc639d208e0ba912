package font

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ContextFilesPath returns the public files path of a context, relative to
// the public root: public/site or public/journals/<id>.
func ContextFilesPath(contextID int64) string {
	if contextID == ContextIDNone {
		return SiteFilesPath
	}
	return fmt.Sprintf(ContextFilesPathFormat, contextID)
}

// PublicFontDir returns the directory below root holding the font files of
// contextID. It is the on-disk counterpart of PublicAssetBasePath.
func PublicFontDir(root string, contextID int64) string {
	return filepath.Join(root, filepath.FromSlash(ContextFilesPath(contextID)), PublicFileDir)
}

// PublishFonts copies the downloaded files of ids from the site font
// directory into the font directory of contextID and returns the number of
// files copied. Fonts that were never fetched are skipped. Publishing to the
// site context is a no-op because fetched files already live there.
func PublishFonts(root string, contextID int64, ids []string) (int, error) {
	if contextID == ContextIDNone {
		return 0, nil
	}

	src := PublicFontDir(root, ContextIDNone)
	dst := PublicFontDir(root, contextID)

	var copied int
	for _, id := range ids {
		entries, err := os.ReadDir(filepath.Join(src, id))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("read font directory %s: %w", id, err)
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			ok, err := copyFontFile(filepath.Join(src, id, entry.Name()), filepath.Join(dst, id, entry.Name()))
			if err != nil {
				return copied, err
			}
			if ok {
				copied++
			}
		}
	}
	return copied, nil
}

// copyFontFile copies src to dst unless dst already has the same size.
func copyFontFile(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		return false, err
	}
	if existing, err := os.Stat(dst); err == nil && existing.Size() == info.Size() {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, fmt.Errorf("failed to create font directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return false, fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return false, err
	}
	return true, os.Rename(tmp, dst)
}
