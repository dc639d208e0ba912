package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
)

// FileStore keeps selections in a JSON file shaped like
// {"<context id>": {"fonts": ["roboto", "lato"]}}.
// The file is read on every call so edits by other processes are visible.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore at path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// EnabledFonts returns the selection of contextID.
func (s *FileStore) EnabledFonts(_ context.Context, contextID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	ids := data[key(contextID)][font.SettingName]
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

// SaveEnabledFonts replaces the selection of contextID.
func (s *FileStore) SaveEnabledFonts(_ context.Context, contextID int64, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	k := key(contextID)
	if data[k] == nil {
		data[k] = make(map[string][]string)
	}
	data[k][font.SettingName] = ids
	return s.save(data)
}

func key(contextID int64) string {
	return strconv.FormatInt(contextID, 10)
}

// load reads the settings file. A missing file is empty.
func (s *FileStore) load() (map[string]map[string][]string, error) {
	data := make(map[string]map[string][]string)
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	return data, nil
}

// save writes the settings file through a temporary file and rename.
func (s *FileStore) save(data map[string]map[string][]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
