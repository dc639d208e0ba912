package model

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
)

// SettingTypeObject marks a JSON-encoded setting value.
const SettingTypeObject = "object"

var _ settings.Store = (*SelectionStore)(nil)

// SelectionStore keeps enabled fonts in the plugin_settings table.
type SelectionStore struct {
	settings PluginSettingsModel
}

// NewSelectionStore creates a SelectionStore backed by m.
func NewSelectionStore(m PluginSettingsModel) *SelectionStore {
	return &SelectionStore{settings: m}
}

// EnabledFonts returns the selection of contextID.
func (s *SelectionStore) EnabledFonts(ctx context.Context, contextID int64) ([]string, error) {
	row, err := s.settings.FindOne(ctx, contextID, font.SettingName)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings.DecodeSelection(row.SettingValue)
}

// SaveEnabledFonts replaces the selection of contextID.
func (s *SelectionStore) SaveEnabledFonts(ctx context.Context, contextID int64, ids []string) error {
	value, err := settings.EncodeSelection(ids)
	if err != nil {
		return err
	}
	return s.settings.Upsert(ctx, &PluginSettings{
		ContextId:    contextID,
		SettingName:  font.SettingName,
		SettingValue: value,
		SettingType:  SettingTypeObject,
	})
}
