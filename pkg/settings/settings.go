// Package settings stores the fonts enabled per context.
//
// Every store keeps the selection under the (context id, "fonts") key as an
// ordered JSON array of font ids. An unset key reads as an empty selection.
package settings

import (
	"fmt"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/zeromicro/go-zero/core/jsonx"
)

// Store reads and writes enabled font selections.
type Store interface {
	font.SelectionStore
	font.SelectionWriter
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*RedisStore)(nil)
)

// EncodeSelection renders ids as the stored JSON array. A nil selection is stored as [].
func EncodeSelection(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	s, err := jsonx.MarshalToString(ids)
	if err != nil {
		return "", fmt.Errorf("encode selection: %w", err)
	}
	return s, nil
}

// DecodeSelection parses a stored JSON array of ids. An empty value is an empty selection.
func DecodeSelection(value string) ([]string, error) {
	if value == "" {
		return []string{}, nil
	}
	var ids []string
	if err := jsonx.UnmarshalFromString(value, &ids); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
