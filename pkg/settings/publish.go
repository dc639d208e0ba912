package settings

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/log"
)

// PublishingStore copies the font files of a journal's selection into the
// journal's public font directory whenever the selection is saved.
type PublishingStore struct {
	Store
	root string
}

var _ Store = (*PublishingStore)(nil)

// NewPublishingStore wraps store so saves publish font files below root.
func NewPublishingStore(store Store, root string) *PublishingStore {
	return &PublishingStore{Store: store, root: root}
}

// SaveEnabledFonts saves ids and publishes their files. A publishing failure
// is logged and does not fail the save.
func (s *PublishingStore) SaveEnabledFonts(ctx context.Context, contextID int64, ids []string) error {
	if err := s.Store.SaveEnabledFonts(ctx, contextID, ids); err != nil {
		return err
	}

	n, err := font.PublishFonts(s.root, contextID, ids)
	if err != nil {
		log.WarnContext(ctx, "Failed to publish font files", "context", contextID, "error", err)
		return nil
	}
	if n > 0 {
		log.InfoContext(ctx, "Font files published", "context", contextID, "files", n)
	}
	return nil
}
