package font

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, bundle fstest.MapFS) (*svc.ServiceContext, *settings.MemoryStore) {
	t.Helper()
	store := settings.NewMemoryStore()
	plugin, err := font.NewPlugin(bundle, store, font.WithBaseURL("https://example.org"))
	require.NoError(t, err)
	return &svc.ServiceContext{Plugin: plugin}, store
}

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"fonts/fonts.json": {Data: []byte(`[
			{"id":"roboto","family":"Roboto","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v30","lastModified":"2022-09-22"},
			{"id":"lato","family":"Lato","category":"sans-serif","subsets":["latin"],"variants":["regular"],"version":"v24","lastModified":"2023-01-10"}
		]`)},
		"fonts/roboto/embed.json": {Data: []byte(`[{"subset":"latin","font":"@font-face{src:url(./fonts/roboto.woff2)}"}]`)},
	}
}

func TestListFonts(t *testing.T) {
	svcCtx, _ := newTestContext(t, testBundle())
	resp, err := NewListFontsLogic(context.Background(), svcCtx).ListFonts()
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Roboto", resp.Fonts[0].Family)
	assert.Equal(t, "2022-09-22", resp.Fonts[0].LastModified)

	svcCtx, _ = newTestContext(t, fstest.MapFS{})
	_, err = NewListFontsLogic(context.Background(), svcCtx).ListFonts()
	var ce *errorx.CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 500, ce.Code)
	assert.Contains(t, ce.Msg, "fonts/fonts.json")
}

func TestSaveAndGetEnabledFonts(t *testing.T) {
	ctx := context.Background()
	svcCtx, store := newTestContext(t, testBundle())

	resp, err := NewSaveEnabledFontsLogic(ctx, svcCtx).SaveEnabledFonts(&types.SaveEnabledFontsRequest{
		ContextId: 4,
		Fonts:     []string{"lato", "roboto"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Fonts, 2)
	assert.Equal(t, "lato", resp.Fonts[0].Id)

	ids, _ := store.EnabledFonts(ctx, 4)
	assert.Equal(t, []string{"lato", "roboto"}, ids)

	got, err := NewGetEnabledFontsLogic(ctx, svcCtx).GetEnabledFonts(&types.GetEnabledFontsRequest{ContextId: 4})
	require.NoError(t, err)
	assert.Equal(t, resp.Fonts, got.Fonts)

	_, err = NewSaveEnabledFontsLogic(ctx, svcCtx).SaveEnabledFonts(&types.SaveEnabledFontsRequest{
		ContextId: 4,
		Fonts:     []string{"papyrus"},
	})
	var ce *errorx.CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.Code)
}

func TestGetFontFace(t *testing.T) {
	ctx := context.Background()
	svcCtx, store := newTestContext(t, testBundle())
	require.NoError(t, store.SaveEnabledFonts(ctx, 0, []string{"roboto"}))

	resp, err := NewGetFontFaceLogic(ctx, svcCtx).GetFontFace(&types.GetFontFaceRequest{ContextId: 0})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/public/site/google-fonts", resp.BasePath)
	assert.Equal(t, "/* latin */\n@font-face{src:url(https://example.org/public/site/google-fonts/roboto.woff2)}", resp.Css)

	// lato has no embed file.
	require.NoError(t, store.SaveEnabledFonts(ctx, 2, []string{"roboto", "lato"}))
	_, err = NewGetFontFaceLogic(ctx, svcCtx).GetFontFace(&types.GetFontFaceRequest{ContextId: 2})
	var ce *errorx.CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 500, ce.Code)
	assert.Contains(t, ce.Msg, "fonts/lato/embed.json")
}
