// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFontsLogic {
	return &ListFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFontsLogic) ListFonts() (resp *types.ListFontsResponse, err error) {
	catalog, err := l.svcCtx.Plugin.ListFonts()
	if err != nil {
		l.Errorf("Failed to load font catalog: %v", err)
		return nil, errorx.FromFont(err)
	}

	fonts := ToFontItems(catalog)
	return &types.ListFontsResponse{
		Fonts: fonts,
		Count: len(fonts),
	}, nil
}
