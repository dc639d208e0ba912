// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetEnabledFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetEnabledFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetEnabledFontsLogic {
	return &GetEnabledFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetEnabledFontsLogic) GetEnabledFonts(req *types.GetEnabledFontsRequest) (resp *types.EnabledFontsResponse, err error) {
	return &types.EnabledFontsResponse{
		ContextId: req.ContextId,
		Fonts:     ToFontItems(l.svcCtx.Plugin.ResolveEnabledFonts(l.ctx, req.ContextId)),
	}, nil
}
