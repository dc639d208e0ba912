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

type SaveEnabledFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveEnabledFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveEnabledFontsLogic {
	return &SaveEnabledFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SaveEnabledFontsLogic) SaveEnabledFonts(req *types.SaveEnabledFontsRequest) (resp *types.EnabledFontsResponse, err error) {
	if err := l.svcCtx.Plugin.SaveEnabledFonts(l.ctx, req.ContextId, req.Fonts); err != nil {
		return nil, errorx.FromFont(err)
	}

	l.Infow("Enabled fonts updated", logx.Field("context", req.ContextId), logx.Field("fonts", req.Fonts))
	return &types.EnabledFontsResponse{
		ContextId: req.ContextId,
		Fonts:     ToFontItems(l.svcCtx.Plugin.ResolveEnabledFonts(l.ctx, req.ContextId)),
	}, nil
}
