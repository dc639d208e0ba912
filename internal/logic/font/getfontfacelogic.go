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

type GetFontFaceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetFontFaceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetFontFaceLogic {
	return &GetFontFaceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetFontFaceLogic) GetFontFace(req *types.GetFontFaceRequest) (resp *types.GetFontFaceResponse, err error) {
	css, err := l.svcCtx.Plugin.BuildFontFaceCSS(l.ctx, req.ContextId)
	if err != nil {
		l.Errorf("Failed to build font-face css for context %d: %v", req.ContextId, err)
		return nil, errorx.FromFont(err)
	}

	return &types.GetFontFaceResponse{
		ContextId: req.ContextId,
		BasePath:  l.svcCtx.Plugin.PublicAssetBasePath(req.ContextId),
		Css:       css,
	}, nil
}
