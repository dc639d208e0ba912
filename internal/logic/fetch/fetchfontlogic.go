// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fetch

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"

	"github.com/zeromicro/go-zero/core/logx"
)

type FetchFontLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFetchFontLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FetchFontLogic {
	return &FetchFontLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FetchFontLogic) FetchFont(req *types.FetchFontRequest) (resp *types.FetchJobResponse, err error) {
	if l.svcCtx.Queue == nil {
		return nil, errorx.ErrInternal("fetch queue is not configured")
	}

	catalog, err := l.svcCtx.Plugin.ListFonts()
	if err != nil {
		return nil, errorx.FromFont(err)
	}
	if _, ok := font.FindFont(catalog, req.FontId); !ok {
		return nil, errorx.ErrNotFound("font not found: " + req.FontId)
	}

	id, err := l.svcCtx.Queue.Enqueue(l.ctx, queue.FetchJob{
		FontID:      req.FontId,
		MaxAttempts: l.svcCtx.Config.Fetch.MaxRetries,
	})
	if err != nil {
		return nil, errorx.ErrInternal("failed to enqueue fetch: " + err.Error())
	}

	job, err := l.svcCtx.Queue.Get(l.ctx, id)
	if err != nil {
		return nil, errorx.ErrInternal("failed to read fetch job: " + err.Error())
	}
	r := ToJobResponse(job)
	return &r, nil
}
