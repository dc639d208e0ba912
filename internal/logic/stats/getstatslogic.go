// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stats

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetStatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatsLogic {
	return &GetStatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStatsLogic) GetStats() (resp *types.StatsResponse, err error) {
	resp = &types.StatsResponse{Jobs: map[string]int{}}

	if catalog, err := l.svcCtx.Plugin.ListFonts(); err == nil {
		resp.Fonts = len(catalog)
	} else {
		l.Errorf("Failed to load font catalog: %v", err)
	}

	if l.svcCtx.Queue != nil {
		stats, err := l.svcCtx.Queue.Stats(l.ctx)
		if err != nil {
			return nil, errorx.ErrInternal("failed to get stats: " + err.Error())
		}
		resp.Jobs = stats
	}

	for _, count := range resp.Jobs {
		resp.Total += count
	}
	return resp, nil
}
