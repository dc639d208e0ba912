// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fetch

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetFetchJobLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetFetchJobLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetFetchJobLogic {
	return &GetFetchJobLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetFetchJobLogic) GetFetchJob(req *types.GetFetchJobRequest) (resp *types.FetchJobResponse, err error) {
	if l.svcCtx.Queue == nil {
		return nil, errorx.ErrNotFound("fetch job not found: " + req.Id)
	}

	job, err := l.svcCtx.Queue.Get(l.ctx, req.Id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, errorx.ErrNotFound("fetch job not found: " + req.Id)
	}
	if err != nil {
		return nil, errorx.ErrInternal("failed to get fetch job: " + err.Error())
	}

	r := ToJobResponse(job)
	return &r, nil
}
