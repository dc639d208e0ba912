// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fetch

import (
	"context"

	"github.com/joeblew999/plat-googlefonts/internal/errorx"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListFetchJobsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFetchJobsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFetchJobsLogic {
	return &ListFetchJobsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFetchJobsLogic) ListFetchJobs(req *types.ListFetchJobsRequest) (resp *types.ListFetchJobsResponse, err error) {
	if l.svcCtx.Queue == nil {
		return &types.ListFetchJobsResponse{Jobs: []types.FetchJobResponse{}}, nil
	}

	jobs, err := l.svcCtx.Queue.List(l.ctx, req.Status, req.Limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list fetch jobs: " + err.Error())
	}

	items := make([]types.FetchJobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, ToJobResponse(job))
	}

	return &types.ListFetchJobsResponse{
		Jobs:  items,
		Count: len(items),
	}, nil
}
