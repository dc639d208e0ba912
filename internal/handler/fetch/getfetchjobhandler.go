// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fetch

import (
	"net/http"

	"github.com/joeblew999/plat-googlefonts/internal/logic/fetch"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetFetchJobHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetFetchJobRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := fetch.NewGetFetchJobLogic(r.Context(), svcCtx)
		resp, err := l.GetFetchJob(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
