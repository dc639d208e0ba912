// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"net/http"

	"github.com/joeblew999/plat-googlefonts/internal/logic/font"
	"github.com/joeblew999/plat-googlefonts/internal/svc"
	"github.com/joeblew999/plat-googlefonts/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetEnabledFontsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetEnabledFontsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := font.NewGetEnabledFontsLogic(r.Context(), svcCtx)
		resp, err := l.GetEnabledFonts(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
