package ad

import (
	"net/http"

	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type ListHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告一覧取得
// @Summary      広告一覧取得
// @Description  position を指定すると、その枠で現在配信可能な広告を新しい順に返し、インプレッションを記録します。指定しない場合は有効フラグの立った広告をすべて返します（インプレッションは記録しません）
// @Tags         ads
// @Produce      json
// @Param        position query string false "掲載位置" Enums(header, sidebar, content, footer)
// @Success      200 {array} DTO "広告一覧"
// @Failure      400 {string} string "Bad request - invalid position"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Svc.List(r.Context(), r.URL.Query().Get("position"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(ads))
	for _, a := range ads {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
