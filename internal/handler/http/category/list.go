package category

import (
	"net/http"

	"newsportal/internal/handler/http/respond"
	catUC "newsportal/internal/usecase/category"
)

type ListHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  すべてのカテゴリを名前順で返します
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "カテゴリ一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}
