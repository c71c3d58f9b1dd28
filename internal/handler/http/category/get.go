package category

import (
	"net/http"

	"newsportal/internal/handler/http/respond"
	catUC "newsportal/internal/usecase/category"
)

type GetHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ取得（スラッグ）
// @Summary      カテゴリ取得
// @Tags         categories
// @Produce      json
// @Param        slug path string true "カテゴリスラッグ"
// @Success      200 {object} DTO "カテゴリ"
// @Failure      404 {string} string "Not found - category not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cat, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(cat))
}
