package category

import (
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	catUC "newsportal/internal/usecase/category"
)

type DeleteHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ削除
// @Summary      カテゴリ削除
// @Description  記事が参照しているカテゴリは削除できません (409)
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "カテゴリID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - category not found"
// @Failure      409 {string} string "Conflict - category is in use"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
