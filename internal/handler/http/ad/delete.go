package ad

import (
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type DeleteHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告削除
// @Summary      広告削除
// @Tags         ads
// @Security     BearerAuth
// @Param        id path int true "広告ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - ad not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads/{id} [delete]
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
