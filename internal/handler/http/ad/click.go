package ad

import (
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type ClickHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告クリック記録
// @Summary      広告クリック記録
// @Description  クリック数を 1 増やします
// @Tags         ads
// @Param        id path int true "広告ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - ad not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads/{id}/click [post]
func (h ClickHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.RecordClick(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
