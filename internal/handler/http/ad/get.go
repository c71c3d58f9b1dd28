package ad

import (
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type GetHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告取得
// @Summary      広告取得
// @Tags         ads
// @Produce      json
// @Param        id path int true "広告ID"
// @Success      200 {object} DTO "広告"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - ad not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
