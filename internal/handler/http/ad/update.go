package ad

import (
	"encoding/json"
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type UpdateHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告更新
// @Summary      広告更新
// @Description  省略したフィールドは既存の値を保持します。クリック数・インプレッション数は変更されません
// @Tags         ads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "広告ID"
// @Param        ad body writeRequest true "更新内容"
// @Success      200 {object} DTO "更新後の広告"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - ad not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	start, end := req.window()
	updated, err := h.Svc.Update(r.Context(), adUC.UpdateInput{
		ID:        id,
		Title:     req.Title,
		Image:     req.Image,
		URL:       req.URL,
		Position:  req.Position,
		StartDate: start,
		EndDate:   end,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
