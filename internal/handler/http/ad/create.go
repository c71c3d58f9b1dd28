package ad

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsportal/internal/handler/http/respond"
	adUC "newsportal/internal/usecase/ad"
)

type CreateHandler struct{ Svc *adUC.Service }

// ServeHTTP 広告作成
// @Summary      広告作成
// @Description  is_active を省略すると有効として作成されます
// @Tags         ads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        ad body writeRequest true "広告情報"
// @Success      201 {object} DTO "作成された広告"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /ads [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" || req.URL == "" || req.Position == "" || req.StartDate == nil || req.EndDate == nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title, url, position, start_date, end_date are required"))
		return
	}

	start, end := req.window()
	created, err := h.Svc.Create(r.Context(), adUC.CreateInput{
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
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
