package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"newsportal/internal/handler/http/respond"
	catUC "newsportal/internal/usecase/category"
)

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ作成
// @Summary      カテゴリ作成
// @Description  カテゴリを作成します。スラッグは名前から生成されます
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body writeRequest true "カテゴリ情報"
// @Success      201 {object} DTO "作成されたカテゴリ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      409 {string} string "Conflict - category already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	cat, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:           req.Name,
		Description:    req.Description,
		FeaturedImage:  req.FeaturedImage,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(cat))
}
