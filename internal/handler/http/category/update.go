package category

import (
	"encoding/json"
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	catUC "newsportal/internal/usecase/category"
)

type UpdateHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ更新
// @Summary      カテゴリ更新
// @Description  空のフィールドは既存の値を保持します。名前が変わった場合のみスラッグを再生成します
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "カテゴリID"
// @Param        category body writeRequest true "更新内容"
// @Success      200 {object} DTO "更新後のカテゴリ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - category not found"
// @Failure      409 {string} string "Conflict - category already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories/{id} [put]
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

	cat, err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:             id,
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
	respond.JSON(w, http.StatusOK, toDTO(cat))
}
