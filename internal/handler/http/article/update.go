package article

import (
	"encoding/json"
	"net/http"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/respond"
	artUC "newsportal/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  記事を更新します。空のフィールドは既存の値を保持します。タイトルが変わった場合のみスラッグを再生成します
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body writeRequest true "更新内容"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin or editor role required"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - an article with this title already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{id} [put]
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

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:             id,
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		FeaturedImage:  req.FeaturedImage,
		CategoryID:     req.CategoryID,
		Tags:           req.Tags,
		Status:         req.Status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
