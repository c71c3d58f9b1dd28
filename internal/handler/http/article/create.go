package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsportal/internal/handler/http/auth"
	"newsportal/internal/handler/http/respond"
	artUC "newsportal/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。スラッグはタイトルから生成され、著者はトークンのユーザーになります
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body writeRequest true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin or editor role required"
// @Failure      409 {string} string "Conflict - an article with this title already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" || req.Content == "" || req.Excerpt == "" || req.CategoryID == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title, content, excerpt, category_id are required"))
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		FeaturedImage:  req.FeaturedImage,
		CategoryID:     req.CategoryID,
		Tags:           req.Tags,
		AuthorID:       user.AuthorID,
		Status:         req.Status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
