package article

import (
	"net/http"

	"newsportal/internal/handler/http/respond"
	artUC "newsportal/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得（スラッグ）
// @Summary      記事詳細取得
// @Description  スラッグで記事を取得します（カテゴリと著者を含む）。取得するたびに閲覧数が 1 増えます
// @Tags         articles
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Success      200 {object} DTO "記事詳細"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOWithRefs(*item))
}
