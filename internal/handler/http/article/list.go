package article

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsportal/internal/common/pagination"
	"newsportal/internal/handler/http/respond"
	"newsportal/internal/observability/logging"
	artUC "newsportal/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 公開記事一覧取得
// @Summary      公開記事一覧（ページネーション対応）
// @Description  公開済みの記事を公開日時の新しい順に返します。カテゴリ（スラッグ）と全文検索で絞り込めます。不正なページ番号・件数は既定値に置き換えられます。
// @Tags         articles
// @Produce      json
// @Param        page      query  int     false  "ページ番号 (1-based)" default(1)
// @Param        limit     query  int     false  "1ページあたりの件数" default(10) maximum(100)
// @Param        category  query  string  false  "カテゴリのスラッグ（存在しない場合は無視）"
// @Param        search    query  string  false  "タイトル・本文・タグの全文検索"
// @Success      200 {object} pagination.Response[DTO] "ページネーション付き記事一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	base := h.Logger
	if base == nil {
		base = slog.Default()
	}
	logger := logging.ForRequest(ctx, base)

	params := pagination.FromRequest(r, h.PaginationCfg)
	q := r.URL.Query()
	filters := artUC.ListFilters{
		CategorySlug: q.Get("category"),
		Search:       q.Get("search"),
	}

	result, err := h.Svc.ListPublished(ctx, filters, params)
	if err != nil {
		kind := "database"
		if errors.Is(err, context.DeadlineExceeded) {
			kind = "timeout"
		}
		pagination.CountError(kind)
		logger.Error("list articles failed",
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit),
			slog.String("error_kind", kind),
			slog.Any("error", err))
		respond.DomainError(w, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTOWithRefs(item))
	}

	pagination.ObserveRequest(http.StatusOK, params.Page)
	pagination.ObserveDuration("handler", time.Since(start))
	if filters.CategorySlug == "" && filters.Search == "" {
		pagination.SetPublishedTotal(result.Pagination.Total)
	}
	logger.Debug("articles listed",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int("returned", len(dtos)),
		slog.Int64("total", result.Pagination.Total))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
