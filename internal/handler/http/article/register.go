package article

import (
	"log/slog"
	"net/http"

	"newsportal/internal/common/pagination"
	"newsportal/internal/handler/http/auth"
	artUC "newsportal/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Reads are public; create, update and delete go through the auth middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/{slug}", GetHandler{svc})

	mux.Handle("POST /articles", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT /articles/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", auth.Authz(DeleteHandler{svc}))
}
