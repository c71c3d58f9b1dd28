package category

import (
	"net/http"

	"newsportal/internal/handler/http/auth"
	catUC "newsportal/internal/usecase/category"
)

// Register registers the category routes. Writes are admin-only.
func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET /categories", ListHandler{svc})
	mux.Handle("GET /categories/{slug}", GetHandler{svc})

	mux.Handle("POST /categories", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT /categories/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /categories/{id}", auth.Authz(DeleteHandler{svc}))
}
