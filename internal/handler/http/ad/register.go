package ad

import (
	"net/http"

	"newsportal/internal/handler/http/auth"
	adUC "newsportal/internal/usecase/ad"
)

// Register registers the advertisement routes. Listing, reading and the
// click beacon are public; writes are admin-only.
func Register(mux *http.ServeMux, svc *adUC.Service) {
	mux.Handle("GET /ads", ListHandler{svc})
	mux.Handle("GET /ads/{id}", GetHandler{svc})
	mux.Handle("POST /ads/{id}/click", ClickHandler{svc})

	mux.Handle("POST /ads", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT /ads/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /ads/{id}", auth.Authz(DeleteHandler{svc}))
}
