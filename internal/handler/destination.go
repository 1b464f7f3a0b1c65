package handler

import (
	"net/http"

	"github.com/wanderhq/wander/backend/internal/domain"
)

// ListDestinations handles GET /api/destinations.
//
// Query parameters: category (or "all"), q (free-text search), page, limit,
// sort (popular|rating|price-low|price-high). Every parameter is optional and
// malformed values degrade to defaults instead of erroring — the leniency is
// part of the API contract, not an oversight.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domain.NewListParams(
		q.Get("category"),
		q.Get("q"),
		q.Get("page"),
		q.Get("limit"),
		q.Get("sort"),
	)

	page, err := s.destinations.List(r.Context(), params)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}
