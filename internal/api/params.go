package api

import (
	"net/http"
	"strconv"

	"github.com/shelfmarkapp/shelfmark-server/internal/apperr"
	"github.com/shelfmarkapp/shelfmark-server/internal/search"
)

// listParams carries the parsed query string of a list request.
type listParams struct {
	Query string
	Page  int
	Limit int
}

// parseListParams reads q, _page, and _limit from the query string.
// _page and _limit must parse as integers when supplied; values below 1
// fall back to the defaults, and _limit is capped so a single request
// cannot pull the whole catalog into one response.
func parseListParams(r *http.Request) (listParams, error) {
	params := listParams{
		Query: r.URL.Query().Get("q"),
		Page:  1,
		Limit: search.DefaultLimit,
	}

	if raw := r.URL.Query().Get("_page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return listParams{}, apperr.InvalidPagination("Invalid pagination values")
		}
		if page >= 1 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return listParams{}, apperr.InvalidPagination("Invalid pagination values")
		}
		if limit >= 1 {
			params.Limit = limit
		}
	}
	if params.Limit > search.MaxLimit {
		params.Limit = search.MaxLimit
	}

	return params, nil
}
