// Package pagination provides the offset window computation shared by every
// list endpoint. Pagination is cursor-less: clients pass page and limit query
// parameters and the helper turns them into a (skip, take) window.
package pagination

import (
	"net/http"
	"strconv"
)

// Defaults applied when the query string omits page or limit.
const (
	DefaultPage  = 1
	DefaultLimit = 2
)

// Window is an offset window over an ordered result set.
type Window struct {
	Skip int
	Take int
}

// Paginate converts a (page, limit) pair into an offset window.
// Values below 1 are floored to 1. No upper bound is applied to limit;
// capping is deliberately left to callers and none of them do it today.
func Paginate(page, limit int) Window {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return Window{
		Skip: (page - 1) * limit,
		Take: limit,
	}
}

// FromRequest reads page and limit from the request query string, applying the
// defaults when a parameter is missing or not a number.
func FromRequest(r *http.Request) (page, limit int) {
	page = queryInt(r, "page", DefaultPage)
	limit = queryInt(r, "limit", DefaultLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return page, limit
}

// TotalPages returns the number of pages needed to cover total items at the
// given limit, i.e. ceil(total/limit). Zero items means zero pages.
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = 1
	}
	return (total + limit - 1) / limit
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
