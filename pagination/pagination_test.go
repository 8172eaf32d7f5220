package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		page, limit int
		skip, take  int
	}{
		{1, 2, 0, 2},
		{2, 2, 2, 2},
		{3, 2, 4, 2},
		{1, 50, 0, 50},
		{10, 7, 63, 7},
		// floors
		{0, 2, 0, 2},
		{-3, 5, 0, 5},
		{2, 0, 1, 1},
	}
	for _, tc := range cases {
		w := Paginate(tc.page, tc.limit)
		assert.Equal(t, tc.skip, w.Skip, "page=%d limit=%d", tc.page, tc.limit)
		assert.Equal(t, tc.take, w.Take, "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestFromRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts", nil)
	page, limit := FromRequest(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 2, limit)

	r = httptest.NewRequest("GET", "/posts?page=4&limit=10", nil)
	page, limit = FromRequest(r)
	assert.Equal(t, 4, page)
	assert.Equal(t, 10, limit)

	// Garbage falls back to defaults, negatives get floored.
	r = httptest.NewRequest("GET", "/posts?page=abc&limit=-1", nil)
	page, limit = FromRequest(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, limit)
}

func TestTotalPages(t *testing.T) {
	// 5 users at limit 2: page 3 holds the 5th user, page 4 is beyond the end.
	assert.Equal(t, 3, TotalPages(5, 2))
	w := Paginate(3, 2)
	assert.Equal(t, 4, w.Skip)
	assert.Equal(t, 2, w.Take)

	assert.Equal(t, 0, TotalPages(0, 2))
	assert.Equal(t, 1, TotalPages(1, 2))
	assert.Equal(t, 1, TotalPages(2, 2))
	assert.Equal(t, 2, TotalPages(3, 2))
	assert.Equal(t, 5, TotalPages(5, 1))
}
