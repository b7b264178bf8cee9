package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tcs := map[string]struct {
		in         PaginateQuery
		want       PaginateQuery
		wantOffset int64
	}{
		"defaults":     {in: PaginateQuery{}, want: PaginateQuery{Page: 1, Limit: DefaultLimit}, wantOffset: 0},
		"third page":   {in: PaginateQuery{Page: 3, Limit: 10}, want: PaginateQuery{Page: 3, Limit: 10}, wantOffset: 20},
		"over limit":   {in: PaginateQuery{Page: 2, Limit: 1000}, want: PaginateQuery{Page: 2, Limit: MaxLimit}, wantOffset: MaxLimit},
		"negative all": {in: PaginateQuery{Page: -4, Limit: -1}, want: PaginateQuery{Page: 1, Limit: DefaultLimit}, wantOffset: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q := tc.in
			q.Adjust()
			assert.Equal(t, tc.want, q)
			assert.Equal(t, tc.wantOffset, q.Offset())
		})
	}
}

func TestToResponse(t *testing.T) {
	resp := Paginator{Total: 31, Count: 10, PerPage: 10, CurrentPage: 2}.ToResponse()
	assert.Equal(t, 4, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := Paginator{Total: 31, Count: 1, PerPage: 10, CurrentPage: 4}.ToResponse()
	assert.False(t, last.HasNext)

	empty := Paginator{}.ToResponse()
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
