package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	p := NormalizePagination(0, -5)
	assert.Equal(t, DefaultPageLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = NormalizePagination(500, 40)
	assert.Equal(t, MaxPageLimit, p.Limit)
	assert.Equal(t, 40, p.Offset)

	p = NormalizePagination(10, 20)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 20, p.Offset)
}

func TestHasMore(t *testing.T) {
	p := Pagination{Limit: 10, Offset: 0}
	assert.True(t, p.HasMore(11))
	assert.False(t, p.HasMore(10))
	assert.False(t, p.HasMore(0))

	p = Pagination{Limit: 10, Offset: 10}
	assert.False(t, p.HasMore(20))
	assert.True(t, p.HasMore(21))
}

func TestPaginateSliceCoversEveryRecordExactlyOnce(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	var seen []int
	p := Pagination{Limit: 10, Offset: 0}
	for {
		page, more := PaginateSlice(items, p)
		seen = append(seen, page...)
		if !more {
			break
		}
		p.Offset += p.Limit
	}

	// No record skipped or duplicated across pages of a static sequence.
	assert.Equal(t, items, seen)
}

func TestPaginateSliceBeyondEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page, more := PaginateSlice(items, Pagination{Limit: 10, Offset: 5})
	assert.Empty(t, page)
	assert.False(t, more)
}

func TestPaginateSlicePartialLastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, more := PaginateSlice(items, Pagination{Limit: 2, Offset: 4})
	assert.Equal(t, []int{5}, page)
	assert.False(t, more)
}
