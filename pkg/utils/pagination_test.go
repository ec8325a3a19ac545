package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, perPage, offset := ParsePaginationParams(url.Values{})
		assert.Equal(t, uint64(1), page)
		assert.Equal(t, uint64(DefaultPerPage), perPage)
		assert.Equal(t, uint64(0), offset)
	})

	t.Run("page 2 per_page 10", func(t *testing.T) {
		v := url.Values{"page": {"2"}, "per_page": {"10"}}
		page, perPage, offset := ParsePaginationParams(v)
		assert.Equal(t, uint64(2), page)
		assert.Equal(t, uint64(10), perPage)
		assert.Equal(t, uint64(10), offset)
	})

	t.Run("per_page acotado al máximo", func(t *testing.T) {
		v := url.Values{"per_page": {"9999"}}
		_, perPage, _ := ParsePaginationParams(v)
		assert.Equal(t, uint64(MaxPerPage), perPage)
	})

	t.Run("valores basura se ignoran", func(t *testing.T) {
		v := url.Values{"page": {"abc"}, "per_page": {"-3"}}
		page, perPage, _ := ParsePaginationParams(v)
		assert.Equal(t, uint64(1), page)
		assert.Equal(t, uint64(DefaultPerPage), perPage)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, uint64(3), TotalPages(25, 10))
	assert.Equal(t, uint64(1), TotalPages(10, 10))
	assert.Equal(t, uint64(0), TotalPages(0, 10))
	assert.Equal(t, uint64(0), TotalPages(5, 0))
}

func TestParseUintParam(t *testing.T) {
	v := url.Values{"estado_id": {"4"}, "malo": {"x"}}

	got := ParseUintParam(v, "estado_id")
	if assert.NotNil(t, got) {
		assert.Equal(t, uint64(4), *got)
	}
	assert.Nil(t, ParseUintParam(v, "malo"))
	assert.Nil(t, ParseUintParam(v, "ausente"))
}
