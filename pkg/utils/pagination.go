package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultPerPage = 50
	MaxPerPage     = 200
)

// ParsePaginationParams lee page y per_page de la query. La paginación es por
// desplazamiento: offset = (page-1)*per_page.
func ParsePaginationParams(values url.Values) (page, perPage, offset uint64) {
	page = 1
	perPage = DefaultPerPage

	if s := values.Get("per_page"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil && v > 0 {
			if v > MaxPerPage {
				perPage = MaxPerPage
			} else {
				perPage = v
			}
		}
	}

	if s := values.Get("page"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil && v > 0 {
			page = v
		}
	}

	offset = (page - 1) * perPage
	return
}

// TotalPages redondea hacia arriba: 25 filas con per_page=10 son 3 páginas.
func TotalPages(total, perPage uint64) uint64 {
	if perPage == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// ParseUintParam devuelve nil cuando el parámetro no viene o no es numérico.
func ParseUintParam(values url.Values, key string) *uint64 {
	s := values.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
