package bd

import (
	sq "github.com/Masterminds/squirrel"
)

// Psql es el builder base con placeholders $1, $2, ... de PostgreSQL.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListParams reúne los predicados de un listado: igualdades opcionales,
// búsqueda por subcadena sobre un conjunto fijo de columnas y paginación.
type ListParams struct {
	Eq            map[string]interface{}
	Search        string
	SearchColumns []string
	OrderBy       string
	Limit         uint64
	Offset        uint64
}

// ApplyListParams aplica los predicados al builder. Los valores nil en Eq se
// omiten (el filtro es una conjunción de predicados opcionales).
func ApplyListParams(builder sq.SelectBuilder, p ListParams) sq.SelectBuilder {
	builder = ApplyFilters(builder, p)

	if p.OrderBy != "" {
		builder = builder.OrderBy(p.OrderBy)
	}
	if p.Limit > 0 {
		builder = builder.Limit(p.Limit).Offset(p.Offset)
	}

	return builder
}

// ApplyFilters aplica solo igualdades y búsqueda; lo usa la consulta COUNT,
// que comparte predicados con el listado pero no ordena ni pagina.
func ApplyFilters(builder sq.SelectBuilder, p ListParams) sq.SelectBuilder {
	for col, val := range p.Eq {
		if val == nil {
			continue
		}
		builder = builder.Where(sq.Eq{col: val})
	}

	if p.Search != "" && len(p.SearchColumns) > 0 {
		pattern := "%" + p.Search + "%"
		or := sq.Or{}
		for _, col := range p.SearchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		builder = builder.Where(or)
	}

	return builder
}
