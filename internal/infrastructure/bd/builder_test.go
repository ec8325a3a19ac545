package bd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyListParams(t *testing.T) {
	base := Psql.Select("id, nombre_activo").From("equipos_computo")

	t.Run("igualdades y búsqueda", func(t *testing.T) {
		sql, args, err := ApplyListParams(base, ListParams{
			Eq:            map[string]interface{}{"estado_id": uint64(2)},
			Search:        "lenovo",
			SearchColumns: []string{"nombre_activo", "marca"},
			OrderBy:       "id DESC",
			Limit:         10,
			Offset:        20,
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "estado_id = $1")
		assert.Contains(t, sql, "nombre_activo ILIKE $2")
		assert.Contains(t, sql, "marca ILIKE $3")
		assert.Contains(t, sql, "ORDER BY id DESC")
		assert.Contains(t, sql, "LIMIT 10")
		assert.Contains(t, sql, "OFFSET 20")
		assert.Equal(t, []interface{}{uint64(2), "%lenovo%", "%lenovo%"}, args)
	})

	t.Run("sin predicados", func(t *testing.T) {
		sql, args, err := ApplyListParams(base, ListParams{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, nombre_activo FROM equipos_computo", sql)
		assert.Empty(t, args)
	})

	t.Run("valores nil se omiten", func(t *testing.T) {
		sql, _, err := ApplyFilters(base, ListParams{
			Eq: map[string]interface{}{"estado_id": nil},
		}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "estado_id")
	})
}
