package dto

type PermisoDTO struct {
	ID              uint64 `json:"id_permiso"`
	RolID           uint64 `json:"rol_id"`
	Modulo          string `json:"modulo"`
	PuedeCrear      bool   `json:"puede_crear"`
	PuedeLeer       bool   `json:"puede_leer"`
	PuedeActualizar bool   `json:"puede_actualizar"`
	PuedeEliminar   bool   `json:"puede_eliminar"`
	PuedeExportar   bool   `json:"puede_exportar"`
}
