package entities

import "inventario-iuca/internal/authz"

// Permiso es la fila (rol, módulo) con sus banderas de capacidad. Única por
// (rol_id, modulo).
type Permiso struct {
	ID     uint64              `json:"id_permiso"`
	RolID  uint64              `json:"rol_id"`
	Modulo string              `json:"modulo"`
	Flags  authz.PermissionSet `json:"-"`
}
