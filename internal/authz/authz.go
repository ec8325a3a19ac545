package authz

// Capability is one unit of permission granularity inside a module.
type Capability int

const (
	Crear Capability = iota
	Leer
	Actualizar
	Eliminar
	Exportar
)

func (c Capability) String() string {
	switch c {
	case Crear:
		return "crear"
	case Leer:
		return "leer"
	case Actualizar:
		return "actualizar"
	case Eliminar:
		return "eliminar"
	case Exportar:
		return "exportar"
	}
	return "desconocida"
}

// Módulos con permisos propios. Un módulo es un ámbito de permisos con
// nombre, independiente de la estructura de URLs.
const (
	ModuloComputo    = "computo"
	ModuloMobiliario = "mobiliario"
	ModuloUsuarios   = "usuarios"
	ModuloHistorial  = "historial"
)

// PermissionSet holds the capability flags of one (rol, módulo) row.
type PermissionSet struct {
	Crear      bool `json:"puede_crear"`
	Leer       bool `json:"puede_leer"`
	Actualizar bool `json:"puede_actualizar"`
	Eliminar   bool `json:"puede_eliminar"`
	Exportar   bool `json:"puede_exportar"`
}

func (p PermissionSet) Allows(c Capability) bool {
	switch c {
	case Crear:
		return p.Crear
	case Leer:
		return p.Leer
	case Actualizar:
		return p.Actualizar
	case Eliminar:
		return p.Eliminar
	case Exportar:
		return p.Exportar
	}
	return false
}

// PermissionMap maps módulo → flags for one role. Absence of a module key
// denies everything on that module.
type PermissionMap map[string]PermissionSet

func (m PermissionMap) Allows(modulo string, c Capability) bool {
	set, ok := m[modulo]
	if !ok {
		return false
	}
	return set.Allows(c)
}
