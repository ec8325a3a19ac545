package entities

import "github.com/aarondl/null/v8"

// Usuario es una persona responsable de activos; no es una cuenta de acceso.
type Usuario struct {
	ID           uint64      `json:"id_usuario"`
	NumeroNomina null.String `json:"numero_nomina"`
	Nombre       string      `json:"nombre_usuario"`
	Puesto       null.String `json:"puesto"`
	AreaID       null.Uint64 `json:"area_id"`
}
