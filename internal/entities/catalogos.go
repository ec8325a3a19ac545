package entities

import "github.com/aarondl/null/v8"

type CatArea struct {
	ID          uint64      `json:"id_area"`
	Nombre      string      `json:"nombre_area"`
	Descripcion null.String `json:"descripcion"`
}

type CatTipoActivo struct {
	ID          uint64      `json:"id_tipo_activo"`
	Nombre      string      `json:"nombre_tipo"`
	Descripcion null.String `json:"descripcion"`
}

type CatEstado struct {
	ID          uint64      `json:"id_estado"`
	Nombre      string      `json:"nombre_estado"`
	Descripcion null.String `json:"descripcion"`
	ColorHex    null.String `json:"color_hex"`
}

type CatTipoMobiliario struct {
	ID          uint64      `json:"id_tipo_mobiliario"`
	Nombre      string      `json:"nombre_tipo"`
	Descripcion null.String `json:"descripcion"`
}

type CatRol struct {
	ID          uint64      `json:"id_rol"`
	Nombre      string      `json:"nombre_rol"`
	Descripcion null.String `json:"descripcion"`
	NivelAcceso null.Int    `json:"nivel_acceso"`
}
