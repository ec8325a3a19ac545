package dto

type LoginDTO struct {
	CorreoElectronico string `json:"correo_electronico" validate:"required,email"`
	Password          string `json:"password" validate:"required"`
}

// LoginResponseDTO es el cuerpo de respuesta de /auth/login: token, identidad
// y el mapa completo de permisos del rol, cargado una sola vez al entrar.
type LoginResponseDTO struct {
	Token    string                `json:"token"`
	Usuario  AccesoDTO             `json:"usuario"`
	Permisos map[string]PermisoDTO `json:"permisos"`
}
