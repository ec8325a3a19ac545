package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/repositories"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/service"
	"inventario-iuca/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	GetAccesoView(ctx context.Context, accesoID uint64) (*dto.AccesoDTO, error)
}

type authService struct {
	accesoRepo  repositories.AccesoRepositoryInterface
	permisoRepo repositories.PermisoRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	accesoRepo repositories.AccesoRepositoryInterface,
	permisoRepo repositories.PermisoRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &authService{
		accesoRepo:  accesoRepo,
		permisoRepo: permisoRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login responde con el mismo error tanto si el correo no existe como si la
// contraseña no coincide.
func (s *authService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	acceso, err := s.accesoRepo.FindAccesoByCorreo(ctx, payload.CorreoElectronico)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoEncontrado) {
			return nil, apperrors.ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := utils.ComparePasswords(acceso.ContrasenaHash, payload.Password); err != nil {
		return nil, apperrors.ErrCredencialesInvalidas
	}

	token, err := s.jwtService.GenerateToken(acceso.ID)
	if err != nil {
		return nil, err
	}

	if err := s.accesoRepo.ActualizarUltimoAcceso(ctx, acceso.ID); err != nil {
		s.logger.Warn("no se pudo actualizar ultimo_acceso", zap.Uint64("acceso_id", acceso.ID), zap.Error(err))
	}

	vista, err := s.accesoRepo.GetAccesoView(ctx, acceso.ID)
	if err != nil {
		return nil, err
	}

	permisos := make(map[string]dto.PermisoDTO)
	if acceso.RolID.Valid {
		lista, err := s.permisoRepo.GetPermisosPorRol(ctx, acceso.RolID.Uint64)
		if err != nil {
			return nil, err
		}
		for _, p := range lista {
			permisos[p.Modulo] = p
		}
	}

	return &dto.LoginResponseDTO{
		Token:    token,
		Usuario:  *vista,
		Permisos: permisos,
	}, nil
}

func (s *authService) GetAccesoView(ctx context.Context, accesoID uint64) (*dto.AccesoDTO, error) {
	return s.accesoRepo.GetAccesoView(ctx, accesoID)
}
