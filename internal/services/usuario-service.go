package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/repositories"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

type UsuarioServiceInterface interface {
	GetResponsables(ctx context.Context) ([]dto.UsuarioDTO, error)
	CreateResponsable(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error)
	GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error)
	CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO) (*dto.AccesoDTO, error)
}

type usuarioService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	accesoRepo  repositories.AccesoRepositoryInterface
	logger      *zap.Logger
}

func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	accesoRepo repositories.AccesoRepositoryInterface,
	logger *zap.Logger,
) UsuarioServiceInterface {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		accesoRepo:  accesoRepo,
		logger:      logger,
	}
}

func (s *usuarioService) GetResponsables(ctx context.Context) ([]dto.UsuarioDTO, error) {
	return s.usuarioRepo.GetUsuarios(ctx)
}

func (s *usuarioService) CreateResponsable(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	if payload.NumeroNomina != nil && *payload.NumeroNomina != "" {
		existe, err := s.usuarioRepo.ExisteNumeroNomina(ctx, *payload.NumeroNomina)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apperrors.NewBadRequestError("Número de nómina ya existe")
		}
	}

	usuario, err := s.usuarioRepo.CreateUsuario(ctx, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflicto) {
			return nil, apperrors.NewBadRequestError("Número de nómina ya existe")
		}
		return nil, err
	}
	return usuario, nil
}

func (s *usuarioService) GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error) {
	return s.accesoRepo.GetAccesos(ctx)
}

func (s *usuarioService) CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO) (*dto.AccesoDTO, error) {
	existe, err := s.accesoRepo.ExisteCorreo(ctx, payload.CorreoElectronico)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, apperrors.NewBadRequestError("El correo ya está registrado")
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	acceso, err := s.accesoRepo.CreateAcceso(ctx, payload, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflicto) {
			return nil, apperrors.NewBadRequestError("El correo ya está registrado")
		}
		return nil, err
	}
	return acceso, nil
}
