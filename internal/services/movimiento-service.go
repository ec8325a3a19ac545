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

type MovimientoServiceInterface interface {
	GetMovimientos(ctx context.Context, filter dto.MovimientoFilter, page uint64) (*dto.ListMovimientosResponseDTO, error)
	RecordMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO, realizadoPor uint64) (uint64, error)
}

type movimientoService struct {
	movimientoRepo repositories.MovimientoRepositoryInterface
	equipoRepo     repositories.EquipoRepositoryInterface
	mobiliarioRepo repositories.MobiliarioRepositoryInterface
	logger         *zap.Logger
}

func NewMovimientoService(
	movimientoRepo repositories.MovimientoRepositoryInterface,
	equipoRepo repositories.EquipoRepositoryInterface,
	mobiliarioRepo repositories.MobiliarioRepositoryInterface,
	logger *zap.Logger,
) MovimientoServiceInterface {
	return &movimientoService{
		movimientoRepo: movimientoRepo,
		equipoRepo:     equipoRepo,
		mobiliarioRepo: mobiliarioRepo,
		logger:         logger,
	}
}

func (s *movimientoService) GetMovimientos(ctx context.Context, filter dto.MovimientoFilter, page uint64) (*dto.ListMovimientosResponseDTO, error) {
	movimientos, total, err := s.movimientoRepo.GetMovimientos(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListMovimientosResponseDTO{
		Movimientos: movimientos,
		Total:       total,
		Pages:       utils.TotalPages(total, filter.Limit),
		CurrentPage: page,
	}, nil
}

// RecordMovimiento valida que el activo referido exista antes de escribir la
// entrada; el historial no admite referencias colgantes.
func (s *movimientoService) RecordMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO, realizadoPor uint64) (uint64, error) {
	var err error
	switch payload.TipoRegistro {
	case "equipo":
		_, err = s.equipoRepo.FindEquipo(ctx, payload.IDRegistro)
	case "mobiliario":
		_, err = s.mobiliarioRepo.FindMueble(ctx, payload.IDRegistro)
	default:
		return 0, apperrors.NewBadRequestError("tipo_registro inválido")
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNoEncontrado) {
			return 0, apperrors.NewNotFoundError("el registro referido no existe")
		}
		return 0, err
	}

	id, err := s.movimientoRepo.Record(ctx, nil, payload, realizadoPor)
	if err != nil {
		return 0, err
	}
	s.logger.Info("movimiento registrado",
		zap.Uint64("id_movimiento", id),
		zap.String("tipo_registro", payload.TipoRegistro),
		zap.Uint64("id_registro", payload.IDRegistro))
	return id, nil
}
