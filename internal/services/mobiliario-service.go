package services

import (
	"context"

	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/repositories"
	"inventario-iuca/pkg/utils"
)

type MobiliarioServiceInterface interface {
	GetMobiliario(ctx context.Context, filter dto.MobiliarioFilter, page uint64) (*dto.ListMobiliarioResponseDTO, error)
	FindMueble(ctx context.Context, id uint64) (*dto.MobiliarioDTO, error)
	CreateMueble(ctx context.Context, payload dto.CreateMobiliarioDTO, creadoPor uint64) (*dto.MobiliarioDTO, error)
	UpdateMueble(ctx context.Context, id uint64, payload dto.UpdateMobiliarioDTO, modificadoPor uint64) (*dto.MobiliarioDTO, error)
	DeleteMueble(ctx context.Context, id uint64) error
}

type mobiliarioService struct {
	mobiliarioRepo  repositories.MobiliarioRepositoryInterface
	sucursalDefecto string
	logger          *zap.Logger
}

func NewMobiliarioService(
	mobiliarioRepo repositories.MobiliarioRepositoryInterface,
	sucursalDefecto string,
	logger *zap.Logger,
) MobiliarioServiceInterface {
	return &mobiliarioService{
		mobiliarioRepo:  mobiliarioRepo,
		sucursalDefecto: sucursalDefecto,
		logger:          logger,
	}
}

func (s *mobiliarioService) GetMobiliario(ctx context.Context, filter dto.MobiliarioFilter, page uint64) (*dto.ListMobiliarioResponseDTO, error) {
	muebles, total, err := s.mobiliarioRepo.GetMobiliario(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListMobiliarioResponseDTO{
		Mobiliario:  muebles,
		Total:       total,
		Pages:       utils.TotalPages(total, filter.Limit),
		CurrentPage: page,
	}, nil
}

func (s *mobiliarioService) FindMueble(ctx context.Context, id uint64) (*dto.MobiliarioDTO, error) {
	return s.mobiliarioRepo.FindMueble(ctx, id)
}

func (s *mobiliarioService) CreateMueble(ctx context.Context, payload dto.CreateMobiliarioDTO, creadoPor uint64) (*dto.MobiliarioDTO, error) {
	newID, err := s.mobiliarioRepo.CreateMueble(ctx, payload, creadoPor, s.sucursalDefecto)
	if err != nil {
		return nil, err
	}
	s.logger.Info("mueble creado", zap.Uint64("id_mueble", newID), zap.Uint64("creado_por", creadoPor))
	return s.mobiliarioRepo.FindMueble(ctx, newID)
}

func (s *mobiliarioService) UpdateMueble(ctx context.Context, id uint64, payload dto.UpdateMobiliarioDTO, modificadoPor uint64) (*dto.MobiliarioDTO, error) {
	if err := s.mobiliarioRepo.UpdateMueble(ctx, id, payload, modificadoPor); err != nil {
		return nil, err
	}
	return s.mobiliarioRepo.FindMueble(ctx, id)
}

func (s *mobiliarioService) DeleteMueble(ctx context.Context, id uint64) error {
	return s.mobiliarioRepo.DeleteMueble(ctx, id)
}
