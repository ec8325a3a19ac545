package services

import (
	"context"

	"inventario-iuca/internal/entities"
	"inventario-iuca/internal/repositories"
)

type CatalogoServiceInterface interface {
	GetAreas(ctx context.Context) ([]entities.CatArea, error)
	GetTiposActivo(ctx context.Context) ([]entities.CatTipoActivo, error)
	GetEstados(ctx context.Context) ([]entities.CatEstado, error)
	GetTiposMobiliario(ctx context.Context) ([]entities.CatTipoMobiliario, error)
	GetRoles(ctx context.Context) ([]entities.CatRol, error)
}

type catalogoService struct {
	catalogoRepo repositories.CatalogoRepositoryInterface
}

func NewCatalogoService(catalogoRepo repositories.CatalogoRepositoryInterface) CatalogoServiceInterface {
	return &catalogoService{catalogoRepo: catalogoRepo}
}

func (s *catalogoService) GetAreas(ctx context.Context) ([]entities.CatArea, error) {
	return s.catalogoRepo.GetAreas(ctx)
}

func (s *catalogoService) GetTiposActivo(ctx context.Context) ([]entities.CatTipoActivo, error) {
	return s.catalogoRepo.GetTiposActivo(ctx)
}

func (s *catalogoService) GetEstados(ctx context.Context) ([]entities.CatEstado, error) {
	return s.catalogoRepo.GetEstados(ctx)
}

func (s *catalogoService) GetTiposMobiliario(ctx context.Context) ([]entities.CatTipoMobiliario, error) {
	return s.catalogoRepo.GetTiposMobiliario(ctx)
}

func (s *catalogoService) GetRoles(ctx context.Context) ([]entities.CatRol, error) {
	return s.catalogoRepo.GetRoles(ctx)
}
