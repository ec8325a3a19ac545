package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/repositories"
)

const permisosCacheKeyFmt = "permisos:rol:%d"

// GateServiceInterface resuelve el mapa de permisos de un rol. La resolución
// falla cerrada: ante cualquier duda la respuesta es denegar.
type GateServiceInterface interface {
	GetPermissionMap(ctx context.Context, rolID uint64) (authz.PermissionMap, error)
	Can(ctx context.Context, rolID uint64, modulo string, capacidad authz.Capability) (bool, error)
	InvalidateRol(ctx context.Context, rolID uint64) error
}

type gateService struct {
	permisoRepo repositories.PermisoRepositoryInterface
	cache       repositories.CacheRepositoryInterface
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewGateService(
	permisoRepo repositories.PermisoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) GateServiceInterface {
	return &gateService{
		permisoRepo: permisoRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (s *gateService) GetPermissionMap(ctx context.Context, rolID uint64) (authz.PermissionMap, error) {
	key := fmt.Sprintf(permisosCacheKeyFmt, rolID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil && cached != "" {
			var m authz.PermissionMap
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return m, nil
			}
			s.logger.Warn("entrada de caché de permisos corrupta, se recarga", zap.Uint64("rol_id", rolID))
		}
	}

	m, err := s.permisoRepo.GetPermissionMap(ctx, rolID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(m)
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
				s.logger.Warn("no se pudo cachear el mapa de permisos", zap.Error(err))
			}
		}
	}

	return m, nil
}

func (s *gateService) Can(ctx context.Context, rolID uint64, modulo string, capacidad authz.Capability) (bool, error) {
	m, err := s.GetPermissionMap(ctx, rolID)
	if err != nil {
		return false, err
	}
	return m.Allows(modulo, capacidad), nil
}

func (s *gateService) InvalidateRol(ctx context.Context, rolID uint64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, fmt.Sprintf(permisosCacheKeyFmt, rolID))
}
