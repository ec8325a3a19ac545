package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/repositories"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

type EquipoServiceInterface interface {
	GetEquipos(ctx context.Context, filter dto.EquipoFilter, page uint64) (*dto.ListEquiposResponseDTO, error)
	FindEquipo(ctx context.Context, id uint64) (*dto.EquipoDTO, error)
	CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO, creadoPor uint64) (*dto.EquipoDTO, error)
	UpdateEquipo(ctx context.Context, id uint64, payload dto.UpdateEquipoDTO, modificadoPor uint64) (*dto.EquipoDTO, error)
	DeleteEquipo(ctx context.Context, id uint64) error
	ExportEquipos(ctx context.Context, filter dto.EquipoFilter) (*bytes.Buffer, error)
}

type equipoService struct {
	equipoRepo      repositories.EquipoRepositoryInterface
	txManager       repositories.TxManagerInterface
	sucursalDefecto string
	logger          *zap.Logger
}

func NewEquipoService(
	equipoRepo repositories.EquipoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	sucursalDefecto string,
	logger *zap.Logger,
) EquipoServiceInterface {
	return &equipoService{
		equipoRepo:      equipoRepo,
		txManager:       txManager,
		sucursalDefecto: sucursalDefecto,
		logger:          logger,
	}
}

func (s *equipoService) GetEquipos(ctx context.Context, filter dto.EquipoFilter, page uint64) (*dto.ListEquiposResponseDTO, error) {
	equipos, total, err := s.equipoRepo.GetEquipos(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListEquiposResponseDTO{
		Equipos:     equipos,
		Total:       total,
		Pages:       utils.TotalPages(total, filter.Limit),
		CurrentPage: page,
	}, nil
}

func (s *equipoService) FindEquipo(ctx context.Context, id uint64) (*dto.EquipoDTO, error) {
	return s.equipoRepo.FindEquipo(ctx, id)
}

func (s *equipoService) checkNumeroSerie(ctx context.Context, numeroSerie *string, excludeID uint64) error {
	if numeroSerie == nil || *numeroSerie == "" {
		return nil
	}
	existe, err := s.equipoRepo.ExisteNumeroSerie(ctx, *numeroSerie, excludeID)
	if err != nil {
		return err
	}
	if existe {
		return apperrors.NewBadRequestError("El número de serie ya existe")
	}
	return nil
}

// CreateEquipo inserta el equipo y sus especificaciones en una sola
// transacción; si alguna especificación falla nada queda escrito.
func (s *equipoService) CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO, creadoPor uint64) (*dto.EquipoDTO, error) {
	if err := s.checkNumeroSerie(ctx, payload.NumeroSerie, 0); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.equipoRepo.CreateEquipo(ctx, tx, payload, creadoPor, s.sucursalDefecto)
		if err != nil {
			return err
		}
		newID = id
		return s.equipoRepo.InsertEspecificaciones(ctx, tx, id, payload.Especificaciones)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipo creado", zap.Uint64("id_activo", newID), zap.Uint64("creado_por", creadoPor))
	return s.equipoRepo.FindEquipo(ctx, newID)
}

func (s *equipoService) UpdateEquipo(ctx context.Context, id uint64, payload dto.UpdateEquipoDTO, modificadoPor uint64) (*dto.EquipoDTO, error) {
	if err := s.checkNumeroSerie(ctx, payload.NumeroSerie, id); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.equipoRepo.UpdateEquipo(ctx, tx, id, payload, modificadoPor); err != nil {
			return err
		}
		if payload.Especificaciones != nil {
			return s.equipoRepo.ReplaceEspecificaciones(ctx, tx, id, *payload.Especificaciones)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.equipoRepo.FindEquipo(ctx, id)
}

func (s *equipoService) DeleteEquipo(ctx context.Context, id uint64) error {
	return s.equipoRepo.DeleteEquipo(ctx, id)
}

var exportHeaders = []string{
	"ID", "Tipo", "Nombre del activo", "Marca", "Modelo", "Número de serie",
	"Estado", "Responsable", "Sucursal", "Fecha de registro", "Observaciones",
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// ExportEquipos genera un libro xlsx con el listado filtrado completo, sin
// paginación.
func (s *equipoService) ExportEquipos(ctx context.Context, filter dto.EquipoFilter) (*bytes.Buffer, error) {
	filter.Limit = 0
	filter.Offset = 0

	equipos, _, err := s.equipoRepo.GetEquipos(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("no se pudo cerrar el libro de exportación", zap.Error(err))
		}
	}()

	const sheet = "Equipos"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", lastCol, headerStyle)
	}

	for i, e := range equipos {
		row := i + 2
		values := []interface{}{
			e.ID,
			derefOr(e.TipoActivo, ""),
			e.NombreActivo,
			derefOr(e.Marca, ""),
			derefOr(e.Modelo, ""),
			derefOr(e.NumeroSerie, ""),
			derefOr(e.Estado, ""),
			derefOr(e.Responsable, "Sin asignar"),
			e.SucursalNombre,
			e.FechaRegistro,
			derefOr(e.Observaciones, ""),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("no se pudo serializar la exportación: %w", err)
	}
	return buf, nil
}
