package utils

import (
	"context"

	"inventario-iuca/pkg/contextkeys"
	apperrors "inventario-iuca/pkg/errors"
)

func GetAccesoIDFromCtx(ctx context.Context) (uint64, error) {
	accesoID, ok := ctx.Value(contextkeys.AccesoIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUsuarioNoEnContexto
	}
	return accesoID, nil
}
