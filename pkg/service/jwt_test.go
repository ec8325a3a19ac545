package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inventario-iuca/pkg/errors"
)

func TestJWTService_GeneraYValida(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.AccesoID)
}

func TestJWTService_RechazaOtraFirma(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Hour)
	otro := NewJWTService("otra-clave", time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = otro.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalido)
}

func TestJWTService_RechazaTokenExpirado(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", -time.Minute)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RechazaBasura(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Hour)

	_, err := svc.ValidateToken("no.es.un.token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalido)
}
