package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "inventario-iuca/pkg/errors"
)

type JwtCustomClaim struct {
	AccesoID uint64 `json:"accesoId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(accesoID uint64) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
}

type jwtService struct {
	SecretKey      string
	AccessTokenExp time.Duration
}

func NewJWTService(secretKey string, accessTokenExp time.Duration) JWTService {
	return &jwtService{
		SecretKey:      secretKey,
		AccessTokenExp: accessTokenExp,
	}
}

func (s *jwtService) GenerateToken(accesoID uint64) (string, error) {
	claims := &JwtCustomClaim{
		AccesoID: accesoID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.AccessTokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.SecretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.SecretKey), nil
		default:
			return nil, apperrors.ErrMetodoFirmaInvalido
		}
	})
	if err != nil {
		return nil, apperrors.ErrTokenInvalido
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalido
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpirado
	}

	return claims, nil
}
