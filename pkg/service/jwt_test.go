package service

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestReadClaims_UserName(t *testing.T) {
	svc := NewJWTService()

	claims, err := svc.ReadClaims(sign(t, &ConsoleClaims{UniqueName: "amina", Name: "Amina B."}))
	require.NoError(t, err)
	assert.Equal(t, "amina", claims.UserName())

	claims, err = svc.ReadClaims(sign(t, &ConsoleClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}))
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserName())
}

func TestReadClaims_Garbage(t *testing.T) {
	_, err := NewJWTService().ReadClaims("not-a-token")
	assert.Error(t, err)
}
