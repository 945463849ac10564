package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"association-console/pkg/service"
	"association-console/pkg/utils"
)

func serve(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dons", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen echo.Context
	m := NewAuthMiddleware(service.NewJWTService(), zap.NewNop())
	require.NoError(t, m.Auth(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusNoContent)
	})(c))
	return rec, &seen
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, seen := serve(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, *seen)
}

func TestAuth_WrongScheme(t *testing.T) {
	rec, _ := serve(t, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ForwardsTokenAndUser(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.ConsoleClaims{UniqueName: "amina"}).
		SignedString([]byte("x"))
	require.NoError(t, err)

	rec, seen := serve(t, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	ctx := (*seen).Request().Context()
	got, err := utils.GetTokenFromCtx(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, "amina", utils.GetUserNameFromCtx(ctx))
}

func TestAuth_OpaqueTokenStillForwarded(t *testing.T) {
	rec, seen := serve(t, "bearer opaque")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	got, err := utils.GetTokenFromCtx((*seen).Request().Context())
	require.NoError(t, err)
	assert.Equal(t, "opaque", got)
	assert.Empty(t, utils.GetUserNameFromCtx((*seen).Request().Context()))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, utils.GetRequestIDFromCtx(c.Request().Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "abc", rec.Body.String())
	assert.Equal(t, "abc", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Len(t, rec.Body.String(), 36)
}
