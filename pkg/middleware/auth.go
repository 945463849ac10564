package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/pkg/api"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/service"
	"association-console/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth forwards the bearer token of the console user to the backend. The
// user name is read from the token for the audit log only.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Warn("empty Authorization header", zap.String("uri", c.Request().RequestURI))
			return api.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("malformed Authorization header")
			return api.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}
		token := parts[1]

		ctx := utils.WithToken(c.Request().Context(), token)
		if claims, err := m.jwtService.ReadClaims(token); err == nil {
			ctx = utils.WithUserName(ctx, claims.UserName())
		} else {
			// Opaque tokens are still forwarded; the backend decides.
			m.logger.Debug("token claims unreadable", zap.Error(err))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
