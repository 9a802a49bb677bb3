package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// userIDKey is the echo.Context key under which the authenticated user id is stored.
const userIDKey = "userID"

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated user id
// on the context. Every token failure, whatever its cause, answers with a
// structured 401 body; the specific business code tells the client why.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
			}

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// The token's subject is the user identifier for all subsequent calls.
		c.Set(userIDKey, claims.UserID)

		return next(c)
	}
}

// UserID extracts the authenticated user id set by Authenticate.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)

	return id, ok
}
