package middleware

import (
	"strings"

	"meetfind/internal/delivery/http/response"
	"meetfind/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyToken is the echo context key under which the validated raw token is
// stored for handlers to run ownership checks.
const KeyToken = "token"

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate validates the identity token carried in the Authorization
// header. Both "Bearer <token>" and a bare token are accepted; legacy clients
// send the raw token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if !m.userUC.IsValidToken(c.Request().Context(), tokenString) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Token is not valid or missing")
		}

		c.Set(KeyToken, tokenString)

		return next(c)
	}
}

// TokenFromContext returns the validated raw token stored by Authenticate.
func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(KeyToken).(string)

	return token
}
