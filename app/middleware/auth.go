package middleware

import (
	"net/http"
	"strings"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/utils"
	"github.com/labstack/echo/v4"
)

const claimsKey = "user"

// JWTAuth accepts requests carrying a valid access token and stores its claims on the context.
func JWTAuth(tokens *utils.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Ambil Authorization Header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid authorization header"})
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "), entities.TokenAccess)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RoleAuthMiddleware lets through users holding one of requiredRoles. It runs after JWTAuth.
func RoleAuthMiddleware(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			for _, role := range requiredRoles {
				if claims.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
	}
}

// ==========================================
// HELPER FUNCTION (UNTUK DIPAKAI DI HANDLER)
// ==========================================

func ClaimsFromContext(c echo.Context) (*entities.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*entities.Claims)
	return claims, ok && claims != nil
}

// ExtractTokenUserID returns the account id of the token, 0 when unauthenticated.
func ExtractTokenUserID(c echo.Context) int {
	if claims, ok := ClaimsFromContext(c); ok {
		return claims.UserID
	}
	return 0
}
