package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"tumina/entities"
)

const claveClaims = "claims"

// Claims is the decoded principal attached to authenticated requests.
type Claims struct {
	UsuarioID uint   `json:"id"`
	Rol       string `json:"rol"`
}

// EsAdmin reports whether the principal bypasses owner scoping.
func (c Claims) EsAdmin() bool { return c.Rol == entities.RolAdmin }

// JWT verifies the bearer token and stores the decoded claims on the
// context. Missing or invalid credentials end the request with 401.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "Token no proporcionado",
				})
			}
			crudo := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(crudo, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "Token inválido",
				})
			}

			mc, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "Token inválido",
				})
			}
			claims := Claims{}
			if id, ok := mc["id"].(float64); ok {
				claims.UsuarioID = uint(id)
			}
			if rol, ok := mc["rol"].(string); ok {
				claims.Rol = rol
			}

			c.Set(claveClaims, claims)
			return next(c)
		}
	}
}

// ClaimsFrom recovers the decoded principal set by JWT.
func ClaimsFrom(c echo.Context) (Claims, bool) {
	claims, ok := c.Get(claveClaims).(Claims)
	return claims, ok
}
