package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretoPrueba = "secreto-prueba"

func servidorProtegido(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.GET("/protegido", func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		return c.JSON(http.StatusOK, claims)
	}, JWT(secretoPrueba))
	return e
}

func firmar(t *testing.T, claims jwt.MapClaims, secreto string) string {
	t.Helper()
	firmado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secreto))
	require.NoError(t, err)
	return firmado
}

func TestJWTSinToken(t *testing.T) {
	e := servidorProtegido(t)
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token no proporcionado")
}

func TestJWTTokenInvalido(t *testing.T) {
	e := servidorProtegido(t)
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token inválido")
}

func TestJWTFirmaIncorrecta(t *testing.T) {
	e := servidorProtegido(t)
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+firmar(t, jwt.MapClaims{"id": 1.0, "rol": "ADMIN"}, "otro-secreto"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTValido(t *testing.T) {
	e := servidorProtegido(t)
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+firmar(t, jwt.MapClaims{"id": 7.0, "rol": "OPERADOR"}, secretoPrueba))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"rol":"OPERADOR"`)
}

func TestEsAdmin(t *testing.T) {
	assert.True(t, Claims{Rol: "ADMIN"}.EsAdmin())
	assert.False(t, Claims{Rol: "OPERADOR"}.EsAdmin())
	assert.False(t, Claims{}.EsAdmin())
}
