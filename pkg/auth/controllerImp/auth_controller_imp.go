package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tumina/pkg/auth/controller"
	"tumina/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

func (h *authCtrl) WhoAmI(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "Token no proporcionado"})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": claims.UsuarioID, "rol": claims.Rol})
}
