package router

import (
	"github.com/labstack/echo/v4"

	"tumina/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	reportCtrl interface {
		Preview(echo.Context) error
		ExportExcel(echo.Context) error
		ExportExcelMultiple(echo.Context) error
		ExportPDF(echo.Context) error
	},
	actividadCtrl interface {
		Registrar(echo.Context) error
		Puntos(echo.Context) error
		Estadisticas(echo.Context) error
	},
	authCtrl interface{ WhoAmI(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// Activity-point routes carry no auth, matching the access policy the
	// mobile client expects today.
	a := e.Group("/actividad")
	a.POST("/punto", actividadCtrl.Registrar)
	a.GET("/puntos/:tituloMineroId", actividadCtrl.Puntos)
	a.GET("/estadisticas/:tituloMineroId", actividadCtrl.Estadisticas)

	r := e.Group("/reports", middleware.JWT(jwtSecret))
	r.GET("/preview", reportCtrl.Preview)
	r.POST("/export-excel", reportCtrl.ExportExcel)
	r.POST("/export-excel-multiple", reportCtrl.ExportExcelMultiple)
	r.POST("/export-pdf", reportCtrl.ExportPDF)

	e.GET("/whoami", authCtrl.WhoAmI, middleware.JWT(jwtSecret))

	return e
}
