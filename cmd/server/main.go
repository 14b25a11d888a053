package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tumina/config"
	"tumina/database"
	"tumina/router"

	actCtrlImp "tumina/pkg/actividad/controllerImp"
	actRepoImp "tumina/pkg/actividad/repositoryImp"

	reportCtrlImp "tumina/pkg/report/controllerImp"
	reportRepoImp "tumina/pkg/report/repositoryImp"
	reportSvcImp "tumina/pkg/report/serviceImp"

	authCtrlImp "tumina/pkg/auth/controllerImp"
	healthCtrlImp "tumina/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB + automigrate
	db := database.Open(cfg)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repos/Services/Controllers
	reportRepo := reportRepoImp.New(db)
	reportSvc := reportSvcImp.New(reportRepo)
	reportCtrl := reportCtrlImp.New(reportSvc)

	actRepo := actRepoImp.New(db)
	actCtrl := actCtrlImp.New(actRepo)

	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, cfg.JWTSecret, reportCtrl, actCtrl, authCtrl, healthCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
