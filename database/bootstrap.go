package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tumina/config"
	"tumina/entities"
)

// Open connects to Postgres when DATABASE_URL is set and falls back to a
// local SQLite file otherwise, then migrates the schema.
func Open(cfg config.AppConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate runs AutoMigrate over every owned table. Split out so tests can
// run it against their own connection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Usuario{},
		&entities.TituloMinero{},
		&entities.FRIProduccion{},
		&entities.FRIInventarios{},
		&entities.FRIParadas{},
		&entities.FRIEjecucion{},
		&entities.FRIMaquinaria{},
		&entities.FRIRegalias{},
		&entities.PuntoActividad{},
	); err != nil {
		return err
	}

	// The activity log is queried by title + date range far more often than
	// it is written; AutoMigrate only covers the single-column indexes.
	return db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_puntos_actividad_titulo_fecha ON puntos_actividad (titulo_minero_id, fecha)`,
	).Error
}
