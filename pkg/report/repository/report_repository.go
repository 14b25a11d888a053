package repository

import (
	"time"

	"tumina/entities"
)

// Filtro scopes a report query. Nil bounds are open; a nil UsuarioID means
// no owner restriction (administrators see everything).
type Filtro struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	UsuarioID   *uint
}

type ReportRepository interface {
	// Preview fetches at most 100 matching records, newest first, with the
	// mining title joined.
	Preview(tipo string, f Filtro) ([]entities.Reporte, error)
	// Export fetches the entire matching set, oldest first.
	Export(tipo string, f Filtro) ([]entities.Reporte, error)

	// Activity points filter on the event timestamp and carry no title join.
	PreviewPuntos(f Filtro) ([]entities.PuntoActividad, error)
	ExportPuntos(f Filtro) ([]entities.PuntoActividad, error)
}
