package service

import (
	"errors"

	"tumina/entities"
	"tumina/pkg/fri"
	"tumina/pkg/report/repository"
)

// ErrTipoInvalido is returned when the requested tipo is missing or not
// one of the seven supported tables (400 at the transport layer).
var ErrTipoInvalido = errors.New("tipo de formulario inválido")

// ErrSinDatos is returned when an export matches zero records (404 at the
// transport layer). Preview deliberately does not use it: an empty preview
// is a valid answer, an empty spreadsheet is not.
var ErrSinDatos = errors.New("no hay datos para exportar")

// PreviewResult is the preview payload: the template columns plus the
// transformed rows, capped at 100.
type PreviewResult struct {
	Columnas  []string  `json:"columnas"`
	Registros []fri.Row `json:"registros"`
	Total     int       `json:"total"`
}

type ReportService interface {
	Preview(tipo string, f repository.Filtro) (*PreviewResult, error)

	// Export returns the full transformed set for one tipo, oldest first.
	Export(tipo string, f repository.Filtro) ([]fri.Row, error)

	// ExportMultiple fans out over tipos, skipping those with no records.
	// ErrSinDatos only when every tipo is empty.
	ExportMultiple(tipos []string, f repository.Filtro) (map[string][]fri.Row, error)

	// FetchReportes returns raw FRI records for renderers that apply their
	// own per-page formatting (the PDF document). Not valid for
	// puntosActividad.
	FetchReportes(tipo string, f repository.Filtro) ([]entities.Reporte, error)
}
