package repository

import "tumina/entities"

// Estadisticas aggregates a title's activity. All three figures are plain
// numbers; a title with no points aggregates to zeros, never null.
type Estadisticas struct {
	TotalPuntos     int     `json:"totalPuntos"`
	VolumenTotal    float64 `json:"volumenTotal"`
	UsuariosActivos int     `json:"usuariosActivos"`
}

type ActividadRepository interface {
	// Registrar appends one point; Fecha is assigned here, points are
	// immutable afterwards.
	Registrar(p *entities.PuntoActividad) error
	PorTitulo(tituloMineroID uint) ([]entities.PuntoActividad, error)
	Estadisticas(tituloMineroID uint) (Estadisticas, error)
}
