package entities

import "time"

// Categorias of a field activity point.
const (
	CategoriaExtraccion    = "extraccion"
	CategoriaAcopio        = "acopio"
	CategoriaProcesamiento = "procesamiento"
	CategoriaInspeccion    = "inspeccion"
)

// PuntoActividad is an append-only georeferenced log entry. Rows are
// inserted once and never updated or deleted.
type PuntoActividad struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UsuarioID      uint      `gorm:"index" json:"usuarioId"`
	TituloMineroID uint      `gorm:"index" json:"tituloMineroId"`
	Latitud        float64   `json:"latitud"`
	Longitud       float64   `json:"longitud"`
	Categoria      string    `json:"categoria"`
	Descripcion    string    `json:"descripcion"`
	Maquinaria     string    `json:"maquinaria"`
	VolumenM3      *float64  `json:"volumenM3"`
	Fecha          time.Time `gorm:"index" json:"fecha"` // assigned by the server at insert
}

func (PuntoActividad) TableName() string { return "puntos_actividad" }
