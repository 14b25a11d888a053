package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"tumina/entities"
	"tumina/pkg/fri"
	"tumina/pkg/report/repository"
)

const limitePreview = 100

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Preview(tipo string, f repository.Filtro) ([]entities.Reporte, error) {
	return r.buscar(tipo, f, "desc", limitePreview)
}

func (r *reportRepo) Export(tipo string, f repository.Filtro) ([]entities.Reporte, error) {
	return r.buscar(tipo, f, "asc", 0)
}

func (r *reportRepo) buscar(tipo string, f repository.Filtro, orden string, limite int) ([]entities.Reporte, error) {
	q := aplicarFiltro(r.db.Preload("TituloMinero"), f, "fecha_corte").
		Order("fecha_corte " + orden)
	if limite > 0 {
		q = q.Limit(limite)
	}

	switch tipo {
	case fri.TipoProduccion:
		return buscarTabla[entities.FRIProduccion](q)
	case fri.TipoInventarios:
		return buscarTabla[entities.FRIInventarios](q)
	case fri.TipoParadas:
		return buscarTabla[entities.FRIParadas](q)
	case fri.TipoEjecucion:
		return buscarTabla[entities.FRIEjecucion](q)
	case fri.TipoMaquinaria:
		return buscarTabla[entities.FRIMaquinaria](q)
	case fri.TipoRegalias:
		return buscarTabla[entities.FRIRegalias](q)
	}
	return nil, fmt.Errorf("tipo sin tabla: %s", tipo)
}

func (r *reportRepo) PreviewPuntos(f repository.Filtro) ([]entities.PuntoActividad, error) {
	return r.buscarPuntos(f, "desc", limitePreview)
}

func (r *reportRepo) ExportPuntos(f repository.Filtro) ([]entities.PuntoActividad, error) {
	return r.buscarPuntos(f, "asc", 0)
}

func (r *reportRepo) buscarPuntos(f repository.Filtro, orden string, limite int) ([]entities.PuntoActividad, error) {
	q := aplicarFiltro(r.db, f, "fecha").Order("fecha " + orden)
	if limite > 0 {
		q = q.Limit(limite)
	}
	var out []entities.PuntoActividad
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func aplicarFiltro(q *gorm.DB, f repository.Filtro, campoFecha string) *gorm.DB {
	if f.FechaInicio != nil {
		q = q.Where(campoFecha+" >= ?", *f.FechaInicio)
	}
	if f.FechaFin != nil {
		q = q.Where(campoFecha+" <= ?", *f.FechaFin)
	}
	if f.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *f.UsuarioID)
	}
	return q
}

func buscarTabla[T entities.Reporte](q *gorm.DB) ([]entities.Reporte, error) {
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	registros := make([]entities.Reporte, len(out))
	for i := range out {
		registros[i] = out[i]
	}
	return registros, nil
}
