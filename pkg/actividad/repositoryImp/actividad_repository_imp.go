package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"tumina/entities"
	"tumina/pkg/actividad/repository"
)

// The activity log keeps the raw-SQL access path of the original system:
// plain parameterized statements against puntos_actividad.
type actividadRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActividadRepository { return &actividadRepo{db} }

func (r *actividadRepo) Registrar(p *entities.PuntoActividad) error {
	p.Fecha = time.Now()
	return r.db.Exec(`
		INSERT INTO puntos_actividad
			(usuario_id, titulo_minero_id, latitud, longitud, categoria, descripcion, maquinaria, volumen_m3, fecha)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UsuarioID, p.TituloMineroID, p.Latitud, p.Longitud,
		p.Categoria, p.Descripcion, p.Maquinaria, p.VolumenM3, p.Fecha,
	).Error
}

func (r *actividadRepo) PorTitulo(tituloMineroID uint) ([]entities.PuntoActividad, error) {
	var puntos []entities.PuntoActividad
	err := r.db.Raw(`
		SELECT id, usuario_id, titulo_minero_id, latitud, longitud,
		       categoria, descripcion, maquinaria, volumen_m3, fecha
		FROM puntos_actividad
		WHERE titulo_minero_id = ?
		ORDER BY fecha DESC`,
		tituloMineroID,
	).Scan(&puntos).Error
	if err != nil {
		return nil, err
	}
	return puntos, nil
}

func (r *actividadRepo) Estadisticas(tituloMineroID uint) (repository.Estadisticas, error) {
	var est repository.Estadisticas
	err := r.db.Raw(`
		SELECT COUNT(*)                     AS total_puntos,
		       COALESCE(SUM(volumen_m3), 0) AS volumen_total,
		       COUNT(DISTINCT usuario_id)   AS usuarios_activos
		FROM puntos_actividad
		WHERE titulo_minero_id = ?`,
		tituloMineroID,
	).Scan(&est).Error
	if err != nil {
		return repository.Estadisticas{}, err
	}
	return est, nil
}
