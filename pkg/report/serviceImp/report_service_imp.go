package serviceImp

import (
	"errors"
	"fmt"

	"tumina/entities"
	"tumina/pkg/fri"
	"tumina/pkg/report/repository"
	"tumina/pkg/report/service"
)

type reportService struct {
	repo repository.ReportRepository
}

func New(repo repository.ReportRepository) service.ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Preview(tipo string, f repository.Filtro) (*service.PreviewResult, error) {
	columnas := fri.ColumnsFor(tipo)
	if columnas == nil {
		return nil, service.ErrTipoInvalido
	}

	var registros []fri.Row
	if tipo == fri.TipoPuntosActividad {
		puntos, err := s.repo.PreviewPuntos(f)
		if err != nil {
			return nil, fmt.Errorf("consultar puntos: %w", err)
		}
		registros = fri.TransformPuntos(puntos)
	} else {
		reportes, err := s.repo.Preview(tipo, f)
		if err != nil {
			return nil, fmt.Errorf("consultar %s: %w", tipo, err)
		}
		registros = fri.Transform(reportes)
	}

	return &service.PreviewResult{
		Columnas:  columnas,
		Registros: registros,
		Total:     len(registros),
	}, nil
}

func (s *reportService) Export(tipo string, f repository.Filtro) ([]fri.Row, error) {
	if fri.ColumnsFor(tipo) == nil {
		return nil, service.ErrTipoInvalido
	}

	var registros []fri.Row
	if tipo == fri.TipoPuntosActividad {
		puntos, err := s.repo.ExportPuntos(f)
		if err != nil {
			return nil, fmt.Errorf("consultar puntos: %w", err)
		}
		registros = fri.TransformPuntos(puntos)
	} else {
		reportes, err := s.repo.Export(tipo, f)
		if err != nil {
			return nil, fmt.Errorf("consultar %s: %w", tipo, err)
		}
		registros = fri.Transform(reportes)
	}

	if len(registros) == 0 {
		return nil, service.ErrSinDatos
	}
	return registros, nil
}

func (s *reportService) ExportMultiple(tipos []string, f repository.Filtro) (map[string][]fri.Row, error) {
	porTipo := make(map[string][]fri.Row, len(tipos))
	for _, tipo := range tipos {
		registros, err := s.Export(tipo, f)
		if errors.Is(err, service.ErrSinDatos) {
			continue // no empty sheets
		}
		if err != nil {
			return nil, err
		}
		porTipo[tipo] = registros
	}
	if len(porTipo) == 0 {
		return nil, service.ErrSinDatos
	}
	return porTipo, nil
}

func (s *reportService) FetchReportes(tipo string, f repository.Filtro) ([]entities.Reporte, error) {
	if tipo == fri.TipoPuntosActividad || fri.ColumnsFor(tipo) == nil {
		return nil, service.ErrTipoInvalido
	}
	reportes, err := s.repo.Export(tipo, f)
	if err != nil {
		return nil, fmt.Errorf("consultar %s: %w", tipo, err)
	}
	return reportes, nil
}
