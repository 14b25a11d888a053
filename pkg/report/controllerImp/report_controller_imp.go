package controllerImp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"tumina/entities"
	"tumina/pkg/export"
	"tumina/pkg/fri"
	"tumina/pkg/middleware"
	"tumina/pkg/report/repository"
	"tumina/pkg/report/service"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Preview(c echo.Context) error {
	tipo := c.QueryParam("tipo")
	if tipo == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false, "message": "Tipo de formulario requerido",
		})
	}
	filtro, err := h.filtro(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}

	resultado, err := h.svc.Preview(tipo, filtro)
	if errors.Is(err, service.ErrTipoInvalido) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Tipo inválido"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al obtener datos", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"columnas":  resultado.Columnas,
		"registros": resultado.Registros,
		"total":     resultado.Total,
	})
}

func (h *ReportCtrl) ExportExcel(c echo.Context) error {
	tipo := c.QueryParam("tipo")
	if tipo == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false, "message": "Tipo de formulario requerido",
		})
	}
	filtro, err := h.filtro(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}

	registros, err := h.svc.Export(tipo, filtro)
	if err != nil {
		return h.errorExport(c, err)
	}

	blob, err := export.Excel(tipo, registros)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al exportar", "error": err.Error(),
		})
	}

	nombre := "FRI_" + tipo + "_" + time.Now().Format("2006-01-02") + ".xlsx"
	return h.adjunto(c, mimeXLSX, nombre, blob)
}

func (h *ReportCtrl) ExportExcelMultiple(c echo.Context) error {
	filtro, err := h.filtro(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}
	tipos, err := h.tipos(c, fri.Tipos())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}

	porTipo, err := h.svc.ExportMultiple(tipos, filtro)
	if err != nil {
		return h.errorExport(c, err)
	}

	blob, err := export.ExcelMultiple(porTipo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al exportar", "error": err.Error(),
		})
	}

	nombre := "FRI_Consolidado_" + time.Now().Format("2006-01-02") + ".xlsx"
	return h.adjunto(c, mimeXLSX, nombre, blob)
}

func (h *ReportCtrl) ExportPDF(c echo.Context) error {
	filtro, err := h.filtro(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}
	tipos, err := h.tipos(c, fri.TiposFRI())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	}

	porTipo := make(map[string][]entities.Reporte, len(tipos))
	vacios := 0
	for _, tipo := range tipos {
		reportes, err := h.svc.FetchReportes(tipo, filtro)
		if errors.Is(err, service.ErrTipoInvalido) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Tipo inválido: " + tipo})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success": false, "message": "Error al obtener datos", "error": err.Error(),
			})
		}
		if len(reportes) == 0 {
			vacios++
			continue
		}
		porTipo[tipo] = reportes
	}
	if vacios == len(tipos) {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "No hay datos para exportar"})
	}

	blob, err := export.PDF(porTipo, export.Periodo{
		FechaInicio: c.QueryParam("fechaInicio"),
		FechaFin:    c.QueryParam("fechaFin"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al generar PDF", "error": err.Error(),
		})
	}

	nombre := "FRI_Reporte_" + time.Now().Format("2006-01-02") + ".pdf"
	return h.adjunto(c, "application/pdf", nombre, blob)
}

// filtro builds the range/ownership filter. Non-admin requesters only
// ever see their own records.
func (h *ReportCtrl) filtro(c echo.Context) (repository.Filtro, error) {
	var f repository.Filtro

	inicio, err := parseFecha(c.QueryParam("fechaInicio"))
	if err != nil {
		return f, errors.New("fechaInicio inválida")
	}
	fin, err := parseFecha(c.QueryParam("fechaFin"))
	if err != nil {
		return f, errors.New("fechaFin inválida")
	}
	f.FechaInicio, f.FechaFin = inicio, fin

	if claims, ok := middleware.ClaimsFrom(c); ok && !claims.EsAdmin() {
		id := claims.UsuarioID
		f.UsuarioID = &id
	}
	return f, nil
}

func (h *ReportCtrl) tipos(c echo.Context, porDefecto []string) ([]string, error) {
	crudo := c.QueryParam("tipos")
	if crudo == "" {
		return porDefecto, nil
	}
	tipos := strings.Split(crudo, ",")
	for _, tipo := range tipos {
		if fri.ColumnsFor(tipo) == nil {
			return nil, errors.New("Tipo inválido: " + tipo)
		}
	}
	return tipos, nil
}

// errorExport maps service errors from an export fetch to the transport
// taxonomy.
func (h *ReportCtrl) errorExport(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTipoInvalido):
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Tipo inválido"})
	case errors.Is(err, service.ErrSinDatos):
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "No hay datos para exportar"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al exportar", "error": err.Error(),
		})
	}
}

func (h *ReportCtrl) adjunto(c echo.Context, mime, nombre string, blob []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Blob(http.StatusOK, mime, blob)
}

// parseFecha accepts plain dates or RFC3339 timestamps; empty means no
// bound.
func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, errors.New("fecha inválida")
}
