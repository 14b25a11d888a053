package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"tumina/entities"
	repo "tumina/pkg/actividad/repository"
)

type ActividadCtrl struct{ repo repo.ActividadRepository }

func New(repo repo.ActividadRepository) *ActividadCtrl { return &ActividadCtrl{repo} }

type puntoReq struct {
	UsuarioID      uint     `json:"usuarioId"`
	TituloMineroID uint     `json:"tituloMineroId"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Categoria      string   `json:"categoria"`
	Descripcion    string   `json:"descripcion"`
	Maquinaria     string   `json:"maquinaria"`
	VolumenM3      *float64 `json:"volumenM3"`
}

func (h *ActividadCtrl) Registrar(c echo.Context) error {
	var req puntoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "JSON inválido"})
	}

	var faltantes []string
	if req.UsuarioID == 0 {
		faltantes = append(faltantes, "usuarioId")
	}
	if req.TituloMineroID == 0 {
		faltantes = append(faltantes, "tituloMineroId")
	}
	if req.Latitud == nil {
		faltantes = append(faltantes, "latitud")
	}
	if req.Longitud == nil {
		faltantes = append(faltantes, "longitud")
	}
	if req.Categoria == "" {
		faltantes = append(faltantes, "categoria")
	}
	if len(faltantes) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Faltan campos obligatorios: " + strings.Join(faltantes, ", "),
		})
	}

	punto := &entities.PuntoActividad{
		UsuarioID:      req.UsuarioID,
		TituloMineroID: req.TituloMineroID,
		Latitud:        *req.Latitud,
		Longitud:       *req.Longitud,
		Categoria:      req.Categoria,
		Descripcion:    req.Descripcion,
		Maquinaria:     req.Maquinaria,
		VolumenM3:      req.VolumenM3,
	}
	if err := h.repo.Registrar(punto); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al registrar punto", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Punto registrado exitosamente"})
}

func (h *ActividadCtrl) Puntos(c echo.Context) error {
	tituloID, err := strconv.Atoi(c.Param("tituloMineroId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "tituloMineroId inválido"})
	}
	puntos, err := h.repo.PorTitulo(uint(tituloID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al obtener puntos", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": puntos, "total": len(puntos)})
}

func (h *ActividadCtrl) Estadisticas(c echo.Context) error {
	tituloID, err := strconv.Atoi(c.Param("tituloMineroId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "tituloMineroId inválido"})
	}
	est, err := h.repo.Estadisticas(uint(tituloID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false, "message": "Error al obtener estadísticas", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "estadisticas": est})
}
