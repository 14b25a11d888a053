package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tumina/database"
	"tumina/entities"
	"tumina/pkg/middleware"
	"tumina/pkg/report/repositoryImp"
	"tumina/pkg/report/serviceImp"
)

func montar(t *testing.T) (*ReportCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return New(serviceImp.New(repositoryImp.New(db))), db
}

func contexto(objetivo string, claims middleware.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, objetivo, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", claims)
	return c, rec
}

func sembrar(t *testing.T, db *gorm.DB, usuarioID uint, corte time.Time) {
	t.Helper()
	titulo := entities.TituloMinero{NumeroTitulo: "TM-55", Municipio: "Tasco", CodigoMunicipio: "15790"}
	require.NoError(t, db.FirstOrCreate(&titulo, titulo).Error)
	require.NoError(t, db.Create(&entities.FRIProduccion{
		FechaCorte:     corte,
		UsuarioID:      usuarioID,
		TituloMineroID: titulo.ID,
		Estado:         entities.EstadoEnviado,
		Mineral:        "Carbón",
	}).Error)
}

func TestPreviewSinTipo(t *testing.T) {
	h, _ := montar(t)
	c, rec := contexto("/reports/preview", middleware.Claims{UsuarioID: 1, Rol: "OPERADOR"})

	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tipo de formulario requerido")
}

func TestPreviewTipoInvalido(t *testing.T) {
	h, _ := montar(t)
	c, rec := contexto("/reports/preview?tipo=nomina", middleware.Claims{UsuarioID: 1, Rol: "OPERADOR"})

	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewFechaInvalida(t *testing.T) {
	h, _ := montar(t)
	c, rec := contexto("/reports/preview?tipo=produccion&fechaInicio=ayer", middleware.Claims{UsuarioID: 1, Rol: "OPERADOR"})

	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewAplicaRolScoping(t *testing.T) {
	h, db := montar(t)
	sembrar(t, db, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))
	sembrar(t, db, 2, time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local))

	c, rec := contexto("/reports/preview?tipo=produccion", middleware.Claims{UsuarioID: 1, Rol: "OPERADOR"})
	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	c, rec = contexto("/reports/preview?tipo=produccion", middleware.Claims{UsuarioID: 3, Rol: "ADMIN"})
	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestExportExcelSinDatos(t *testing.T) {
	h, _ := montar(t)
	c, rec := contexto("/reports/export-excel?tipo=regalias", middleware.Claims{UsuarioID: 1, Rol: "ADMIN"})

	require.NoError(t, h.ExportExcel(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No hay datos para exportar")
}

func TestExportExcelAdjunto(t *testing.T) {
	h, db := montar(t)
	sembrar(t, db, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))

	c, rec := contexto("/reports/export-excel?tipo=produccion", middleware.Claims{UsuarioID: 1, Rol: "ADMIN"})
	require.NoError(t, h.ExportExcel(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeXLSX, rec.Header().Get(echo.HeaderContentType))
	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "FRI_produccion_")
	assert.Contains(t, disposition, ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestExportPDFAdjunto(t *testing.T) {
	h, db := montar(t)
	sembrar(t, db, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))

	c, rec := contexto("/reports/export-pdf", middleware.Claims{UsuarioID: 1, Rol: "ADMIN"})
	require.NoError(t, h.ExportPDF(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestExportPDFSinDatos(t *testing.T) {
	h, _ := montar(t)
	c, rec := contexto("/reports/export-pdf", middleware.Claims{UsuarioID: 1, Rol: "ADMIN"})

	require.NoError(t, h.ExportPDF(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportExcelMultipleAdjunto(t *testing.T) {
	h, db := montar(t)
	sembrar(t, db, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))

	c, rec := contexto("/reports/export-excel-multiple", middleware.Claims{UsuarioID: 1, Rol: "ADMIN"})
	require.NoError(t, h.ExportExcelMultiple(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "FRI_Consolidado_")
}
