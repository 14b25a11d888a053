package fri_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tumina/entities"
	"tumina/pkg/fri"
)

func flotante(v float64) *float64 { return &v }

func tituloDePrueba() *entities.TituloMinero {
	return &entities.TituloMinero{
		ID:              1,
		NumeroTitulo:    "TM-001",
		Municipio:       "Sogamoso",
		CodigoMunicipio: "15759",
	}
}

func TestTransformProduccion(t *testing.T) {
	corte := time.Date(2025, 3, 7, 9, 5, 0, 0, time.Local)
	filas := fri.Transform([]entities.Reporte{entities.FRIProduccion{
		FechaCorte:         corte,
		TituloMinero:       tituloDePrueba(),
		Estado:             entities.EstadoEnviado,
		Mineral:            "Carbón",
		HorasOperativas:    flotante(120),
		CantidadProduccion: flotante(432.5),
		UnidadMedida:       "Toneladas",
	}})
	require.Len(t, filas, 1)

	fila := filas[0]
	assert.Equal(t, "07/03/2025, 09:05:00", fila["Fecha_corte_informacion_reportada"])
	assert.Equal(t, "TM-001", fila["Titulo_minero"])
	assert.Equal(t, "Sogamoso", fila["Municipio_de_extraccion"])
	assert.Equal(t, "15759", fila["Codigo_Municipio_extraccion"])
	assert.Equal(t, entities.EstadoEnviado, fila["Estado"])
	assert.Equal(t, 120.0, fila["Horas_Operativas"])
	assert.Equal(t, 432.5, fila["Cantidad_produccion"])
	// Optional plant figures that were never reported stay empty, not zero.
	assert.Equal(t, "", fila["Cantidad_material_entra_Plantabeneficio"])
	assert.Equal(t, "", fila["Masa_unitaria"])
}

func TestTransformSinTituloMinero(t *testing.T) {
	filas := fri.Transform([]entities.Reporte{entities.FRIRegalias{
		FechaCorte: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		Mineral:    "Oro",
	}})
	require.Len(t, filas, 1)

	fila := filas[0]
	assert.Equal(t, "", fila["Titulo_minero"])
	assert.Equal(t, "", fila["Municipio_de_extraccion"])
	assert.Equal(t, "", fila["Codigo_Municipio_extraccion"])
}

func TestTransformNilPolicies(t *testing.T) {
	filas := fri.Transform([]entities.Reporte{
		entities.FRIParadas{FechaCorte: time.Now(), FechaInicio: time.Now()},
		entities.FRIMaquinaria{FechaCorte: time.Now()},
		entities.FRIRegalias{FechaCorte: time.Now()},
	})
	require.Len(t, filas, 3)

	// Hour/count meters coerce to 0.
	assert.Equal(t, 0.0, filas[0]["Horas_Paradas"])
	assert.Equal(t, 0, filas[1]["Cantidad"])
	assert.Equal(t, 0.0, filas[1]["Horas_Operacion"])

	// Continuous quantities stay empty.
	assert.Equal(t, "", filas[1]["Capacidad_Transporte"])
	assert.Equal(t, "", filas[2]["Cantidad_Extraida"])
	assert.Equal(t, "", filas[2]["Valor_Declaracion"])
}

func TestTransformParadasEnCurso(t *testing.T) {
	fin := time.Date(2025, 2, 10, 18, 30, 0, 0, time.Local)
	filas := fri.Transform([]entities.Reporte{
		entities.FRIParadas{FechaCorte: time.Now(), FechaInicio: time.Now(), FechaFin: nil},
		entities.FRIParadas{FechaCorte: time.Now(), FechaInicio: time.Now(), FechaFin: &fin},
	})
	assert.Equal(t, "", filas[0]["Fecha_Fin"])
	assert.Equal(t, "10/02/2025, 18:30:00", filas[1]["Fecha_Fin"])
}

type reporteDesconocido struct{ base entities.ReporteBase }

func (r reporteDesconocido) ReporteBase() entities.ReporteBase { return r.base }

func TestTransformTipoDesconocidoConservaBase(t *testing.T) {
	filas := fri.Transform([]entities.Reporte{reporteDesconocido{base: entities.ReporteBase{
		FechaCorte:   time.Date(2025, 5, 5, 12, 0, 0, 0, time.Local),
		TituloMinero: tituloDePrueba(),
		Estado:       entities.EstadoBorrador,
	}}})
	require.Len(t, filas, 1)

	fila := filas[0]
	assert.Len(t, fila, 5)
	assert.Equal(t, "TM-001", fila["Titulo_minero"])
	assert.Equal(t, entities.EstadoBorrador, fila["Estado"])
}

func TestTransformPuntosUsaBogota(t *testing.T) {
	// 03:04:05 UTC is 22:04:05 of the previous day in Bogotá (UTC-5).
	filas := fri.TransformPuntos([]entities.PuntoActividad{{
		UsuarioID:      7,
		TituloMineroID: 3,
		Latitud:        5.71,
		Longitud:       -72.93,
		Categoria:      entities.CategoriaExtraccion,
		Fecha:          time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}})
	require.Len(t, filas, 1)
	assert.Equal(t, "01/01/2024, 22:04:05", filas[0]["Fecha"])
}

func TestTransformPuntosVolumenNil(t *testing.T) {
	filas := fri.TransformPuntos([]entities.PuntoActividad{
		{Fecha: time.Now(), VolumenM3: nil},
		{Fecha: time.Now(), VolumenM3: flotante(12.5)},
	})
	assert.Equal(t, "", filas[0]["Volumen_m3"])
	assert.Equal(t, 12.5, filas[1]["Volumen_m3"])
}

func TestTransformKeysMatchColumns(t *testing.T) {
	corte := time.Now()
	muestras := map[string][]entities.Reporte{
		fri.TipoProduccion:  {entities.FRIProduccion{FechaCorte: corte}},
		fri.TipoInventarios: {entities.FRIInventarios{FechaCorte: corte}},
		fri.TipoParadas:     {entities.FRIParadas{FechaCorte: corte, FechaInicio: corte}},
		fri.TipoEjecucion:   {entities.FRIEjecucion{FechaCorte: corte}},
		fri.TipoMaquinaria:  {entities.FRIMaquinaria{FechaCorte: corte}},
		fri.TipoRegalias:    {entities.FRIRegalias{FechaCorte: corte}},
	}
	for tipo, registros := range muestras {
		fila := fri.Transform(registros)[0]
		columnas := fri.ColumnsFor(tipo)
		require.Len(t, fila, len(columnas), "tipo %s", tipo)
		for _, columna := range columnas {
			assert.Contains(t, fila, columna, "tipo %s", tipo)
		}
	}

	fila := fri.TransformPuntos([]entities.PuntoActividad{{Fecha: corte}})[0]
	columnas := fri.ColumnsFor(fri.TipoPuntosActividad)
	require.Len(t, fila, len(columnas))
	for _, columna := range columnas {
		assert.Contains(t, fila, columna)
	}
}
