package fri

import (
	"time"

	"tumina/entities"
)

// Row is one transformed record keyed by template header. The keys of a
// row are exactly the ColumnsFor entries of its tipo, in that order.
type Row map[string]any

// bogota is the fixed display zone for activity-point timestamps. Report
// dates use whatever zone the server runs in.
var bogota = func() *time.Location {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		return time.FixedZone("-05", -5*60*60)
	}
	return loc
}()

const formatoFecha = "02/01/2006, 15:04:05"

// FormatFecha renders a report date with 2-digit day/month and a 24-hour
// clock, empty for the zero time.
func FormatFecha(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(formatoFecha)
}

// FormatFechaBogota renders an activity-point timestamp in America/Bogota
// regardless of server locale.
func FormatFechaBogota(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(bogota).Format(formatoFecha)
}

// numOrEmpty keeps nil apart from zero: a nullable continuous quantity
// that was never reported renders as empty string, not 0.
func numOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

// numOrZero is the coercion the regulatory template expects for
// hour/quantity meters: an absent value counts as 0.
func numOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func baseRow(b entities.ReporteBase) Row {
	row := Row{
		"Fecha_corte_informacion_reportada": FormatFecha(b.FechaCorte),
		"Titulo_minero":                     "",
		"Municipio_de_extraccion":           "",
		"Codigo_Municipio_extraccion":       "",
		"Estado":                            b.Estado,
	}
	if b.TituloMinero != nil {
		row["Titulo_minero"] = b.TituloMinero.NumeroTitulo
		row["Municipio_de_extraccion"] = b.TituloMinero.Municipio
		row["Codigo_Municipio_extraccion"] = b.TituloMinero.CodigoMunicipio
	}
	return row
}

// Transform maps report records to template rows. Dispatch is on the
// concrete entity type; anything unrecognized keeps only the shared base
// fields instead of failing. Pure over its input.
func Transform(registros []entities.Reporte) []Row {
	rows := make([]Row, 0, len(registros))
	for _, registro := range registros {
		row := baseRow(registro.ReporteBase())

		switch r := registro.(type) {
		case entities.FRIProduccion:
			row["Mineral"] = r.Mineral
			row["Horas_Operativas"] = numOrZero(r.HorasOperativas)
			row["Cantidad_produccion"] = numOrZero(r.CantidadProduccion)
			row["Unidad_medida_produccion"] = r.UnidadMedida
			row["Cantidad_material_entra_Plantabeneficio"] = numOrEmpty(r.MaterialEntraPlanta)
			row["Cantidad_material_sale_Plantabeneficio"] = numOrEmpty(r.MaterialSalePlanta)
			row["Masa_unitaria"] = numOrEmpty(r.MasaUnitaria)

		case entities.FRIInventarios:
			row["Mineral"] = r.Mineral
			row["Unidad_medida"] = r.UnidadMedida
			row["Inventario_Inicial_Acopio"] = numOrEmpty(r.InventarioInicialAcopio)
			row["Inventario_Final_Acopio"] = numOrEmpty(r.InventarioFinalAcopio)
			row["Ingreso_Acopio"] = numOrEmpty(r.IngresoAcopio)
			row["Salida_Acopio"] = numOrEmpty(r.SalidaAcopio)

		case entities.FRIParadas:
			row["Tipo_Parada"] = r.TipoParada
			row["Fecha_Inicio"] = FormatFecha(r.FechaInicio)
			row["Fecha_Fin"] = ""
			if r.FechaFin != nil {
				row["Fecha_Fin"] = FormatFecha(*r.FechaFin)
			}
			row["Horas_Paradas"] = numOrZero(r.HorasParadas)
			row["Motivo"] = r.Motivo

		case entities.FRIEjecucion:
			row["Mineral"] = r.Mineral
			row["Denominacion_Frente"] = r.DenominacionFrente
			row["Latitud"] = numOrEmpty(r.Latitud)
			row["Longitud"] = numOrEmpty(r.Longitud)
			row["Metodo_Explotacion"] = r.MetodoExplotacion
			row["Avance_Ejecutado"] = numOrEmpty(r.AvanceEjecutado)
			row["Unidad_medida_avance"] = r.UnidadMedidaAvance
			row["Volumen_Ejecutado"] = numOrEmpty(r.VolumenEjecutado)

		case entities.FRIMaquinaria:
			row["Tipo_Maquinaria"] = r.TipoMaquinaria
			row["Cantidad"] = intOrZero(r.Cantidad)
			row["Horas_Operacion"] = numOrZero(r.HorasOperacion)
			row["Capacidad_Transporte"] = numOrEmpty(r.CapacidadTransporte)
			row["Unidad_Capacidad"] = r.UnidadCapacidad

		case entities.FRIRegalias:
			row["Mineral"] = r.Mineral
			row["Cantidad_Extraida"] = numOrEmpty(r.CantidadExtraida)
			row["Unidad_Medida"] = r.UnidadMedida
			row["Valor_Declaracion"] = numOrEmpty(r.ValorDeclaracion)
			row["Valor_Contraprestaciones"] = numOrEmpty(r.ValorContraprestaciones)
			row["Resolucion_UPME"] = r.ResolucionUPME
		}

		rows = append(rows, row)
	}
	return rows
}

// TransformPuntos maps activity points to template rows. Points carry no
// mining-title join, so they do not share the report base.
func TransformPuntos(puntos []entities.PuntoActividad) []Row {
	rows := make([]Row, 0, len(puntos))
	for _, p := range puntos {
		rows = append(rows, Row{
			"Fecha":            FormatFechaBogota(p.Fecha),
			"Usuario_id":       p.UsuarioID,
			"Titulo_minero_id": p.TituloMineroID,
			"Categoria":        p.Categoria,
			"Descripcion":      p.Descripcion,
			"Maquinaria":       p.Maquinaria,
			"Volumen_m3":       numOrEmpty(p.VolumenM3),
			"Latitud":          p.Latitud,
			"Longitud":         p.Longitud,
		})
	}
	return rows
}
