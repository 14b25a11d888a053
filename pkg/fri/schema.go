package fri

// Tipo tags for the seven supported report tables.
const (
	TipoProduccion      = "produccion"
	TipoInventarios     = "inventarios"
	TipoParadas         = "paradas"
	TipoEjecucion       = "ejecucion"
	TipoMaquinaria      = "maquinaria"
	TipoRegalias        = "regalias"
	TipoPuntosActividad = "puntosActividad"
)

// Column is one header of the regulatory ANM template. Header strings must
// match the template bit-for-bit when exported.
type Column struct {
	Header string
	Width  float64
}

var columnas = map[string][]Column{
	TipoProduccion: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Mineral", 20},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Horas_Operativas", 18},
		{"Cantidad_produccion", 20},
		{"Unidad_medida_produccion", 25},
		{"Cantidad_material_entra_Plantabeneficio", 35},
		{"Cantidad_material_sale_Plantabeneficio", 35},
		{"Masa_unitaria", 15},
		{"Estado", 15},
	},
	TipoInventarios: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Mineral", 20},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Unidad_medida", 15},
		{"Inventario_Inicial_Acopio", 25},
		{"Inventario_Final_Acopio", 25},
		{"Ingreso_Acopio", 20},
		{"Salida_Acopio", 20},
		{"Estado", 15},
	},
	TipoParadas: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Tipo_Parada", 20},
		{"Fecha_Inicio", 20},
		{"Fecha_Fin", 20},
		{"Horas_Paradas", 18},
		{"Motivo", 40},
		{"Estado", 15},
	},
	TipoEjecucion: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Mineral", 20},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Denominacion_Frente", 25},
		{"Latitud", 15},
		{"Longitud", 15},
		{"Metodo_Explotacion", 25},
		{"Avance_Ejecutado", 18},
		{"Unidad_medida_avance", 22},
		{"Volumen_Ejecutado", 20},
		{"Estado", 15},
	},
	TipoMaquinaria: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Tipo_Maquinaria", 25},
		{"Cantidad", 15},
		{"Horas_Operacion", 20},
		{"Capacidad_Transporte", 22},
		{"Unidad_Capacidad", 18},
		{"Estado", 15},
	},
	TipoRegalias: {
		{"Fecha_corte_informacion_reportada", 30},
		{"Mineral", 20},
		{"Titulo_minero", 15},
		{"Municipio_de_extraccion", 25},
		{"Codigo_Municipio_extraccion", 25},
		{"Cantidad_Extraida", 20},
		{"Unidad_Medida", 18},
		{"Valor_Declaracion", 20},
		{"Valor_Contraprestaciones", 25},
		{"Resolucion_UPME", 20},
		{"Estado", 15},
	},
	TipoPuntosActividad: {
		{"Fecha", 22},
		{"Usuario_id", 14},
		{"Titulo_minero_id", 18},
		{"Categoria", 18},
		{"Descripcion", 35},
		{"Maquinaria", 20},
		{"Volumen_m3", 14},
		{"Latitud", 15},
		{"Longitud", 15},
	},
}

// tiposFRI is the canonical page/sheet order for multi-type exports.
var tiposFRI = []string{
	TipoProduccion,
	TipoInventarios,
	TipoParadas,
	TipoEjecucion,
	TipoMaquinaria,
	TipoRegalias,
}

// Tipos returns every supported tipo in canonical order.
func Tipos() []string {
	return append(TiposFRI(), TipoPuntosActividad)
}

// TiposFRI returns the six report tipos (activity points excluded).
func TiposFRI() []string {
	out := make([]string, len(tiposFRI))
	copy(out, tiposFRI)
	return out
}

// Columns returns the ordered column set for a tipo, nil for an
// unrecognized one.
func Columns(tipo string) []Column {
	cols, ok := columnas[tipo]
	if !ok {
		return nil
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out
}

// ColumnsFor returns the ordered header labels for a tipo, nil for an
// unrecognized one. Never fails.
func ColumnsFor(tipo string) []string {
	cols, ok := columnas[tipo]
	if !ok {
		return nil
	}
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	return headers
}
