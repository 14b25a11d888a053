package entities

import "time"

// Estado of a FRI record.
const (
	EstadoBorrador = "BORRADOR"
	EstadoEnviado  = "ENVIADO"
	EstadoAprobado = "APROBADO"
)

// ReporteBase carries the fields every FRI table shares. The transformer
// renders these the same way for all types.
type ReporteBase struct {
	FechaCorte   time.Time
	TituloMinero *TituloMinero
	Estado       string
}

// Reporte is implemented by each FRI entity so the transformer and
// repositories can work over the six tables uniformly.
type Reporte interface {
	ReporteBase() ReporteBase
}

type FRIProduccion struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	Mineral             string   `json:"mineral"`
	HorasOperativas     *float64 `json:"horas_operativas"`
	CantidadProduccion  *float64 `json:"cantidad_produccion"`
	UnidadMedida        string   `json:"unidad_medida"`
	MaterialEntraPlanta *float64 `json:"material_entra_planta"`
	MaterialSalePlanta  *float64 `json:"material_sale_planta"`
	MasaUnitaria        *float64 `json:"masa_unitaria"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIProduccion) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}

type FRIInventarios struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	Mineral                 string   `json:"mineral"`
	UnidadMedida            string   `json:"unidad_medida"`
	InventarioInicialAcopio *float64 `json:"inventario_inicial_acopio"`
	InventarioFinalAcopio   *float64 `json:"inventario_final_acopio"`
	IngresoAcopio           *float64 `json:"ingreso_acopio"`
	SalidaAcopio            *float64 `json:"salida_acopio"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIInventarios) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}

type FRIParadas struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	TipoParada   string     `json:"tipo_parada"`
	FechaInicio  time.Time  `json:"fecha_inicio"`
	FechaFin     *time.Time `json:"fecha_fin"` // nil while the stoppage is ongoing
	HorasParadas *float64   `json:"horas_paradas"`
	Motivo       string     `json:"motivo"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIParadas) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}

type FRIEjecucion struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	Mineral            string   `json:"mineral"`
	DenominacionFrente string   `json:"denominacion_frente"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`
	MetodoExplotacion  string   `json:"metodo_explotacion"`
	AvanceEjecutado    *float64 `json:"avance_ejecutado"`
	UnidadMedidaAvance string   `json:"unidad_medida_avance"`
	VolumenEjecutado   *float64 `json:"volumen_ejecutado"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIEjecucion) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}

type FRIMaquinaria struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	TipoMaquinaria      string   `json:"tipo_maquinaria"`
	Cantidad            *int     `json:"cantidad"`
	HorasOperacion      *float64 `json:"horas_operacion"`
	CapacidadTransporte *float64 `json:"capacidad_transporte"`
	UnidadCapacidad     string   `json:"unidad_capacidad"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIMaquinaria) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}

type FRIRegalias struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FechaCorte     time.Time     `gorm:"index" json:"fecha_corte"`
	UsuarioID      uint          `gorm:"index" json:"usuario_id"`
	TituloMineroID uint          `json:"titulo_minero_id"`
	TituloMinero   *TituloMinero `json:"titulo_minero,omitempty"`
	Estado         string        `json:"estado"`

	Mineral                 string   `json:"mineral"`
	CantidadExtraida        *float64 `json:"cantidad_extraida"`
	UnidadMedida            string   `json:"unidad_medida"`
	ValorDeclaracion        *float64 `json:"valor_declaracion"`
	ValorContraprestaciones *float64 `json:"valor_contraprestaciones"`
	ResolucionUPME          string   `json:"resolucion_upme"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r FRIRegalias) ReporteBase() ReporteBase {
	return ReporteBase{FechaCorte: r.FechaCorte, TituloMinero: r.TituloMinero, Estado: r.Estado}
}
