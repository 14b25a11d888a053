package export

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tumina/entities"
	"tumina/pkg/fri"
)

// Periodo is the filter range echoed into each page's header band.
type Periodo struct {
	FechaInicio string
	FechaFin    string
}

// Page geometry in points, shared with the original CTGlobal template.
const (
	bandaAlto    = 90.0
	tablaInicioY = 120.0
	margenX      = 40.0
	margenFondo  = 100.0
	reinicioY    = 80.0
	filaAlto     = 16.0
)

type pagina struct {
	titulo string
	color  [3]int
	tabla  func([]entities.Reporte) ([]string, [][]string)
}

var paginas = map[string]pagina{
	fri.TipoProduccion:  {"PRODUCCIÓN", [3]int{0x42, 0x99, 0xe1}, tablaProduccion},
	fri.TipoInventarios: {"INVENTARIOS", [3]int{0x10, 0xb9, 0x81}, tablaInventarios},
	fri.TipoParadas:     {"PARADAS DE PRODUCCIÓN", [3]int{0xef, 0x44, 0x44}, tablaParadas},
	fri.TipoEjecucion:   {"EJECUCIÓN", [3]int{0xf5, 0x9e, 0x0b}, tablaEjecucion},
	fri.TipoMaquinaria:  {"MAQUINARIA", [3]int{0x8b, 0x5c, 0xf6}, tablaMaquinaria},
	fri.TipoRegalias:    {"REGALÍAS", [3]int{0xec, 0x48, 0x99}, tablaRegalias},
}

// PDF renders one landscape page (or more, when rows overflow) per
// populated tipo, in canonical order. Any rendering error rejects the
// whole document.
func PDF(registrosPorTipo map[string][]entities.Reporte, periodo Periodo) ([]byte, error) {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	paginasGeneradas := 0
	for _, tipo := range fri.TiposFRI() {
		registros := registrosPorTipo[tipo]
		if len(registros) == 0 {
			continue
		}
		pag := paginas[tipo]
		pdf.AddPage()
		dibujarBanda(pdf, tr, pag, periodo)
		encabezados, filas := pag.tabla(registros)
		dibujarTabla(pdf, tr, encabezados, filas)
		paginasGeneradas++
	}
	if paginasGeneradas == 0 {
		return nil, errors.New("sin datos para el documento")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dibujarBanda(pdf *fpdf.Fpdf, tr func(string) string, pag pagina, periodo Periodo) {
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(pag.color[0], pag.color[1], pag.color[2])
	pdf.Rect(0, 0, pageW, bandaAlto, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(100, 48, tr(pag.titulo))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(100, 68, tr("Formato de Reporte de Información - ANM"))

	pdf.SetFont("Helvetica", "", 9)
	if periodo.FechaInicio != "" || periodo.FechaFin != "" {
		inicio, fin := periodo.FechaInicio, periodo.FechaFin
		if inicio == "" {
			inicio = "Inicio"
		}
		if fin == "" {
			fin = "Hoy"
		}
		pdf.SetXY(pageW-290, 25)
		pdf.CellFormat(250, 12, tr("Período: "+inicio+" - "+fin), "", 0, "R", false, 0, "")
	}
	pdf.SetXY(pageW-290, 45)
	pdf.CellFormat(250, 12, "Generado: "+time.Now().Format("02/01/2006, 15:04:05"), "", 0, "R", false, 0, "")
}

// dibujarTabla paints the header row once and resumes only the table on
// continuation pages; the color band belongs to the tipo's first page.
func dibujarTabla(pdf *fpdf.Fpdf, tr func(string) string, encabezados []string, filas [][]string) {
	pageW, pageH := pdf.GetPageSize()
	tablaAncho := pageW - 2*margenX
	colAncho := tablaAncho / float64(len(encabezados))
	y := tablaInicioY

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0x1e, 0x3a, 0x8a)
	for i, encabezado := range encabezados {
		pdf.SetXY(margenX+float64(i)*colAncho, y)
		pdf.CellFormat(colAncho-4, 10, tr(truncar(pdf, encabezado, colAncho-4)), "", 0, "C", false, 0, "")
	}
	y += 18

	pdf.SetDrawColor(0xcb, 0xd5, 0xe1)
	pdf.Line(margenX, y, margenX+tablaAncho, y)
	y += 8

	pdf.SetFont("Helvetica", "", 7)
	for idx, fila := range filas {
		if y > pageH-margenFondo {
			pdf.AddPage()
			y = reinicioY
		}
		if idx%2 == 0 {
			pdf.SetFillColor(0xf8, 0xfa, 0xfc)
			pdf.Rect(margenX, y-4, tablaAncho, filaAlto, "F")
		}
		pdf.SetTextColor(0x33, 0x41, 0x55)
		for i, celda := range fila {
			pdf.SetXY(margenX+float64(i)*colAncho, y)
			pdf.CellFormat(colAncho-4, 10, tr(truncar(pdf, celda, colAncho-4)), "", 0, "C", false, 0, "")
		}
		y += filaAlto
	}
}

// truncar shortens a cell to its column width with a trailing ellipsis.
func truncar(pdf *fpdf.Fpdf, s string, ancho float64) string {
	if pdf.GetStringWidth(s) <= ancho {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if pdf.GetStringWidth(string(runes)+"...") <= ancho {
			break
		}
	}
	return string(runes) + "..."
}

var impresoraCO = message.NewPrinter(language.MustParse("es-CO"))

// formatearMoneda renders pesos with thousands grouping and no decimals.
// Missing or zero values render as the zero-currency string, not empty.
func formatearMoneda(v *float64) string {
	if v == nil || *v == 0 {
		return "$0"
	}
	return impresoraCO.Sprintf("$%d", int64(math.Round(*v)))
}

func fechaCorta(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func textoO(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func numeroO(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func numeroOGuion(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func tablaProduccion(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Mineral", "Título Minero", "Municipio", "Código Mun.",
		"Horas Op.", "Cantidad Prod.", "Unidad", "Material Entra", "Material Sale", "Masa Unit.",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIProduccion)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			textoO(r.Mineral),
			tituloO(base.TituloMinero),
			municipioO(base.TituloMinero),
			codigoO(base.TituloMinero),
			numeroO(r.HorasOperativas),
			numeroO(r.CantidadProduccion),
			textoO(r.UnidadMedida),
			numeroOGuion(r.MaterialEntraPlanta),
			numeroOGuion(r.MaterialSalePlanta),
			numeroOGuion(r.MasaUnitaria),
		})
	}
	return encabezados, filas
}

func tablaInventarios(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Mineral", "Título Minero", "Municipio", "Código Mun.",
		"Unidad", "Inv. Inicial", "Ingreso", "Salida", "Inv. Final",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIInventarios)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			textoO(r.Mineral),
			tituloO(base.TituloMinero),
			municipioO(base.TituloMinero),
			codigoO(base.TituloMinero),
			textoO(r.UnidadMedida),
			numeroO(r.InventarioInicialAcopio),
			numeroO(r.IngresoAcopio),
			numeroO(r.SalidaAcopio),
			numeroO(r.InventarioFinalAcopio),
		})
	}
	return encabezados, filas
}

func tablaParadas(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Título Minero", "Municipio", "Tipo Parada",
		"Fecha Inicio", "Fecha Fin", "Horas", "Motivo",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIParadas)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		fin := "En curso"
		if r.FechaFin != nil {
			fin = r.FechaFin.Format("02/01/2006, 15:04:05")
		}
		motivo := textoO(r.Motivo)
		if len([]rune(motivo)) > 30 {
			motivo = string([]rune(motivo)[:30])
		}
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			tituloO(base.TituloMinero),
			municipioO(base.TituloMinero),
			textoO(r.TipoParada),
			r.FechaInicio.Format("02/01/2006, 15:04:05"),
			fin,
			numeroO(r.HorasParadas),
			motivo,
		})
	}
	return encabezados, filas
}

func tablaEjecucion(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Mineral", "Título Minero", "Municipio",
		"Denominación Frente", "Método Explotación", "Avance Ejecutado", "Volumen Ejecutado",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIEjecucion)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			textoO(r.Mineral),
			tituloO(base.TituloMinero),
			municipioO(base.TituloMinero),
			textoO(r.DenominacionFrente),
			textoO(r.MetodoExplotacion),
			numeroO(r.AvanceEjecutado),
			numeroO(r.VolumenEjecutado),
		})
	}
	return encabezados, filas
}

func tablaMaquinaria(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Título Minero", "Tipo Maquinaria",
		"Cantidad", "Horas Operación", "Capacidad Transporte",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIMaquinaria)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		cantidad := "0"
		if r.Cantidad != nil {
			cantidad = strconv.Itoa(*r.Cantidad)
		}
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			tituloO(base.TituloMinero),
			textoO(r.TipoMaquinaria),
			cantidad,
			numeroO(r.HorasOperacion),
			numeroOGuion(r.CapacidadTransporte),
		})
	}
	return encabezados, filas
}

func tablaRegalias(registros []entities.Reporte) ([]string, [][]string) {
	encabezados := []string{
		"Fecha Corte", "Mineral", "Título Minero",
		"Cantidad Extraída", "Unidad", "Valor Declaración",
	}
	filas := make([][]string, 0, len(registros))
	for _, registro := range registros {
		r, ok := registro.(entities.FRIRegalias)
		if !ok {
			continue
		}
		base := r.ReporteBase()
		filas = append(filas, []string{
			fechaCorta(base.FechaCorte),
			textoO(r.Mineral),
			tituloO(base.TituloMinero),
			numeroO(r.CantidadExtraida),
			textoO(r.UnidadMedida),
			formatearMoneda(r.ValorDeclaracion),
		})
	}
	return encabezados, filas
}

func tituloO(t *entities.TituloMinero) string {
	if t == nil {
		return "-"
	}
	return textoO(t.NumeroTitulo)
}

func municipioO(t *entities.TituloMinero) string {
	if t == nil {
		return "-"
	}
	return textoO(t.Municipio)
}

func codigoO(t *entities.TituloMinero) string {
	if t == nil {
		return "-"
	}
	return textoO(t.CodigoMunicipio)
}
