package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tumina/pkg/fri"
)

// Sheet names for the multi-type workbook, keyed by tipo.
var etiquetasHoja = map[string]string{
	fri.TipoProduccion:      "PRODUCCIÓN",
	fri.TipoInventarios:     "INVENTARIOS",
	fri.TipoParadas:         "PARADAS",
	fri.TipoEjecucion:       "EJECUCIÓN",
	fri.TipoMaquinaria:      "MAQUINARIA",
	fri.TipoRegalias:        "REGALÍAS",
	fri.TipoPuntosActividad: "PUNTOS ACTIVIDAD",
}

// Excel serializes transformed rows for one tipo into a single-sheet
// workbook: bold centered header, thin borders everywhere, column widths
// from the registry.
func Excel(tipo string, registros []fri.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Datos"
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, err
	}
	if err := escribirHoja(f, hoja, tipo, registros); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ExcelMultiple emits one named sheet per non-empty tipo in canonical
// order, reusing the single-sheet writer per sheet.
func ExcelMultiple(registrosPorTipo map[string][]fri.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	hojas := 0
	for _, tipo := range fri.Tipos() {
		registros := registrosPorTipo[tipo]
		if len(registros) == 0 {
			continue
		}
		hoja := etiquetasHoja[tipo]
		if _, err := f.NewSheet(hoja); err != nil {
			return nil, err
		}
		if err := escribirHoja(f, hoja, tipo, registros); err != nil {
			return nil, err
		}
		hojas++
	}
	if hojas == 0 {
		return nil, errors.New("sin hojas para exportar")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func escribirHoja(f *excelize.File, hoja, tipo string, registros []fri.Row) error {
	columnas := fri.Columns(tipo)
	if columnas == nil {
		return fmt.Errorf("tipo sin columnas: %s", tipo)
	}

	encabezados := make([]any, len(columnas))
	for i, col := range columnas {
		encabezados[i] = col.Header
	}
	if err := f.SetSheetRow(hoja, "A1", &encabezados); err != nil {
		return err
	}

	for i, registro := range registros {
		valores := make([]any, len(columnas))
		for j, col := range columnas {
			valores[j] = registro[col.Header]
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hoja, celda, &valores); err != nil {
			return err
		}
	}

	for i, col := range columnas {
		nombre, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(hoja, nombre, nombre, col.Width); err != nil {
			return err
		}
	}

	return aplicarEstilos(f, hoja, len(columnas), len(registros))
}

func aplicarEstilos(f *excelize.File, hoja string, numColumnas, numRegistros int) error {
	bordes := []excelize.Border{
		{Type: "top", Style: 1},
		{Type: "left", Style: 1},
		{Type: "bottom", Style: 1},
		{Type: "right", Style: 1},
	}

	estiloEncabezado, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    bordes,
	})
	if err != nil {
		return err
	}
	estiloCelda, err := f.NewStyle(&excelize.Style{Border: bordes})
	if err != nil {
		return err
	}

	ultima, err := excelize.ColumnNumberToName(numColumnas)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(hoja, "A1", ultima+"1", estiloEncabezado); err != nil {
		return err
	}
	if numRegistros > 0 {
		fin := fmt.Sprintf("%s%d", ultima, numRegistros+1)
		if err := f.SetCellStyle(hoja, "A2", fin, estiloCelda); err != nil {
			return err
		}
	}
	return nil
}
