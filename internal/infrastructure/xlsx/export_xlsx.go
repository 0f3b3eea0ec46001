// Package xlsx genera el export de datos en Excel con excelize: una hoja por categoría.
package xlsx

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/export"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// Excel limita los nombres de hoja a 31 caracteres.
const maxSheetName = 31

const defaultSheet = "Sheet1"

// ExportRenderer implementa export.Renderer con excelize.
type ExportRenderer struct{}

// NewExportRenderer construye el renderer.
func NewExportRenderer() *ExportRenderer {
	return &ExportRenderer{}
}

// ContentType MIME del libro generado.
func (r *ExportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render escribe una hoja por sección con cabecera en negrita y devuelve los bytes del libro.
func (r *ExportRenderer) Render(_ context.Context, ds *export.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for i, s := range ds.Sections {
		name := uniqueSheetName(s.Title, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %q: %w", name, err)
		}
		if err := writeSection(f, name, s, st); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	header int
	money  int
	date   int
	stamp  int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2563EB"}, Pattern: 1},
	}); err != nil {
		return st, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	moneyFmt := `#,##0 "FCFA"`
	if st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return st, fmt.Errorf("xlsx: estilo monto: %w", err)
	}
	dateFmt := "dd/mm/yyyy"
	if st.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return st, fmt.Errorf("xlsx: estilo fecha: %w", err)
	}
	stampFmt := "dd/mm/yyyy hh:mm"
	if st.stamp, err = f.NewStyle(&excelize.Style{CustomNumFmt: &stampFmt}); err != nil {
		return st, fmt.Errorf("xlsx: estilo fecha-hora: %w", err)
	}
	return st, nil
}

func writeSection(f *excelize.File, sheet string, s export.Section, st styles) error {
	for j, c := range s.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", cell, err)
		}
	}
	if n := len(s.Columns); n > 0 {
		last, _ := excelize.CoordinatesToCellName(n, 1)
		if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(n)
		if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return err
		}
	}

	for i, values := range s.Rows {
		for j, c := range s.Columns {
			if j >= len(values) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(values[j])); err != nil {
				return fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
			if style, ok := st.forKind(c.Kind); ok {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (st styles) forKind(k export.Kind) (int, bool) {
	switch k {
	case export.KindMoney:
		return st.money, true
	case export.KindDate:
		return st.date, true
	case export.KindTime:
		return st.stamp, true
	}
	return 0, false
}

// cellValue adapta los tipos del dominio a los que excelize escribe de forma nativa.
func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case entity.Date:
		if x.IsZero() {
			return ""
		}
		return x.Time
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x
	}
	return v
}

// uniqueSheetName limpia los caracteres prohibidos, recorta a 31 y evita repetidos.
func uniqueSheetName(title string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "Export"
	}
	name = truncate(name, maxSheetName)
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
