// Package pdf genera el export de datos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + periodo exportado                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN por categoría: título + n filas                    │
//	│  TABLA: cabecera coloreada + una fila por registro          │
//	│  ...                                                        │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/eno-livraison-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const gridSize = 12

// ── Renderer ──────────────────────────────────────────────────────────────────

// ExportRenderer implementa export.Renderer usando Maroto v2.
type ExportRenderer struct{}

// NewExportRenderer construye el renderer.
func NewExportRenderer() *ExportRenderer {
	return &ExportRenderer{}
}

// ContentType MIME del documento generado.
func (r *ExportRenderer) ContentType() string {
	return "application/pdf"
}

// Render genera el PDF y devuelve sus bytes.
func (r *ExportRenderer) Render(_ context.Context, ds *export.Dataset) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(ds.Title, true).
		WithAuthor("Eno Livraison", true).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterFooter(footerRow(ds)); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}

	m.AddRows(headerRow(ds))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range ds.Sections {
		m.AddRows(row.New(4))
		m.AddRows(sectionTitleRow(s))
		m.AddRows(tableHeaderRow(s.Columns))
		if len(s.Rows) == 0 {
			m.AddRows(text.NewRow(7, "Aucune donnée", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1.5,
			}))
			continue
		}
		m.AddRows(tableRows(s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y periodo exportado (der).
func headerRow(ds *export.Dataset) core.Row {
	period := "Toutes les dates"
	if !ds.Range.IsZero() {
		period = fmt.Sprintf("Du %s au %s",
			formatCell(export.KindDate, ds.Range.From),
			formatCell(export.KindDate, ds.Range.To))
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(ds.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Période", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New(period, props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 8,
			}),
		),
	)
}

func sectionTitleRow(s export.Section) core.Row {
	return row.New(9).Add(
		col.New(9).Add(text.New(s.Title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%s ligne(s)", formatInt(len(s.Rows))), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 3,
		})),
	)
}

// tableHeaderRow: cabecera con fondo de color.
func tableHeaderRow(cols []export.Column) core.Row {
	sizes := colSizes(len(cols))
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		cells = append(cells, col.New(sizes[i]).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: alignFor(c.Kind),
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por registro, alternando fondo.
func tableRows(s export.Section) []core.Row {
	sizes := colSizes(len(s.Columns))
	rows := make([]core.Row, 0, len(s.Rows))
	for i, values := range s.Rows {
		cells := make([]core.Col, 0, len(s.Columns))
		for j, c := range s.Columns {
			var v any
			if j < len(values) {
				v = values[j]
			}
			cells = append(cells, col.New(sizes[j]).Add(text.New(formatCell(c.Kind, v), props.Text{
				Size: 7.5, Align: alignFor(c.Kind), Top: 1.5, Left: 1, Right: 1,
			})))
		}
		r := row.New(6).Add(cells...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

// footerRow: fecha de generación en cada página.
func footerRow(ds *export.Dataset) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Généré le "+ds.GeneratedAt.Format("02/01/2006 à 15:04"), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// colSizes reparte la grilla de 12 entre n columnas; el resto va a las primeras.
func colSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridSize {
		n = gridSize
	}
	sizes := make([]int, n)
	base, rest := gridSize/n, gridSize%n
	for i := range sizes {
		sizes[i] = base
		if i < rest {
			sizes[i]++
		}
	}
	return sizes
}

func alignFor(k export.Kind) align.Type {
	switch k {
	case export.KindInt, export.KindMoney:
		return align.Right
	}
	return align.Left
}
