package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/export"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func TestColSizes_SumanDoce(t *testing.T) {
	for n := 1; n <= 8; n++ {
		sum := 0
		for _, s := range colSizes(n) {
			sum += s
		}
		assert.Equal(t, gridSize, sum, "n=%d", n)
	}
	assert.Equal(t, []int{3, 3, 2, 2, 2}, colSizes(5))
}

func TestFormatCell(t *testing.T) {
	money := formatCell(export.KindMoney, decimal.RequireFromString("1250000.4"))
	assert.True(t, strings.HasSuffix(money, "FCFA"))
	assert.Equal(t, "1250000", digits(money))

	d, err := entity.ParseDate("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, "09/03/2026", formatCell(export.KindDate, d))
	assert.Equal(t, "09/03/2026 14:30", formatCell(export.KindTime, time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "—", formatCell(export.KindText, ""))
	assert.Equal(t, "—", formatCell(export.KindDate, entity.Date{}))
}

func TestExportRenderer_GeneraPDF(t *testing.T) {
	ds := &export.Dataset{
		Title:       "Eno Livraison - Export des données",
		GeneratedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		Sections: []export.Section{
			{
				Category: export.CategoryProducts,
				Title:    "Produits",
				Columns:  []export.Column{{Header: "Produit"}, {Header: "Stock", Kind: export.KindInt}, {Header: "Prix", Kind: export.KindMoney}},
				Rows: [][]any{
					{"Savon", 4, decimal.NewFromInt(500)},
					{"Riz", 9, decimal.NewFromInt(10000)},
				},
			},
			{Category: export.CategorySalaries, Title: "Salaires", Columns: []export.Column{{Header: "Bénéficiaire"}}},
		},
	}

	r := NewExportRenderer()
	out, err := r.Render(context.Background(), ds)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
}
