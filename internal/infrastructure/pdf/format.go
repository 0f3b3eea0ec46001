package pdf

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/eno-livraison-api/internal/application/export"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// Montos en francos CFA, sin decimales y con separador de miles francés.
var printer = message.NewPrinter(language.French)

func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%v FCFA", number.Decimal(d.Round(0).InexactFloat64(), number.MaxFractionDigits(0)))
}

func formatInt(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// formatCell convierte un valor del dataset en texto según el tipo de columna.
func formatCell(kind export.Kind, v any) string {
	switch x := v.(type) {
	case nil:
		return "—"
	case string:
		if x == "" {
			return "—"
		}
		return x
	case int:
		return formatInt(x)
	case decimal.Decimal:
		return formatMoney(x)
	case entity.Date:
		if x.IsZero() {
			return "—"
		}
		return x.Format("02/01/2006")
	case time.Time:
		if x.IsZero() {
			return "—"
		}
		if kind == export.KindDate {
			return x.Format("02/01/2006")
		}
		return x.Format("02/01/2006 15:04")
	}
	return printer.Sprint(v)
}
