// Package export arma los datos exportables a partir del espejo y delega
// el formato (PDF o XLSX) en un Renderer de infraestructura.
package export

import (
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
)

// Categorías exportables.
const (
	CategoryPartners            = "partners"
	CategoryProducts            = "products"
	CategoryStockMovements      = "stock_movements"
	CategoryTransactions        = "transactions"
	CategoryStandardOrders      = "standard_orders"
	CategoryPartnerDeliveryFees = "partner_delivery_fees"
	CategorySalaries            = "salaries"
	CategoryDeliveries          = "deliveries"
	CategoryBankDeposits        = "bank_deposits"
)

// Categories orden canónico de las secciones.
var Categories = []string{
	CategoryPartners,
	CategoryProducts,
	CategoryStockMovements,
	CategoryTransactions,
	CategoryStandardOrders,
	CategoryPartnerDeliveryFees,
	CategorySalaries,
	CategoryDeliveries,
	CategoryBankDeposits,
}

var categoryTitles = map[string]string{
	CategoryPartners:            "Partenaires",
	CategoryProducts:            "Produits",
	CategoryStockMovements:      "Mouvements de stock",
	CategoryTransactions:        "Transactions",
	CategoryStandardOrders:      "Commandes standard",
	CategoryPartnerDeliveryFees: "Frais de livraison partenaires",
	CategorySalaries:            "Salaires",
	CategoryDeliveries:          "Livraisons",
	CategoryBankDeposits:        "Dépôts bancaires",
}

// financeCategories no se exportan para un usuario ligado a un partenaire.
var financeCategories = map[string]bool{
	CategoryTransactions:   true,
	CategoryStandardOrders: true,
	CategorySalaries:       true,
	CategoryBankDeposits:   true,
}

// CategoryTitle título legible de una categoría ("" si no existe).
func CategoryTitle(category string) string {
	return categoryTitles[category]
}

// Kind tipo de una columna; guía el formato en cada renderer.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMoney // decimal.Decimal
	KindDate  // entity.Date
	KindTime  // time.Time
)

// Column cabecera de una columna.
type Column struct {
	Header string
	Kind   Kind
}

// Section una tabla por categoría. Cada fila tiene un valor por columna.
type Section struct {
	Category string
	Title    string
	Columns  []Column
	Rows     [][]any
}

// Dataset documento completo a renderizar.
type Dataset struct {
	Title       string
	GeneratedAt time.Time
	Range       accounting.DateRange
	Sections    []Section
}
