package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción contable.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction asiento libre del libro (ingreso o gasto).
type Transaction struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	OperationDate Date            `json:"operation_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
