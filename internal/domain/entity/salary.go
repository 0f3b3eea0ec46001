package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary pago de nómina a un empleado (UserID) o a un beneficiario libre.
type Salary struct {
	ID              string          `json:"id"`
	UserID          *string         `json:"user_id"`
	BeneficiaryName string          `json:"beneficiary_name"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     Date            `json:"payment_date"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}
