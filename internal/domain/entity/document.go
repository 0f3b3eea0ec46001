package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document metadatos de un archivo guardado en el storage remoto.
type Document struct {
	ID          string
	Title       string
	Description string
	FileURL     string
	FileType    string
	UserID      string
	CreatedAt   time.Time
}

// BankDeposit depósito bancario con su recibo en el storage remoto.
type BankDeposit struct {
	ID              string          `json:"id"`
	Date            Date            `json:"date"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	ReceiptPhotoURL string          `json:"receipt_photo_url"`
	UserID          string          `json:"user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}
