package dto

import "github.com/shopspring/decimal"

// TransactionRequest alta o edición completa de una transacción.
type TransactionRequest struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	OperationDate string          `json:"operation_date" validate:"required"`
}

// StandardOrderRequest alta o edición de un pedido estándar.
type StandardOrderRequest struct {
	PickupLocation   string          `json:"pickup_location" validate:"required,max=500"`
	DeliveryLocation string          `json:"delivery_location" validate:"required,max=500"`
	DeliveryAmount   decimal.Decimal `json:"delivery_amount"`
	OperationDate    string          `json:"operation_date" validate:"required"`
}

// PartnerDeliveryFeeRequest alta o edición de una liquidación de partenaire.
type PartnerDeliveryFeeRequest struct {
	PartnerID              string          `json:"partner_id" validate:"required"`
	Turnover               decimal.Decimal `json:"turnover"`
	TotalDeliveryFee       decimal.Decimal `json:"total_delivery_fee"`
	TotalPackagesDelivered int             `json:"total_packages_delivered" validate:"min=0"`
	OperationDate          string          `json:"operation_date" validate:"required"`
}

// SalaryRequest alta o edición de un pago de salario (user_id o beneficiary_name).
type SalaryRequest struct {
	UserID          string          `json:"user_id"`
	BeneficiaryName string          `json:"beneficiary_name" validate:"omitempty,max=200"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"payment_date" validate:"required"`
	Notes           string          `json:"notes" validate:"omitempty,max=1000"`
}

// DeliveryRequest alta de una entrega.
type DeliveryRequest struct {
	PartnerID       string          `json:"partner_id" validate:"required"`
	PickupAddress   string          `json:"pickup_address" validate:"required,max=500"`
	DeliveryAddress string          `json:"delivery_address" validate:"required,max=500"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status" validate:"omitempty,oneof=pending delivered cancelled"`
}

// BankDepositRequest alta de un depósito bancario (el recibo ya está en el storage).
type BankDepositRequest struct {
	Date            string          `json:"date" validate:"required"`
	Reference       string          `json:"reference" validate:"required,max=200"`
	Amount          decimal.Decimal `json:"amount"`
	ReceiptPhotoURL string          `json:"receipt_photo_url" validate:"omitempty,url"`
}

// DocumentRequest alta de un documento (metadatos; el archivo ya está en el storage).
type DocumentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	FileURL     string `json:"file_url" validate:"required,url"`
	FileType    string `json:"file_type" validate:"omitempty,max=100"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
}
