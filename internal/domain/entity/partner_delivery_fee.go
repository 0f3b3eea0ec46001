package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerDeliveryFee liquidación periódica (normalmente diaria) de un partenaire.
type PartnerDeliveryFee struct {
	ID                     string          `json:"id"`
	PartnerID              string          `json:"partner_id"`
	Turnover               decimal.Decimal `json:"turnover"`
	TotalDeliveryFee       decimal.Decimal `json:"total_delivery_fee"`
	TotalPackagesDelivered int             `json:"total_packages_delivered"`
	OperationDate          Date            `json:"operation_date"`
	CreatedAt              time.Time       `json:"created_at"`
}
