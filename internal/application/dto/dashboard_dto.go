package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// HomeDashboardDTO respuesta de GET /api/dashboard/home.
type HomeDashboardDTO struct {
	LowStockCount     int `json:"low_stock_count"`
	PendingDeliveries int `json:"pending_deliveries"`
	TotalPackages     int `json:"total_packages"`
	PartnerCount      int `json:"partner_count"`
	ProductCount      int `json:"product_count"`
}

// DayAmountDTO punto de una serie diaria.
type DayAmountDTO struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CEODashboardDTO totales históricos y series del periodo.
type CEODashboardDTO struct {
	AllTime       accounting.Summary `json:"all_time"`
	Period        accounting.Summary `json:"period"`
	RevenueByDay  []DayAmountDTO     `json:"revenue_by_day"`
	ExpensesByDay []DayAmountDTO     `json:"expenses_by_day"`
	TotalPackages int                `json:"total_packages"`
	StockValue    decimal.Decimal    `json:"stock_value"`
}

// ProductOutDTO salidas de stock agregadas por producto.
type ProductOutDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// StatisticsDTO respuesta de GET /api/dashboard/statistics.
type StatisticsDTO struct {
	ExpensesByCategory []accounting.CategoryTotal `json:"expenses_by_category"`
	StockOutByProduct  []ProductOutDTO            `json:"stock_out_by_product"`
	PartnerStats       []accounting.PartnerStat   `json:"partner_stats"`
}

// PartnerDashboardDTO vista del partenaire sobre su propio negocio.
type PartnerDashboardDTO struct {
	PartnerID       string                  `json:"partner_id"`
	PartnerName     string                  `json:"partner_name"`
	Turnover        decimal.Decimal         `json:"turnover"`
	DeliveryFees    decimal.Decimal         `json:"delivery_fees"`
	Packages        int                     `json:"packages"`
	ProductCount    int                     `json:"product_count"`
	LowStockCount   int                     `json:"low_stock_count"`
	TotalStock      int                     `json:"total_stock"`
	RecentMovements []*entity.StockMovement `json:"recent_movements"`
}

// AccountingSummaryDTO resumen contable con el periodo resuelto.
type AccountingSummaryDTO struct {
	From    string             `json:"from,omitempty"`
	To      string             `json:"to,omitempty"`
	Summary accounting.Summary `json:"summary"`
}
