package entity

// Nombres de las tablas remotas.
const (
	TablePartners            = "partners"
	TableProducts            = "products"
	TableTransactions        = "transactions"
	TableDeliveries          = "deliveries"
	TableStockMovements      = "stock_movements"
	TableBankDeposits        = "bank_deposits"
	TableStandardOrders      = "standard_orders"
	TablePartnerDeliveryFees = "partner_delivery_fees"
	TableSalaries            = "salaries"
	TableProfiles            = "profiles"
	TableActivityLog         = "activity_log"
	TableDocuments           = "documents"
)

// MirroredTables tablas que el espejo mantiene en memoria durante la sesión.
var MirroredTables = []string{
	TablePartners,
	TableProducts,
	TableTransactions,
	TableDeliveries,
	TableStockMovements,
	TableBankDeposits,
	TableStandardOrders,
	TablePartnerDeliveryFees,
	TableSalaries,
}
