package accounting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// Summary resumen contable de un periodo.
type Summary struct {
	PartnerFees    decimal.Decimal `json:"partner_fees"`
	StandardOrders decimal.Decimal `json:"standard_orders"`
	OtherIncome    decimal.Decimal `json:"other_income"`
	Turnover       decimal.Decimal `json:"turnover"`
	Expenses       decimal.Decimal `json:"expenses"`
	Salaries       decimal.Decimal `json:"salaries"`
	Deductions     decimal.Decimal `json:"deductions"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// Ledger filas que intervienen en el resumen.
type Ledger struct {
	StandardOrders []*entity.StandardOrder
	Fees           []*entity.PartnerDeliveryFee
	Transactions   []*entity.Transaction
	Salaries       []*entity.Salary
}

// Summarize calcula el resumen del rango.
// Ingresos: total_delivery_fee de partenaires + delivery_amount de pedidos estándar
// + transacciones income. Deducciones: transacciones expense + salarios (por payment_date).
func Summarize(r DateRange, l Ledger) Summary {
	s := Summary{}
	for _, f := range l.Fees {
		if r.Contains(f.OperationDate) {
			s.PartnerFees = s.PartnerFees.Add(f.TotalDeliveryFee)
		}
	}
	for _, o := range l.StandardOrders {
		if r.Contains(o.OperationDate) {
			s.StandardOrders = s.StandardOrders.Add(o.DeliveryAmount)
		}
	}
	for _, t := range l.Transactions {
		if !r.Contains(t.OperationDate) {
			continue
		}
		switch t.Type {
		case entity.TransactionIncome:
			s.OtherIncome = s.OtherIncome.Add(t.Amount)
		case entity.TransactionExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	for _, sal := range l.Salaries {
		if r.Contains(sal.PaymentDate) {
			s.Salaries = s.Salaries.Add(sal.Amount)
		}
	}
	s.Turnover = s.PartnerFees.Add(s.StandardOrders).Add(s.OtherIncome)
	s.Deductions = s.Expenses.Add(s.Salaries)
	s.NetProfit = s.Turnover.Sub(s.Deductions)
	return s
}

// CategoryTotal total de gastos de una categoría.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpensesByCategory agrupa gastos del rango por categoría, de mayor a menor.
func ExpensesByCategory(r DateRange, txs []*entity.Transaction) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Type != entity.TransactionExpense || !r.Contains(t.OperationDate) {
			continue
		}
		cat := strings.TrimSpace(t.Category)
		if cat == "" {
			cat = "Autre"
		}
		totals[cat] = totals[cat].Add(t.Amount)
	}
	out := make([]CategoryTotal, 0, len(totals))
	for c, v := range totals {
		out = append(out, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
