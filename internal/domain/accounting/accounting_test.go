package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

func d(s string) entity.Date {
	v, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDateRange_InclusivoEnAmbosExtremos(t *testing.T) {
	r, err := accounting.NewRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.True(t, r.Contains(d("2024-03-01")))
	assert.True(t, r.Contains(d("2024-03-31")))
	assert.False(t, r.Contains(d("2024-04-01")))
	assert.False(t, r.Contains(d("2024-02-29")))
	assert.True(t, r.ContainsTime(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))

	_, err = accounting.NewRange("2024-03-31", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.True(t, accounting.DateRange{}.Contains(d("1999-01-01")))
}

func TestPresetRange(t *testing.T) {
	now := time.Date(2024, 5, 16, 15, 0, 0, 0, time.UTC) // jueves

	r, err := accounting.PresetRange(accounting.PresetThisWeek, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-13", r.From.String())
	assert.Equal(t, "2024-05-19", r.To.String())

	r, err = accounting.PresetRange(accounting.PresetThisMonth, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", r.From.String())
	assert.Equal(t, "2024-05-31", r.To.String())

	r, err = accounting.PresetRange(accounting.PresetLastMonth, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-12-01", r.From.String())
	assert.Equal(t, "2023-12-31", r.To.String())

	r, err = accounting.PresetRange(accounting.PresetToday, now)
	require.NoError(t, err)
	assert.Len(t, r.Days(), 1)

	_, err = accounting.PresetRange("yesterday", now)
	assert.Error(t, err)
}

func TestSummarize_SumaIngresosMenosDeducciones(t *testing.T) {
	r, _ := accounting.NewRange("2024-03-01", "2024-03-31")
	l := accounting.Ledger{
		StandardOrders: []*entity.StandardOrder{
			{DeliveryAmount: dec("2000"), OperationDate: d("2024-03-05")},
			{DeliveryAmount: dec("9999"), OperationDate: d("2024-04-01")},
		},
		Fees: []*entity.PartnerDeliveryFee{
			{TotalDeliveryFee: dec("15000"), Turnover: dec("100000"), OperationDate: d("2024-03-31")},
		},
		Transactions: []*entity.Transaction{
			{Type: entity.TransactionIncome, Amount: dec("500"), OperationDate: d("2024-03-10")},
			{Type: entity.TransactionExpense, Amount: dec("3000"), OperationDate: d("2024-03-01")},
			{Type: entity.TransactionExpense, Amount: dec("7777"), OperationDate: d("2024-02-28")},
		},
		Salaries: []*entity.Salary{
			{Amount: dec("4000"), PaymentDate: d("2024-03-15")},
		},
	}

	s := accounting.Summarize(r, l)
	assert.True(t, dec("15000").Equal(s.PartnerFees))
	assert.True(t, dec("2000").Equal(s.StandardOrders))
	assert.True(t, dec("500").Equal(s.OtherIncome))
	assert.True(t, dec("17500").Equal(s.Turnover))
	assert.True(t, dec("7000").Equal(s.Deductions))
	assert.True(t, dec("10500").Equal(s.NetProfit))

	all := accounting.Summarize(accounting.DateRange{}, l)
	assert.True(t, dec("12722").Equal(all.NetProfit), "rango vacío incluye todas las filas")
}

func TestExpensesByCategory(t *testing.T) {
	txs := []*entity.Transaction{
		{Type: entity.TransactionExpense, Category: "Carburant", Amount: dec("100")},
		{Type: entity.TransactionExpense, Category: "Carburant", Amount: dec("50")},
		{Type: entity.TransactionExpense, Category: "", Amount: dec("10")},
		{Type: entity.TransactionIncome, Category: "Carburant", Amount: dec("999")},
	}
	got := accounting.ExpensesByCategory(accounting.DateRange{}, txs)
	require.Len(t, got, 2)
	assert.Equal(t, "Carburant", got[0].Category)
	assert.True(t, dec("150").Equal(got[0].Total))
	assert.Equal(t, "Autre", got[1].Category)
}

func TestPartnerStats_OrdenPorFacturacion(t *testing.T) {
	partners := []*entity.Partner{{ID: "ENO0001", Name: "Beta"}, {ID: "ENO0002", Name: "alpha"}}
	fees := []*entity.PartnerDeliveryFee{
		{PartnerID: "ENO0001", Turnover: dec("10"), TotalDeliveryFee: dec("1"), TotalPackagesDelivered: 3},
		{PartnerID: "ENO0002", Turnover: dec("30"), TotalDeliveryFee: dec("2"), TotalPackagesDelivered: 1},
		{PartnerID: "ENO0002", Turnover: dec("5"), TotalDeliveryFee: dec("1"), TotalPackagesDelivered: 1},
		{PartnerID: "ENO9999", Turnover: dec("1000")},
	}
	stats := accounting.PartnerStats(partners, fees, accounting.DateRange{})
	require.Len(t, stats, 2)

	accounting.SortPartnerStats(stats, accounting.SortByTurnover, true)
	assert.Equal(t, "ENO0002", stats[0].PartnerID)
	assert.True(t, dec("35").Equal(stats[0].Turnover))
	assert.Equal(t, 2, stats[0].Settlements)

	accounting.SortPartnerStats(stats, accounting.SortByName, false)
	assert.Equal(t, "alpha", stats[0].Name)

	accounting.SortPartnerStats(stats, accounting.SortByPackages, true)
	assert.Equal(t, "ENO0001", stats[0].PartnerID)
}
