package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

type snapshot struct {
	loaded       bool
	partners     []*entity.Partner
	products     []*entity.Product
	transactions []*entity.Transaction
	deliveries   []*entity.Delivery
	movements    []*entity.StockMovement
	orders       []*entity.StandardOrder
	fees         []*entity.PartnerDeliveryFee
	salaries     []*entity.Salary
}

func (s *snapshot) Loaded() bool {
	return s.loaded
}

func (s *snapshot) Partners() []*entity.Partner {
	return s.partners
}

func (s *snapshot) Partner(id string) (*entity.Partner, bool) {
	for _, p := range s.partners {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (s *snapshot) Products() []*entity.Product {
	return s.products
}

func (s *snapshot) Transactions() []*entity.Transaction {
	return s.transactions
}

func (s *snapshot) Deliveries() []*entity.Delivery {
	return s.deliveries
}

func (s *snapshot) StockMovements() []*entity.StockMovement {
	return s.movements
}

func (s *snapshot) StandardOrders() []*entity.StandardOrder {
	return s.orders
}

func (s *snapshot) PartnerDeliveryFees() []*entity.PartnerDeliveryFee {
	return s.fees
}

func (s *snapshot) Salaries() []*entity.Salary {
	return s.salaries
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func day(s string) entity.Date {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixture() *snapshot {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &snapshot{
		loaded: true,
		partners: []*entity.Partner{
			{ID: "ENO0001", PartnerCode: "ENO0001", Name: "Boutique Awa"},
			{ID: "ENO0002", PartnerCode: "ENO0002", Name: "Chez Kofi"},
		},
		products: []*entity.Product{
			{ID: "p1", PartnerID: "ENO0001", Name: "Savon", Stock: 2, AlertThreshold: 5, Price: dec("500")},
			{ID: "p2", PartnerID: "ENO0001", Name: "Huile", Stock: 40, AlertThreshold: 5, Price: dec("1500")},
			{ID: "p3", PartnerID: "ENO0002", Name: "Riz", Stock: 0, AlertThreshold: 10, Price: dec("10000")},
		},
		deliveries: []*entity.Delivery{
			{ID: "d1", PartnerID: "ENO0001", Status: entity.DeliveryPending},
			{ID: "d2", PartnerID: "ENO0002", Status: entity.DeliveryPending},
			{ID: "d3", PartnerID: "ENO0002", Status: entity.DeliveryDelivered},
		},
		fees: []*entity.PartnerDeliveryFee{
			{ID: "f1", PartnerID: "ENO0001", Turnover: dec("50000"), TotalDeliveryFee: dec("5000"), TotalPackagesDelivered: 10, OperationDate: day("2026-03-09")},
			{ID: "f2", PartnerID: "ENO0002", Turnover: dec("20000"), TotalDeliveryFee: dec("2000"), TotalPackagesDelivered: 4, OperationDate: day("2026-03-10")},
			{ID: "f3", PartnerID: "ENO0001", Turnover: dec("9000"), TotalDeliveryFee: dec("900"), TotalPackagesDelivered: 2, OperationDate: day("2026-02-01")},
		},
		orders: []*entity.StandardOrder{
			{ID: "o1", DeliveryAmount: dec("3000"), OperationDate: day("2026-03-10")},
		},
		transactions: []*entity.Transaction{
			{ID: "t1", Type: entity.TransactionIncome, Amount: dec("1000"), OperationDate: day("2026-03-09")},
			{ID: "t2", Type: entity.TransactionExpense, Amount: dec("4000"), Category: "Carburant", OperationDate: day("2026-03-10")},
			{ID: "t3", Type: entity.TransactionExpense, Amount: dec("500"), Category: "", OperationDate: day("2026-03-10")},
		},
		salaries: []*entity.Salary{
			{ID: "s1", Amount: dec("2500"), PaymentDate: day("2026-03-09")},
		},
		movements: []*entity.StockMovement{
			{ID: "m1", ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 3, CreatedAt: at},
			{ID: "m2", ProductID: "p3", Type: entity.MovementTypeOut, Quantity: 7, CreatedAt: at.Add(time.Hour)},
			{ID: "m3", ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 5, CreatedAt: at.Add(-time.Hour)},
			{ID: "m4", ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 1, CreatedAt: at.AddDate(0, -1, 0)},
		},
	}
}

func newUseCase(src Source) *DashboardUseCase {
	uc := NewDashboardUseCase(src)
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	return uc
}

func TestHome_PersonalVeTodo(t *testing.T) {
	uc := newUseCase(fixture())
	got, err := uc.Home(access.Grant{Role: access.RoleSecretary})
	require.NoError(t, err)
	assert.Equal(t, 2, got.LowStockCount)
	assert.Equal(t, 2, got.PendingDeliveries)
	assert.Equal(t, 16, got.TotalPackages)
	assert.Equal(t, 2, got.PartnerCount)
	assert.Equal(t, 3, got.ProductCount)
}

func TestHome_PartenaireSoloSusFilas(t *testing.T) {
	uc := newUseCase(fixture())
	got, err := uc.Home(access.Grant{Role: access.RolePartner, PartnerID: "ENO0002"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.LowStockCount)
	assert.Equal(t, 1, got.PendingDeliveries)
	assert.Equal(t, 4, got.TotalPackages)
	assert.Equal(t, 1, got.PartnerCount)
	assert.Equal(t, 1, got.ProductCount)
}

func TestDashboards_EspejoNoCargado(t *testing.T) {
	uc := newUseCase(&snapshot{})
	_, err := uc.Home(access.Grant{Role: access.RoleCEO})
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
	_, err = uc.CEO(dto.RangeQuery{})
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
	_, err = uc.Statistics(dto.RangeQuery{})
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
}

func TestCEO_TotalesYSeries(t *testing.T) {
	uc := newUseCase(fixture())
	got, err := uc.CEO(dto.RangeQuery{From: "2026-03-09", To: "2026-03-10"})
	require.NoError(t, err)

	// histórico: 7900 fees + 3000 pedidos + 1000 otros ingresos
	assert.True(t, dec("11900").Equal(got.AllTime.Turnover), got.AllTime.Turnover.String())
	assert.True(t, dec("11000").Equal(got.Period.Turnover), got.Period.Turnover.String())
	assert.True(t, dec("4000").Equal(got.Period.NetProfit), got.Period.NetProfit.String())
	assert.Equal(t, 16, got.TotalPackages)
	assert.True(t, dec("61000").Equal(got.StockValue), got.StockValue.String())

	require.Len(t, got.RevenueByDay, 2)
	assert.Equal(t, "2026-03-09", got.RevenueByDay[0].Date)
	assert.True(t, dec("6000").Equal(got.RevenueByDay[0].Amount))
	assert.True(t, dec("5000").Equal(got.RevenueByDay[1].Amount))
	require.Len(t, got.ExpensesByDay, 2)
	assert.True(t, dec("2500").Equal(got.ExpensesByDay[0].Amount))
	assert.True(t, dec("4500").Equal(got.ExpensesByDay[1].Amount))
}

func TestCEO_SinPeriodoUsaUltimos30Dias(t *testing.T) {
	uc := newUseCase(fixture())
	got, err := uc.CEO(dto.RangeQuery{})
	require.NoError(t, err)
	require.Len(t, got.RevenueByDay, 30)
	assert.Equal(t, "2026-03-10", got.RevenueByDay[29].Date)
	assert.True(t, got.AllTime.Turnover.Equal(got.Period.Turnover))
}

func TestCEO_RangoInvalido(t *testing.T) {
	uc := newUseCase(fixture())
	_, err := uc.CEO(dto.RangeQuery{From: "2026-03-10", To: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatistics(t *testing.T) {
	uc := newUseCase(fixture())
	got, err := uc.Statistics(dto.RangeQuery{Preset: "this_month"})
	require.NoError(t, err)

	require.Len(t, got.StockOutByProduct, 2)
	assert.Equal(t, "Riz", got.StockOutByProduct[0].ProductName)
	assert.Equal(t, 7, got.StockOutByProduct[0].Quantity)
	assert.Equal(t, 3, got.StockOutByProduct[1].Quantity, "la salida de febrero queda fuera")

	require.Len(t, got.ExpensesByCategory, 2)
	assert.Equal(t, "Carburant", got.ExpensesByCategory[0].Category)

	require.Len(t, got.PartnerStats, 2)
	assert.Equal(t, "ENO0001", got.PartnerStats[0].PartnerID)
}

func TestPartner_UsaElPartenaireDelToken(t *testing.T) {
	uc := newUseCase(fixture())
	actor := access.Grant{Role: access.RolePartner, PartnerID: "ENO0001"}

	got, err := uc.Partner(actor, "ENO0002", dto.RangeQuery{Preset: "this_month"})
	require.NoError(t, err)
	assert.Equal(t, "ENO0001", got.PartnerID)
	assert.True(t, dec("50000").Equal(got.Turnover))
	assert.True(t, dec("5000").Equal(got.DeliveryFees))
	assert.Equal(t, 10, got.Packages)
	assert.Equal(t, 2, got.ProductCount)
	assert.Equal(t, 1, got.LowStockCount)
	assert.Equal(t, 42, got.TotalStock)
	require.Len(t, got.RecentMovements, 3)
	assert.Equal(t, "m1", got.RecentMovements[0].ID)
	assert.Equal(t, "m4", got.RecentMovements[2].ID)
}

func TestPartner_Errores(t *testing.T) {
	uc := newUseCase(fixture())
	_, err := uc.Partner(access.Grant{Role: access.RolePartner}, "", dto.RangeQuery{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Partner(access.Grant{Role: access.RoleCEO}, "ENO0099", dto.RangeQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.Partner(access.Grant{Role: access.RoleCEO}, "ENO0002", dto.RangeQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Chez Kofi", got.PartnerName)
}
