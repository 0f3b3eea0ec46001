// Package analytics contiene los casos de uso de los tableros: inicio,
// dirección (CEO), estadísticas y tablero del partenaire.
//
// Todo se calcula en lectura sobre el espejo en memoria; no hay consultas a la DB.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/stock"
)

const (
	recentMovements = 10 // movimientos en el widget del partenaire
	seriesDays      = 30 // ventana por defecto de las series diarias
)

// Source colecciones del espejo que consumen los tableros.
type Source interface {
	Loaded() bool
	Partners() []*entity.Partner
	Partner(id string) (*entity.Partner, bool)
	Products() []*entity.Product
	Transactions() []*entity.Transaction
	Deliveries() []*entity.Delivery
	StockMovements() []*entity.StockMovement
	StandardOrders() []*entity.StandardOrder
	PartnerDeliveryFees() []*entity.PartnerDeliveryFee
	Salaries() []*entity.Salary
}

// DashboardUseCase construye los DTO de los cuatro tableros.
type DashboardUseCase struct {
	src Source
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Source) *DashboardUseCase {
	return &DashboardUseCase{src: src, now: time.Now}
}

// Home tablero de inicio. Un partenaire solo cuenta sus propias filas.
func (uc *DashboardUseCase) Home(actor access.Grant) (*dto.HomeDashboardDTO, error) {
	if !uc.src.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	out := &dto.HomeDashboardDTO{}
	for _, p := range uc.src.Partners() {
		if actor.SeesPartner(p.ID) {
			out.PartnerCount++
		}
	}
	for _, p := range uc.src.Products() {
		if !actor.SeesPartner(p.PartnerID) {
			continue
		}
		out.ProductCount++
		if stock.ProductIsLow(p) {
			out.LowStockCount++
		}
	}
	for _, d := range uc.src.Deliveries() {
		if actor.SeesPartner(d.PartnerID) && d.Status == entity.DeliveryPending {
			out.PendingDeliveries++
		}
	}
	for _, f := range uc.src.PartnerDeliveryFees() {
		if actor.SeesPartner(f.PartnerID) {
			out.TotalPackages += f.TotalPackagesDelivered
		}
	}
	return out, nil
}

// CEO totales históricos, totales del periodo y series diarias de ingresos y gastos.
// Sin periodo se usan los últimos 30 días para las series.
func (uc *DashboardUseCase) CEO(q dto.RangeQuery) (*dto.CEODashboardDTO, error) {
	if !uc.src.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	r, err := accounting.Resolve(q.Preset, q.From, q.To, uc.now())
	if err != nil {
		return nil, err
	}
	ledger := uc.ledger()
	out := &dto.CEODashboardDTO{
		AllTime:    accounting.Summarize(accounting.DateRange{}, ledger),
		Period:     accounting.Summarize(r, ledger),
		StockValue: decimal.Zero,
	}
	for _, f := range ledger.Fees {
		out.TotalPackages += f.TotalPackagesDelivered
	}
	for _, p := range uc.src.Products() {
		out.StockValue = out.StockValue.Add(stock.Value(p))
	}

	days := uc.seriesRange(r).Days()
	revenue := make(map[string]decimal.Decimal, len(days))
	expenses := make(map[string]decimal.Decimal, len(days))
	for _, f := range ledger.Fees {
		addDay(revenue, f.OperationDate, f.TotalDeliveryFee)
	}
	for _, o := range ledger.StandardOrders {
		addDay(revenue, o.OperationDate, o.DeliveryAmount)
	}
	for _, t := range ledger.Transactions {
		switch t.Type {
		case entity.TransactionIncome:
			addDay(revenue, t.OperationDate, t.Amount)
		case entity.TransactionExpense:
			addDay(expenses, t.OperationDate, t.Amount)
		}
	}
	for _, s := range ledger.Salaries {
		addDay(expenses, s.PaymentDate, s.Amount)
	}
	out.RevenueByDay = series(days, revenue)
	out.ExpensesByDay = series(days, expenses)
	return out, nil
}

// Statistics gastos por categoría, salidas de stock por producto y estadísticas por partenaire.
func (uc *DashboardUseCase) Statistics(q dto.RangeQuery) (*dto.StatisticsDTO, error) {
	if !uc.src.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	r, err := accounting.Resolve(q.Preset, q.From, q.To, uc.now())
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	for _, p := range uc.src.Products() {
		names[p.ID] = p.Name
	}
	outByProduct := make(map[string]int)
	for _, m := range uc.src.StockMovements() {
		if m.Type == entity.MovementTypeOut && r.ContainsTime(m.CreatedAt) {
			outByProduct[m.ProductID] += m.Quantity
		}
	}
	stockOut := make([]dto.ProductOutDTO, 0, len(outByProduct))
	for id, qty := range outByProduct {
		name, ok := names[id]
		if !ok {
			name = id
		}
		stockOut = append(stockOut, dto.ProductOutDTO{ProductID: id, ProductName: name, Quantity: qty})
	}
	sort.Slice(stockOut, func(i, j int) bool {
		if stockOut[i].Quantity != stockOut[j].Quantity {
			return stockOut[i].Quantity > stockOut[j].Quantity
		}
		return stockOut[i].ProductName < stockOut[j].ProductName
	})

	stats := accounting.PartnerStats(uc.src.Partners(), uc.src.PartnerDeliveryFees(), r)
	accounting.SortPartnerStats(stats, accounting.SortByTurnover, true)

	return &dto.StatisticsDTO{
		ExpensesByCategory: accounting.ExpensesByCategory(r, uc.src.Transactions()),
		StockOutByProduct:  stockOut,
		PartnerStats:       stats,
	}, nil
}

// Partner tablero de un partenaire. Para el rol partner se ignora partnerID
// y se usa el del token; el personal puede consultar cualquier partenaire.
func (uc *DashboardUseCase) Partner(actor access.Grant, partnerID string, q dto.RangeQuery) (*dto.PartnerDashboardDTO, error) {
	if !uc.src.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	if actor.ScopedToPartner() {
		partnerID = actor.PartnerID
	}
	if partnerID == "" {
		return nil, domain.ErrForbidden
	}
	partner, ok := uc.src.Partner(partnerID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	r, err := accounting.Resolve(q.Preset, q.From, q.To, uc.now())
	if err != nil {
		return nil, err
	}

	out := &dto.PartnerDashboardDTO{
		PartnerID:       partner.ID,
		PartnerName:     partner.Name,
		Turnover:        decimal.Zero,
		DeliveryFees:    decimal.Zero,
		RecentMovements: []*entity.StockMovement{},
	}
	for _, f := range uc.src.PartnerDeliveryFees() {
		if f.PartnerID != partner.ID || !r.Contains(f.OperationDate) {
			continue
		}
		out.Turnover = out.Turnover.Add(f.Turnover)
		out.DeliveryFees = out.DeliveryFees.Add(f.TotalDeliveryFee)
		out.Packages += f.TotalPackagesDelivered
	}
	own := make(map[string]bool)
	for _, p := range uc.src.Products() {
		if p.PartnerID != partner.ID {
			continue
		}
		own[p.ID] = true
		out.ProductCount++
		out.TotalStock += p.Stock
		if stock.ProductIsLow(p) {
			out.LowStockCount++
		}
	}
	for _, m := range uc.src.StockMovements() {
		if own[m.ProductID] {
			out.RecentMovements = append(out.RecentMovements, m)
		}
	}
	sort.SliceStable(out.RecentMovements, func(i, j int) bool {
		return out.RecentMovements[i].CreatedAt.After(out.RecentMovements[j].CreatedAt)
	})
	if len(out.RecentMovements) > recentMovements {
		out.RecentMovements = out.RecentMovements[:recentMovements]
	}
	return out, nil
}

// ledger arma el libro completo del espejo.
func (uc *DashboardUseCase) ledger() accounting.Ledger {
	return accounting.Ledger{
		StandardOrders: uc.src.StandardOrders(),
		Fees:           uc.src.PartnerDeliveryFees(),
		Transactions:   uc.src.Transactions(),
		Salaries:       uc.src.Salaries(),
	}
}

// seriesRange cierra los extremos abiertos: hasta hoy y 30 días hacia atrás.
func (uc *DashboardUseCase) seriesRange(r accounting.DateRange) accounting.DateRange {
	if r.To.IsZero() {
		r.To = entity.NewDate(uc.now())
	}
	if r.From.IsZero() {
		r.From = entity.Date{Time: r.To.AddDate(0, 0, -(seriesDays - 1))}
	}
	return r
}

func addDay(m map[string]decimal.Decimal, d entity.Date, amount decimal.Decimal) {
	if d.IsZero() {
		return
	}
	key := d.String()
	m[key] = m[key].Add(amount)
}

func series(days []entity.Date, totals map[string]decimal.Decimal) []dto.DayAmountDTO {
	out := make([]dto.DayAmountDTO, 0, len(days))
	for _, d := range days {
		key := d.String()
		amount, ok := totals[key]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, dto.DayAmountDTO{Date: key, Amount: amount})
	}
	return out
}
