package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/stock"
)

// ReplenishmentUseCase genera la lista de reposición sugerida a partir del espejo.
// Combina el stock actual con las salidas recientes para priorizar los productos críticos.
type ReplenishmentUseCase struct {
	src StockSource
	now func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(src StockSource) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{src: src, now: time.Now}
}

// GenerateReplenishmentList devuelve los productos en stock bajo visibles para el usuario,
// con la cantidad sugerida (umbral * 1.5 - stock) y una prioridad basada en las salidas
// de los últimos 90 días.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(actor access.Grant) []dto.ReplenishmentSuggestionDTO {
	since := uc.now().AddDate(0, 0, -90)
	outByProduct := map[string]int{}
	for _, m := range uc.src.StockMovements() {
		if m.Type == entity.MovementTypeOut && !m.CreatedAt.Before(since) {
			outByProduct[m.ProductID] += m.Quantity
		}
	}

	suggestions := []dto.ReplenishmentSuggestionDTO{}
	for _, p := range uc.src.Products() {
		if !actor.SeesPartner(p.PartnerID) || !stock.ProductIsLow(p) {
			continue
		}
		ideal := (p.AlertThreshold*3 + 1) / 2
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		partnerName := ""
		if partner, ok := uc.src.Partner(p.PartnerID); ok {
			partnerName = partner.Name
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID,
			ProductName:       p.Name,
			PartnerID:         p.PartnerID,
			PartnerName:       partnerName,
			CurrentStock:      p.Stock,
			AlertThreshold:    p.AlertThreshold,
			IdealStock:        ideal,
			SuggestedOrderQty: qty,
			UnitsOutLast90d:   outByProduct[p.ID],
		})
	}

	// Primero mayor volumen de salidas, luego mayor déficit bajo el umbral.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsOutLast90d != b.UnitsOutLast90d {
			return a.UnitsOutLast90d > b.UnitsOutLast90d
		}
		return a.AlertThreshold-a.CurrentStock > b.AlertThreshold-b.CurrentStock
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
