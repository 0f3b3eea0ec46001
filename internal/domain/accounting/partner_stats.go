package accounting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// Claves de orden de PartnerStats.
const (
	SortByName         = "name"
	SortByTurnover     = "turnover"
	SortByDeliveryFees = "delivery_fees"
	SortByPackages     = "packages"
)

// PartnerStat acumulado de liquidaciones de un partenaire.
type PartnerStat struct {
	PartnerID    string          `json:"partner_id"`
	PartnerCode  string          `json:"partner_code"`
	Name         string          `json:"name"`
	Turnover     decimal.Decimal `json:"turnover"`
	DeliveryFees decimal.Decimal `json:"delivery_fees"`
	Packages     int             `json:"packages"`
	Settlements  int             `json:"settlements"`
}

// PartnerStats agrega las liquidaciones del rango por partenaire.
// Todos los partenaires aparecen, aunque no tengan liquidaciones.
func PartnerStats(partners []*entity.Partner, fees []*entity.PartnerDeliveryFee, r DateRange) []PartnerStat {
	idx := make(map[string]int, len(partners))
	out := make([]PartnerStat, 0, len(partners))
	for _, p := range partners {
		idx[p.ID] = len(out)
		out = append(out, PartnerStat{PartnerID: p.ID, PartnerCode: p.PartnerCode, Name: p.Name})
	}
	for _, f := range fees {
		if !r.Contains(f.OperationDate) {
			continue
		}
		i, ok := idx[f.PartnerID]
		if !ok {
			continue
		}
		st := &out[i]
		st.Turnover = st.Turnover.Add(f.Turnover)
		st.DeliveryFees = st.DeliveryFees.Add(f.TotalDeliveryFee)
		st.Packages += f.TotalPackagesDelivered
		st.Settlements++
	}
	return out
}

// SortPartnerStats ordena en sitio. Clave desconocida = por nombre.
func SortPartnerStats(stats []PartnerStat, key string, desc bool) {
	less := func(a, b PartnerStat) int {
		switch key {
		case SortByTurnover:
			return a.Turnover.Cmp(b.Turnover)
		case SortByDeliveryFees:
			return a.DeliveryFees.Cmp(b.DeliveryFees)
		case SortByPackages:
			return a.Packages - b.Packages
		default:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		c := less(stats[i], stats[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}
