package datasync

import "github.com/jhoicas/eno-livraison-api/internal/domain/entity"

func snapshot[T any](m *Mirror, t *table[T]) []*T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*T, len(t.rows))
	copy(out, t.rows)
	return out
}

func find[T any](m *Mirror, t *table[T], id string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := t.indexOf(id); i >= 0 {
		return t.rows[i], true
	}
	return nil, false
}

// Copias de las colecciones. Las filas son compartidas y no deben modificarse.

func (m *Mirror) Partners() []*entity.Partner {
	return snapshot(m, m.partners)
}

func (m *Mirror) Products() []*entity.Product {
	return snapshot(m, m.products)
}

func (m *Mirror) Transactions() []*entity.Transaction {
	return snapshot(m, m.transactions)
}

func (m *Mirror) Deliveries() []*entity.Delivery {
	return snapshot(m, m.deliveries)
}

func (m *Mirror) StockMovements() []*entity.StockMovement {
	return snapshot(m, m.movements)
}

func (m *Mirror) BankDeposits() []*entity.BankDeposit {
	return snapshot(m, m.bankDeposits)
}

func (m *Mirror) StandardOrders() []*entity.StandardOrder {
	return snapshot(m, m.standardOrders)
}

func (m *Mirror) PartnerDeliveryFees() []*entity.PartnerDeliveryFee {
	return snapshot(m, m.fees)
}

func (m *Mirror) Salaries() []*entity.Salary {
	return snapshot(m, m.salaries)
}

// Partner busca un partenaire por id.
func (m *Mirror) Partner(id string) (*entity.Partner, bool) {
	return find(m, m.partners, id)
}

// Product busca un producto por id.
func (m *Mirror) Product(id string) (*entity.Product, bool) {
	return find(m, m.products, id)
}
