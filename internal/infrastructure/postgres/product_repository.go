package postgres

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, partner_id, name, stock, COALESCE(alert_threshold, 0), COALESCE(price, 0), created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(s pgxScanner) (*entity.Product, error) {
	var p entity.Product
	if err := s.Scan(&p.ID, &p.PartnerID, &p.Name, &p.Stock, &p.AlertThreshold, &p.Price, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los productos por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, readError("list products", err)
	}
	return collect(rows, scanProduct)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get product", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto con bloqueo de fila. Solo tiene sentido dentro de una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, readError("get product for update", err)
	}
	return p, nil
}

// Create inserta el producto con stock 0; el stock inicial entra como movimiento.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (partner_id, name, stock, alert_threshold, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns
	out, err := scanProduct(r.q.QueryRow(ctx, query, p.PartnerID, p.Name, p.Stock, p.AlertThreshold, p.Price))
	if err != nil {
		return nil, writeError("insert product", err)
	}
	return out, nil
}

// Update actualiza partenaire, nombre, umbral y precio. No toca stock (se maneja vía movimientos).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, alert_threshold = $3, price = $4, partner_id = $5
		WHERE id = $1`,
		p.ID, p.Name, p.AlertThreshold, p.Price, p.PartnerID,
	)
	return execOne(tag, err, "update product")
}

// UpdateStock fija la columna stock (usado por el registro de movimientos).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	tag, err := r.q.Exec(ctx, `UPDATE products SET stock = $2 WHERE id = $1`, id, stock)
	return execOne(tag, err, "update product stock")
}

// Delete borra el producto (sus movimientos caen por ON DELETE CASCADE).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return execOne(tag, err, "delete product")
}
