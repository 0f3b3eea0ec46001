package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.Procedures = (*Procedures)(nil)

// Procedures llama a las funciones del servidor (ver migrations/001_realtime.sql).
type Procedures struct {
	pool *pgxpool.Pool
}

// NewProcedures construye el adaptador.
func NewProcedures(pool *pgxpool.Pool) *Procedures {
	return &Procedures{pool: pool}
}

// GeneratePartnerCode devuelve el siguiente código libre y valida su formato.
func (p *Procedures) GeneratePartnerCode(ctx context.Context) (string, error) {
	var code string
	if err := p.pool.QueryRow(ctx, `SELECT generate_partner_code()`).Scan(&code); err != nil {
		return "", fmt.Errorf("generate_partner_code: %w", err)
	}
	if !entity.PartnerCodePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPartnerCode, code)
	}
	return code, nil
}

// DeletePartnerAndDependents borra el partenaire y todo lo que cuelga de él.
func (p *Procedures) DeletePartnerAndDependents(ctx context.Context, partnerID string) error {
	if _, err := p.pool.Exec(ctx, `SELECT delete_partner_and_dependents($1)`, partnerID); err != nil {
		return fmt.Errorf("delete_partner_and_dependents: %w", err)
	}
	return nil
}

// ResetAccountingData vacía las tablas contables.
func (p *Procedures) ResetAccountingData(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `SELECT reset_accounting_data()`); err != nil {
		return fmt.Errorf("reset_accounting_data: %w", err)
	}
	return nil
}

// ReassignPartnerCodes renumera los códigos y devuelve cuántos cambiaron.
func (p *Procedures) ReassignPartnerCodes(ctx context.Context) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, `SELECT count(*) FROM reassign_partner_codes()`).Scan(&n); err != nil {
		return 0, fmt.Errorf("reassign_partner_codes: %w", err)
	}
	return n, nil
}

// DeleteUserByID borra el perfil y sus permisos.
func (p *Procedures) DeleteUserByID(ctx context.Context, userID string) error {
	if _, err := p.pool.Exec(ctx, `SELECT delete_user_by_id($1)`, userID); err != nil {
		return fmt.Errorf("delete_user_by_id: %w", err)
	}
	return nil
}
