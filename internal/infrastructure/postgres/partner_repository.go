package postgres

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

const partnerColumns = `id, partner_code, name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(address, ''), COALESCE(contact_person, ''), created_at`

// PartnerRepo implementación del puerto PartnerRepository sobre PostgreSQL.
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

func scanPartner(s pgxScanner) (*entity.Partner, error) {
	var p entity.Partner
	if err := s.Scan(&p.ID, &p.PartnerCode, &p.Name, &p.Email, &p.Phone, &p.Address, &p.ContactPerson, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los partenaires por código.
func (r *PartnerRepo) List(ctx context.Context) ([]*entity.Partner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY partner_code`)
	if err != nil {
		return nil, readError("list partners", err)
	}
	return collect(rows, scanPartner)
}

// GetByID obtiene un partenaire por ID (= código).
func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	p, err := scanPartner(r.q.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get partner", err)
	}
	return p, nil
}

// Create inserta el partenaire; el ID es el código generado por generate_partner_code().
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) (*entity.Partner, error) {
	query := `
		INSERT INTO partners (id, partner_code, name, email, phone, address, contact_person)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + partnerColumns
	out, err := scanPartner(r.q.QueryRow(ctx, query,
		p.ID, p.PartnerCode, p.Name, textArg(p.Email), textArg(p.Phone), textArg(p.Address), textArg(p.ContactPerson),
	))
	if err != nil {
		return nil, writeError("insert partner", err)
	}
	return out, nil
}

// Update actualiza los datos de contacto. El código no cambia por esta vía.
func (r *PartnerRepo) Update(ctx context.Context, p *entity.Partner) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE partners SET name = $2, email = $3, phone = $4, address = $5, contact_person = $6
		WHERE id = $1`,
		p.ID, p.Name, textArg(p.Email), textArg(p.Phone), textArg(p.Address), textArg(p.ContactPerson),
	)
	return execOne(tag, err, "update partner")
}

// Delete borra solo la fila; con dependientes falla por FK (usar DeletePartnerAndDependents).
func (r *PartnerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	return execOne(tag, err, "delete partner")
}
