package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// PartnerUseCase casos de uso de partenaires. El código se genera en el servidor.
type PartnerUseCase struct {
	repo    repository.PartnerRepository
	procs   repository.Procedures
	mirror  MirrorReader
	inviter Inviter
	journal *Journal
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(
	repo repository.PartnerRepository,
	procs repository.Procedures,
	mirror MirrorReader,
	inviter Inviter,
	journal *Journal,
) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, procs: procs, mirror: mirror, inviter: inviter, journal: journal}
}

// List partenaires visibles para el usuario (el rol partner solo ve el suyo).
func (uc *PartnerUseCase) List(actor access.Grant) ([]*entity.Partner, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	all := uc.mirror.Partners()
	out := make([]*entity.Partner, 0, len(all))
	for _, p := range all {
		if actor.SeesPartner(p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Add crea un partenaire con el siguiente código libre. Devuelve la fila confirmada.
func (uc *PartnerUseCase) Add(ctx context.Context, actor access.Grant, in dto.CreatePartnerRequest) (*entity.Partner, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := uc.procs.GeneratePartnerCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("generar código: %w", err)
	}
	if !entity.PartnerCodePattern.MatchString(code) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPartnerCode, code)
	}
	for _, p := range uc.mirror.Partners() {
		if p.PartnerCode == code || p.ID == code {
			return nil, fmt.Errorf("%w: el código %s ya existe", domain.ErrConflict, code)
		}
	}
	created, err := uc.repo.Create(ctx, &entity.Partner{
		ID:            code,
		PartnerCode:   code,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         in.Phone,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
	})
	if err != nil {
		return nil, err
	}
	uc.journal.Record(ctx, actor, ActionPartnerCreated, map[string]any{"partner_id": created.ID, "name": created.Name})
	return created, nil
}

// Update actualiza los datos de contacto. El código no cambia.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p := *current
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.ContactPerson != nil {
		p.ContactPerson = *in.ContactPerson
	}
	return uc.repo.Update(ctx, &p)
}

// Delete borra el partenaire y todo lo que depende de él (productos, movimientos, liquidaciones).
func (uc *PartnerUseCase) Delete(ctx context.Context, actor access.Grant, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.procs.DeletePartnerAndDependents(ctx, id); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionPartnerDeleted, map[string]any{"partner_id": id})
	return nil
}

// ReassignCodes renumera los códigos de partenaire; devuelve cuántos cambiaron.
func (uc *PartnerUseCase) ReassignCodes(ctx context.Context, actor access.Grant) (int, error) {
	n, err := uc.procs.ReassignPartnerCodes(ctx)
	if err != nil {
		return 0, err
	}
	uc.journal.Record(ctx, actor, ActionPartnerCodesReassign, map[string]any{"updated": n})
	return n, nil
}

// Invite invita a un usuario con rol partner ligado a este partenaire.
// Sin email explícito se usa el del partenaire.
func (uc *PartnerUseCase) Invite(ctx context.Context, actor access.Grant, id string, in dto.InvitePartnerRequest) (*dto.InviteResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		email = p.Email
	}
	if email == "" {
		return nil, fmt.Errorf("%w: el partenaire no tiene email", domain.ErrInvalidInput)
	}
	return uc.inviter.Invite(ctx, actor, email, access.RolePartner, p.ID)
}
