package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// UserUseCase administración de usuarios y permisos (CEO).
type UserUseCase struct {
	repo    repository.ProfileRepository
	procs   repository.Procedures
	inviter Inviter
	journal *Journal
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.ProfileRepository, procs repository.Procedures, inviter Inviter, journal *Journal) *UserUseCase {
	return &UserUseCase{repo: repo, procs: procs, inviter: inviter, journal: journal}
}

// List todos los perfiles con sus permisos.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToUserResponse(p))
	}
	return out, nil
}

// Update cambia nombre, rol y/o partenaire. Un rol partner exige partner_id;
// cualquier otro rol lo limpia.
func (uc *UserUseCase) Update(ctx context.Context, actor access.Grant, id string, in dto.UpdateUserRequest) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p := *current
	if in.FullName != nil {
		p.FullName = *in.FullName
	}
	if in.Role != nil {
		role, err := access.ParseRole(*in.Role)
		if err != nil {
			return domain.ErrInvalidInput
		}
		if id == actor.UserID && role != access.Role(current.Role) {
			return fmt.Errorf("%w: no se puede cambiar el propio rol", domain.ErrConflict)
		}
		p.Role = string(role)
	}
	if in.PartnerID != nil {
		if *in.PartnerID == "" {
			p.PartnerID = nil
		} else {
			pid := *in.PartnerID
			p.PartnerID = &pid
		}
	}
	if access.Role(p.Role) == access.RolePartner {
		if p.PartnerID == nil {
			return fmt.Errorf("%w: un partenaire requiere partner_id", domain.ErrInvalidInput)
		}
	} else {
		p.PartnerID = nil
	}
	if err := uc.repo.Update(ctx, &p); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionUserUpdated, map[string]any{"user_id": id, "role": p.Role})
	return nil
}

// SetPermissions reemplaza los permisos individuales (valores válidos, sin duplicados).
func (uc *UserUseCase) SetPermissions(ctx context.Context, actor access.Grant, id string, permissions []string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	seen := map[string]struct{}{}
	clean := make([]string, 0, len(permissions))
	for _, s := range permissions {
		c, ok := access.ParseCapability(s)
		if !ok {
			return fmt.Errorf("%w: permiso %q", domain.ErrInvalidInput, s)
		}
		if _, dup := seen[string(c)]; dup {
			continue
		}
		seen[string(c)] = struct{}{}
		clean = append(clean, string(c))
	}
	sort.Strings(clean)
	if err := uc.repo.SetPermissions(ctx, id, clean); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionPermissionsUpdated, map[string]any{"user_id": id, "permissions": clean})
	return nil
}

// Delete borra la cuenta. No se permite borrar la propia.
func (uc *UserUseCase) Delete(ctx context.Context, actor access.Grant, id string) error {
	if id == actor.UserID {
		return fmt.Errorf("%w: no se puede borrar la propia cuenta", domain.ErrConflict)
	}
	if err := uc.procs.DeleteUserByID(ctx, id); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionUserDeleted, map[string]any{"user_id": id})
	return nil
}

// Invite invita a un nuevo usuario con rol y partenaire opcional.
func (uc *UserUseCase) Invite(ctx context.Context, actor access.Grant, in dto.InviteUserRequest) (*dto.InviteResponse, error) {
	role, err := access.ParseRole(in.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if role == access.RolePartner && in.PartnerID == "" {
		return nil, fmt.Errorf("%w: un partenaire requiere partner_id", domain.ErrInvalidInput)
	}
	partnerID := in.PartnerID
	if role != access.RolePartner {
		partnerID = ""
	}
	return uc.inviter.Invite(ctx, actor, in.Email, role, partnerID)
}

// ToUserResponse convierte un perfil en su salida pública.
func ToUserResponse(p *entity.Profile) *dto.UserResponse {
	if p == nil {
		return nil
	}
	r := &dto.UserResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		Role:        p.Role,
		Permissions: p.Permissions,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if r.Permissions == nil {
		r.Permissions = []string{}
	}
	if p.PartnerID != nil {
		r.PartnerID = *p.PartnerID
	}
	return r
}
