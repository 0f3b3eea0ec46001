package repository

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// ProfileRepository puerto de persistencia de usuarios y sus permisos.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	// Update persiste full_name, role y partner_id.
	Update(ctx context.Context, p *entity.Profile) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SetPermissions reemplaza el conjunto completo de permisos (borra e inserta en una tx).
	SetPermissions(ctx context.Context, userID string, permissions []string) error
}
