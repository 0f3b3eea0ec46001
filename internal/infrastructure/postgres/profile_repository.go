package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// Los permisos individuales viven en user_permissions(user_id, permission).
const profileSelect = `
	SELECT p.id, p.email, COALESCE(p.password_hash, ''), COALESCE(p.full_name, ''), p.role, p.partner_id,
		COALESCE(array_agg(up.permission ORDER BY up.permission) FILTER (WHERE up.permission IS NOT NULL), '{}'),
		p.created_at, p.updated_at
	FROM profiles p
	LEFT JOIN user_permissions up ON up.user_id = p.id`

const profileGroupBy = ` GROUP BY p.id`

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para usuarios.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func scanProfile(s pgxScanner) (*entity.Profile, error) {
	var p entity.Profile
	if err := s.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.PartnerID,
		&p.Permissions, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo usuario.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, password_hash, full_name, role, partner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Email, p.PasswordHash, p.FullName, p.Role, p.PartnerID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return writeError("insert profile", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.findOne(ctx, `WHERE p.id = $1`, id)
}

// GetByEmail obtiene un usuario por email (ya normalizado).
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.findOne(ctx, `WHERE lower(p.email) = lower($1)`, email)
}

func (r *ProfileRepo) findOne(ctx context.Context, where string, arg any) (*entity.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, profileSelect+" "+where+profileGroupBy, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// List devuelve todos los usuarios con sus permisos.
func (r *ProfileRepo) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := r.pool.Query(ctx, profileSelect+profileGroupBy+` ORDER BY p.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return collect(rows, scanProfile)
}

// Update persiste full_name, role y partner_id.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET full_name = $2, role = $3, partner_id = $4, updated_at = now()
		WHERE id = $1`,
		p.ID, p.FullName, p.Role, p.PartnerID,
	)
	if err := execOne(tag, err, "update profile"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *ProfileRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE profiles SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err := execOne(tag, err, "update password"); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

// SetPermissions reemplaza el conjunto de permisos en una transacción (borra e inserta).
func (r *ProfileRepo) SetPermissions(ctx context.Context, userID string, permissions []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_permissions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete permissions: %w", err)
	}
	if len(permissions) > 0 {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_permissions (user_id, permission)
			SELECT $1, unnest($2::text[])`, userID, permissions); err != nil {
			return writeError("insert permissions", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
