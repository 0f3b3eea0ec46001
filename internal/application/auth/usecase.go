package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret         string
	ExpMinutes     int
	Issuer         string
	InviteExpHours int
}

// AuthUseCase casos de uso de autenticación: login, alta por invitación, logout y perfil.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	sessions SessionHooks
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. sessions puede ser nil.
func NewAuthUseCase(profiles repository.ProfileRepository, sessions SessionHooks, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, sessions: sessions, jwtCfg: jwtCfg}
}

// SignIn verifica email/password, genera JWT, abre la bandeja y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := uc.profiles.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(p)
}

// SignUp crea la cuenta ligada a la invitación (email, rol y partenaire vienen del token).
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.LoginResponse, error) {
	inv, err := jwt.ParseInvite(uc.jwtCfg.Secret, in.InviteToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := access.ParseRole(inv.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 || strings.TrimSpace(in.FullName) == "" {
		return nil, domain.ErrInvalidInput
	}
	email := normalizeEmail(inv.Email)
	if existing, err := uc.profiles.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == access.RolePartner && inv.PartnerID != "" {
		pid := inv.PartnerID
		p.PartnerID = &pid
	}
	if err := uc.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.issue(p)
}

// SignOut cierra la bandeja de notificaciones del usuario.
// El token sigue siendo válido hasta expirar; el cliente lo descarta.
func (uc *AuthUseCase) SignOut(userID string) {
	if uc.sessions != nil {
		uc.sessions.EndSession(userID)
	}
}

// UpdateUser cambia nombre y/o contraseña del usuario actual.
func (uc *AuthUseCase) UpdateUser(ctx context.Context, g access.Grant, in dto.UpdateMeRequest) (*dto.UserResponse, error) {
	current, err := uc.profiles.GetByID(ctx, g.UserID)
	if err != nil {
		return nil, err
	}
	p := *current
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.FullName = name
		if err := uc.profiles.Update(ctx, &p); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.profiles.UpdatePassword(ctx, p.ID, string(hash)); err != nil {
			return nil, err
		}
	}
	return usecase.ToUserResponse(&p), nil
}

// Me perfil actual y su menú de navegación.
func (uc *AuthUseCase) Me(ctx context.Context, g access.Grant) (*dto.MeResponse, error) {
	p, err := uc.profiles.GetByID(ctx, g.UserID)
	if err != nil {
		return nil, err
	}
	role, err := access.ParseRole(p.Role)
	if err != nil {
		return nil, domain.ErrForbidden
	}
	return &dto.MeResponse{User: *usecase.ToUserResponse(p), Menu: access.Menu(role)}, nil
}

// GrantOf construye las capacidades efectivas de un perfil.
func GrantOf(p *entity.Profile) (access.Grant, error) {
	role, err := access.ParseRole(p.Role)
	if err != nil {
		return access.Grant{}, domain.ErrForbidden
	}
	g := access.Grant{UserID: p.ID, FullName: p.FullName, Role: role, Permissions: p.Permissions}
	if p.PartnerID != nil {
		g.PartnerID = *p.PartnerID
	}
	return g, nil
}

func (uc *AuthUseCase) issue(p *entity.Profile) (*dto.LoginResponse, error) {
	g, err := GrantOf(p)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:      g.UserID,
		Role:        string(g.Role),
		PartnerID:   g.PartnerID,
		FullName:    g.FullName,
		Permissions: g.Permissions,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if uc.sessions != nil {
		uc.sessions.StartSession(g)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *usecase.ToUserResponse(p),
	}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
