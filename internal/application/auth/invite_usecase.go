package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/jwt"
)

// InviteUseCase emite invitaciones firmadas y las envía por correo.
type InviteUseCase struct {
	profiles  repository.ProfileRepository
	partners  repository.TableReader[entity.Partner]
	mailer    Mailer
	jwtCfg    JWTConfig
	publicURL string
}

// NewInviteUseCase construye el caso de uso. publicURL es la base del enlace de alta.
func NewInviteUseCase(
	profiles repository.ProfileRepository,
	partners repository.TableReader[entity.Partner],
	mailer Mailer,
	jwtCfg JWTConfig,
	publicURL string,
) *InviteUseCase {
	return &InviteUseCase{
		profiles:  profiles,
		partners:  partners,
		mailer:    mailer,
		jwtCfg:    jwtCfg,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Invite liga un email a un rol (y a un partenaire si el rol es partner) y envía el enlace.
func (uc *InviteUseCase) Invite(ctx context.Context, by access.Grant, email string, role access.Role, partnerID string) (*dto.InviteResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	if role == access.RolePartner && partnerID == "" {
		return nil, fmt.Errorf("%w: un partenaire requiere partner_id", domain.ErrInvalidInput)
	}
	if existing, err := uc.profiles.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	partnerName := ""
	if partnerID != "" {
		p, err := uc.partners.GetByID(ctx, partnerID)
		if err != nil {
			return nil, err
		}
		partnerName = p.Name
	}

	token, err := jwt.GenerateInvite(uc.jwtCfg.Secret, jwt.Invitation{
		Email:     email,
		Role:      string(role),
		PartnerID: partnerID,
		InvitedBy: by.UserID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.InviteExpHours)
	if err != nil {
		return nil, err
	}
	link := uc.publicURL + "/signup?token=" + url.QueryEscape(token)

	if err := uc.mailer.SendInvitation(ctx, Invitation{
		To:          email,
		Role:        role,
		PartnerName: partnerName,
		InvitedBy:   by.FullName,
		Link:        link,
	}); err != nil {
		return nil, fmt.Errorf("enviar invitación: %w", err)
	}
	return &dto.InviteResponse{
		Email:     email,
		Link:      link,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.InviteExpHours) * time.Hour),
	}, nil
}
