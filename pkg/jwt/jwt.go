package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audiencias: una sesión no sirve como invitación y viceversa.
const (
	audienceSession = "session"
	audienceInvite  = "invite"
)

// Claims de sesión: identidad del usuario, rol y vínculo con un partenaire.
// El rol viaja en el token para que el middleware de capacidades no consulte la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`                 // ceo | accountant | secretary | partner
	PartnerID   string   `json:"partner_id,omitempty"` // solo rol partner
	FullName    string   `json:"full_name,omitempty"`
	Permissions []string `json:"permissions,omitempty"` // capacidades individuales
}

// Session datos extraídos de un token de sesión válido.
type Session struct {
	UserID      string
	Role        string
	PartnerID   string
	FullName    string
	Permissions []string
	ExpiresAt   time.Time
}

// Generate genera un token de sesión firmado (HS256).
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			Audience:  jwt.ClaimStrings{audienceSession},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      s.UserID,
		Role:        s.Role,
		PartnerID:   s.PartnerID,
		FullName:    s.FullName,
		Permissions: s.Permissions,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida un token de sesión y devuelve su contenido.
// Retorna error si el token es inválido, expirado, de otra audiencia o con firma incorrecta.
func Parse(secret, tokenString string) (*Session, error) {
	claims := &Claims{}
	if err := parseInto(secret, tokenString, audienceSession, claims); err != nil {
		return nil, err
	}
	s := &Session{
		UserID:      claims.UserID,
		Role:        claims.Role,
		PartnerID:   claims.PartnerID,
		FullName:    claims.FullName,
		Permissions: claims.Permissions,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// InviteClaims claims de una invitación: liga un email a un rol y, opcionalmente, a un partenaire.
type InviteClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	PartnerID string `json:"partner_id,omitempty"`
	InvitedBy string `json:"invited_by"`
}

// Invitation contenido de una invitación válida.
type Invitation struct {
	Email     string
	Role      string
	PartnerID string
	InvitedBy string
}

// GenerateInvite firma una invitación con expiración en horas.
func GenerateInvite(secret string, inv Invitation, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := InviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   inv.Email,
			Audience:  jwt.ClaimStrings{audienceInvite},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		Email:     inv.Email,
		Role:      inv.Role,
		PartnerID: inv.PartnerID,
		InvitedBy: inv.InvitedBy,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseInvite valida una invitación.
func ParseInvite(secret, tokenString string) (*Invitation, error) {
	claims := &InviteClaims{}
	if err := parseInto(secret, tokenString, audienceInvite, claims); err != nil {
		return nil, err
	}
	return &Invitation{
		Email:     claims.Email,
		Role:      claims.Role,
		PartnerID: claims.PartnerID,
		InvitedBy: claims.InvitedBy,
	}, nil
}

func parseInto(secret, tokenString, audience string, claims jwt.Claims) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("claims inválidos")
	}
	return nil
}
