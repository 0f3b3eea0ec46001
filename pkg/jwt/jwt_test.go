package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/eno-livraison-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "eno-livraison-test"
)

func TestJWT_GenerateAndParse_ConRolYPartenaire(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Session{
		UserID: "u-1", Role: "partner", PartnerID: "ENO0007", FullName: "Awa", Permissions: []string{"export_data"},
	}, testIssuer, 60)
	require.NoError(t, err)

	s, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", s.UserID)
	assert.Equal(t, "partner", s.Role)
	assert.Equal(t, "ENO0007", s.PartnerID)
	assert.Equal(t, "Awa", s.FullName)
	assert.Equal(t, []string{"export_data"}, s.Permissions)
	assert.False(t, s.ExpiresAt.IsZero())
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Session{UserID: "u-1", Role: "ceo"}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Session{UserID: "u-1", Role: "ceo"}, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Session{UserID: "u-1"}, testIssuer, 60)
	assert.Error(t, err)
}

func TestJWT_InvitacionNoSirveComoSesion(t *testing.T) {
	inv, err := pkgjwt.GenerateInvite(testSecret, pkgjwt.Invitation{
		Email: "awa@example.com", Role: "partner", PartnerID: "ENO0001", InvitedBy: "u-ceo",
	}, testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, inv)
	assert.Error(t, err, "una invitación no debe aceptarse como sesión")

	got, err := pkgjwt.ParseInvite(testSecret, inv)
	require.NoError(t, err)
	assert.Equal(t, "awa@example.com", got.Email)
	assert.Equal(t, "partner", got.Role)
	assert.Equal(t, "ENO0001", got.PartnerID)
	assert.Equal(t, "u-ceo", got.InvitedBy)
}

func TestJWT_SesionNoSirveComoInvitacion(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Session{UserID: "u-1", Role: "ceo"}, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.ParseInvite(testSecret, tok)
	assert.Error(t, err)
}
