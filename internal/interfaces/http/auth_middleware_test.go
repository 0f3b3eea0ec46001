package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	apphttp "github.com/jhoicas/eno-livraison-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/eno-livraison-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testPartnerID = "ENO0007"
	testIssuer    = "eno-livraison-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireCapability para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(caps ...access.Capability) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireCapability(caps...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT de sesión con el rol y los permisos indicados.
func tokenFor(t *testing.T, role string, perms ...string) string {
	t.Helper()
	s := pkgjwt.Session{UserID: testUserID, Role: role, FullName: "Test", Permissions: perms}
	if role == string(access.RolePartner) {
		s.PartnerID = testPartnerID
	}
	tok, err := pkgjwt.Generate(testJWTSecret, s, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCapability_CEOAccedeAGestionDeUsuarios(t *testing.T) {
	app := buildTestApp(access.ManageUsers)
	resp := doRequest(t, app, tokenFor(t, "ceo"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ceo", body["role"])
}

func TestRequireCapability_UnaDeVariasBasta(t *testing.T) {
	app := buildTestApp(access.ManageAccounting, access.ManagePartners)
	resp := doRequest(t, app, tokenFor(t, "secretary"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"secretary tiene manage_partners aunque no manage_accounting")
}

func TestRequireCapability_SecretariaBloqueadaEnContabilidad(t *testing.T) {
	app := buildTestApp(access.ManageAccounting)
	resp := doRequest(t, app, tokenFor(t, "secretary"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireCapability_PermisoIndividualAmpliaElRol(t *testing.T) {
	app := buildTestApp(access.ExportData)

	resp := doRequest(t, app, tokenFor(t, "accountant"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, tokenFor(t, "accountant", string(access.ExportData)))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireCapability_PartnerSinAccesoAlCEO(t *testing.T) {
	app := buildTestApp(access.ViewStatistics)
	resp := doRequest(t, app, tokenFor(t, "partner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(access.ViewDashboard)
	resp := doRequest(t, app, tokenFor(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestAuthMiddleware_RolDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp(access.ViewDashboard)
	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(access.ViewDashboard)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(access.ViewDashboard)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_InvitacionNoSirveComoSesion(t *testing.T) {
	inv, err := pkgjwt.GenerateInvite(testJWTSecret, pkgjwt.Invitation{Email: "a@b.com", Role: "ceo"}, testIssuer, 1)
	require.NoError(t, err)

	app := buildTestApp(access.ViewDashboard)
	resp := doRequest(t, app, "Bearer "+inv)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeGrant(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		g := apphttp.GetGrant(c)
		return c.JSON(fiber.Map{
			"user_id":     apphttp.GetUserID(c),
			"partner_id":  apphttp.GetPartnerID(c),
			"role":        string(g.Role),
			"full_name":   g.FullName,
			"can_export":  g.Can(access.ExportData),
			"sees_other":  g.SeesPartner("ENO0001"),
			"sees_itself": g.SeesPartner(testPartnerID),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "partner", string(access.ExportData)))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testPartnerID, body["partner_id"])
	assert.Equal(t, "partner", body["role"])
	assert.Equal(t, "Test", body["full_name"])
	assert.Equal(t, true, body["can_export"])
	assert.Equal(t, false, body["sees_other"])
	assert.Equal(t, true, body["sees_itself"])
}
