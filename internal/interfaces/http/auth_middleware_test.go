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

	"github.com/oficinapro/oficina-api/internal/domain/policy"
	apphttp "github.com/oficinapro/oficina-api/internal/interfaces/http"
	pkgjwt "github.com/oficinapro/oficina-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserName  = "maria"
	testIssuer    = "oficina-api-test"
	testExpMin    = 60
)

// buildTestApp monta uma aplicação Fiber mínima com uma rota protegida por
// AuthMiddleware + RequireAction.
func buildTestApp(action policy.Action) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAction(action),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"cargo": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o cargo indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, role, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protegida e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAction
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAction_GerenteAcessaFinanceiro(t *testing.T) {
	app := buildTestApp(policy.ActionViewFinancials)
	resp := doRequest(t, app, tokenForRole(t, "GERENTE"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "GERENTE", body["cargo"])
}

func TestRequireAction_FuncionarioBloqueadoNoFinanceiro(t *testing.T) {
	app := buildTestApp(policy.ActionViewFinancials)
	resp := doRequest(t, app, tokenForRole(t, "FUNCIONARIO"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireAction_GestaoDeUsuariosSomenteAdmin(t *testing.T) {
	app := buildTestApp(policy.ActionManageUsers)

	resp := doRequest(t, app, tokenForRole(t, "ADMIN"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, tokenForRole(t, "GERENTE"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireAction_ConsultaPorCodigoSomenteFuncionario(t *testing.T) {
	app := buildTestApp(policy.ActionLookupProductByCode)

	resp := doRequest(t, app, tokenForRole(t, "FUNCIONARIO"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, tokenForRole(t, "GERENTE"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemHeaderRetorna401(t *testing.T) {
	app := buildTestApp(policy.ActionViewFinancials)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Token inválido responde 403, não 401: o header chegou, mas não presta.
func TestAuthMiddleware_TokenInvalidoRetorna403(t *testing.T) {
	app := buildTestApp(policy.ActionViewFinancials)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpiradoRetorna403(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, "GERENTE", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp(policy.ActionViewFinancials)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"nome":    apphttp.GetUserName(c),
			"cargo":   apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "ADMIN"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUserName, body["nome"])
	assert.Equal(t, "ADMIN", body["cargo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt: geração e validação
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, "FUNCIONARIO", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, name, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUserName, name)
	assert.Equal(t, "FUNCIONARIO", role)
}

func TestJWT_SecretIncorretoInvalida(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, "ADMIN", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
