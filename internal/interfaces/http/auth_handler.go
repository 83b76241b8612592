package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/auth"
	"github.com/oficinapro/oficina-api/internal/application/dto"
)

// AuthHandler trata o login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login valida as credenciais e devolve o token JWT com os dados do usuário.
// Nome inexistente e senha incorreta respondem o mesmo 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
