package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/billing"
	"github.com/oficinapro/oficina-api/internal/application/dto"
)

// ExpenseHandler trata o registro de despesas.
type ExpenseHandler struct {
	uc *billing.ExpenseUseCase
}

// NewExpenseHandler constrói o handler de despesas.
func NewExpenseHandler(uc *billing.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create registra uma despesa.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista as despesas.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma despesa.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
