package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/billing"
	"github.com/oficinapro/oficina-api/internal/application/dto"
)

// ReceivableHandler trata faturamentos parcelados.
type ReceivableHandler struct {
	uc *billing.ReceivableUseCase
}

// NewReceivableHandler constrói o handler de faturamentos.
func NewReceivableHandler(uc *billing.ReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{uc: uc}
}

// Issue lança um faturamento dividido em parcelas mensais de valor uniforme.
func (h *ReceivableHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueReceivablesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Issue(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista as parcelas com os dados do cliente.
func (h *ReceivableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// MarkPaid dá baixa em uma parcela. A baixa é idempotente.
func (h *ReceivableHandler) MarkPaid(c *fiber.Ctx) error {
	if err := h.uc.MarkPaid(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete remove uma parcela.
func (h *ReceivableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
