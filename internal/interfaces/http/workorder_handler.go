package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/application/workorder"
)

// WorkOrderHandler trata ordens de serviço e seus itens.
type WorkOrderHandler struct {
	uc *workorder.UseCase
}

// NewWorkOrderHandler constrói o handler de OS.
func NewWorkOrderHandler(uc *workorder.UseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create abre uma OS para um cliente existente.
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista as OS. FUNCIONARIO vê apenas as abertas, sem totais.
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListItems lista os itens de uma OS, projetados conforme o cargo.
func (h *WorkOrderHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddItem inclui peça ou serviço em uma OS aberta. Peça baixa o estoque na
// mesma transação.
func (h *WorkOrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveItem estorna um item; peça vinculada devolve o saldo ao estoque.
func (h *WorkOrderHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), c.Params("id"), GetRole(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Finalize encerra uma OS aberta.
func (h *WorkOrderHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Params("id"), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
