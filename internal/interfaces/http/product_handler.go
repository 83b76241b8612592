package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/application/inventory"
)

// ProductHandler trata o cadastro de produtos e a consulta do balcão.
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler constrói o handler de produtos.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create cadastra um produto. Saldo inicial > 0 gera lançamento de entrada.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista os produtos projetados conforme o cargo do solicitante.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByCode consulta rápida por código usada no lançamento de itens.
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(GetRole(c), c.Params("codigo"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualiza um produto. FUNCIONARIO só registra entrada de saldo; os
// demais cargos atualizam cadastro, preços e saldo.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProduct(c.Context(), c.Params("id"), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete remove um produto, desvinculando os itens de OS que o referenciam.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
