package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/inventory"
)

// StockHandler trata resumo e histórico mensal de entradas de estoque.
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler constrói o handler de estoque.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Summary total de entradas (quantidade × custo) do mês ?month=YYYY-MM.
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.MonthlySummary(c.Context(), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// History entradas do mês ?month=YYYY-MM com os dados do produto.
func (h *StockHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyHistory(c.Context(), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
