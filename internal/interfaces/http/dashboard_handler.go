package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/analytics"
)

// DashboardHandler trata o resumo financeiro mensal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler do dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary resumo do mês ?month=YYYY-MM: recebido, pendente, despesas, custo de
// entradas, lucro real, OS abertas e vencimentos.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
