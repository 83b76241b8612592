package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse resumo financeiro do mês selecionado.
// LucroReal = recebido − (despesas + custo de entradas de estoque).
type DashboardSummaryResponse struct {
	From             time.Time       `json:"inicio"`
	To               time.Time       `json:"fim"`
	TotalReceived    decimal.Decimal `json:"totalRecebido"`
	TotalPending     decimal.Decimal `json:"totalPendente"`
	TotalExpenses    decimal.Decimal `json:"totalDespesas"`
	TotalStockCost   decimal.Decimal `json:"totalEntradasEstoque"`
	RealProfit       decimal.Decimal `json:"lucroReal"`
	OpenOrders       int64           `json:"osAbertas"`
	DueToday         decimal.Decimal `json:"vencendoHoje"`
	Overdue          decimal.Decimal `json:"vencidas"`
	DueNextSevenDays decimal.Decimal `json:"vencendoSemana"`
	StaleOpenOrders  int64           `json:"osAbertasAntigas"`
}
