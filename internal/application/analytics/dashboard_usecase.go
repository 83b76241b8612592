// Package analytics contém o caso de uso do resumo financeiro do dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain/period"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// DashboardUseCase agrega recebíveis, despesas, entradas de estoque e OS num
// resumo mensal.
//
// Fonte de dados: ReportRepository e StockMovementRepository (consultas
// read-only). Qualquer consulta que falhe aborta o resumo inteiro com o erro
// daquela consulta.
type DashboardUseCase struct {
	reportRepo   repository.ReportRepository
	movementRepo repository.StockMovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, movementRepo repository.StockMovementRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, movementRepo: movementRepo}
}

// Summary monta o resumo do mês selecionado ("YYYY-MM"; vazio usa o mês
// corrente UTC). Janelas de "hoje" e "próximos 7 dias" usam fronteiras de dia
// UTC, como as janelas mensais.
//
// As consultas rodam em três grupos paralelos: métricas do mês, janelas de
// vencimento e contagens de OS.
func (uc *DashboardUseCase) Summary(ctx context.Context, selector string) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	from, to, err := period.MonthWindow(selector, now)
	if err != nil {
		return nil, err
	}

	today := period.DayStart(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekAhead := today.AddDate(0, 0, 7)
	staleCutoff := today.AddDate(0, 0, -7)

	type monthResult struct {
		received, pending, expenses, stockCost decimal.Decimal
		err                                    error
	}
	type dueResult struct {
		dueToday, overdue, dueWeek decimal.Decimal
		err                        error
	}
	type orderResult struct {
		open, stale int64
		err         error
	}

	monthCh := make(chan monthResult, 1)
	dueCh := make(chan dueResult, 1)
	orderCh := make(chan orderResult, 1)

	go func() {
		var res monthResult
		if res.received, res.err = uc.reportRepo.SumReceivablesPaid(ctx, from, to); res.err != nil {
			monthCh <- res
			return
		}
		if res.pending, res.err = uc.reportRepo.SumReceivablesPending(ctx, from, to); res.err != nil {
			monthCh <- res
			return
		}
		if res.expenses, res.err = uc.reportRepo.SumExpenses(ctx, from, to); res.err != nil {
			monthCh <- res
			return
		}
		res.stockCost, _, res.err = uc.movementRepo.SumEntryCost(ctx, from, to)
		monthCh <- res
	}()

	go func() {
		var res dueResult
		if res.dueToday, res.err = uc.reportRepo.SumReceivablesPending(ctx, today, tomorrow); res.err != nil {
			dueCh <- res
			return
		}
		if res.overdue, res.err = uc.reportRepo.SumReceivablesOverdue(ctx, today); res.err != nil {
			dueCh <- res
			return
		}
		res.dueWeek, res.err = uc.reportRepo.SumReceivablesPending(ctx, today, weekAhead)
		dueCh <- res
	}()

	go func() {
		var res orderResult
		if res.open, res.err = uc.reportRepo.CountOpenOrders(ctx); res.err != nil {
			orderCh <- res
			return
		}
		res.stale, res.err = uc.reportRepo.CountOpenOrdersOpenedBefore(ctx, staleCutoff)
		orderCh <- res
	}()

	month := <-monthCh
	due := <-dueCh
	orders := <-orderCh
	if month.err != nil {
		return nil, month.err
	}
	if due.err != nil {
		return nil, due.err
	}
	if orders.err != nil {
		return nil, orders.err
	}

	return &dto.DashboardSummaryResponse{
		From:             from,
		To:               to,
		TotalReceived:    month.received,
		TotalPending:     month.pending,
		TotalExpenses:    month.expenses,
		TotalStockCost:   month.stockCost,
		RealProfit:       month.received.Sub(month.expenses.Add(month.stockCost)),
		OpenOrders:       orders.open,
		DueToday:         due.dueToday,
		Overdue:          due.overdue,
		DueNextSevenDays: due.dueWeek,
		StaleOpenOrders:  orders.stale,
	}, nil
}
