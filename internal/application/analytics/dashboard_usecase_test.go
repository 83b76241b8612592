package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinapro/oficina-api/internal/application/analytics"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/period"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// fakeReportRepo devolve valores fixos por consulta; erros injetáveis.
// Grava o corte recebido em CountOpenOrdersOpenedBefore para inspeção.
type fakeReportRepo struct {
	paid, pending, overdue, expenses decimal.Decimal
	open, stale                      int64
	failExpenses                     error
	staleCutoff                      time.Time
}

func (r *fakeReportRepo) SumReceivablesPaid(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return r.paid, nil
}

func (r *fakeReportRepo) SumReceivablesPending(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return r.pending, nil
}

func (r *fakeReportRepo) SumReceivablesOverdue(context.Context, time.Time) (decimal.Decimal, error) {
	return r.overdue, nil
}

func (r *fakeReportRepo) SumExpenses(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	if r.failExpenses != nil {
		return decimal.Zero, r.failExpenses
	}
	return r.expenses, nil
}

func (r *fakeReportRepo) CountOpenOrders(context.Context) (int64, error) { return r.open, nil }

func (r *fakeReportRepo) CountOpenOrdersOpenedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.staleCutoff = cutoff
	return r.stale, nil
}

type fakeMovementRepo struct {
	stockCost decimal.Decimal
}

func (r *fakeMovementRepo) Create(*entity.StockMovement) error { return nil }

func (r *fakeMovementRepo) SumEntryCost(context.Context, time.Time, time.Time) (decimal.Decimal, int64, error) {
	return r.stockCost, 3, nil
}

func (r *fakeMovementRepo) ListEntries(context.Context, time.Time, time.Time) ([]repository.StockEntryRow, error) {
	return nil, nil
}

func TestSummary_LucroRealEAgregados(t *testing.T) {
	reports := &fakeReportRepo{
		paid:     decimal.RequireFromString("1000.00"),
		pending:  decimal.RequireFromString("400.00"),
		overdue:  decimal.RequireFromString("150.00"),
		expenses: decimal.RequireFromString("300.00"),
		open:     5,
		stale:    2,
	}
	movements := &fakeMovementRepo{stockCost: decimal.RequireFromString("250.00")}
	uc := analytics.NewDashboardUseCase(reports, movements)

	out, err := uc.Summary(context.Background(), "2024-06")
	require.NoError(t, err)

	// Lucro real = recebido − (despesas + custo de entradas).
	assert.True(t, decimal.RequireFromString("450.00").Equal(out.RealProfit),
		"1000 − (300 + 250) = 450, veio %s", out.RealProfit)
	assert.True(t, decimal.RequireFromString("1000.00").Equal(out.TotalReceived))
	assert.True(t, decimal.RequireFromString("400.00").Equal(out.TotalPending))
	assert.True(t, decimal.RequireFromString("250.00").Equal(out.TotalStockCost))
	assert.True(t, decimal.RequireFromString("150.00").Equal(out.Overdue))
	assert.Equal(t, int64(5), out.OpenOrders)
	assert.Equal(t, int64(2), out.StaleOpenOrders)

	expFrom, expTo, err := period.MonthWindow("2024-06", time.Now())
	require.NoError(t, err)
	assert.Equal(t, expFrom, out.From)
	assert.Equal(t, expTo, out.To)
}

func TestSummary_CorteDeOSAntigasAlinhadoAoDia(t *testing.T) {
	reports := &fakeReportRepo{}
	uc := analytics.NewDashboardUseCase(reports, &fakeMovementRepo{})

	before := period.DayStart(time.Now())
	_, err := uc.Summary(context.Background(), "")
	require.NoError(t, err)
	after := period.DayStart(time.Now())

	// O corte de "OS aberta há mais de 7 dias" usa fronteira de dia UTC,
	// como as demais janelas, e não o instante da requisição.
	got := reports.staleCutoff
	assert.Equal(t, period.DayStart(got), got, "corte deve estar na meia-noite UTC, veio %s", got)
	if !got.Equal(before.AddDate(0, 0, -7)) && !got.Equal(after.AddDate(0, 0, -7)) {
		t.Fatalf("corte esperado 7 dias antes do início do dia, veio %s", got)
	}
}

func TestSummary_SeletorInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeReportRepo{}, &fakeMovementRepo{})

	_, err := uc.Summary(context.Background(), "2024-13")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestSummary_ConsultaComFalhaAbortaOResumo(t *testing.T) {
	boom := errors.New("timeout na consulta")
	uc := analytics.NewDashboardUseCase(&fakeReportRepo{failExpenses: boom}, &fakeMovementRepo{})

	_, err := uc.Summary(context.Background(), "")
	assert.ErrorIs(t, err, boom)
}
