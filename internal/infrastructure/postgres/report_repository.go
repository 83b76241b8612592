package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only de agregação financeira para o dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

func (r *ReportRepo) sumReceivables(ctx context.Context, cond string, args ...any) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(installment_amount), 0) FROM receivables WHERE ` + cond
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum receivables: %w", err)
	}
	return total, nil
}

// SumReceivablesPaid soma parcelas PAGO com vencimento em [from, to).
func (r *ReportRepo) SumReceivablesPaid(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumReceivables(ctx, `status = $1 AND due_date >= $2 AND due_date < $3`,
		entity.ReceivableStatusPaid, from, to)
}

// SumReceivablesPending soma parcelas não pagas com vencimento em [from, to).
func (r *ReportRepo) SumReceivablesPending(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumReceivables(ctx, `status <> $1 AND due_date >= $2 AND due_date < $3`,
		entity.ReceivableStatusPaid, from, to)
}

// SumReceivablesOverdue soma parcelas não pagas vencidas estritamente antes de before.
func (r *ReportRepo) SumReceivablesOverdue(ctx context.Context, before time.Time) (decimal.Decimal, error) {
	return r.sumReceivables(ctx, `status <> $1 AND due_date < $2`,
		entity.ReceivableStatusPaid, before)
}

// SumExpenses soma as despesas com data em [from, to).
func (r *ReportRepo) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= $1 AND date < $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// CountOpenOrders conta as OS com status ABERTA.
func (r *ReportRepo) CountOpenOrders(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM service_orders WHERE status = $1`
	var count int64
	if err := r.pool.QueryRow(ctx, query, entity.OrderStatusOpen).Scan(&count); err != nil {
		return 0, fmt.Errorf("count open orders: %w", err)
	}
	return count, nil
}

// CountOpenOrdersOpenedBefore conta OS abertas antes de cutoff e ainda sem fechamento.
func (r *ReportRepo) CountOpenOrdersOpenedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM service_orders WHERE status = $1 AND opened_at < $2`
	var count int64
	if err := r.pool.QueryRow(ctx, query, entity.OrderStatusOpen, cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stale open orders: %w", err)
	}
	return count, nil
}
