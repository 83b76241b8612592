package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRepository reúne as consultas read-only de agregação financeira usadas
// pelo dashboard. Todos os intervalos são [from, to) em UTC.
type ReportRepository interface {
	// SumReceivablesPaid soma parcelas PAGO com vencimento no intervalo.
	SumReceivablesPaid(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// SumReceivablesPending soma parcelas com status diferente de PAGO e
	// vencimento no intervalo.
	SumReceivablesPending(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// SumReceivablesOverdue soma parcelas não pagas vencidas estritamente antes de before.
	SumReceivablesOverdue(ctx context.Context, before time.Time) (decimal.Decimal, error)
	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountOpenOrders(ctx context.Context) (int64, error)
	// CountOpenOrdersOpenedBefore conta OS abertas há mais tempo que cutoff.
	CountOpenOrdersOpenedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
