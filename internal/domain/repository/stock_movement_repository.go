package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// StockEntryRow é uma linha do histórico de entradas, já com os dados do produto.
type StockEntryRow struct {
	entity.StockMovement
	ProductCode        string
	ProductDescription string
}

// StockMovementRepository define o porto de persistência do histórico de estoque.
// O histórico é append-only: não existem Update nem Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// SumEntryCost soma quantity × unit_cost das entradas no intervalo [from, to).
	SumEntryCost(ctx context.Context, from, to time.Time) (total decimal.Decimal, count int64, err error)
	// ListEntries devolve as entradas no intervalo [from, to), mais recentes primeiro.
	ListEntries(ctx context.Context, from, to time.Time) ([]StockEntryRow, error)
}
