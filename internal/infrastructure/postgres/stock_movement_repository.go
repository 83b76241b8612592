package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do histórico de estoque sobre PostgreSQL
// (usável com pool ou tx). A tabela é append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insere um lançamento no histórico.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.UnitCost, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// SumEntryCost soma quantity × unit_cost das entradas no intervalo [from, to).
// COALESCE devolve zero num mês sem lançamentos.
func (r *StockMovementRepo) SumEntryCost(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	const query = `
		SELECT COALESCE(SUM(quantity * unit_cost), 0), COUNT(*)
		FROM stock_movements
		WHERE type = $1 AND created_at >= $2 AND created_at < $3`
	var total decimal.Decimal
	var count int64
	err := r.q.QueryRow(ctx, query, entity.MovementTypeEntry, from, to).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum stock entries: %w", err)
	}
	return total, count, nil
}

// ListEntries devolve as entradas no intervalo [from, to) com os dados do
// produto, mais recentes primeiro. LEFT JOIN preserva lançamentos de produtos
// já removidos do cadastro.
func (r *StockMovementRepo) ListEntries(ctx context.Context, from, to time.Time) ([]repository.StockEntryRow, error) {
	const query = `
		SELECT m.id, m.product_id, m.type, m.quantity, m.unit_cost, m.created_at,
		       COALESCE(p.code, ''), COALESCE(p.description, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.type = $1 AND m.created_at >= $2 AND m.created_at < $3
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(ctx, query, entity.MovementTypeEntry, from, to)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []repository.StockEntryRow
	for rows.Next() {
		var row repository.StockEntryRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.Type, &row.Quantity,
			&row.UnitCost, &row.CreatedAt, &row.ProductCode, &row.ProductDescription); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
