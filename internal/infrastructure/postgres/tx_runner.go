package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinapro/oficina-api/internal/application/inventory"
	"github.com/oficinapro/oficina-api/internal/application/workorder"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// Garantir que TxRunner implementa os portos de transação das aplicações.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ workorder.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. É a fronteira atômica das operações multi-passo
// (entrada de estoque, inclusão/estorno de item de OS, remoção de produto).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	orderRepo repository.WorkOrderRepository,
	itemRepo repository.WorkOrderItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	orderRepo := NewWorkOrderRepository(tx)
	itemRepo := NewWorkOrderItemRepository(tx)

	if err := fn(productRepo, movementRepo, orderRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
