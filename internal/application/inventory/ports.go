package inventory

import (
	"context"

	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante atomicidade para as operações
// multi-passo do estoque (cadastro com saldo inicial, entrada com lançamento
// no histórico, remoção com desvínculo de itens).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.WorkOrderRepository,
		itemRepo repository.WorkOrderItemRepository,
	) error) error
}
