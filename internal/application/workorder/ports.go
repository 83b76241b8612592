package workorder

import (
	"context"

	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. É a fronteira atômica de inclusão e estorno
// de itens: baixa/estorno de saldo, escrita do item e recálculo do total da OS
// acontecem juntos ou não acontecem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.WorkOrderRepository,
		itemRepo repository.WorkOrderItemRepository,
	) error) error
}
