package repository

import (
	"time"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// WorkOrderRow é uma OS com o nome do cliente para listagem.
type WorkOrderRow struct {
	entity.WorkOrder
	CustomerName string
}

// WorkOrderRepository define o porto de persistência para ordens de serviço.
// RecomputeTotal refaz o total a partir de um agregado fresco sobre os itens
// correntes, nunca a partir de um valor calculado pelo chamador.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	List() ([]WorkOrderRow, error)
	ListByStatus(status string) ([]WorkOrderRow, error)
	RecomputeTotal(orderID string) error
	Close(orderID string, closedAt time.Time) error
}

// WorkOrderItemRepository define o porto de persistência para itens de OS.
// Itens nunca são alterados: só criados e removidos (estorno).
type WorkOrderItemRepository interface {
	Create(item *entity.WorkOrderItem) error
	GetByID(id string) (*entity.WorkOrderItem, error)
	ListByOrder(orderID string) ([]*entity.WorkOrderItem, error)
	Delete(id string) error
	// UnlinkProduct desvincula os itens de um produto removido, preservando a
	// descrição textual (product_id -> NULL).
	UnlinkProduct(productID string) error
}
