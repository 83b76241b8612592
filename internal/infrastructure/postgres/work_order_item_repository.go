package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.WorkOrderItemRepository = (*WorkOrderItemRepo)(nil)

// WorkOrderItemRepo implementação do porto WorkOrderItemRepository sobre
// PostgreSQL (usável com pool ou tx).
type WorkOrderItemRepo struct {
	q Querier
}

// NewWorkOrderItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWorkOrderItemRepository(q Querier) *WorkOrderItemRepo {
	return &WorkOrderItemRepo{q: q}
}

// Create persiste um item de OS.
func (r *WorkOrderItemRepo) Create(item *entity.WorkOrderItem) error {
	query := `
		INSERT INTO service_order_items (id, order_id, product_id, description, kind,
			quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Description, item.Kind,
		item.Quantity, item.UnitPrice, item.Subtotal, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID. Devolve (nil, nil) se não existir.
func (r *WorkOrderItemRepo) GetByID(id string) (*entity.WorkOrderItem, error) {
	query := `
		SELECT id, order_id, product_id, description, kind, quantity, unit_price, subtotal, created_at
		FROM service_order_items WHERE id = $1`
	var item entity.WorkOrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Description, &item.Kind,
		&item.Quantity, &item.UnitPrice, &item.Subtotal, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order item: %w", err)
	}
	return &item, nil
}

// ListByOrder lista os itens de uma OS na ordem de inclusão.
func (r *WorkOrderItemRepo) ListByOrder(orderID string) ([]*entity.WorkOrderItem, error) {
	query := `
		SELECT id, order_id, product_id, description, kind, quantity, unit_price, subtotal, created_at
		FROM service_order_items WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list work order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrderItem
	for rows.Next() {
		var item entity.WorkOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Description,
			&item.Kind, &item.Quantity, &item.UnitPrice, &item.Subtotal, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Delete remove um item por ID (estorno).
func (r *WorkOrderItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order item: %w", err)
	}
	return nil
}

// UnlinkProduct desvincula os itens de um produto que está sendo removido do
// cadastro: product_id vira NULL e a descrição textual fica preservada.
func (r *WorkOrderItemRepo) UnlinkProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE service_order_items SET product_id = NULL WHERE product_id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("unlink product from items: %w", err)
	}
	return nil
}
