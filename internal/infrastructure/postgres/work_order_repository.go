package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementação do porto WorkOrderRepository sobre PostgreSQL
// (usável com pool ou tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste uma nova OS com status ABERTA e total zero.
func (r *WorkOrderRepo) Create(o *entity.WorkOrder) error {
	query := `
		INSERT INTO service_orders (id, customer_id, plate, vehicle, problem_description,
			status, total, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerID, o.Plate, o.Vehicle, o.ProblemDescription,
		o.Status, o.Total, o.OpenedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtém uma OS por ID. Devolve (nil, nil) se não existir.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `
		SELECT id, customer_id, plate, vehicle, problem_description, status, total, opened_at, closed_at
		FROM service_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.Plate, &o.Vehicle, &o.ProblemDescription,
		&o.Status, &o.Total, &o.OpenedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &o, nil
}

const workOrderListQuery = `
	SELECT o.id, o.customer_id, o.plate, o.vehicle, o.problem_description,
	       o.status, o.total, o.opened_at, o.closed_at, COALESCE(c.name, '')
	FROM service_orders o
	LEFT JOIN customers c ON c.id = o.customer_id`

func (r *WorkOrderRepo) queryRows(query string, args ...any) ([]repository.WorkOrderRow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []repository.WorkOrderRow
	for rows.Next() {
		var row repository.WorkOrderRow
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.Plate, &row.Vehicle,
			&row.ProblemDescription, &row.Status, &row.Total, &row.OpenedAt,
			&row.ClosedAt, &row.CustomerName); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// List lista todas as OS, mais recentes primeiro.
func (r *WorkOrderRepo) List() ([]repository.WorkOrderRow, error) {
	return r.queryRows(workOrderListQuery + ` ORDER BY o.opened_at DESC`)
}

// ListByStatus lista as OS com um status, mais recentes primeiro.
func (r *WorkOrderRepo) ListByStatus(status string) ([]repository.WorkOrderRow, error) {
	return r.queryRows(workOrderListQuery+` WHERE o.status = $1 ORDER BY o.opened_at DESC`, status)
}

// RecomputeTotal refaz o total da OS como a soma dos subtotais dos itens
// correntes, num agregado fresco calculado pelo próprio banco no momento da
// escrita. Chamado dentro da mesma transação que inclui ou remove o item.
func (r *WorkOrderRepo) RecomputeTotal(orderID string) error {
	query := `
		UPDATE service_orders
		SET total = (SELECT COALESCE(SUM(subtotal), 0) FROM service_order_items WHERE order_id = $1)
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID)
	if err != nil {
		return fmt.Errorf("recompute work order total: %w", err)
	}
	return nil
}

// Close finaliza a OS: status FINALIZADA e data de fechamento.
func (r *WorkOrderRepo) Close(orderID string, closedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE service_orders SET status = $2, closed_at = $3 WHERE id = $1`,
		orderID, entity.OrderStatusClosed, closedAt,
	)
	if err != nil {
		return fmt.Errorf("close work order: %w", err)
	}
	return nil
}
