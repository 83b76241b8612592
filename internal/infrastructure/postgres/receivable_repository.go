package postgres

import (
	"context"
	"fmt"

	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo implementação do porto ReceivableRepository sobre PostgreSQL.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// CreateBatch insere todas as parcelas de um lançamento de uma vez.
func (r *ReceivableRepo) CreateBatch(receivables []*entity.Receivable) error {
	const query = `
		INSERT INTO receivables (id, customer_id, document_number, installment_amount,
			installment_number, total_installments, status, issued_at, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	ctx := context.Background()
	for _, rec := range receivables {
		_, err := r.q.Exec(ctx, query,
			rec.ID, rec.CustomerID, rec.DocumentNumber, rec.InstallmentAmount,
			rec.InstallmentNumber, rec.TotalInstallments, rec.Status, rec.IssuedAt, rec.DueDate,
		)
		if err != nil {
			return fmt.Errorf("insert receivable %d/%d: %w", rec.InstallmentNumber, rec.TotalInstallments, err)
		}
	}
	return nil
}

// List lista as parcelas com os dados do cliente, ordenadas pelo vencimento.
func (r *ReceivableRepo) List() ([]repository.ReceivableRow, error) {
	const query = `
		SELECT f.id, f.customer_id, f.document_number, f.installment_amount,
		       f.installment_number, f.total_installments, f.status, f.issued_at, f.due_date,
		       c.name, c.tax_id
		FROM receivables f
		JOIN customers c ON c.id = f.customer_id
		ORDER BY f.due_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []repository.ReceivableRow
	for rows.Next() {
		var row repository.ReceivableRow
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.DocumentNumber, &row.InstallmentAmount,
			&row.InstallmentNumber, &row.TotalInstallments, &row.Status, &row.IssuedAt, &row.DueDate,
			&row.CustomerName, &row.CustomerTaxID); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// MarkPaid muda o status para PAGO incondicionalmente: dar baixa duas vezes
// não é erro, é idempotente.
func (r *ReceivableRepo) MarkPaid(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE receivables SET status = $2 WHERE id = $1`,
		id, entity.ReceivableStatusPaid,
	)
	if err != nil {
		return fmt.Errorf("mark receivable paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma parcela por ID.
func (r *ReceivableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receivables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	return nil
}
