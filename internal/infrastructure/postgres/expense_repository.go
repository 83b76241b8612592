package postgres

import (
	"context"
	"fmt"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementação do porto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste uma nova despesa.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, date, invoice_number, invoice_type, amount,
			supplier, department, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Date, e.InvoiceNumber, e.InvoiceType, e.Amount,
		e.Supplier, e.Department, e.Notes, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List lista as despesas, mais recentes primeiro.
func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	query := `
		SELECT id, date, invoice_number, invoice_type, amount, supplier, department, notes, created_at
		FROM expenses ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.InvoiceNumber, &e.InvoiceType, &e.Amount,
			&e.Supplier, &e.Department, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove uma despesa por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
