package repository

import "github.com/oficinapro/oficina-api/internal/domain/entity"

// ExpenseRepository define o porto de persistência para despesas.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	List() ([]*entity.Expense, error)
	Delete(id string) error
}
