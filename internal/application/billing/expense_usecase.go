package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// ExpenseUseCase cadastro de despesas operacionais.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase constrói o caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create cadastra uma despesa. A data vem no formato "2006-01-02".
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dueDateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		ID:            uuid.New().String(),
		Date:          date.UTC(),
		InvoiceNumber: in.InvoiceNumber,
		InvoiceType:   in.InvoiceType,
		Amount:        in.Amount,
		Supplier:      in.Supplier,
		Department:    in.Department,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	out := dto.ToExpenseResponse(expense)
	return &out, nil
}

// List lista as despesas, mais recentes primeiro.
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, dto.ToExpenseResponse(e))
	}
	return out, nil
}

// Delete remove uma despesa.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.expenseRepo.Delete(id)
}
