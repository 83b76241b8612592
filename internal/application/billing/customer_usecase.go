package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// CustomerUseCase cadastro de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create cadastra um cliente com o nome normalizado em maiúsculas.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.ToUpper(strings.TrimSpace(in.Name)),
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// List lista os clientes ordenados pelo nome.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// Delete remove um cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.customerRepo.Delete(id)
}
