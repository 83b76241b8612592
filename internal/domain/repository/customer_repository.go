package repository

import "github.com/oficinapro/oficina-api/internal/domain/entity"

// CustomerRepository define o porto de persistência para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Delete(id string) error
}
