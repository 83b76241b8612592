package repository

import "github.com/oficinapro/oficina-api/internal/domain/entity"

// UserRepository define o porto de persistência para contas de acesso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
