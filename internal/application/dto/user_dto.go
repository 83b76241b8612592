package dto

import (
	"time"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// UserResponse conta de acesso sem o hash de senha.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Role      string    `json:"cargo"`
	CreatedAt time.Time `json:"criadoEm"`
}

// CreateUserRequest criação de conta (somente ADMIN).
type CreateUserRequest struct {
	Name     string `json:"nome" validate:"required"`
	Password string `json:"senha" validate:"required,min=6"`
	Role     string `json:"cargo"`
}

// UpdateUserRequest atualização de conta. Senha vazia mantém a atual.
type UpdateUserRequest struct {
	Name     string `json:"nome" validate:"required"`
	Password string `json:"senha" validate:"omitempty,min=6"`
	Role     string `json:"cargo"`
}

// ToUserResponse projeta a entidade sem campos sensíveis.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
