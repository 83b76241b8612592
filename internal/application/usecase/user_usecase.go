package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// UserUseCase manutenção de contas de acesso. Todas as operações são
// restritas a ADMIN na camada HTTP.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// normalizeRole valida o cargo informado; vazio vira GERENTE.
func normalizeRole(role string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "":
		return entity.RoleManager, nil
	case entity.RoleAdmin:
		return entity.RoleAdmin, nil
	case entity.RoleManager:
		return entity.RoleManager, nil
	case entity.RoleStaff:
		return entity.RoleStaff, nil
	}
	return "", domain.ErrInvalidInput
}

// List lista as contas sem os hashes.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Create cria uma conta com a senha hasheada via bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	role, err := normalizeRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// Update atualiza nome, cargo e, se enviada, a senha.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Role) != "" {
		role, err := normalizeRole(in.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	user.Name = in.Name
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// Delete remove uma conta. Autoexclusão é proibida.
func (uc *UserUseCase) Delete(id, callerID string) error {
	if id == callerID {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}
