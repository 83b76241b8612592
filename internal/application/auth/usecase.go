package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/jwt"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticação: login com nome e senha.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica nome/senha (bcrypt), emite o JWT e devolve token + usuário.
// Nome inexistente e senha errada produzem o mesmo erro, sem distinção.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
