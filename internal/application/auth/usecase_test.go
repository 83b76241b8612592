package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinapro/oficina-api/internal/application/auth"
	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	pkgjwt "github.com/oficinapro/oficina-api/pkg/jwt"
)

const testSecret = "test-secret-key"

type fakeUserRepo struct {
	byName map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.byName[u.Name] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) { return r.byName[name], nil }

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(u *entity.User) error { r.byName[u.Name] = u; return nil }

func (r *fakeUserRepo) Delete(id string) error { return nil }

func newLoginUC(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-certa"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{byName: map[string]*entity.User{
		"joao": {ID: "u1", Name: "joao", PasswordHash: string(hash), Role: entity.RoleManager},
	}}
	return auth.NewUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc := newLoginUC(t)

	out, err := uc.Login(dto.LoginRequest{Name: "joao", Password: "senha-certa"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "joao", out.User.Name)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	// O token carrega id, nome e cargo.
	userID, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "joao", name)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_SenhaErradaEUsuarioInexistenteIndistinguiveis(t *testing.T) {
	uc := newLoginUC(t)

	_, errSenha := uc.Login(dto.LoginRequest{Name: "joao", Password: "senha-errada"})
	_, errUsuario := uc.Login(dto.LoginRequest{Name: "fantasma", Password: "qualquer"})

	assert.ErrorIs(t, errSenha, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUsuario, domain.ErrUnauthorized)
	assert.Equal(t, errSenha.Error(), errUsuario.Error(),
		"as duas falhas devem ser indistinguíveis para o cliente")
}

func TestLogin_EntradaInvalida(t *testing.T) {
	uc := newLoginUC(t)

	_, err := uc.Login(dto.LoginRequest{Name: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Name: "joao", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
