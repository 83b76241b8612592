package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/application/usecase"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*entity.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Name == u.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestCreateUser_HashECargoPadrao(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{Name: "maria", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role, "cargo vazio assume GERENTE")

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo123", stored.PasswordHash, "senha nunca fica em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")))
}

func TestCreateUser_NomeDuplicadoECargoInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{Name: "maria", Password: "segredo123"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Name: "maria", Password: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateUserRequest{Name: "jose", Password: "segredo123", Role: "ESTAGIARIO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cargo desconhecido é rejeitado")

	_, err = uc.Create(dto.CreateUserRequest{Name: "ana", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "senha abaixo do mínimo é rejeitada")
}

func TestUpdateUser_SenhaVaziaMantemAtual(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(dto.CreateUserRequest{Name: "maria", Password: "segredo123"})
	require.NoError(t, err)
	before, _ := repo.GetByID(created.ID)

	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Name: "maria silva", Role: "funcionario"})
	require.NoError(t, err)
	assert.Equal(t, "maria silva", out.Name)
	assert.Equal(t, entity.RoleStaff, out.Role, "cargo é normalizado em maiúsculas")

	after, _ := repo.GetByID(created.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "sem senha no request o hash fica")

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Name: "maria silva", Password: "nova-senha9"})
	require.NoError(t, err)
	final, _ := repo.GetByID(created.ID)
	assert.NotEqual(t, after.PasswordHash, final.PasswordHash)
	assert.Equal(t, entity.RoleStaff, final.Role, "cargo ausente no request mantém o atual")
}

func TestDeleteUser_AutoexclusaoProibida(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u1", Name: "admin", Role: entity.RoleAdmin})
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("u1", "u1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	stored, _ := repo.GetByID("u1")
	assert.NotNil(t, stored, "conta preservada")

	assert.ErrorIs(t, uc.Delete("fantasma", "u1"), domain.ErrNotFound)

	require.NoError(t, repo.Create(&entity.User{ID: "u2", Name: "outro"}))
	require.NoError(t, uc.Delete("u2", "u1"))
}
