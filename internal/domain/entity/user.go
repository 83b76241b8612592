package entity

import "time"

// Cargos válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "GERENTE"
	RoleStaff   = "FUNCIONARIO"
)

// User representa uma conta de acesso ao sistema.
// PasswordHash é bcrypt; a senha em claro nunca sai do handler de login.
type User struct {
	ID           string
	Name         string // único
	PasswordHash string
	Role         string // ADMIN, GERENTE, FUNCIONARIO
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
