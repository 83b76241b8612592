package dto

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Name     string `json:"nome" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse token emitido mais os dados básicos do usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
