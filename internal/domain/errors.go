package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidRange      = errors.New("período inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrForbidden         = errors.New("acesso negado")
	ErrInvalidState      = errors.New("operação não permitida no estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)
