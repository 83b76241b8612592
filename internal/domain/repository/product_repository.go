package repository

import (
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
// IncreaseQuantity/DecreaseQuantity aplicam incrementos relativos no banco
// (nunca leitura + escrita absoluta), para não perder atualizações sob
// requisições concorrentes sobre o mesmo produto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	SetQuantity(productID string, quantity int64) error
	IncreaseQuantity(productID string, delta int64) error
	// DecreaseQuantity baixa o saldo somente se houver quantidade suficiente;
	// devolve domain.ErrInsufficientStock caso contrário, sem alterar nada.
	DecreaseQuantity(productID string, delta int64) error
	UpdateCost(productID string, cost decimal.Decimal) error
	Delete(id string) error
}
