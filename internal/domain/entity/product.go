package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa uma peça do estoque.
// Quantity é o saldo corrente e nunca pode ficar negativo; o histórico de
// entradas fica em StockMovement, mas o saldo autoritativo é este campo.
type Product struct {
	ID          string
	Code        string // código único, normalizado em maiúsculas
	Description string
	Brand       string
	Unit        string // UN, PC, LT...
	Quantity    int64
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
