package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque. Apenas entradas são registradas no histórico;
// baixas por consumo de OS ajustam o saldo do produto sem gerar movimento
// (o histórico representa compras, não auditoria completa).
const (
	MovementTypeEntry = "ENTRADA"
)

// StockMovement é um lançamento do histórico de estoque (append-only).
// Nunca é alterado nem removido; serve só para reconstrução histórica e relatórios.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // ENTRADA
	Quantity  int64  // sempre positivo
	UnitCost  decimal.Decimal
	CreatedAt time.Time
}
