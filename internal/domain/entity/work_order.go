package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma ordem de serviço.
const (
	OrderStatusOpen   = "ABERTA"
	OrderStatusClosed = "FINALIZADA"
)

// Tipos de item de OS.
const (
	ItemKindPart  = "PECA"
	ItemKindLabor = "SERVICO"
)

// WorkOrder é uma ordem de serviço sobre o veículo de um cliente.
// Total é derivado: sempre a soma dos subtotais dos itens correntes,
// recalculado a cada inclusão/remoção de item; nunca escrito pelo cliente.
// Itens só podem ser incluídos enquanto Status == ABERTA.
type WorkOrder struct {
	ID                 string
	CustomerID         string
	Plate              string // placa, normalizada em maiúsculas
	Vehicle            string
	ProblemDescription string
	Status             string // ABERTA | FINALIZADA
	Total              decimal.Decimal
	OpenedAt           time.Time
	ClosedAt           *time.Time
}

// WorkOrderItem é um item de OS: peça consumida (baixa estoque) ou serviço.
// Preço e quantidade são fixados na criação; o item nunca é alterado, apenas
// removido (estorno). ProductID fica nulo para serviços e após desvínculo de
// produto removido.
type WorkOrderItem struct {
	ID          string
	OrderID     string
	ProductID   *string
	Description string
	Kind        string // PECA | SERVICO
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
}
