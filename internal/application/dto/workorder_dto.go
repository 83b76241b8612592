package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/policy"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// WorkOrderResponse OS na forma consumida pelo front. Total é ponteiro para
// sumir da projeção de FUNCIONARIO.
type WorkOrderResponse struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"clienteId"`
	CustomerName       string           `json:"cliente,omitempty"`
	Plate              string           `json:"placa"`
	Vehicle            string           `json:"veiculo"`
	ProblemDescription string           `json:"descricaoProblema"`
	Status             string           `json:"status"`
	Total              *decimal.Decimal `json:"total,omitempty"`
	OpenedAt           time.Time        `json:"dataAbertura"`
	ClosedAt           *time.Time       `json:"dataFechamento,omitempty"`
}

// WorkOrderItemResponse item de OS. Preço e subtotal são ponteiros para sumir
// da projeção de FUNCIONARIO.
type WorkOrderItemResponse struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"osId"`
	ProductID   *string          `json:"produtoId,omitempty"`
	Description string           `json:"descricao"`
	Kind        string           `json:"tipo"`
	Quantity    decimal.Decimal  `json:"quantidade"`
	UnitPrice   *decimal.Decimal `json:"precoUn,omitempty"`
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
}

// CreateWorkOrderRequest abertura de OS.
type CreateWorkOrderRequest struct {
	CustomerID         string `json:"clienteId" validate:"required"`
	Plate              string `json:"placa" validate:"required"`
	Vehicle            string `json:"veiculo"`
	ProblemDescription string `json:"descricao"`
}

// AddItemRequest inclusão de item em OS. Para PECA, ProductID é obrigatório e
// Description opcional; para SERVICO, Description é obrigatória. Price é
// ignorado para FUNCIONARIO (o servidor sempre resolve o preço).
type AddItemRequest struct {
	Kind        string           `json:"tipo" validate:"required"`
	ProductID   *string          `json:"produtoId"`
	Description *string          `json:"descricao"`
	Quantity    decimal.Decimal  `json:"quantidade" validate:"required"`
	Price       *decimal.Decimal `json:"preco"`
}

// ToWorkOrderResponse projeta a OS conforme o cargo: FUNCIONARIO não vê total.
func ToWorkOrderResponse(role string, row repository.WorkOrderRow) WorkOrderResponse {
	out := WorkOrderResponse{
		ID:                 row.ID,
		CustomerID:         row.CustomerID,
		CustomerName:       row.CustomerName,
		Plate:              row.Plate,
		Vehicle:            row.Vehicle,
		ProblemDescription: row.ProblemDescription,
		Status:             row.Status,
		OpenedAt:           row.OpenedAt,
		ClosedAt:           row.ClosedAt,
	}
	if policy.Allows(role, policy.ActionViewClosedOrders) {
		total := row.Total
		out.Total = &total
	}
	return out
}

// ToWorkOrderItemResponse projeta o item conforme o cargo: FUNCIONARIO vê
// apenas id, tipo, descrição e quantidade.
func ToWorkOrderItemResponse(role string, item *entity.WorkOrderItem) WorkOrderItemResponse {
	out := WorkOrderItemResponse{
		ID:          item.ID,
		OrderID:     item.OrderID,
		Description: item.Description,
		Kind:        item.Kind,
		Quantity:    item.Quantity,
	}
	if policy.Allows(role, policy.ActionViewItemPrices) {
		out.ProductID = item.ProductID
		price := item.UnitPrice
		subtotal := item.Subtotal
		out.UnitPrice = &price
		out.Subtotal = &subtotal
	}
	return out
}
