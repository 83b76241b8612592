package dto

import (
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/policy"
)

// ProductResponse produto na forma consumida pelo front.
// PrecoVenda é ponteiro para poder sumir da projeção de FUNCIONARIO.
type ProductResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"codigo"`
	Description string           `json:"descricao"`
	Brand       string           `json:"marca"`
	Unit        string           `json:"unidade"`
	Quantity    int64            `json:"qtdeAtual"`
	CostPrice   decimal.Decimal  `json:"precoCusto"`
	SalePrice   *decimal.Decimal `json:"precoVenda,omitempty"`
}

// CreateProductRequest cadastro de produto.
type CreateProductRequest struct {
	Code        string          `json:"codigo" validate:"required"`
	Description string          `json:"descricao" validate:"required"`
	Brand       string          `json:"marca"`
	Unit        string          `json:"unidade"`
	Quantity    int64           `json:"qtde" validate:"min=0"`
	CostPrice   decimal.Decimal `json:"precoCusto" validate:"min=0"`
	SalePrice   decimal.Decimal `json:"precoVenda" validate:"min=0"`
}

// UpdateProductRequest atualização de produto. Campos nulos ficam como estão.
// EntryQuantity, quando > 0, gera uma entrada de estoque (com lançamento no
// histórico); é o único campo que FUNCIONARIO pode enviar.
type UpdateProductRequest struct {
	Description   *string          `json:"descricao"`
	Brand         *string          `json:"marca"`
	Quantity      *int64           `json:"qtdeAtual" validate:"omitempty,min=0"`
	CostPrice     *decimal.Decimal `json:"precoCusto" validate:"omitempty,min=0"`
	SalePrice     *decimal.Decimal `json:"precoVenda" validate:"omitempty,min=0"`
	EntryQuantity *int64           `json:"qtdeEntrada" validate:"omitempty,gt=0"`
}

// ToProductResponse projeta o produto conforme o cargo: FUNCIONARIO não vê
// preço de custo (zerado) nem preço de venda (omitido).
func ToProductResponse(role string, p *entity.Product) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Brand:       p.Brand,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		CostPrice:   p.CostPrice,
	}
	if policy.IsStaff(role) {
		out.CostPrice = decimal.Zero
		return out
	}
	sale := p.SalePrice
	out.SalePrice = &sale
	return out
}

// ToProductListResponse projeta uma lista de produtos conforme o cargo.
func ToProductListResponse(role string, products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(role, p))
	}
	return out
}
