package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:          "p1",
		Code:        "FLT-100",
		Description: "FILTRO DE OLEO",
		Quantity:    7,
		CostPrice:   decimal.RequireFromString("10.00"),
		SalePrice:   decimal.RequireFromString("25.00"),
	}
}

func TestToProductResponse_FuncionarioNaoVePrecos(t *testing.T) {
	out := dto.ToProductResponse("FUNCIONARIO", sampleProduct())

	assert.True(t, out.CostPrice.IsZero(), "custo zerado para FUNCIONARIO")
	assert.Nil(t, out.SalePrice, "venda omitida para FUNCIONARIO")
	assert.Equal(t, int64(7), out.Quantity, "saldo continua visível")

	// No JSON o campo precoVenda some de vez.
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "precoVenda")
}

func TestToProductResponse_GerenteVeTudo(t *testing.T) {
	out := dto.ToProductResponse("GERENTE", sampleProduct())

	assert.True(t, decimal.RequireFromString("10.00").Equal(out.CostPrice))
	require.NotNil(t, out.SalePrice)
	assert.True(t, decimal.RequireFromString("25.00").Equal(*out.SalePrice))
}

func TestToWorkOrderResponse_TotalPorCargo(t *testing.T) {
	row := repository.WorkOrderRow{
		WorkOrder: entity.WorkOrder{
			ID:       "os-1",
			Status:   entity.OrderStatusOpen,
			Total:    decimal.RequireFromString("150.00"),
			OpenedAt: time.Now(),
		},
		CustomerName: "CLIENTE",
	}

	staff := dto.ToWorkOrderResponse("FUNCIONARIO", row)
	assert.Nil(t, staff.Total)

	manager := dto.ToWorkOrderResponse("GERENTE", row)
	require.NotNil(t, manager.Total)
	assert.True(t, decimal.RequireFromString("150.00").Equal(*manager.Total))
}

func TestToWorkOrderItemResponse_PrecosPorCargo(t *testing.T) {
	pid := "p1"
	item := &entity.WorkOrderItem{
		ID:          "item-1",
		OrderID:     "os-1",
		ProductID:   &pid,
		Description: "FLT-100 - FILTRO DE OLEO",
		Kind:        entity.ItemKindPart,
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("25.00"),
		Subtotal:    decimal.RequireFromString("50.00"),
	}

	staff := dto.ToWorkOrderItemResponse("FUNCIONARIO", item)
	assert.Nil(t, staff.UnitPrice)
	assert.Nil(t, staff.Subtotal)
	assert.Nil(t, staff.ProductID)
	assert.Equal(t, "FLT-100 - FILTRO DE OLEO", staff.Description)

	raw, err := json.Marshal(staff)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "precoUn")
	assert.NotContains(t, string(raw), "subtotal")

	manager := dto.ToWorkOrderItemResponse("ADMIN", item)
	require.NotNil(t, manager.UnitPrice)
	require.NotNil(t, manager.Subtotal)
	assert.Equal(t, &pid, manager.ProductID)
}

func TestToUserResponse_SemHash(t *testing.T) {
	raw, err := json.Marshal(dto.ToUserResponse(&entity.User{
		ID:           "u1",
		Name:         "maria",
		PasswordHash: "$2a$10$segredo",
		Role:         entity.RoleAdmin,
	}))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "segredo", "hash nunca sai na resposta")
}
