package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

// StockSummaryResponse total de entradas de estoque do mês selecionado.
type StockSummaryResponse struct {
	From       time.Time       `json:"inicio"`
	To         time.Time       `json:"fim"`
	TotalCost  decimal.Decimal `json:"totalEntradas"`
	EntryCount int64           `json:"qtdeLancamentos"`
}

// StockEntryResponse uma entrada do histórico, com os dados do produto.
type StockEntryResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"produtoId"`
	ProductCode        string          `json:"codigo"`
	ProductDescription string          `json:"descricao"`
	Quantity           int64           `json:"quantidade"`
	UnitCost           decimal.Decimal `json:"custoUn"`
	CreatedAt          time.Time       `json:"data"`
}

// ToStockEntryResponse projeta uma linha do histórico.
func ToStockEntryResponse(row repository.StockEntryRow) StockEntryResponse {
	return StockEntryResponse{
		ID:                 row.ID,
		ProductID:          row.ProductID,
		ProductCode:        row.ProductCode,
		ProductDescription: row.ProductDescription,
		Quantity:           row.Quantity,
		UnitCost:           row.UnitCost,
		CreatedAt:          row.CreatedAt,
	}
}
