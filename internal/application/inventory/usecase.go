package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/period"
	"github.com/oficinapro/oficina-api/internal/domain/policy"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// UseCase reúne o cadastro de produtos e o motor de entradas de estoque.
//
// Invariantes do motor: todo aumento de saldo fora da criação inicial vem
// pareado com exatamente um lançamento ENTRADA no histórico; criação com saldo
// inicial > 0 também gera um lançamento. Baixas por consumo de OS não passam
// por aqui e não são lançadas (o histórico representa compras).
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo}
}

// CreateProduct cadastra um produto com código normalizado em maiúsculas.
// Saldo inicial > 0 gera o lançamento ENTRADA na mesma transação.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "UN"
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        strings.ToUpper(strings.TrimSpace(in.Code)),
		Description: in.Description,
		Brand:       in.Brand,
		Unit:        unit,
		Quantity:    in.Quantity,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.WorkOrderRepository,
		_ repository.WorkOrderItemRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Quantity > 0 {
			return movementRepo.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeEntry,
				Quantity:  product.Quantity,
				UnitCost:  product.CostPrice,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToProductResponse("", product)
	return &out, nil
}

// ListProducts lista os produtos projetados conforme o cargo.
func (uc *UseCase) ListProducts(role string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return dto.ToProductListResponse(role, products), nil
}

// GetByCode busca um produto pelo código (consulta rápida do balcão).
func (uc *UseCase) GetByCode(role, code string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductResponse(role, product)
	return &out, nil
}

// RegisterEntry aplica uma entrada de estoque: um lançamento ENTRADA no
// histórico, o incremento do saldo e a atualização do preço de custo para o
// custo unitário da entrada, na mesma transação. O incremento é relativo,
// aplicado pelo banco, para não perder entradas concorrentes.
func (uc *UseCase) RegisterEntry(ctx context.Context, productID string, quantity int64, unitCost decimal.Decimal) error {
	if quantity <= 0 || unitCost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.WorkOrderRepository,
		_ repository.WorkOrderItemRepository,
	) error {
		if err := movementRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeEntry,
			Quantity:  quantity,
			UnitCost:  unitCost,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := productRepo.UpdateCost(productID, unitCost); err != nil {
			return err
		}
		return productRepo.IncreaseQuantity(productID, quantity)
	})
}

// UpdateProduct atualiza um produto conforme o cargo. FUNCIONARIO só pode
// registrar entrada de saldo (qtdeEntrada), custeada pelo preço de custo
// corrente; os demais cargos atualizam cadastro e preços, podem corrigir o
// saldo absoluto e também registrar entrada.
func (uc *UseCase) UpdateProduct(ctx context.Context, id, role string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if policy.IsStaff(role) {
		if in.EntryQuantity == nil || *in.EntryQuantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.RegisterEntry(ctx, id, *in.EntryQuantity, product.CostPrice); err != nil {
			return nil, err
		}
		return uc.reload(id, role)
	}

	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	// Correção absoluta de saldo: fora do fluxo de entradas, não lança no
	// histórico (carregado do sistema antigo; ver DESIGN.md).
	if in.Quantity != nil {
		if err := uc.productRepo.SetQuantity(id, *in.Quantity); err != nil {
			return nil, err
		}
	}
	if in.EntryQuantity != nil && *in.EntryQuantity > 0 {
		if err := uc.RegisterEntry(ctx, id, *in.EntryQuantity, product.CostPrice); err != nil {
			return nil, err
		}
	}
	return uc.reload(id, role)
}

func (uc *UseCase) reload(id, role string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductResponse(role, product)
	return &out, nil
}

// DeleteProduct remove um produto: na mesma transação, desvincula os itens de
// OS que o referenciam (a descrição textual fica) e apaga a linha. Os
// lançamentos do histórico não são tocados.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		_ repository.WorkOrderRepository,
		itemRepo repository.WorkOrderItemRepository,
	) error {
		if err := itemRepo.UnlinkProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// MonthlySummary devolve o total de entradas (quantidade × custo) do mês
// selecionado ("YYYY-MM"; vazio usa o mês corrente UTC).
func (uc *UseCase) MonthlySummary(ctx context.Context, selector string) (*dto.StockSummaryResponse, error) {
	from, to, err := period.MonthWindow(selector, time.Now())
	if err != nil {
		return nil, err
	}
	total, count, err := uc.movementRepo.SumEntryCost(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{From: from, To: to, TotalCost: total, EntryCount: count}, nil
}

// MonthlyHistory devolve as entradas do mês selecionado, com dados do produto.
func (uc *UseCase) MonthlyHistory(ctx context.Context, selector string) ([]dto.StockEntryResponse, error) {
	from, to, err := period.MonthWindow(selector, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.movementRepo.ListEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToStockEntryResponse(row))
	}
	return out, nil
}
