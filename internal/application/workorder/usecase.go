package workorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/application/dto"
	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/policy"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
	"github.com/oficinapro/oficina-api/pkg/validator"
)

// UseCase é o motor de ordens de serviço e seus itens.
//
// Toda inclusão/estorno de item roda numa transação única: baixa (ou estorno)
// do saldo do produto com incremento relativo no banco, escrita do item e
// recálculo do total da OS a partir de um agregado fresco. Duas mutações quase
// simultâneas de itens da mesma OS ainda podem intercalar entre requisições
// distintas; esse nível best-effort é aceito (ver DESIGN.md).
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.WorkOrderRepository
	itemRepo     repository.WorkOrderItemRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase constrói o caso de uso de OS.
func NewUseCase(txRunner TxRunner, orderRepo repository.WorkOrderRepository, itemRepo repository.WorkOrderItemRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, itemRepo: itemRepo, customerRepo: customerRepo}
}

// Create abre uma OS com placa normalizada, status ABERTA e total zero. A
// resposta é projetada conforme o cargo do solicitante.
func (uc *UseCase) Create(role string, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	order := &entity.WorkOrder{
		ID:                 uuid.New().String(),
		CustomerID:         in.CustomerID,
		Plate:              strings.ToUpper(strings.TrimSpace(in.Plate)),
		Vehicle:            in.Vehicle,
		ProblemDescription: in.ProblemDescription,
		Status:             entity.OrderStatusOpen,
		Total:              decimal.Zero,
		OpenedAt:           time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	out := dto.ToWorkOrderResponse(role, repository.WorkOrderRow{WorkOrder: *order, CustomerName: customer.Name})
	return &out, nil
}

// List lista as OS conforme o cargo: FUNCIONARIO vê só as ABERTAS, sem total;
// os demais cargos veem todas, com campos completos.
func (uc *UseCase) List(role string) ([]dto.WorkOrderResponse, error) {
	var rows []repository.WorkOrderRow
	var err error
	if policy.Allows(role, policy.ActionViewClosedOrders) {
		rows, err = uc.orderRepo.List()
	} else {
		rows, err = uc.orderRepo.ListByStatus(entity.OrderStatusOpen)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToWorkOrderResponse(role, row))
	}
	return out, nil
}

// ListItems lista os itens de uma OS. FUNCIONARIO só enxerga itens de OS
// ABERTA, e sem preços; os demais cargos veem tudo em qualquer status.
func (uc *UseCase) ListItems(orderID, role string) ([]dto.WorkOrderItemResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if policy.IsStaff(role) && order.Status != entity.OrderStatusOpen {
		return nil, domain.ErrForbidden
	}
	items, err := uc.itemRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToWorkOrderItemResponse(role, item))
	}
	return out, nil
}

// AddItem inclui um item na OS, com resolução de preço por cargo.
//
// PECA: produto obrigatório; a baixa do saldo usa um decremento condicional no
// banco (saldo insuficiente aborta a transação sem mutar nada); a baixa não
// gera lançamento no histórico de estoque. SERVICO: descrição obrigatória;
// FUNCIONARIO tem o preço forçado a zero. O total da OS é recalculado na mesma
// transação.
func (uc *UseCase) AddItem(ctx context.Context, orderID, role string, in dto.AddItemRequest) (*dto.WorkOrderItemResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	kind := strings.ToUpper(strings.TrimSpace(in.Kind))
	if kind != entity.ItemKindPart && kind != entity.ItemKindLabor {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.WorkOrderItem
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		orderRepo repository.WorkOrderRepository,
		itemRepo repository.WorkOrderItemRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusOpen {
			return domain.ErrInvalidState
		}

		item := &entity.WorkOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Kind:      kind,
			Quantity:  in.Quantity,
			CreatedAt: time.Now(),
		}

		switch kind {
		case entity.ItemKindPart:
			if in.ProductID == nil || *in.ProductID == "" {
				return domain.ErrInvalidInput
			}
			if !in.Quantity.IsInteger() {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetByID(*in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			item.ProductID = &product.ID
			item.Description = partDescription(product, in.Description)
			item.UnitPrice = resolvePartPrice(role, product, in.Price)
			if err := productRepo.DecreaseQuantity(product.ID, in.Quantity.IntPart()); err != nil {
				return err
			}

		case entity.ItemKindLabor:
			if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
				return domain.ErrInvalidInput
			}
			item.Description = *in.Description
			if policy.IsStaff(role) {
				item.UnitPrice = decimal.Zero
			} else {
				if in.Price == nil || in.Price.IsNegative() {
					return domain.ErrInvalidInput
				}
				item.UnitPrice = *in.Price
			}
		}

		item.Subtotal = item.Quantity.Mul(item.UnitPrice)
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if err := orderRepo.RecomputeTotal(order.ID); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToWorkOrderItemResponse(role, created)
	return &out, nil
}

// RemoveItem estorna um item: devolve o saldo do produto (incremento relativo,
// sem novo lançamento no histórico), apaga o item e recalcula o total da OS na
// mesma transação. Negado a FUNCIONARIO.
func (uc *UseCase) RemoveItem(ctx context.Context, itemID, role string) error {
	if !policy.Allows(role, policy.ActionRemoveOrderItem) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		orderRepo repository.WorkOrderRepository,
		itemRepo repository.WorkOrderItemRepository,
	) error {
		item, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Kind == entity.ItemKindPart && item.ProductID != nil {
			if err := productRepo.IncreaseQuantity(*item.ProductID, item.Quantity.IntPart()); err != nil {
				return err
			}
		}
		if err := itemRepo.Delete(item.ID); err != nil {
			return err
		}
		return orderRepo.RecomputeTotal(item.OrderID)
	})
}

// Finalize encerra a OS. Finalizar uma OS já FINALIZADA não é erro (a data de
// fechamento é sobrescrita, como no sistema antigo).
func (uc *UseCase) Finalize(orderID, role string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	closedAt := time.Now()
	if err := uc.orderRepo.Close(order.ID, closedAt); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusClosed
	order.ClosedAt = &closedAt
	out := dto.ToWorkOrderResponse(role, repository.WorkOrderRow{WorkOrder: *order})
	return &out, nil
}

// partDescription monta a descrição padrão "{código} - {descrição}" quando o
// chamador não envia uma.
func partDescription(p *entity.Product, supplied *string) string {
	if supplied != nil && strings.TrimSpace(*supplied) != "" {
		return *supplied
	}
	return fmt.Sprintf("%s - %s", p.Code, p.Description)
}

// resolvePartPrice resolve o preço unitário de uma peça. FUNCIONARIO nunca
// dita preço: sempre sai o preço de venda (ou o de custo, se venda zerada).
// Os demais cargos podem enviar um preço explícito não negativo; sem preço
// válido, cai no mesmo fallback.
func resolvePartPrice(role string, p *entity.Product, supplied *decimal.Decimal) decimal.Decimal {
	if !policy.IsStaff(role) && supplied != nil && !supplied.IsNegative() {
		return *supplied
	}
	if p.SalePrice.IsPositive() {
		return p.SalePrice
	}
	return p.CostPrice
}
