package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/entity"
	"github.com/oficinapro/oficina-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos.
// Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, description, brand, unit, quantity, cost_price, sale_price, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.Brand, &p.Unit,
		&p.Quantity, &p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, description, brand, unit, quantity, cost_price, sale_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Description, product.Brand, product.Unit,
		product.Quantity, product.CostPrice, product.SalePrice, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve (nil, nil) se não existir.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCode obtém um produto pelo código (já normalizado em maiúsculas).
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// List lista os produtos ordenados pela descrição.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY description`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.Brand, &p.Unit,
			&p.Quantity, &p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza os campos cadastrais e de preço. A quantidade não passa por
// aqui (ver SetQuantity/IncreaseQuantity/DecreaseQuantity).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET description = $2, brand = $3, unit = $4,
			cost_price = $5, sale_price = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Description, product.Brand, product.Unit,
		product.CostPrice, product.SalePrice,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetQuantity grava um saldo absoluto (correção administrativa, fora do fluxo
// de entradas; não gera lançamento no histórico).
func (r *ProductRepo) SetQuantity(productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set product quantity: %w", err)
	}
	return nil
}

// IncreaseQuantity aplica um incremento relativo no saldo, no próprio banco,
// para não perder atualizações concorrentes sobre o mesmo produto.
func (r *ProductRepo) IncreaseQuantity(productID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("increase product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecreaseQuantity baixa o saldo somente se houver quantidade suficiente.
// O predicado quantity >= delta no UPDATE garante a verificação e a baixa como
// uma única operação atômica; zero linhas afetadas significa saldo insuficiente
// (ou produto inexistente) e nada é alterado.
func (r *ProductRepo) DecreaseQuantity(productID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $2, updated_at = now()
		 WHERE id = $1 AND quantity >= $2`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("decrease product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// UpdateCost atualiza só o preço de custo.
func (r *ProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cost_price = $2, updated_at = now() WHERE id = $1`,
		productID, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// Delete remove um produto por ID. O desvínculo dos itens de OS acontece antes,
// na mesma transação (WorkOrderItemRepository.UnlinkProduct).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
