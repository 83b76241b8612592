// Package policy centraliza a autorização por cargo. As regras que o sistema
// antigo repetia rota a rota viram aqui uma tabela única ação -> decisão,
// testável isoladamente.
package policy

import (
	"strings"

	"github.com/oficinapro/oficina-api/internal/domain/entity"
)

// Action identifica uma operação sujeita a autorização por cargo.
type Action int

const (
	// ActionViewFinancials cobre agregados financeiros: resumo/histórico de
	// estoque, dashboard, despesas, clientes e faturamentos.
	ActionViewFinancials Action = iota
	// ActionMutateFinancials cobre criação/remoção de despesas, clientes,
	// lançamentos de faturamento e baixa de parcelas.
	ActionMutateFinancials
	// ActionManageUsers cobre listagem e manutenção de contas.
	ActionManageUsers
	// ActionLookupProductByCode é a consulta rápida por código usada no
	// lançamento de itens pelo balcão.
	ActionLookupProductByCode
	// ActionCreateProduct / ActionDeleteProduct cobrem manutenção do cadastro.
	ActionCreateProduct
	ActionDeleteProduct
	// ActionRemoveOrderItem é o estorno de item de OS.
	ActionRemoveOrderItem
	// ActionFinalizeOrder encerra uma OS.
	ActionFinalizeOrder
	// ActionViewClosedOrders permite ver OS finalizadas e campos financeiros.
	ActionViewClosedOrders
	// ActionViewItemPrices permite ver preços e subtotais de itens de OS.
	ActionViewItemPrices
)

// normalize trata cargo ausente/indefinido como string vazia, que não casa
// com nenhuma lista de permissão.
func normalize(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// IsAdmin informa se o cargo é ADMIN (comparação case-insensitive).
func IsAdmin(role string) bool {
	return normalize(role) == entity.RoleAdmin
}

// IsStaff informa se o cargo é FUNCIONARIO (comparação case-insensitive).
func IsStaff(role string) bool {
	return normalize(role) == entity.RoleStaff
}

// Allows decide se o cargo pode executar a ação. Qualquer cargo que não seja
// FUNCIONARIO é tratado como o nível gerente/dono, irrestrito fora da gestão
// de usuários, que é exclusiva do ADMIN.
func Allows(role string, action Action) bool {
	switch action {
	case ActionManageUsers:
		return IsAdmin(role)
	case ActionLookupProductByCode:
		return IsStaff(role)
	case ActionViewFinancials,
		ActionMutateFinancials,
		ActionCreateProduct,
		ActionDeleteProduct,
		ActionRemoveOrderItem,
		ActionFinalizeOrder,
		ActionViewClosedOrders,
		ActionViewItemPrices:
		if normalize(role) == "" {
			return false
		}
		return !IsStaff(role)
	}
	return false
}
