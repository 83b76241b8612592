package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinapro/oficina-api/internal/application/analytics"
	"github.com/oficinapro/oficina-api/internal/application/auth"
	"github.com/oficinapro/oficina-api/internal/application/billing"
	"github.com/oficinapro/oficina-api/internal/application/inventory"
	"github.com/oficinapro/oficina-api/internal/application/usecase"
	"github.com/oficinapro/oficina-api/internal/application/workorder"
	"github.com/oficinapro/oficina-api/internal/domain/policy"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	InventoryUC  *inventory.UseCase
	WorkOrderUC  *workorder.UseCase
	CustomerUC   *billing.CustomerUseCase
	ReceivableUC *billing.ReceivableUseCase
	ExpenseUC    *billing.ExpenseUseCase
	DashboardUC  *analytics.DashboardUseCase
	UserUC       *usecase.UserUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Get("/codigo/:codigo/lancamento", RequireAction(policy.ActionLookupProductByCode), productHandler.GetByCode)
	products.Post("/", RequireAction(policy.ActionCreateProduct), productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireAction(policy.ActionDeleteProduct), productHandler.Delete)

	// Estoque (resumo e histórico mensais, restrito)
	stock := protected.Group("/estoque", RequireAction(policy.ActionViewFinancials))
	stockHandler := NewStockHandler(deps.InventoryUC)
	stock.Get("/resumo", stockHandler.Summary)
	stock.Get("/historico", stockHandler.History)

	// Clientes
	customers := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", RequireAction(policy.ActionViewFinancials), customerHandler.List)
	customers.Post("/", RequireAction(policy.ActionMutateFinancials), customerHandler.Create)
	customers.Delete("/:id", RequireAction(policy.ActionMutateFinancials), customerHandler.Delete)

	// Despesas
	expenses := protected.Group("/despesas")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", RequireAction(policy.ActionViewFinancials), expenseHandler.List)
	expenses.Post("/", RequireAction(policy.ActionMutateFinancials), expenseHandler.Create)
	expenses.Delete("/:id", RequireAction(policy.ActionMutateFinancials), expenseHandler.Delete)

	// Faturamentos
	receivables := protected.Group("/faturamentos")
	receivableHandler := NewReceivableHandler(deps.ReceivableUC)
	receivables.Get("/", RequireAction(policy.ActionViewFinancials), receivableHandler.List)
	receivables.Post("/lancar", RequireAction(policy.ActionMutateFinancials), receivableHandler.Issue)
	receivables.Put("/:id/pagar", RequireAction(policy.ActionMutateFinancials), receivableHandler.MarkPaid)
	receivables.Delete("/:id", RequireAction(policy.ActionMutateFinancials), receivableHandler.Delete)

	// Ordens de serviço
	orders := protected.Group("/os")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	orders.Get("/", workOrderHandler.List)
	orders.Post("/", workOrderHandler.Create)
	orders.Get("/:id/itens", workOrderHandler.ListItems)
	orders.Post("/:id/itens", workOrderHandler.AddItem)
	orders.Delete("/itens/:id", RequireAction(policy.ActionRemoveOrderItem), workOrderHandler.RemoveItem)
	orders.Put("/:id/finalizar", RequireAction(policy.ActionFinalizeOrder), workOrderHandler.Finalize)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequireAction(policy.ActionViewFinancials))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumo", dashboardHandler.Summary)

	// Usuários (somente ADMIN)
	users := protected.Group("/usuarios", RequireAction(policy.ActionManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
