package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/oficinapro/oficina-api/internal/application/analytics"
	"github.com/oficinapro/oficina-api/internal/application/auth"
	"github.com/oficinapro/oficina-api/internal/application/billing"
	"github.com/oficinapro/oficina-api/internal/application/inventory"
	"github.com/oficinapro/oficina-api/internal/application/usecase"
	"github.com/oficinapro/oficina-api/internal/application/workorder"
	"github.com/oficinapro/oficina-api/internal/infrastructure/postgres"
	httpRouter "github.com/oficinapro/oficina-api/internal/interfaces/http"
	"github.com/oficinapro/oficina-api/pkg/config"
	"github.com/oficinapro/oficina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	orderRepo := postgres.NewWorkOrderRepository(pool)
	itemRepo := postgres.NewWorkOrderItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(txRunner, productRepo, movementRepo)
	workOrderUC := workorder.NewUseCase(txRunner, orderRepo, itemRepo, customerRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	receivableUC := billing.NewReceivableUseCase(receivableRepo, customerRepo)
	expenseUC := billing.NewExpenseUseCase(expenseRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo, movementRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		WorkOrderUC:  workOrderUC,
		CustomerUC:   customerUC,
		ReceivableUC: receivableUC,
		ExpenseUC:    expenseUC,
		DashboardUC:  dashboardUC,
		UserUC:       userUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
