package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/interiorhq/interman-api/internal/application/auth"
	"github.com/interiorhq/interman-api/internal/application/issue"
	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain/repository"
	"github.com/interiorhq/interman-api/internal/infrastructure/exchange"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
	infrapdf "github.com/interiorhq/interman-api/internal/infrastructure/pdf"
	"github.com/interiorhq/interman-api/internal/infrastructure/postgres"
	httpRouter "github.com/interiorhq/interman-api/internal/interfaces/http"
	"github.com/interiorhq/interman-api/pkg/config"
	"github.com/interiorhq/interman-api/pkg/logger"
)

// repos groups one implementation of every repository port plus the TxRunner
// for the issue flow. Both backends fill the same struct, so everything after
// this point is backend-agnostic.
type repos struct {
	users     repository.UserRepository
	materials repository.MaterialRepository
	customers repository.CustomerRepository
	projects  repository.ProjectRepository
	vendors   repository.VendorRepository
	workers   repository.WorkerRepository
	issues    repository.MaterialIssueRepository
	purchases repository.VendorPurchaseRepository
	payments  repository.PaymentRepository
	logs      repository.MaterialLogRepository
	txRunner  issue.TxRunner
	close     func()
}

func buildPostgresRepos(ctx context.Context, cfg config.DBConfig) (*repos, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &repos{
		users:     postgres.NewUserRepository(pool),
		materials: postgres.NewMaterialRepository(pool),
		customers: postgres.NewCustomerRepository(pool),
		projects:  postgres.NewProjectRepository(pool),
		vendors:   postgres.NewVendorRepository(pool),
		workers:   postgres.NewWorkerRepository(pool),
		issues:    postgres.NewMaterialIssueRepository(pool),
		purchases: postgres.NewVendorPurchaseRepository(pool),
		payments:  postgres.NewPaymentRepository(pool),
		logs:      postgres.NewMaterialLogRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func buildMemoryRepos() *repos {
	issues := memory.NewMaterialIssueRepository()
	materials := memory.NewMaterialRepository()
	logs := memory.NewMaterialLogRepository()
	return &repos{
		users:     memory.NewUserRepository(),
		materials: materials,
		customers: memory.NewCustomerRepository(),
		projects:  memory.NewProjectRepository(),
		vendors:   memory.NewVendorRepository(),
		workers:   memory.NewWorkerRepository(),
		issues:    issues,
		purchases: memory.NewVendorPurchaseRepository(),
		payments:  memory.NewPaymentRepository(),
		logs:      logs,
		txRunner:  memory.NewTxRunner(issues, materials, logs),
		close:     func() {},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("starting application")

	ctx := context.Background()
	var r *repos
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		r, err = buildPostgresRepos(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
	default:
		r = buildMemoryRepos()
		log.Warn().Msg("memory backend selected: records do not survive a restart")
	}
	defer r.close()

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	materialUC := usecase.NewMaterialUseCase(r.materials)
	customerUC := usecase.NewCustomerUseCase(r.customers)
	projectUC := usecase.NewProjectUseCase(r.projects, r.customers, r.issues)
	vendorUC := usecase.NewVendorUseCase(r.vendors)
	workerUC := usecase.NewWorkerUseCase(r.workers)
	registerIssueUC := issue.NewRegisterIssueUseCase(r.txRunner, r.projects, r.issues)
	purchaseUC := usecase.NewPurchaseUseCase(r.purchases, r.customers, r.vendors)
	paymentUC := usecase.NewPaymentUseCase(r.payments, r.workers, r.vendors)
	logUC := usecase.NewLogUseCase(r.logs)
	overviewUC := usecase.NewOverviewUseCase(r.materials, r.customers, r.projects)

	statementGenerator := infrapdf.NewMarotoStatementGenerator(cfg.App.Name)
	statementUC := usecase.NewStatementUseCase(r.projects, r.customers, r.issues, r.materials, statementGenerator)

	exchangeClient := exchange.NewClient(cfg.Exchange)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Interior Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Backend})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		MaterialUC:    materialUC,
		CustomerUC:    customerUC,
		ProjectUC:     projectUC,
		StatementUC:   statementUC,
		VendorUC:      vendorUC,
		WorkerUC:      workerUC,
		RegisterIssue: registerIssueUC,
		PurchaseUC:    purchaseUC,
		PaymentUC:     paymentUC,
		LogUC:         logUC,
		OverviewUC:    overviewUC,
		Exchange:      exchangeClient,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
