package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/interiorhq/interman-api/internal/application/auth"
	"github.com/interiorhq/interman-api/internal/application/issue"
	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain/access"
	"github.com/interiorhq/interman-api/internal/infrastructure/exchange"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MaterialUC    *usecase.MaterialUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProjectUC     *usecase.ProjectUseCase
	StatementUC   *usecase.StatementUseCase
	VendorUC      *usecase.VendorUseCase
	WorkerUC      *usecase.WorkerUseCase
	RegisterIssue *issue.RegisterIssueUseCase
	PurchaseUC    *usecase.PurchaseUseCase
	PaymentUC     *usecase.PaymentUseCase
	LogUC         *usecase.LogUseCase
	OverviewUC    *usecase.OverviewUseCase
	Exchange      *exchange.Client
	JWTSecret     string
}

// Router registers the API routes. Everything except auth sits behind the JWT
// middleware; the logs group additionally passes through the page gate, which is
// how the admin-only rule is enforced server-side.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Overview (dashboard)
	overviewHandler := NewOverviewHandler(deps.OverviewUC)
	protected.Get("/overview", overviewHandler.Summary)

	// Navigation + page resolution
	navHandler := NewNavigationHandler()
	protected.Get("/navigation", navHandler.Navigation)
	protected.Get("/navigation/resolve", navHandler.Resolve)

	// Materials (inventory)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Projects, financial rollup, printable statement
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.StatementUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Get("/:id/financials", projectHandler.Financials)
	projects.Get("/:id/statement.pdf", projectHandler.Statement)

	// Vendors
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Workers
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Get("/", workerHandler.List)
	workers.Post("/", workerHandler.Create)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Material issues
	issues := protected.Group("/issues")
	issueHandler := NewIssueHandler(deps.RegisterIssue)
	issues.Get("/", issueHandler.List)
	issues.Post("/", issueHandler.Create)

	// Vendor purchases
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)

	// Audit log (admin only, same predicate as the navigation)
	logs := protected.Group("/logs", RequirePage(access.PageLogs))
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.List)

	// USD->INR rate for the dashboard
	exchangeHandler := NewExchangeHandler(deps.Exchange)
	protected.Get("/exchange-rate", exchangeHandler.Rate)
}
