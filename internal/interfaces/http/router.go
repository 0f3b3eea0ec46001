package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/eno-livraison-api/internal/application/analytics"
	"github.com/jhoicas/eno-livraison-api/internal/application/auth"
	"github.com/jhoicas/eno-livraison-api/internal/application/datasync"
	"github.com/jhoicas/eno-livraison-api/internal/application/export"
	"github.com/jhoicas/eno-livraison-api/internal/application/inventory"
	"github.com/jhoicas/eno-livraison-api/internal/application/notification"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	PartnerUC        *usecase.PartnerUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	Ledger           LedgerUseCases
	DocumentUC       *usecase.DocumentUseCase
	AccountingUC     *usecase.AccountingUseCase
	UserUC           *usecase.UserUseCase
	ActivityUC       *usecase.ActivityUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	ExportUC         *export.ExportUseCase
	Notifications    *notification.Service
	Mirror           *datasync.Mirror
	JWTSecret        string
}

// Router registra las rutas de la API. Cada grupo exige las capacidades de la tabla de roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.SignUp)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/me", authHandler.UpdateMe)

	// Espejo
	syncHandler := NewSyncHandler(deps.Mirror)
	syncGroup := protected.Group("/sync", RequireCapability(access.ViewDashboard))
	syncGroup.Get("/status", syncHandler.Status)
	syncGroup.Post("/refresh", syncHandler.Refresh)

	// Tableros
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/home", RequireCapability(access.ViewDashboard), dashboardHandler.Home)
	dashboard.Get("/ceo", RequireCapability(access.ViewStatistics), dashboardHandler.CEO)
	dashboard.Get("/statistics", RequireCapability(access.ViewStatistics), dashboardHandler.Statistics)
	dashboard.Get("/partner", RequireCapability(access.ViewPartnerDashboard, access.ManagePartners), dashboardHandler.Partner)

	// Partenaires
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners := protected.Group("/partners")
	partners.Get("/", RequireCapability(access.ManagePartners, access.ViewPartnerDashboard), partnerHandler.List)
	partners.Post("/", RequireCapability(access.ManagePartners), partnerHandler.Create)
	partners.Post("/reassign-codes", RequireCapability(access.ManageSettings), partnerHandler.ReassignCodes)
	partners.Put("/:id", RequireCapability(access.ManagePartners), partnerHandler.Update)
	partners.Delete("/:id", RequireCapability(access.ManagePartners), partnerHandler.Delete)
	partners.Post("/:id/invite", RequireCapability(access.InvitePartners), partnerHandler.Invite)

	// Productos y stock
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products", RequireCapability(access.ManageStock))
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Replenishment, deps.Mirror.Loaded)
	stockGroup := protected.Group("/stock", RequireCapability(access.ManageStock))
	stockGroup.Get("/movements", productHandler.Movements)
	stockGroup.Post("/movements", inventoryHandler.RegisterMovement)
	stockGroup.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)

	// Contabilidad
	ledger := NewLedgerHandler(deps.Ledger)
	accountingOnly := RequireCapability(access.ManageAccounting)

	transactions := protected.Group("/transactions", accountingOnly)
	transactions.Get("/", ledger.ListTransactions)
	transactions.Post("/", ledger.CreateTransaction)
	transactions.Put("/:id", ledger.UpdateTransaction)
	transactions.Delete("/:id", ledger.DeleteTransaction)

	orders := protected.Group("/standard-orders", accountingOnly)
	orders.Get("/", ledger.ListStandardOrders)
	orders.Post("/", ledger.CreateStandardOrder)
	orders.Put("/:id", ledger.UpdateStandardOrder)
	orders.Delete("/:id", ledger.DeleteStandardOrder)

	fees := protected.Group("/partner-fees")
	fees.Get("/", RequireCapability(access.ManageAccounting, access.ViewPartnerDashboard), ledger.ListPartnerFees)
	fees.Post("/", accountingOnly, ledger.CreatePartnerFee)
	fees.Put("/:id", accountingOnly, ledger.UpdatePartnerFee)
	fees.Delete("/:id", accountingOnly, ledger.DeletePartnerFee)

	salaries := protected.Group("/salaries", RequireCapability(access.ManageSalaries))
	salaries.Get("/", ledger.ListSalaries)
	salaries.Post("/", ledger.CreateSalary)
	salaries.Put("/:id", ledger.UpdateSalary)
	salaries.Delete("/:id", ledger.DeleteSalary)

	deliveries := protected.Group("/deliveries")
	deliveries.Get("/", RequireCapability(access.ManageAccounting, access.ManagePartners, access.ViewPartnerDashboard), ledger.ListDeliveries)
	deliveries.Post("/", RequireCapability(access.ManageAccounting, access.ManagePartners), ledger.CreateDelivery)

	deposits := protected.Group("/bank-deposits", accountingOnly)
	deposits.Get("/", ledger.ListBankDeposits)
	deposits.Post("/", ledger.CreateBankDeposit)

	accountingHandler := NewAccountingHandler(deps.AccountingUC)
	accountingGroup := protected.Group("/accounting")
	accountingGroup.Get("/summary", RequireCapability(access.ManageAccounting, access.ViewStatistics), accountingHandler.Summary)
	accountingGroup.Get("/partner-stats", RequireCapability(access.ManageAccounting, access.ViewStatistics), accountingHandler.PartnerStats)
	accountingGroup.Post("/reset", RequireCapability(access.ManageSettings), accountingHandler.Reset)

	// Dossiers
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents := protected.Group("/documents")
	documents.Get("/", RequireCapability(access.ViewDocuments), documentHandler.List)
	documents.Post("/", RequireCapability(access.ManageDocuments), documentHandler.Create)
	documents.Delete("/:id", RequireCapability(access.DeleteDocuments), documentHandler.Delete)

	// Usuarios (CEO)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireCapability(access.ManageUsers))
	users.Get("/", userHandler.List)
	users.Post("/invite", userHandler.Invite)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/permissions", userHandler.SetPermissions)
	users.Delete("/:id", userHandler.Delete)

	// Journal
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity-log", RequireCapability(access.ViewActivityLog), activityHandler.List)

	// Exportación
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup := protected.Group("/export", RequireCapability(access.ExportData))
	exportGroup.Get("/categories", exportHandler.Categories)
	exportGroup.Post("/", exportHandler.Export)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications := protected.Group("/notifications", RequireCapability(access.ViewNotifications))
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/", notificationHandler.Clear)
}
