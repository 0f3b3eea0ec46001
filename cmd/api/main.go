package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/eno-livraison-api/internal/application/analytics"
	"github.com/jhoicas/eno-livraison-api/internal/application/auth"
	"github.com/jhoicas/eno-livraison-api/internal/application/datasync"
	"github.com/jhoicas/eno-livraison-api/internal/application/export"
	"github.com/jhoicas/eno-livraison-api/internal/application/inventory"
	"github.com/jhoicas/eno-livraison-api/internal/application/notification"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/eno-livraison-api/internal/infrastructure/pdf"
	"github.com/jhoicas/eno-livraison-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/eno-livraison-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/eno-livraison-api/internal/interfaces/http"
	"github.com/jhoicas/eno-livraison-api/pkg/config"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	partnerRepo := postgres.NewPartnerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	orderRepo := postgres.NewStandardOrderRepository(pool)
	feeRepo := postgres.NewPartnerDeliveryFeeRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	depositRepo := postgres.NewBankDepositRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	procs := postgres.NewProcedures(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Espejo de las nueve tablas, alimentado por LISTEN/NOTIFY y refresco periódico.
	listener := postgres.NewChangeListener(pool, cfg.Sync.Channel, log.Component("change_listener"))
	mirror := datasync.NewMirror(datasync.Sources{
		Partners:            partnerRepo,
		Products:            productRepo,
		Transactions:        transactionRepo,
		Deliveries:          deliveryRepo,
		StockMovements:      movementRepo,
		BankDeposits:        depositRepo,
		StandardOrders:      orderRepo,
		PartnerDeliveryFees: feeRepo,
		Salaries:            salaryRepo,
	}, listener, cfg.Sync.RefreshInterval(), log.Component("datasync"))

	notifications := notification.NewService(mirror, log.Component("notifications"))
	mirror.OnChange(notifications.OnTableChange)

	jwtCfg := auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		ExpMinutes:     cfg.JWT.Expiration,
		Issuer:         cfg.JWT.Issuer,
		InviteExpHours: cfg.JWT.InviteExpHours,
	}
	mailer := mail.New(cfg.SMTP, log.Component("mail"))
	inviteUC := auth.NewInviteUseCase(profileRepo, partnerRepo, mailer, jwtCfg, cfg.App.PublicURL)
	authUC := auth.NewAuthUseCase(profileRepo, notifications, jwtCfg)

	journal := usecase.NewJournal(activityRepo, log.Component("journal"))
	partnerUC := usecase.NewPartnerUseCase(partnerRepo, procs, mirror, inviteUC, journal)
	productUC := usecase.NewProductUseCase(productRepo, txRunner, mirror, journal)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	replenishmentUC := inventory.NewReplenishmentUseCase(mirror)
	accountingUC := usecase.NewAccountingUseCase(mirror, mirror, procs, journal, log.Component("accounting"))
	documentUC := usecase.NewDocumentUseCase(documentRepo, journal)
	userUC := usecase.NewUserUseCase(profileRepo, procs, inviteUC, journal)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(mirror)
	exportUC := export.NewExportUseCase(mirror, infrapdf.NewExportRenderer(), infraxlsx.NewExportRenderer())

	if err := mirror.Start(ctx); err != nil {
		// El espejo sigue activo y reintenta en el siguiente refresco.
		log.Error().Err(err).Msg("carga inicial del espejo")
	}
	defer mirror.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(cfg.HTTP.CORSOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Eno Livraison API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "data_loaded": mirror.Loaded()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		PartnerUC:        partnerUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		Replenishment:    replenishmentUC,
		Ledger: httpRouter.LedgerUseCases{
			Transactions:   usecase.NewTransactionUseCase(transactionRepo, mirror),
			StandardOrders: usecase.NewStandardOrderUseCase(orderRepo, mirror),
			PartnerFees:    usecase.NewPartnerFeeUseCase(feeRepo, mirror),
			Salaries:       usecase.NewSalaryUseCase(salaryRepo, mirror),
			Deliveries:     usecase.NewDeliveryUseCase(deliveryRepo, mirror),
			BankDeposits:   usecase.NewBankDepositUseCase(depositRepo, mirror),
		},
		DocumentUC:    documentUC,
		AccountingUC:  accountingUC,
		UserUC:        userUC,
		ActivityUC:    activityUC,
		DashboardUC:   dashboardUC,
		ExportUC:      exportUC,
		Notifications: notifications,
		Mirror:        mirror,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	stop()

	log.Info().Msg("aplicación detenida")
}

// corsOrigins normaliza la lista separada por comas de CORS_ALLOWED_ORIGINS.
func corsOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
