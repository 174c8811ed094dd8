package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/RehanWaris/vbudget/internal/pkg/config"
	"github.com/RehanWaris/vbudget/internal/pkg/database"
	"github.com/RehanWaris/vbudget/internal/pkg/health"
	"github.com/RehanWaris/vbudget/internal/pkg/logger"
	"github.com/RehanWaris/vbudget/internal/pkg/middleware"
	nsqpkg "github.com/RehanWaris/vbudget/internal/pkg/nsq"
	"github.com/RehanWaris/vbudget/internal/pkg/server"
	accountGateway "github.com/RehanWaris/vbudget/services/account/gateway"
	accountHandler "github.com/RehanWaris/vbudget/services/account/handler/http"
	accountRepository "github.com/RehanWaris/vbudget/services/account/repository"
	accountUsecase "github.com/RehanWaris/vbudget/services/account/usecase"
	budgetGateway "github.com/RehanWaris/vbudget/services/budget/gateway"
	budgetHandler "github.com/RehanWaris/vbudget/services/budget/handler/http"
	budgetRepository "github.com/RehanWaris/vbudget/services/budget/repository"
	budgetUsecase "github.com/RehanWaris/vbudget/services/budget/usecase"
	dashboardHandler "github.com/RehanWaris/vbudget/services/dashboard/handler/http"
	dashboardRepository "github.com/RehanWaris/vbudget/services/dashboard/repository"
	dashboardUsecase "github.com/RehanWaris/vbudget/services/dashboard/usecase"
	otppkg "github.com/RehanWaris/vbudget/services/otp"
	otpRepository "github.com/RehanWaris/vbudget/services/otp/repository"
	vendorGateway "github.com/RehanWaris/vbudget/services/vendor/gateway"
	vendorHandler "github.com/RehanWaris/vbudget/services/vendor/handler/http"
	vendorRepository "github.com/RehanWaris/vbudget/services/vendor/repository"
	vendorUsecase "github.com/RehanWaris/vbudget/services/vendor/usecase"
)

const appName = "vbudget-server"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Repositories
	accountRepo := accountRepository.NewAccountRepo(db)
	vendorRepo := vendorRepository.NewVendorRepo(db)
	budgetRepo := budgetRepository.NewBudgetRepo(db)
	dashboardRepo := dashboardRepository.NewDashboardRepo(db)
	challengeRepo := otpRepository.NewChallengeRepo(redisClient)

	// Gateways
	accountGW := accountGateway.NewAccountGW(producer, configs)
	vendorGW := vendorGateway.NewVendorGW(producer, configs)
	budgetGW := budgetGateway.NewBudgetGW(producer, configs)

	// Usecases
	otpManager := otppkg.NewChallengeManager(challengeRepo, configs)
	accountUC := accountUsecase.NewAccountUC(accountRepo, otpManager, accountGW, configs)
	vendorUC := vendorUsecase.NewVendorUC(vendorRepo, otpManager, vendorGW, configs)
	budgetUC := budgetUsecase.NewBudgetUC(budgetRepo, vendorRepo, budgetGW, configs)
	dashboardUC := dashboardUsecase.NewDashboardUC(dashboardRepo)

	if err := accountUC.EnsureAdmin(context.Background()); err != nil {
		zapLogger.Fatal("Failed to seed admin account", logger.Err(err))
	}

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	accountHandler.NewAccountHandler(accountUC).RegisterRoutes(e, configs.JWT)
	vendorHandler.NewVendorHandler(vendorUC).RegisterRoutes(e, configs.JWT)
	budgetHandler.NewBudgetHandler(budgetUC).RegisterRoutes(e, configs.JWT)
	dashboardHandler.NewDashboardHandler(dashboardUC).RegisterRoutes(e, configs.JWT)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
