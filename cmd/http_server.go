package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/auth"
	"github.com/frahmantamala/dorm-management/internal/complaint"
	complaintpostgres "github.com/frahmantamala/dorm-management/internal/complaint/postgres"
	"github.com/frahmantamala/dorm-management/internal/core/events"
	"github.com/frahmantamala/dorm-management/internal/fee"
	feepostgres "github.com/frahmantamala/dorm-management/internal/fee/postgres"
	"github.com/frahmantamala/dorm-management/internal/gateway"
	"github.com/frahmantamala/dorm-management/internal/menu"
	menupostgres "github.com/frahmantamala/dorm-management/internal/menu/postgres"
	"github.com/frahmantamala/dorm-management/internal/payment"
	paymentpostgres "github.com/frahmantamala/dorm-management/internal/payment/postgres"
	"github.com/frahmantamala/dorm-management/internal/room"
	roompostgres "github.com/frahmantamala/dorm-management/internal/room/postgres"
	"github.com/frahmantamala/dorm-management/internal/transport"
	"github.com/frahmantamala/dorm-management/internal/transport/rest"
	"github.com/frahmantamala/dorm-management/internal/user"
	userpostgres "github.com/frahmantamala/dorm-management/internal/user/postgres"
	"github.com/frahmantamala/dorm-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env, config.Observability.Logging.Level)
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	privateKey, err := config.Security.GetPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT private key: %w", err)
	}
	publicKey, err := config.Security.GetPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT public key: %w", err)
	}

	baseHandler := transport.NewBaseHandler(log)
	eventBus := events.NewEventBus(log)

	// user + auth
	userRepo := userpostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, config.Security.BCryptCost, log)
	userHandler := user.NewHandler(baseHandler, userService)

	tokens := auth.NewTokenManager(privateKey, publicKey, config.Security.AccessTokenDuration)
	authService := auth.NewService(userService, tokens, log)
	authHandler := auth.NewHandler(baseHandler, authService)

	// fee ledger
	feeRepo := feepostgres.NewFeeRepository(gormDB)
	feeService := fee.NewService(feeRepo, userService, log)
	feeHandler := fee.NewHandler(baseHandler, feeService)

	// payment reconciliation
	gatewayClient := gateway.NewClient(gateway.Config{
		StoreID:       config.Gateway.StoreID,
		StorePassword: config.Gateway.StorePassword,
		BaseURL:       config.Gateway.BaseURL(),
		Timeout:       config.Gateway.Timeout,
	}, log)
	recordRepo := paymentpostgres.NewRecordRepository(gormDB)
	unitOfWork := paymentpostgres.NewUnitOfWork(gormDB)
	resolver := payment.NewUserResolver(userService, feeService, log)
	engine := payment.NewService(gatewayClient, resolver, recordRepo, unitOfWork, eventBus, log)
	paymentHandler := payment.NewHandler(log, engine)
	payment.NewEventHandler(log).RegisterHandlers(eventBus)

	// rooms, complaints, menu
	roomRepo := roompostgres.NewRoomRepository(gormDB)
	roomService := room.NewService(roomRepo, log)
	roomHandler := room.NewHandler(baseHandler, roomService)

	complaintRepo := complaintpostgres.NewComplaintRepository(gormDB)
	complaintService := complaint.NewService(complaintRepo, log)
	complaintHandler := complaint.NewHandler(baseHandler, complaintService)

	menuRepo := menupostgres.NewMenuRepository(gormDB)
	menuService := menu.NewService(menuRepo, log)
	menuHandler := menu.NewHandler(baseHandler, menuService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB,
		authHandler, userHandler, feeHandler, paymentHandler,
		roomHandler, complaintHandler, menuHandler, log)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: router,
		Logger: log,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
