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

	"github.com/dagimg/loan-management/internal"
	"github.com/dagimg/loan-management/internal/auth"
	authPostgres "github.com/dagimg/loan-management/internal/auth/postgres"
	"github.com/dagimg/loan-management/internal/contract"
	"github.com/dagimg/loan-management/internal/core/events"
	"github.com/dagimg/loan-management/internal/eligibility"
	"github.com/dagimg/loan-management/internal/employee"
	employeePostgres "github.com/dagimg/loan-management/internal/employee/postgres"
	"github.com/dagimg/loan-management/internal/loan"
	loanPostgres "github.com/dagimg/loan-management/internal/loan/postgres"
	"github.com/dagimg/loan-management/internal/notification"
	notificationPostgres "github.com/dagimg/loan-management/internal/notification/postgres"
	"github.com/dagimg/loan-management/internal/transport/rest"
	"github.com/dagimg/loan-management/internal/user"
	userPostgres "github.com/dagimg/loan-management/internal/user/postgres"
	"github.com/dagimg/loan-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
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
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

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
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	log := deps.Logger

	// Auth
	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authRepo := authPostgres.NewRepository(deps.GormDB)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)
	rbac := auth.NewRBACAuthorization(auth.NewPermissionChecker(), log)

	// Employee profiles
	employeeRepo := employeePostgres.NewProfileRepository(deps.GormDB)
	employeeService := employee.NewService(employeeRepo, log)
	employeeHandler := employee.NewHandler(employeeService)

	// User administration; the employee service doubles as the profile
	// creator for bulk seeding.
	userRepo := userPostgres.NewUserRepository(deps.GormDB)
	userService := user.NewService(userRepo, authService, employeeService, log)
	userHandler := user.NewHandler(userService)

	// Event bus and notifications
	eventBus := events.NewEventBus(log)
	notificationRepo := notificationPostgres.NewNotificationRepository(deps.GormDB)
	notificationService := notification.NewService(notificationRepo, log)
	dispatcher := notification.NewDispatcher(notificationService, notificationRepo, log)
	dispatcher.Register(eventBus)
	notificationHandler := notification.NewHandler(notificationService)

	// Loans
	checker := eligibility.NewChecker(nil)
	renderer := contract.NewPDFRenderer(cfg.Contracts.StorageDir, log)
	loanRepo := loanPostgres.NewLoanRepository(deps.GormDB)
	loanService := loan.NewService(loanRepo, employeeService, checker, renderer, eventBus, cfg.Contracts.OrganizationName, log)
	loanHandler := loan.NewHandler(loanService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, authHandler, rbac, userHandler, employeeHandler, loanHandler, notificationHandler, log)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ORM: %w", err)
	}

	router := chi.NewRouter()

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: router,
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

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the existing connection pool so the ORM and the raw
// handle share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}
