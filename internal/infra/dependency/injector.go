// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/financas-pro/backend/config"
	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/application/usecase/auth"
	"github.com/financas-pro/backend/internal/application/usecase/dashboard"
	"github.com/financas-pro/backend/internal/application/usecase/goal"
	"github.com/financas-pro/backend/internal/application/usecase/transaction"
	"github.com/financas-pro/backend/internal/application/usecase/user"
	"github.com/financas-pro/backend/internal/infra/server/router"
	"github.com/financas-pro/backend/internal/integration/adapters"
	"github.com/financas-pro/backend/internal/integration/email"
	"github.com/financas-pro/backend/internal/integration/entrypoint/controller"
	"github.com/financas-pro/backend/internal/integration/entrypoint/middleware"
	"github.com/financas-pro/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *redis.Client
	Router          *router.Router
	PasswordService adapter.PasswordService
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// User profile use cases
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	setCurrencyUseCase := user.NewSetCurrencyUseCase(userRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addProgressUseCase := goal.NewAddProgressUseCase(goalRepo)

	// Dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, goalRepo)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo)
	trendUseCase := dashboard.NewGetBalanceTrendUseCase(transactionRepo)
	netWorthUseCase := dashboard.NewGetNetWorthUseCase(transactionRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
		deleteAccountUseCase,
	)

	userController := controller.NewUserController(
		updateProfileUseCase,
		setCurrencyUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addProgressUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		breakdownUseCase,
		trendUseCase,
		netWorthUseCase,
	)

	exportController := controller.NewExportController(listTransactionsUseCase, userRepo)

	// Middleware
	// Higher rate limits in E2E/test environments to keep tests from flaking
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		goalController,
		dashboardController,
		exportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		Router:          r,
		PasswordService: passwordService,
	}
}
