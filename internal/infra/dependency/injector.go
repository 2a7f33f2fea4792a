// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/config"
	"github.com/smart-finance/backend/internal/application/alert"
	"github.com/smart-finance/backend/internal/application/usecase/admin"
	"github.com/smart-finance/backend/internal/application/usecase/auth"
	"github.com/smart-finance/backend/internal/application/usecase/budget"
	"github.com/smart-finance/backend/internal/application/usecase/chat"
	"github.com/smart-finance/backend/internal/application/usecase/dashboard"
	"github.com/smart-finance/backend/internal/application/usecase/emailops"
	"github.com/smart-finance/backend/internal/application/usecase/notification"
	"github.com/smart-finance/backend/internal/application/usecase/savingsgoal"
	"github.com/smart-finance/backend/internal/application/usecase/transaction"
	"github.com/smart-finance/backend/internal/infra/server/router"
	"github.com/smart-finance/backend/internal/integration/adapters"
	"github.com/smart-finance/backend/internal/integration/email"
	"github.com/smart-finance/backend/internal/integration/email/templates"
	"github.com/smart-finance/backend/internal/integration/entrypoint/controller"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Dispatcher  *alert.Dispatcher
	Monitor     *alert.Monitor
	EmailWorker *email.Worker
	Redis       *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewSavingsGoalRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	tipRepo := persistence.NewTipRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	aiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create the email delivery pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create the alert pipeline
	dispatcher := alert.NewDispatcher(cfg.Alerts.QueueSize, logger)
	monitor := alert.NewMonitor(
		dispatcher,
		notificationRepo,
		budgetRepo,
		transactionRepo,
		goalRepo,
		userRepo,
		emailService,
		logger,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUseCase(userRepo, passwordService, tokenService, emailService)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, monitor)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, monitor)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, monitor)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	syncSpendingUseCase := budget.NewSyncSpendingUseCase(budgetRepo, transactionRepo, monitor)
	getAnalyticsUseCase := budget.NewGetAnalyticsUseCase(budgetRepo, transactionRepo)

	// Create savings goal use cases
	listGoalsUseCase := savingsgoal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := savingsgoal.NewGetGoalUseCase(goalRepo)
	createGoalUseCase := savingsgoal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := savingsgoal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := savingsgoal.NewDeleteGoalUseCase(goalRepo)
	contributeUseCase := savingsgoal.NewContributeUseCase(goalRepo, monitor)
	goalStatsUseCase := savingsgoal.NewGetStatsUseCase(goalRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)
	deleteNotificationUseCase := notification.NewDeleteNotificationUseCase(notificationRepo)

	// Create dashboard use cases
	dashboardStatsUseCase := dashboard.NewGetStatsUseCase(transactionRepo)
	categoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo)
	trendsUseCase := dashboard.NewGetTrendsUseCase(transactionRepo)

	// Create chat use case
	askUseCase := chat.NewAskUseCase(transactionRepo, aiService, logger)

	// Create admin use cases
	listUsersUseCase := admin.NewListUsersUseCase(userRepo)
	setUserStatusUseCase := admin.NewSetUserStatusUseCase(userRepo)
	overviewUseCase := admin.NewGetOverviewUseCase(userRepo, transactionRepo)
	createTipUseCase := admin.NewCreateTipUseCase(tipRepo)
	listTipsUseCase := admin.NewListTipsUseCase(tipRepo)
	updateTipUseCase := admin.NewUpdateTipUseCase(tipRepo)
	deleteTipUseCase := admin.NewDeleteTipUseCase(tipRepo)

	// Create controllers
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
		refreshUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		syncSpendingUseCase,
		getAnalyticsUseCase,
	)

	savingsGoalController := controller.NewSavingsGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeUseCase,
		goalStatsUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		markAllReadUseCase,
		deleteNotificationUseCase,
	)

	dashboardController := controller.NewDashboardController(
		dashboardStatsUseCase,
		categoryBreakdownUseCase,
		trendsUseCase,
	)

	chatController := controller.NewChatController(askUseCase)

	emailStatusUseCase := emailops.NewGetStatusUseCase(
		emailQueueRepo,
		cfg.Email.ResendAPIKey != "",
		cfg.Email.WorkerEnabled,
	)
	testSendUseCase := emailops.NewTestSendUseCase(userRepo, emailService)
	monthlyReportUseCase := emailops.NewMonthlyReportUseCase(userRepo, transactionRepo, emailService)

	emailController := controller.NewEmailController(
		emailStatusUseCase,
		testSendUseCase,
		monthlyReportUseCase,
	)

	adminController := controller.NewAdminController(
		listUsersUseCase,
		setUserStatusUseCase,
		overviewUseCase,
		createTipUseCase,
		listTipsUseCase,
		updateTipUseCase,
		deleteTipUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	chatRateLimiter := middleware.NewChatRateLimiterWithConfig(redisClient, cfg.AI.ChatQuota, cfg.AI.ChatWindow)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		savingsGoalController,
		notificationController,
		dashboardController,
		chatController,
		emailController,
		adminController,
		loginRateLimiter,
		chatRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Dispatcher:  dispatcher,
		Monitor:     monitor,
		EmailWorker: emailWorker,
		Redis:       redisClient,
	}, nil
}
