// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/smart-finance/backend/internal/integration/entrypoint/controller"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	budgetController       *controller.BudgetController
	savingsGoalController  *controller.SavingsGoalController
	notificationController *controller.NotificationController
	dashboardController    *controller.DashboardController
	chatController         *controller.ChatController
	emailController        *controller.EmailController
	adminController        *controller.AdminController
	loginRateLimiter       *middleware.RateLimiter
	chatRateLimiter        *middleware.ChatRateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	savingsGoalController *controller.SavingsGoalController,
	notificationController *controller.NotificationController,
	dashboardController *controller.DashboardController,
	chatController *controller.ChatController,
	emailController *controller.EmailController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	chatRateLimiter *middleware.ChatRateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		budgetController:       budgetController,
		savingsGoalController:  savingsGoalController,
		notificationController: notificationController,
		dashboardController:    dashboardController,
		chatController:         chatController,
		emailController:        emailController,
		adminController:        adminController,
		loginRateLimiter:       loginRateLimiter,
		chatRateLimiter:        chatRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.POST("/:id/sync", r.budgetController.Sync)
				budgets.GET("/:id/analytics", r.budgetController.Analytics)
			}
		}

		if r.savingsGoalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.savingsGoalController.List)
				goals.POST("", r.savingsGoalController.Create)
				goals.GET("/stats", r.savingsGoalController.Stats)
				goals.GET("/:id", r.savingsGoalController.Get)
				goals.PATCH("/:id", r.savingsGoalController.Update)
				goals.DELETE("/:id", r.savingsGoalController.Delete)
				goals.POST("/:id/contribute", r.savingsGoalController.Contribute)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.POST("/read-all", r.notificationController.MarkAllRead)
				notifications.POST("/:id/read", r.notificationController.MarkRead)
				notifications.DELETE("/:id", r.notificationController.Delete)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/stats", r.dashboardController.Stats)
				dashboard.GET("/categories", r.dashboardController.CategoryBreakdown)
				dashboard.GET("/trends", r.dashboardController.Trends)
			}
		}

		if r.chatController != nil && r.authMiddleware != nil {
			chat := v1.Group("/chat")
			chat.Use(r.authMiddleware.Authenticate())
			{
				handlers := []gin.HandlerFunc{}
				if r.chatRateLimiter != nil {
					handlers = append(handlers, r.chatRateLimiter.Middleware())
				}
				handlers = append(handlers, r.chatController.Ask)
				chat.POST("", handlers...)
			}
		}

		if r.emailController != nil && r.authMiddleware != nil {
			email := v1.Group("/email")
			email.Use(r.authMiddleware.Authenticate())
			{
				email.GET("/status", r.emailController.Status)
				email.POST("/test", r.emailController.TestSend)
				email.POST("/monthly-report", r.emailController.MonthlyReport)
			}
		}

		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/users", r.adminController.ListUsers)
				admin.PATCH("/users/:id/status", r.adminController.SetUserStatus)
				admin.GET("/overview", r.adminController.Overview)
				admin.GET("/tips", r.adminController.ListTips)
				admin.POST("/tips", r.adminController.CreateTip)
				admin.PATCH("/tips/:id", r.adminController.UpdateTip)
				admin.DELETE("/tips/:id", r.adminController.DeleteTip)
			}
		}
	}
}
