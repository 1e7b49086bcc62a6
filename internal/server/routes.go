package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/handlers"
	"github.com/openpersona/console/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	// Create instances of all application handlers.
	homeHandler := handlers.NewHomeHandler(s.Store)
	authHandler := handlers.NewAuthHandler(s.API, s.Store)
	dashboardHandler := handlers.NewDashboardHandler(s.API, s.Store)
	fileHandler := handlers.NewFileHandler(s.API, s.Store)
	resumeHandler := handlers.NewResumeHandler(s.API, s.Store)
	billingHandler := handlers.NewBillingHandler(s.API, s.Store)
	portfolioHandler := handlers.NewPortfolioHandler(s.API, s.Store)
	supportHandler := handlers.NewSupportHandler(s.API, s.Store)
	templateHandler := handlers.NewTemplateHandler(s.API, s.Store)
	adminHandler := handlers.NewAdminHandler(s.API, s.Store)
	publicHandler := handlers.NewPublicHandler(s.API, s.Store)
	notificationHandler := handlers.NewNotificationHandler(s.Store)

	rateLimiter := middleware.RateLimiter()
	requireAuth := middleware.RequireAuth(s.Store)
	requireAdmin := middleware.RequireAdmin(s.Store)

	// Public pages.
	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/@:handle", publicHandler.ProfileGet)
	s.E.GET("/@:handle/:slug", publicHandler.DashboardGet)

	// Auth.
	s.E.GET("/app/login", authHandler.LoginGet)
	s.E.POST("/app/login", authHandler.LoginPost, rateLimiter)
	s.E.GET("/app/register", authHandler.RegisterGet)
	s.E.POST("/app/register", authHandler.RegisterPost, rateLimiter)
	s.E.GET("/app/logout", authHandler.Logout)
	s.E.GET("/app/forgot-password", authHandler.ForgotPasswordGet)
	s.E.POST("/app/forgot-password", authHandler.ForgotPasswordPost, rateLimiter)
	s.E.GET("/app/reset-password", authHandler.ResetPasswordGet)
	s.E.POST("/app/reset-password", authHandler.ResetPasswordPost)

	// Signed-in console.
	app := s.E.Group("/app", requireAuth)
	app.GET("/dashboards", dashboardHandler.ListGet)
	app.POST("/dashboards", dashboardHandler.CreatePost)
	app.POST("/dashboards/generate", dashboardHandler.GeneratePost)
	app.GET("/dashboards/:slug", dashboardHandler.EditGet)
	app.DELETE("/dashboards/:id", dashboardHandler.DeletePost)
	app.POST("/dashboards/:id/visibility", dashboardHandler.VisibilityPost)
	app.POST("/dashboards/:id/template", dashboardHandler.TemplatePost)
	app.POST("/dashboards/:id/primary", dashboardHandler.PrimaryPost)

	app.GET("/files", fileHandler.ListGet)
	app.POST("/files", fileHandler.UploadPost)
	app.GET("/files/:id/download", fileHandler.DownloadGet)
	app.DELETE("/files/:id", fileHandler.DeletePost)

	app.GET("/resumes", resumeHandler.ListGet)
	app.POST("/resumes", resumeHandler.UploadPost)
	app.GET("/resumes/:id/download", resumeHandler.DownloadGet)
	app.POST("/resumes/:id/analyze", resumeHandler.AnalyzePost)

	app.GET("/portfolio", portfolioHandler.StatusGet)
	app.POST("/portfolio/draft", portfolioHandler.DraftPost)
	app.POST("/portfolio/publish", portfolioHandler.PublishPost)

	app.GET("/support", supportHandler.HighlightsGet)
	app.POST("/support/match", supportHandler.JobMatchPost)
	app.POST("/support/ask", supportHandler.CopilotPost)

	app.GET("/templates", templateHandler.GalleryGet)

	app.GET("/billing", billingHandler.PlansGet)
	app.POST("/billing/upgrade", billingHandler.UpgradePost)
	app.POST("/billing/cancel", billingHandler.CancelPost)

	app.POST("/notifications/:id/dismiss", notificationHandler.DismissPost)

	// Admin console.
	admin := app.Group("/admin", requireAdmin)
	admin.GET("/users", adminHandler.UsersGet)
	admin.POST("/users/:id/plan", adminHandler.PlanPost)
	admin.POST("/users/:id/block", adminHandler.BlockPost)
	admin.DELETE("/users/:id", adminHandler.DeletePost)
	admin.GET("/templates", templateHandler.AdminListGet)
	admin.POST("/templates", templateHandler.AdminCreatePost)
	admin.POST("/templates/:slug", templateHandler.AdminUpdatePost)

	// Static assets and liveness.
	s.E.Static("/static", "web/static")
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
